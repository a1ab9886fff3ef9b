package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/storefront/internal/models"
	"github.com/iudanet/storefront/internal/server/storage"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

func TestFavoriteHandler_List(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	favorites := &storage.FavoriteStorageMock{
		ListFavoritesFunc: func(ctx context.Context, userID string) ([]*models.Favorite, error) {
			return []*models.Favorite{{
				ID:        "f1",
				UserID:    userID,
				ProductID: "p1",
				Product:   sampleProduct("p1", "Lamp", 20),
				CreatedAt: created,
				UpdatedAt: created,
			}}, nil
		},
	}
	handler := NewFavoriteHandler(setupTestLogger(), favorites)

	w := serve(t, handler.List, testRequest{method: http.MethodGet, target: "/favorites", userID: "u1"})

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope[[]pkgapi.Favorite](t, w)
	require.Len(t, env.Data, 1)
	assert.Equal(t, "f1", env.Data[0].ID)
	assert.Equal(t, "u1", env.Data[0].UserID)
	assert.Equal(t, "Lamp", env.Data[0].Product.Name)
	assert.True(t, created.Equal(env.Data[0].CreatedAt))
	assert.Equal(t, "u1", favorites.ListFavoritesCalls()[0].UserID)
}

func TestFavoriteHandler_ListEmpty(t *testing.T) {
	favorites := &storage.FavoriteStorageMock{
		ListFavoritesFunc: func(ctx context.Context, userID string) ([]*models.Favorite, error) {
			return nil, nil
		},
	}
	handler := NewFavoriteHandler(setupTestLogger(), favorites)

	w := serve(t, handler.List, testRequest{method: http.MethodGet, target: "/favorites", userID: "u1"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestFavoriteHandler_ListUnauthorized(t *testing.T) {
	handler := NewFavoriteHandler(setupTestLogger(), &storage.FavoriteStorageMock{})

	w := serve(t, handler.List, testRequest{method: http.MethodGet, target: "/favorites"})
	requireError(t, w, http.StatusUnauthorized, CodeUnauthorized)
}

func TestFavoriteHandler_Toggle(t *testing.T) {
	// Первый вызов добавляет, второй убирает
	present := false
	favorites := &storage.FavoriteStorageMock{
		ToggleFavoriteFunc: func(ctx context.Context, userID, productID string) (*models.Favorite, bool, error) {
			if productID != "p1" {
				return nil, false, storage.ErrProductNotFound
			}
			present = !present
			return &models.Favorite{ID: "f1", UserID: userID, ProductID: productID}, present, nil
		},
	}
	handler := NewFavoriteHandler(setupTestLogger(), favorites)
	req := testRequest{
		method:     http.MethodPost,
		target:     "/favorites/p1",
		pathValues: map[string]string{"productId": "p1"},
		userID:     "u1",
	}

	w := serve(t, handler.Toggle, req)
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope[pkgapi.ToggleResponse](t, w)
	assert.Equal(t, pkgapi.ToggleAdded, env.Data.Status)
	assert.Equal(t, "f1", env.Data.ID)
	assert.Equal(t, "u1", env.Data.UserID)
	assert.Equal(t, "p1", env.Data.ProductID)
	assert.Equal(t, "Added to favorites", env.Message)

	w = serve(t, handler.Toggle, req)
	require.Equal(t, http.StatusOK, w.Code)
	env = decodeEnvelope[pkgapi.ToggleResponse](t, w)
	assert.Equal(t, pkgapi.ToggleRemoved, env.Data.Status)
	assert.Empty(t, env.Data.ID)
	assert.Equal(t, "p1", env.Data.ProductID)

	calls := favorites.ToggleFavoriteCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "u1", calls[0].UserID)
	assert.Equal(t, "p1", calls[0].ProductID)
}

func TestFavoriteHandler_ToggleErrors(t *testing.T) {
	favorites := &storage.FavoriteStorageMock{
		ToggleFavoriteFunc: func(ctx context.Context, userID, productID string) (*models.Favorite, bool, error) {
			if productID == "broken" {
				return nil, false, errors.New("database is locked")
			}
			return nil, false, storage.ErrProductNotFound
		},
	}
	handler := NewFavoriteHandler(setupTestLogger(), favorites)

	w := serve(t, handler.Toggle, testRequest{
		method:     http.MethodPost,
		target:     "/favorites/p1",
		pathValues: map[string]string{"productId": "p1"},
	})
	requireError(t, w, http.StatusUnauthorized, CodeUnauthorized)

	w = serve(t, handler.Toggle, testRequest{
		method:     http.MethodPost,
		target:     "/favorites/nope",
		pathValues: map[string]string{"productId": "nope"},
		userID:     "u1",
	})
	requireError(t, w, http.StatusNotFound, CodeNotFound)

	w = serve(t, handler.Toggle, testRequest{
		method:     http.MethodPost,
		target:     "/favorites/broken",
		pathValues: map[string]string{"productId": "broken"},
		userID:     "u1",
	})
	env := requireError(t, w, http.StatusInternalServerError, CodeInternal)
	assert.NotContains(t, env.Message, "locked")
}
