package sqlite

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/storefront/internal/models"
	"github.com/iudanet/storefront/internal/server/storage"
)

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now().UTC()
	existing := &models.User{
		ID:           uuid.New().String(),
		Email:        "jane@example.com",
		Username:     "jane",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.CreateUser(ctx, existing))

	tests := []struct {
		wantError error
		user      *models.User
		name      string
	}{
		{
			name: "create new user successfully",
			user: &models.User{
				ID:           uuid.New().String(),
				Email:        "john@example.com",
				Username:     "john",
				FullName:     "John Doe",
				AvatarURL:    "https://example.com/john.png",
				PasswordHash: "hash123",
				CreatedAt:    now,
				UpdatedAt:    now,
			},
		},
		{
			name: "duplicate email differs only in case",
			user: &models.User{
				ID:           uuid.New().String(),
				Email:        "JANE@example.com",
				Username:     "jane2",
				PasswordHash: "hash",
				CreatedAt:    now,
				UpdatedAt:    now,
			},
			wantError: storage.ErrUserAlreadyExists,
		},
		{
			name: "duplicate username",
			user: &models.User{
				ID:           uuid.New().String(),
				Email:        "other@example.com",
				Username:     "jane",
				PasswordHash: "hash",
				CreatedAt:    now,
				UpdatedAt:    now,
			},
			wantError: storage.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.CreateUser(ctx, tt.user)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			// Verify user was created
			got, err := s.GetUserByID(ctx, tt.user.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.user.Email, got.Email)
			assert.Equal(t, tt.user.Username, got.Username)
			assert.Equal(t, tt.user.FullName, got.FullName)
			assert.Equal(t, tt.user.AvatarURL, got.AvatarURL)
			assert.Equal(t, tt.user.PasswordHash, got.PasswordHash)
			assert.WithinDuration(t, tt.user.CreatedAt, got.CreatedAt, time.Second)
		})
	}
}

func TestUserStorage_GetUserByEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s)

	got, err := s.GetUserByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// email сравнивается без учета регистра
	got, err = s.GetUserByEmail(ctx, strings.ToUpper(user.Email))
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = s.GetUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_GetUserByID_NotFound(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetUserByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s)
	user.FullName = "Renamed User"
	user.AvatarURL = "https://example.com/a.png"
	user.UpdatedAt = time.Now().UTC().Add(time.Minute)

	require.NoError(t, s.UpdateProfile(ctx, user))

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed User", got.FullName)
	assert.Equal(t, "https://example.com/a.png", got.AvatarURL)
	assert.WithinDuration(t, user.UpdatedAt, got.UpdatedAt, time.Second)

	missing := &models.User{ID: uuid.New().String()}
	assert.ErrorIs(t, s.UpdateProfile(ctx, missing), storage.ErrUserNotFound)
}

func TestUserStorage_GetUserActivity(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s)
	now := time.Now().UTC()
	p1 := createTestProduct(t, ctx, s, "Lamp", "Acme", 10, now)
	p2 := createTestProduct(t, ctx, s, "Desk", "Acme", 100, now)

	activity, err := s.GetUserActivity(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserActivity{}, activity)

	_, _, err = s.ToggleFavorite(ctx, user.ID, p1.ID)
	require.NoError(t, err)
	_, _, err = s.ToggleFavorite(ctx, user.ID, p2.ID)
	require.NoError(t, err)
	require.NoError(t, s.CreateReview(ctx, &models.Review{
		ID: uuid.New().String(), UserID: user.ID, ProductID: p1.ID, Rating: 5, Comment: "ok",
		CreatedAt: now, UpdatedAt: now,
	}))

	activity, err = s.GetUserActivity(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserActivity{FavoritesCount: 2, ReviewsCount: 1}, activity)
}
