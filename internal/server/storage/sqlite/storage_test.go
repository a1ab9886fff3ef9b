package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/storefront/internal/models"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func createTestUser(t *testing.T, ctx context.Context, s *Storage) *models.User {
	userID := uuid.New().String()
	now := time.Now().UTC()
	user := &models.User{
		ID:           userID,
		Email:        "user_" + userID[:8] + "@example.com",
		Username:     "user_" + userID[:8],
		FullName:     "Test User",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	require.NoError(t, s.CreateUser(ctx, user))
	return user
}

func createTestProduct(t *testing.T, ctx context.Context, s *Storage, name, vendor string, price float64, createdAt time.Time) *models.Product {
	product := &models.Product{
		ID:           uuid.New().String(),
		Name:         name,
		VendorName:   vendor,
		Price:        price,
		ItemQuantity: 1,
		CreatedAt:    createdAt,
	}

	require.NoError(t, s.CreateProduct(ctx, product))
	return product
}

func TestNew_RunsMigrations(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	for _, table := range []string{"users", "products", "favorites", "reviews"} {
		var name string
		err := s.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}

	assert.NoError(t, s.Ping(context.Background()))
}

func TestSeedCatalog(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	n, err := s.SeedCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(demoCatalog), n)

	// Повторный запуск не дублирует товары
	n, err = s.SeedCatalog(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	products, total, err := s.ListProducts(ctx, models.ProductQuery{Page: 1, Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, len(demoCatalog), total)
	require.Len(t, products, len(demoCatalog))
	assert.NotEmpty(t, products[0].MainImage)
	assert.Equal(t, []string{products[0].MainImage}, products[0].Images)
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%lamp%", likePattern("lamp"))
	assert.Equal(t, `%50\%\_off%`, likePattern("50%_off"))
}
