package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/storefront/internal/models"
	"github.com/iudanet/storefront/internal/server/storage"
)

func seedProducts(t *testing.T, ctx context.Context, s *Storage) map[string]*models.Product {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return map[string]*models.Product{
		"lamp":  createTestProduct(t, ctx, s, "Desk Lamp", "Acme Lighting", 39.9, base),
		"sofa":  createTestProduct(t, ctx, s, "linen sofa", "Nordic Living", 1290, base.Add(time.Hour)),
		"chair": createTestProduct(t, ctx, s, "Office Chair", "ErgoWorks", 319, base.Add(2*time.Hour)),
		"table": createTestProduct(t, ctx, s, "Oak Table", "Nordic Living", 749, base.Add(3*time.Hour)),
	}
}

func names(products []*models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestProductStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	product := &models.Product{
		ID:           uuid.New().String(),
		Name:         "Ceramic Vase",
		VendorName:   "Casa",
		SeriesName:   "White",
		Description:  "Matte vase",
		MainImage:    "https://example.com/vase.png",
		ProductCode:  "CT-1",
		Images:       []string{"https://example.com/vase.png", "https://example.com/vase-2.png"},
		Price:        24.5,
		ItemQuantity: 60,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.CreateProduct(ctx, product))

	got, err := s.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Name, got.Name)
	assert.Equal(t, product.SeriesName, got.SeriesName)
	assert.Equal(t, product.ProductCode, got.ProductCode)
	assert.Equal(t, product.Images, got.Images)
	assert.Equal(t, 24.5, got.Price)
	assert.Equal(t, 60, got.ItemQuantity)

	_, err = s.GetProduct(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrProductNotFound)
}

func TestProductStorage_CreateWithoutImages(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	p := createTestProduct(t, ctx, s, "Rug", "Casa", 210, time.Now().UTC())

	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Images)
	assert.Empty(t, got.Images)
}

func TestProductStorage_ListProducts(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	seedProducts(t, ctx, s)

	tests := []struct {
		name      string
		want      []string
		query     models.ProductQuery
		wantTotal int
	}{
		{
			name:      "default order is created_at asc",
			query:     models.ProductQuery{Page: 1, Limit: 10},
			want:      []string{"Desk Lamp", "linen sofa", "Office Chair", "Oak Table"},
			wantTotal: 4,
		},
		{
			name:      "price desc",
			query:     models.ProductQuery{Page: 1, Limit: 10, SortField: models.SortByPrice, SortDesc: true},
			want:      []string{"linen sofa", "Oak Table", "Office Chair", "Desk Lamp"},
			wantTotal: 4,
		},
		{
			name:      "name asc ignores case",
			query:     models.ProductQuery{Page: 1, Limit: 10, SortField: models.SortByName},
			want:      []string{"Desk Lamp", "linen sofa", "Oak Table", "Office Chair"},
			wantTotal: 4,
		},
		{
			name:      "vendor substring case-insensitive",
			query:     models.ProductQuery{Page: 1, Limit: 10, VendorName: "nordic", SortField: models.SortByPrice},
			want:      []string{"Oak Table", "linen sofa"},
			wantTotal: 2,
		},
		{
			name:      "price bounds inclusive",
			query:     models.ProductQuery{Page: 1, Limit: 10, MinPrice: floatPtr(319), MaxPrice: floatPtr(749), SortField: models.SortByPrice},
			want:      []string{"Office Chair", "Oak Table"},
			wantTotal: 2,
		},
		{
			name:      "second page",
			query:     models.ProductQuery{Page: 2, Limit: 3},
			want:      []string{"Oak Table"},
			wantTotal: 4,
		},
		{
			name:      "search in name",
			query:     models.ProductQuery{Page: 1, Limit: 10, Search: "LAMP"},
			want:      []string{"Desk Lamp"},
			wantTotal: 1,
		},
		{
			name:      "search escapes wildcards",
			query:     models.ProductQuery{Page: 1, Limit: 10, Search: "%"},
			want:      []string{},
			wantTotal: 0,
		},
		{
			name:      "unknown sort field falls back to created_at",
			query:     models.ProductQuery{Page: 1, Limit: 2, SortField: "rating; DROP TABLE products"},
			want:      []string{"Desk Lamp", "linen sofa"},
			wantTotal: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, total, err := s.ListProducts(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.want, names(products))
		})
	}
}
