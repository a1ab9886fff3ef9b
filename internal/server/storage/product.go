package storage

import (
	"context"

	"github.com/iudanet/storefront/internal/models"
)

//go:generate moq -out product_mock.go . ProductStorage

// ProductStorage defines interface for catalog access
type ProductStorage interface {
	// CreateProduct adds a product to the catalog
	CreateProduct(ctx context.Context, product *models.Product) error

	// GetProduct retrieves product by ID
	// Returns ErrProductNotFound if product doesn't exist
	GetProduct(ctx context.Context, id string) (*models.Product, error)

	// ListProducts returns one page of products matching the query
	// and the total number of matching products
	ListProducts(ctx context.Context, query models.ProductQuery) ([]*models.Product, int, error)
}
