package storage

import (
	"context"

	"github.com/iudanet/storefront/internal/models"
)

//go:generate moq -out favorite_mock.go . FavoriteStorage

// FavoriteStorage defines interface for favorites persistence
type FavoriteStorage interface {
	// ToggleFavorite adds the product to user's favorites if it is absent
	// and removes it otherwise, in one transaction.
	// Returns the favorite and true when it was added, the removed favorite
	// and false when it was removed. Returns ErrProductNotFound for unknown product.
	ToggleFavorite(ctx context.Context, userID, productID string) (*models.Favorite, bool, error)

	// ListFavorites returns user's favorites with products, newest first
	ListFavorites(ctx context.Context, userID string) ([]*models.Favorite, error)
}
