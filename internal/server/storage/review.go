package storage

import (
	"context"

	"github.com/iudanet/storefront/internal/models"
)

//go:generate moq -out review_mock.go . ReviewStorage

// ReviewStorage defines interface for product reviews persistence
type ReviewStorage interface {
	// CreateReview stores a new review
	// Returns ErrProductNotFound if product doesn't exist
	CreateReview(ctx context.Context, review *models.Review) error

	// GetReview retrieves review by ID with author info
	// Returns ErrReviewNotFound if review doesn't exist
	GetReview(ctx context.Context, id string) (*models.Review, error)

	// ListReviews returns one page of product reviews, newest first,
	// and the total number of reviews for the product
	ListReviews(ctx context.Context, productID string, page, limit int) ([]*models.Review, int, error)

	// UpdateReview updates rating and comment
	// Returns ErrReviewNotFound if review doesn't exist
	UpdateReview(ctx context.Context, review *models.Review) error

	// DeleteReview deletes review by ID
	// Returns ErrReviewNotFound if review doesn't exist
	DeleteReview(ctx context.Context, id string) error
}
