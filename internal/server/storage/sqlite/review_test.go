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

func newReview(userID, productID string, rating int, createdAt time.Time) *models.Review {
	return &models.Review{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Comment:   "comment",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestReviewStorage_CreateGetList(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s)
	product := createTestProduct(t, ctx, s, "Chair", "ErgoWorks", 319, time.Now().UTC())
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	first := newReview(user.ID, product.ID, 4, base)
	second := newReview(user.ID, product.ID, 2, base.Add(time.Hour))
	third := newReview(user.ID, product.ID, 5, base.Add(2*time.Hour))
	for _, r := range []*models.Review{first, second, third} {
		require.NoError(t, s.CreateReview(ctx, r))
	}

	got, err := s.GetReview(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, user.Username, got.AuthorUsername)

	// Новые отзывы первыми
	page, total, err := s.ListReviews(ctx, product.ID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, third.ID, page[0].ID)
	assert.Equal(t, second.ID, page[1].ID)

	page, _, err = s.ListReviews(ctx, product.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, first.ID, page[0].ID)
}

func TestReviewStorage_CreateUnknownProduct(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s)

	err := s.CreateReview(ctx, newReview(user.ID, "missing", 5, time.Now().UTC()))
	assert.ErrorIs(t, err, storage.ErrProductNotFound)
}

func TestReviewStorage_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s)
	product := createTestProduct(t, ctx, s, "Chair", "ErgoWorks", 319, time.Now().UTC())
	review := newReview(user.ID, product.ID, 3, time.Now().UTC())
	require.NoError(t, s.CreateReview(ctx, review))

	review.Rating = 1
	review.Comment = "broke after a week"
	review.UpdatedAt = time.Now().UTC()
	require.NoError(t, s.UpdateReview(ctx, review))

	got, err := s.GetReview(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Rating)
	assert.Equal(t, "broke after a week", got.Comment)

	require.NoError(t, s.DeleteReview(ctx, review.ID))

	_, err = s.GetReview(ctx, review.ID)
	assert.ErrorIs(t, err, storage.ErrReviewNotFound)
	assert.ErrorIs(t, s.DeleteReview(ctx, review.ID), storage.ErrReviewNotFound)
	assert.ErrorIs(t, s.UpdateReview(ctx, review), storage.ErrReviewNotFound)
}

func TestReviewStorage_RatingConstraint(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s)
	product := createTestProduct(t, ctx, s, "Chair", "ErgoWorks", 319, time.Now().UTC())

	assert.Error(t, s.CreateReview(ctx, newReview(user.ID, product.ID, 6, time.Now().UTC())))
}
