package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/storefront/internal/models"
	"github.com/iudanet/storefront/internal/server/storage"
)

const reviewSelect = `
	SELECT r.id, r.user_id, r.product_id, r.rating, r.comment, r.created_at, r.updated_at,
		u.username, u.avatar_url
	FROM reviews r
	JOIN users u ON u.id = r.user_id
`

// CreateReview stores a new review
func (s *Storage) CreateReview(ctx context.Context, review *models.Review) error {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM products WHERE id = ?`, review.ProductID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrProductNotFound
		}
		return fmt.Errorf("failed to check product: %w", err)
	}

	query := `
		INSERT INTO reviews (id, user_id, product_id, rating, comment, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		review.ID,
		review.UserID,
		review.ProductID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
		review.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}

	return nil
}

// GetReview retrieves review by ID
func (s *Storage) GetReview(ctx context.Context, id string) (*models.Review, error) {
	review, err := scanReview(s.db.QueryRowContext(ctx, reviewSelect+` WHERE r.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return review, nil
}

// ListReviews returns one page of product reviews, newest first
func (s *Storage) ListReviews(ctx context.Context, productID string, page, limit int) ([]*models.Review, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reviews WHERE product_id = ?`, productID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	offset := 0
	if page > 1 {
		offset = (page - 1) * limit
	}

	query := reviewSelect + `
		WHERE r.product_id = ?
		ORDER BY r.created_at DESC, r.id ASC
		LIMIT ? OFFSET ?
	`

	rows, err := s.db.QueryContext(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]*models.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, total, nil
}

// UpdateReview updates rating and comment
func (s *Storage) UpdateReview(ctx context.Context, review *models.Review) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE reviews SET rating = ?, comment = ?, updated_at = ?
		WHERE id = ?
	`, review.Rating, review.Comment, review.UpdatedAt, review.ID)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrReviewNotFound
	}

	return nil
}

// DeleteReview deletes review by ID
func (s *Storage) DeleteReview(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrReviewNotFound
	}

	return nil
}

func scanReview(row rowScanner) (*models.Review, error) {
	review := &models.Review{}
	err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.ProductID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
		&review.AuthorUsername,
		&review.AuthorAvatar,
	)
	if err != nil {
		return nil, err
	}
	return review, nil
}
