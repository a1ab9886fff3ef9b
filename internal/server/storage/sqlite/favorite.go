package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/storefront/internal/models"
	"github.com/iudanet/storefront/internal/server/storage"
)

// ToggleFavorite добавляет товар в избранное или удаляет его оттуда.
// Проверка и изменение выполняются в одной транзакции, поэтому
// повторный toggle всегда видит результат предыдущего.
func (s *Storage) ToggleFavorite(ctx context.Context, userID, productID string) (*models.Favorite, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM products WHERE id = ?`, productID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, storage.ErrProductNotFound
		}
		return nil, false, fmt.Errorf("failed to check product: %w", err)
	}

	fav := &models.Favorite{}
	err = tx.QueryRowContext(ctx, `
		SELECT id, user_id, product_id, created_at, updated_at
		FROM favorites
		WHERE user_id = ? AND product_id = ?
	`, userID, productID).Scan(&fav.ID, &fav.UserID, &fav.ProductID, &fav.CreatedAt, &fav.UpdatedAt)

	added := false
	switch {
	case err == nil:
		if _, err := tx.ExecContext(ctx, `DELETE FROM favorites WHERE id = ?`, fav.ID); err != nil {
			return nil, false, fmt.Errorf("failed to delete favorite: %w", err)
		}
	case errors.Is(err, sql.ErrNoRows):
		now := time.Now().UTC()
		fav = &models.Favorite{
			ID:        uuid.New().String(),
			UserID:    userID,
			ProductID: productID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO favorites (id, user_id, product_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`, fav.ID, fav.UserID, fav.ProductID, fav.CreatedAt, fav.UpdatedAt); err != nil {
			return nil, false, fmt.Errorf("failed to insert favorite: %w", err)
		}
		added = true
	default:
		return nil, false, fmt.Errorf("failed to get favorite: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return fav, added, nil
}

// ListFavorites returns user's favorites with products, newest first
func (s *Storage) ListFavorites(ctx context.Context, userID string) ([]*models.Favorite, error) {
	query := `
		SELECT ` + productColumns + `, f.id, f.user_id, f.created_at, f.updated_at
		FROM favorites f
		JOIN products p ON p.id = f.product_id
		WHERE f.user_id = ?
		ORDER BY f.created_at DESC, f.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	favorites := make([]*models.Favorite, 0)
	for rows.Next() {
		fav := &models.Favorite{}
		product, err := scanProduct(rows, &fav.ID, &fav.UserID, &fav.CreatedAt, &fav.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		fav.ProductID = product.ID
		fav.Product = product
		favorites = append(favorites, fav)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorites: %w", err)
	}

	return favorites, nil
}
