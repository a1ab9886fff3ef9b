package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/storefront/internal/models"
	"github.com/iudanet/storefront/internal/server/storage"
)

const productColumns = `p.id, p.name, p.vendor_name, p.series_name, p.description, p.main_image,
	p.product_code, p.images, p.price, p.item_quantity, p.created_at`

// sortColumns белый список колонок для ORDER BY
var sortColumns = map[string]string{
	models.SortByPrice:     "p.price",
	models.SortByName:      "p.name COLLATE NOCASE",
	models.SortByCreatedAt: "p.created_at",
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// CreateProduct adds a product to the catalog
func (s *Storage) CreateProduct(ctx context.Context, product *models.Product) error {
	images := product.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return fmt.Errorf("failed to marshal images: %w", err)
	}

	query := `
		INSERT INTO products (id, name, vendor_name, series_name, description, main_image,
			product_code, images, price, item_quantity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.VendorName,
		product.SeriesName,
		product.Description,
		product.MainImage,
		product.ProductCode,
		string(imagesJSON),
		product.Price,
		product.ItemQuantity,
		product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}

// GetProduct retrieves product by ID
func (s *Storage) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = ?`

	product, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// ListProducts returns one page of products matching the query
func (s *Storage) ListProducts(ctx context.Context, q models.ProductQuery) ([]*models.Product, int, error) {
	var (
		where []string
		args  []any
	)

	if search := strings.TrimSpace(q.Search); search != "" {
		where = append(where, `(p.name LIKE ? ESCAPE '\' OR p.description LIKE ? ESCAPE '\' OR p.vendor_name LIKE ? ESCAPE '\')`)
		pattern := likePattern(search)
		args = append(args, pattern, pattern, pattern)
	}
	if vendor := strings.TrimSpace(q.VendorName); vendor != "" {
		where = append(where, `p.vendor_name LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(vendor))
	}
	if q.MinPrice != nil {
		where = append(where, `p.price >= ?`)
		args = append(args, *q.MinPrice)
	}
	if q.MaxPrice != nil {
		where = append(where, `p.price <= ?`)
		args = append(args, *q.MaxPrice)
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM products p` + whereClause
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	column, ok := sortColumns[q.SortField]
	if !ok {
		column = sortColumns[models.SortByCreatedAt]
	}
	direction := "ASC"
	if q.SortDesc {
		direction = "DESC"
	}

	query := `SELECT ` + productColumns + ` FROM products p` + whereClause +
		` ORDER BY ` + column + ` ` + direction + `, p.id ASC LIMIT ? OFFSET ?`
	args = append(args, q.Limit, q.Offset())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]*models.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating products: %w", err)
	}

	return products, total, nil
}

func scanProduct(row rowScanner, extra ...any) (*models.Product, error) {
	product := &models.Product{}
	var imagesJSON string

	dest := []any{
		&product.ID,
		&product.Name,
		&product.VendorName,
		&product.SeriesName,
		&product.Description,
		&product.MainImage,
		&product.ProductCode,
		&imagesJSON,
		&product.Price,
		&product.ItemQuantity,
		&product.CreatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(imagesJSON), &product.Images); err != nil {
		return nil, fmt.Errorf("failed to unmarshal images: %w", err)
	}

	return product, nil
}
