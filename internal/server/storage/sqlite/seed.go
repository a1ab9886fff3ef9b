package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/storefront/internal/models"
)

// demoCatalog товары, которыми заполняется пустой каталог
var demoCatalog = []models.Product{
	{Name: "Oak Dining Table", VendorName: "Nordic Living", SeriesName: "Fjord", Price: 749, ItemQuantity: 5,
		ProductCode: "NL-FJ-001", Description: "Solid oak table for six with a natural oil finish."},
	{Name: "Linen Sofa", VendorName: "Nordic Living", SeriesName: "Fjord", Price: 1290, ItemQuantity: 2,
		ProductCode: "NL-FJ-014", Description: "Three-seat sofa with removable linen covers."},
	{Name: "Desk Lamp", VendorName: "Acme Lighting", SeriesName: "Arc", Price: 39.9, ItemQuantity: 40,
		ProductCode: "AL-ARC-02", Description: "Adjustable LED desk lamp with warm and cold modes."},
	{Name: "Floor Lamp", VendorName: "Acme Lighting", SeriesName: "Arc", Price: 129, ItemQuantity: 12,
		ProductCode: "AL-ARC-07", Description: "Tall arc floor lamp with a marble base."},
	{Name: "Office Chair", VendorName: "ErgoWorks", SeriesName: "Pro", Price: 319, ItemQuantity: 18,
		ProductCode: "EW-PRO-3", Description: "Ergonomic chair with lumbar support and mesh back."},
	{Name: "Standing Desk", VendorName: "ErgoWorks", SeriesName: "Pro", Price: 589, ItemQuantity: 7,
		ProductCode: "EW-PRO-9", Description: "Electric height-adjustable desk with memory presets."},
	{Name: "Wool Rug", VendorName: "Casa Textile", Price: 210, ItemQuantity: 9,
		ProductCode: "CT-RUG-5", Description: "Hand-woven wool rug, 160x230 cm."},
	{Name: "Bookshelf", VendorName: "Nordic Living", SeriesName: "Birch", Price: 189, ItemQuantity: 15,
		ProductCode: "NL-BI-020", Description: "Five-shelf birch bookcase."},
	{Name: "Ceramic Vase", VendorName: "Casa Textile", Price: 24.5, ItemQuantity: 60,
		ProductCode: "CT-VAS-1", Description: "Matte white ceramic vase."},
	{Name: "Pendant Light", VendorName: "Acme Lighting", SeriesName: "Dome", Price: 89, ItemQuantity: 22,
		ProductCode: "AL-DOM-1", Description: "Brushed brass pendant light for kitchen islands."},
}

// SeedCatalog заполняет каталог демонстрационными товарами, если он пуст.
// Возвращает количество добавленных товаров.
func (s *Storage) SeedCatalog(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	// Разносим created_at, чтобы сортировка по дате была детерминированной
	base := time.Now().UTC().Add(-time.Duration(len(demoCatalog)) * time.Hour)
	for i, p := range demoCatalog {
		product := p
		product.ID = uuid.New().String()
		product.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		product.MainImage = fmt.Sprintf("https://picsum.photos/seed/%s/600/600", product.ProductCode)
		product.Images = []string{product.MainImage}

		if err := s.CreateProduct(ctx, &product); err != nil {
			return i, fmt.Errorf("failed to seed product %q: %w", product.Name, err)
		}
	}

	return len(demoCatalog), nil
}
