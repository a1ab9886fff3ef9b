package cli

import (
	"context"
	"fmt"

	pkgapi "github.com/iudanet/storefront/pkg/api"
)

func (c *Cli) runProducts(ctx context.Context, args []string) error {
	fs := c.newFlagSet("products")
	page := fs.Int("page", 1, "Page number")
	limit := fs.Int("limit", 20, "Items per page")
	sortField := fs.String("sort", "", "Sort field: price, name or created_at")
	sortOrder := fs.String("order", "", "Sort order: asc or desc")
	vendor := fs.String("vendor", "", "Vendor name")
	minPrice := fs.String("min", "", "Minimum price")
	maxPrice := fs.String("max", "", "Maximum price")

	if err := fs.Parse(args); err != nil {
		return err
	}

	filters := pkgapi.ProductFilters{
		Page:       *page,
		Limit:      *limit,
		VendorName: *vendor,
	}

	field, err := parseSortField(*sortField)
	if err != nil {
		return err
	}
	order, err := parseSortOrder(*sortOrder)
	if err != nil {
		return err
	}
	filters.SortField = string(field)
	filters.SortOrder = string(order)

	if filters.MinPrice, err = parsePrice("min", *minPrice); err != nil {
		return err
	}
	if filters.MaxPrice, err = parsePrice("max", *maxPrice); err != nil {
		return err
	}

	result, err := c.products.List(ctx, filters)
	if err != nil {
		return err
	}

	c.io.Println("=== Products ===")
	c.io.Println()

	if len(result.Items) == 0 {
		c.io.Println("No products found.")
		return nil
	}

	c.printProducts(result.Items)

	c.io.Println()
	c.io.Printf("Page %d of %d (%d products total)\n", result.Page, result.TotalPages, result.Total)
	if result.HasNextPage {
		c.io.Printf("Next page: storefront products --page %d\n", result.Page+1)
	}

	return nil
}

// printProducts печатает товары по одному в строке
func (c *Cli) printProducts(items []pkgapi.Product) {
	for i, p := range items {
		c.io.Printf("%d. %s\n", i+1, p.Name)
		c.io.Printf("   ID:     %s\n", p.ID)
		c.io.Printf("   Vendor: %s\n", p.VendorName)
		c.io.Printf("   Price:  %s\n", formatPrice(p.Price))
		if i < len(items)-1 {
			c.io.Println()
		}
	}
}

// productLine короткое описание товара для сообщений
func productLine(p pkgapi.Product) string {
	return fmt.Sprintf("%s (%s, %s)", p.Name, p.VendorName, formatPrice(p.Price))
}
