package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/iudanet/storefront/internal/client/storage"
)

func (c *Cli) runSearch(ctx context.Context, args []string) error {
	fs := c.newFlagSet("search")
	vendor := fs.String("vendor", "", "Vendor name substring")
	minPrice := fs.String("min", "", "Minimum price")
	maxPrice := fs.String("max", "", "Maximum price")
	sortField := fs.String("sort", "", "Sort field: price, name or created_at")
	sortOrder := fs.String("order", "", "Sort order: asc or desc")
	reset := fs.Bool("reset", false, "Forget saved filters")

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	query := strings.Join(positional, " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("missing search query. Usage: storefront search <query> [flags]")
	}

	if err := c.search.Restore(ctx); err != nil {
		return err
	}

	// Сохраненные фильтры меняются только явно заданными флагами
	filters := c.search.State().Filters
	if *reset {
		filters = storage.SearchFilters{}
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	if set["vendor"] {
		filters.VendorName = strings.TrimSpace(*vendor)
	}
	if set["min"] {
		if filters.MinPrice, err = parsePrice("min", *minPrice); err != nil {
			return err
		}
	}
	if set["max"] {
		if filters.MaxPrice, err = parsePrice("max", *maxPrice); err != nil {
			return err
		}
	}
	if set["sort"] {
		if filters.SortField, err = parseSortField(*sortField); err != nil {
			return err
		}
	}
	if set["order"] {
		if filters.SortOrder, err = parseSortOrder(*sortOrder); err != nil {
			return err
		}
	}
	if filters.MinPrice != nil && filters.MaxPrice != nil && *filters.MinPrice > *filters.MaxPrice {
		return fmt.Errorf("--min must not exceed --max")
	}

	c.search.SetQuery(query)
	if len(set) > 0 {
		// SetFilters сразу выполняет поиск, не дожидаясь debounce
		if err := c.search.SetFilters(ctx, filters); err != nil {
			return err
		}
	}
	c.search.Wait()

	state := c.search.State()
	if state.Err != "" {
		return fmt.Errorf("search failed: %s", state.Err)
	}

	c.io.Printf("=== Search: %q ===\n", query)
	if !state.Filters.IsZero() {
		c.io.Printf("Filters: %s\n", describeFilters(state.Filters))
	}
	c.io.Println()

	if len(state.Results) == 0 {
		c.io.Println("No products found.")
		return nil
	}

	c.printProducts(state.Results)
	c.io.Println()
	c.io.Printf("Found %d product(s)\n", len(state.Results))
	return nil
}

func describeFilters(f storage.SearchFilters) string {
	var parts []string
	if f.VendorName != "" {
		parts = append(parts, "vendor~"+f.VendorName)
	}
	if f.MinPrice != nil {
		parts = append(parts, "price>="+formatPrice(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		parts = append(parts, "price<="+formatPrice(*f.MaxPrice))
	}
	if f.SortField != "" {
		order := f.SortOrder
		if order == "" {
			order = storage.SortAsc
		}
		parts = append(parts, fmt.Sprintf("sort=%s %s", f.SortField, order))
	}
	return strings.Join(parts, ", ")
}
