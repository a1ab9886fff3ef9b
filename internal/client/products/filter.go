package products

import (
	"sort"
	"strings"

	"github.com/iudanet/storefront/internal/client/storage"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

// Apply фильтрует и сортирует товары локально, исходный срез не меняется.
//
// Vendor сравнивается по вхождению подстроки без учета регистра, границы цены
// включительные. Сортировка стабильная, без SortField порядок сервера сохраняется.
func Apply(items []pkgapi.Product, filters storage.SearchFilters) []pkgapi.Product {
	vendor := strings.ToLower(strings.TrimSpace(filters.VendorName))

	result := make([]pkgapi.Product, 0, len(items))
	for _, p := range items {
		if vendor != "" && !strings.Contains(strings.ToLower(p.VendorName), vendor) {
			continue
		}
		if filters.MinPrice != nil && p.Price < *filters.MinPrice {
			continue
		}
		if filters.MaxPrice != nil && p.Price > *filters.MaxPrice {
			continue
		}
		result = append(result, p)
	}

	less := lessFunc(filters.SortField)
	if less == nil {
		return result
	}

	desc := filters.SortOrder == storage.SortDesc
	sort.SliceStable(result, func(i, j int) bool {
		if desc {
			return less(result[j], result[i])
		}
		return less(result[i], result[j])
	})
	return result
}

func lessFunc(field storage.SortField) func(a, b pkgapi.Product) bool {
	switch field {
	case storage.SortByPrice:
		return func(a, b pkgapi.Product) bool { return a.Price < b.Price }
	case storage.SortByName:
		return func(a, b pkgapi.Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case storage.SortByCreatedAt:
		return func(a, b pkgapi.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return nil
	}
}
