package storage

import "context"

// SortField поле сортировки результатов поиска
type SortField string

const (
	SortByPrice     SortField = "price"
	SortByName      SortField = "name"
	SortByCreatedAt SortField = "created_at"
)

// SortOrder направление сортировки
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SearchFilters локальные фильтры результатов поиска
type SearchFilters struct {
	MinPrice   *float64  `json:"min_price,omitempty"`
	MaxPrice   *float64  `json:"max_price,omitempty"`
	VendorName string    `json:"vendor_name,omitempty"`
	SortField  SortField `json:"sort_field,omitempty"`
	SortOrder  SortOrder `json:"sort_order,omitempty"`
}

// IsZero reports whether no filter or sort is set
func (f SearchFilters) IsZero() bool {
	return f.MinPrice == nil && f.MaxPrice == nil && f.VendorName == "" && f.SortField == "" && f.SortOrder == ""
}

//go:generate moq -out filters_mock.go . FilterStorage

// FilterStorage defines interface for persisting the last applied search filters
type FilterStorage interface {
	// SaveSearchFilters stores filters, replacing previous ones
	SaveSearchFilters(ctx context.Context, filters SearchFilters) error

	// GetSearchFilters returns saved filters or zero value if none were saved
	GetSearchFilters(ctx context.Context) (SearchFilters, error)
}
