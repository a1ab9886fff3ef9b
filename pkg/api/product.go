package api

import "time"

// Product представляет товар каталога
type Product struct {
	CreatedAt    time.Time `json:"created_at"`
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	VendorName   string    `json:"vendor_name"`
	SeriesName   string    `json:"series_name"`
	Description  string    `json:"description"`
	MainImage    string    `json:"main_image"`
	ProductCode  string    `json:"product_code"`
	Images       []string  `json:"images"`
	Price        float64   `json:"price"`
	ItemQuantity int       `json:"item_quantity"`
}

// Page is a paginated slice of items as returned by list endpoints.
type Page[T any] struct {
	Items           []T  `json:"items"`
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// ProductsPage ответ GET /products
type ProductsPage = Page[Product]

// ProductFilters параметры запроса GET /products
type ProductFilters struct {
	MinPrice   *float64
	MaxPrice   *float64
	SortField  string
	SortOrder  string
	VendorName string
	Page       int
	Limit      int
}
