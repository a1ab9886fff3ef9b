package models

import "time"

// Product товар каталога
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

// Допустимые поля сортировки каталога
const (
	SortByPrice     = "price"
	SortByName      = "name"
	SortByCreatedAt = "created_at"
)

// ProductQuery параметры выборки каталога.
// Page и Limit начинаются с 1; нулевые значения заменяются значениями по умолчанию.
type ProductQuery struct {
	MinPrice   *float64
	MaxPrice   *float64
	Search     string
	VendorName string
	SortField  string
	SortDesc   bool
	Page       int
	Limit      int
}

// Offset возвращает смещение для SQL выборки
func (q ProductQuery) Offset() int {
	if q.Page <= 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}
