package models

import "time"

// Favorite связь пользователя и товара в избранном.
// Product заполняется только при чтении списка избранного.
type Favorite struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Product   *Product  `json:"product,omitempty"`
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
}
