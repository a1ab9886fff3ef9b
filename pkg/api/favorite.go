package api

import "time"

// Favorite представляет товар в избранном пользователя
type Favorite struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Product   Product   `json:"product"`
}

// ToggleStatus результат переключения избранного, определяется сервером
type ToggleStatus string

const (
	ToggleAdded   ToggleStatus = "added"
	ToggleRemoved ToggleStatus = "removed"
)

// ToggleResponse ответ POST /favorites/{productId}
type ToggleResponse struct {
	Status    ToggleStatus `json:"status"`
	ID        string       `json:"id,omitempty"`
	UserID    string       `json:"user_id,omitempty"`
	ProductID string       `json:"product_id,omitempty"`
	Message   string       `json:"message,omitempty"`
}
