package models

import "time"

// Review отзыв пользователя о товаре
type Review struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Comment   string    `json:"comment"`
	// Заполняются JOIN с users при чтении
	AuthorUsername string `json:"author_username"`
	AuthorAvatar   string `json:"author_avatar"`
	Rating         int    `json:"rating"`
}
