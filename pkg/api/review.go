package api

import "time"

// ReviewAuthor краткая информация об авторе отзыва
type ReviewAuthor struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Review представляет отзыв о товаре
type Review struct {
	CreatedAt time.Time    `json:"created_at"`
	User      ReviewAuthor `json:"user"`
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	ProductID string       `json:"product_id"`
	Comment   string       `json:"comment"`
	Rating    int          `json:"rating"`
}

// ReviewsPage ответ GET /products/{id}/reviews
type ReviewsPage = Page[Review]

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

// UpdateReviewRequest запрос на изменение отзыва; nil поля не меняются
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}
