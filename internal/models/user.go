package models

import "time"

// User представляет пользователя в системе
type User struct {
	CreatedAt    time.Time `json:"created_at"`    // время создания
	UpdatedAt    time.Time `json:"updated_at"`    // время последнего обновления
	ID           string    `json:"id"`            // UUID пользователя
	Email        string    `json:"email"`         // уникальный email, используется для входа
	Username     string    `json:"username"`      // уникальный username
	FullName     string    `json:"full_name"`     // отображаемое имя
	AvatarURL    string    `json:"avatar_url"`    // ссылка на аватар, может быть пустой
	PasswordHash string    `json:"password_hash"` // bcrypt хеш пароля
}

// UserActivity счетчики для профиля
type UserActivity struct {
	FavoritesCount int
	ReviewsCount   int
}
