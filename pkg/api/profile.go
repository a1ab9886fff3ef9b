package api

// Profile представляет профиль текущего пользователя
type Profile struct {
	User
	FavoritesCount int `json:"favorites_count"`
	ReviewsCount   int `json:"reviews_count"`
}

// ProfileUpdateRequest запрос PUT /users/{id}
type ProfileUpdateRequest struct {
	FullName  *string `json:"full_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}
