package validation

import (
	"fmt"
	"strings"
)

const (
	// MinRating минимальная оценка отзыва
	MinRating = 1
	// MaxRating максимальная оценка отзыва
	MaxRating = 5
)

// ValidateRating проверяет, что оценка в диапазоне 1..5
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating must be between %d and %d, got %d", MinRating, MaxRating, rating)
	}
	return nil
}

// ValidateComment проверяет, что текст отзыва не пустой
func ValidateComment(comment string) error {
	if strings.TrimSpace(comment) == "" {
		return fmt.Errorf("comment cannot be empty")
	}
	return nil
}
