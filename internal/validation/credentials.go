package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username, столько помещается в карточку отзыва
	MaxUsernameLen = 30
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 6
)

// UsernamePattern: латиница, цифры, '_', '.', '-'; первый символ буква или цифра
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// ValidateUsername проверяет username, под которым пользователь виден в отзывах
func ValidateUsername(username string) error {
	switch {
	case username == "":
		return fmt.Errorf("username cannot be empty")
	case len(username) < MinUsernameLen:
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	case len(username) > MaxUsernameLen:
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	case !UsernamePattern.MatchString(username):
		return fmt.Errorf("username must start with a letter or digit and contain only letters, digits, '_', '.' or '-'")
	}
	return nil
}

// ValidatePassword проверяет минимальные требования к паролю.
// Пароль не тримится: пробелы по краям считаются его частью.
func ValidatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len([]rune(password)) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	for _, r := range password {
		if unicode.IsControl(r) {
			return fmt.Errorf("password must not contain control characters")
		}
	}

	return nil
}
