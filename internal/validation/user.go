package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// EmailPattern упрощенная проверка формата email: local@domain.tld без пробелов
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail проверяет формат email
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email %q is not a valid address", email)
	}

	return nil
}

// ValidateFullName проверяет, что имя пользователя задано
func ValidateFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return fmt.Errorf("full name cannot be empty")
	}
	return nil
}

// ValidateAvatarURL проверяет ссылку на аватар; пустая строка означает "без аватара"
func ValidateAvatarURL(avatarURL string) error {
	if avatarURL == "" {
		return nil
	}

	u, err := url.Parse(avatarURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("avatar url %q must be an absolute http(s) URL", avatarURL)
	}

	return nil
}
