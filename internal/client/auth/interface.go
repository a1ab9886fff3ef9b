package auth

import (
	"context"

	"github.com/iudanet/storefront/internal/client/storage"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service defines the main interface for authentication operations.
// It manages both authentication (register/login) and the persisted session.
type Service interface {
	// Register регистрирует нового пользователя и сохраняет сессию
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*storage.Session, error)

	// Login выполняет аутентификацию пользователя и сохраняет сессию
	Login(ctx context.Context, email, password string) (*storage.Session, error)

	// CurrentUser запрашивает профиль пользователя текущей сессии
	CurrentUser(ctx context.Context) (*pkgapi.Profile, error)

	// Session возвращает сохраненную сессию
	// Возвращает storage.ErrSessionNotFound, если пользователь не авторизован
	Session(ctx context.Context) (*storage.Session, error)

	// IsAuthenticated checks if a valid session exists
	IsAuthenticated(ctx context.Context) (bool, error)

	// Logout удаляет локальную сессию
	Logout(ctx context.Context) error

	// Token отдает bearer token текущей сессии (api.TokenSource)
	Token(ctx context.Context) (string, error)
}
