package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/iudanet/storefront/internal/client/api"
	"github.com/iudanet/storefront/internal/client/storage"
	"github.com/iudanet/storefront/internal/validation"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

// DefaultSessionTTL время жизни сессии, если из токена не удалось достать exp
const DefaultSessionTTL = 24 * time.Hour

// AuthService implements Service on top of the API client and session storage
type AuthService struct {
	apiClient api.ClientAPI
	sessions  storage.SessionStorage
	logger    *slog.Logger
	now       func() time.Time
}

// Compile-time checks
var (
	_ Service         = (*AuthService)(nil)
	_ api.TokenSource = (*AuthService)(nil)
)

// NewService создает новый сервис авторизации
func NewService(apiClient api.ClientAPI, sessions storage.SessionStorage, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		apiClient: apiClient,
		sessions:  sessions,
		logger:    logger,
		now:       time.Now,
	}
}

// Register регистрирует нового пользователя
func (s *AuthService) Register(ctx context.Context, req pkgapi.RegisterRequest) (*storage.Session, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)

	// Валидация входных данных
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidateUsername(req.Username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}
	if err := validation.ValidateFullName(req.FullName); err != nil {
		return nil, fmt.Errorf("invalid full name: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return s.saveSession(ctx, resp)
}

// Login выполняет аутентификацию пользователя
func (s *AuthService) Login(ctx context.Context, email, password string) (*storage.Session, error) {
	email = strings.TrimSpace(email)

	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if password == "" {
		return nil, fmt.Errorf("invalid password: password cannot be empty")
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return s.saveSession(ctx, resp)
}

// CurrentUser запрашивает профиль и обновляет пользователя в сохраненной сессии
func (s *AuthService) CurrentUser(ctx context.Context) (*pkgapi.Profile, error) {
	session, err := s.Session(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.apiClient.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	session.User = profile.User
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		// Профиль уже получен, устаревший кэш пользователя не критичен
		s.logger.Warn("failed to refresh stored user", "error", err)
	}

	return profile, nil
}

// Session возвращает сохраненную сессию
func (s *AuthService) Session(ctx context.Context) (*storage.Session, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// IsAuthenticated checks if a valid session exists
func (s *AuthService) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.sessions.IsAuthenticated(ctx)
}

// Logout удаляет локальную сессию. Отсутствие сессии не считается ошибкой.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.DeleteSession(ctx); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			s.logger.Debug("no session found during logout")
			return nil
		}
		return fmt.Errorf("failed to delete local session: %w", err)
	}
	return nil
}

// Token returns the bearer token of a non-expired session.
// Без сессии возвращается пустая строка, запрос уходит без авторизации.
func (s *AuthService) Token(ctx context.Context) (string, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}

	if session.Expired(s.now()) {
		s.logger.Debug("session expired", "expires_at", session.ExpiresAt)
		return "", nil
	}

	return session.Token, nil
}

func (s *AuthService) saveSession(ctx context.Context, resp *pkgapi.AuthResponse) (*storage.Session, error) {
	if resp.Token == "" {
		return nil, fmt.Errorf("server returned empty token")
	}

	session := &storage.Session{
		Token:     resp.Token,
		User:      resp.User,
		ExpiresAt: s.tokenExpiry(resp.Token),
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Debug("session saved", "user_id", session.User.ID, "expires_at", session.ExpiresAt)
	return session, nil
}

// tokenExpiry достает exp из JWT без проверки подписи.
// Секрет известен только серверу, клиенту нужен лишь срок жизни.
func (s *AuthService) tokenExpiry(token string) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err == nil && claims.ExpiresAt != nil {
		return claims.ExpiresAt.Time
	}
	return s.now().Add(DefaultSessionTTL)
}
