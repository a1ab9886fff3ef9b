package storage

import (
	"context"
	"time"

	pkgapi "github.com/iudanet/storefront/pkg/api"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines interface for storing the client session.
// Сессия это bearer token и пользователь, вернувшиеся после login/register.
type SessionStorage interface {
	// SaveSession stores the session, replacing any previous one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (logout)
	// Returns ErrSessionNotFound if no session exists
	DeleteSession(ctx context.Context) error

	// IsAuthenticated checks if a non-expired session exists
	IsAuthenticated(ctx context.Context) (bool, error)
}

// Session represents authentication information in storage
type Session struct {
	ExpiresAt time.Time   `json:"expires_at"`
	User      pkgapi.User `json:"user"`
	Token     string      `json:"token"`
}

// Expired reports whether the token is past its expiry at the given moment.
// Zero ExpiresAt means the expiry is unknown and the session is kept.
func (s *Session) Expired(now time.Time) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(s.ExpiresAt)
}
