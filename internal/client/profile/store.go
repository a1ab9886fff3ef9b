// Package profile holds the current user's profile together with the
// loading flag and the last error of the profile requests.
package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/iudanet/storefront/internal/client/api"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

// State снимок состояния профиля
type State struct {
	Data    *pkgapi.Profile
	Err     string
	Loading bool
}

// Store загружает и обновляет профиль
type Store struct {
	apiClient api.ClientAPI
	logger    *slog.Logger
	data      *pkgapi.Profile
	err       string
	loading   bool
	mu        sync.Mutex
}

// NewStore создает хранилище профиля
func NewStore(apiClient api.ClientAPI, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{apiClient: apiClient, logger: logger}
}

// Fetch загружает профиль текущего пользователя
func (s *Store) Fetch(ctx context.Context) (*pkgapi.Profile, error) {
	s.begin()

	profile, err := s.apiClient.CurrentUser(ctx)
	if err != nil {
		s.fail(err, "failed to fetch profile")
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	s.succeed(profile)
	return profile, nil
}

// Update изменяет full name и/или avatar URL пользователя userID
func (s *Store) Update(ctx context.Context, userID string, req pkgapi.ProfileUpdateRequest) (*pkgapi.Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if req.FullName == nil && req.AvatarURL == nil {
		return nil, fmt.Errorf("nothing to update")
	}
	if req.FullName != nil && strings.TrimSpace(*req.FullName) == "" {
		return nil, fmt.Errorf("full name cannot be empty")
	}

	s.begin()

	profile, err := s.apiClient.UpdateProfile(ctx, userID, req)
	if err != nil {
		s.fail(err, "failed to update profile")
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.succeed(profile)
	return profile, nil
}

// State returns a copy of the current state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := State{Err: s.err, Loading: s.loading}
	if s.data != nil {
		cp := *s.data
		state.Data = &cp
	}
	return state
}

func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Store) succeed(profile *pkgapi.Profile) {
	s.mu.Lock()
	s.loading = false
	s.data = profile
	s.mu.Unlock()
}

func (s *Store) fail(err error, fallback string) {
	s.logger.Warn(fallback, "error", err)

	msg := err.Error()
	if msg == "" {
		msg = fallback
	}
	var apiErr *pkgapi.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		msg = apiErr.Message
	}

	s.mu.Lock()
	s.loading = false
	s.err = msg
	s.mu.Unlock()
}
