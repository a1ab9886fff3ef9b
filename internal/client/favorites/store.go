// Package favorites keeps the client-side view of the user's favorite
// products in sync with the server.
//
// The list is never mutated before the server answers: a toggle only marks
// the product as pending, and the server decides whether it was added or
// removed. A failed toggle triggers a reload of the authoritative list.
package favorites

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	pkgapi "github.com/iudanet/storefront/pkg/api"
)

// PlaceholderID заменяет id/user_id, которые сервер не вернул при добавлении
const PlaceholderID = "temp"

// ErrTogglePending возвращается при повторном toggle товара, для которого
// предыдущий запрос еще не завершился
var ErrTogglePending = errors.New("favorite toggle already in progress")

//go:generate moq -out repository_mock.go . Repository

// Repository is the favorite part of the storefront API
type Repository interface {
	ListFavorites(ctx context.Context) ([]pkgapi.Favorite, error)
	ToggleFavorite(ctx context.Context, productID string) (*pkgapi.ToggleResponse, error)
}

// State is a point-in-time copy of the store
type State struct {
	Pending   map[string]bool
	Err       string
	Favorites []pkgapi.Favorite
	Loading   bool
}

// Option настраивает Store
type Option func(*Store)

// WithOnChange регистрирует функцию, вызываемую после каждого изменения состояния
func WithOnChange(fn func(State)) Option {
	return func(s *Store) {
		s.onChange = fn
	}
}

// WithClock подменяет источник времени для штампов createdAt/updatedAt
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store holds favorites, in-flight toggles and the last error.
// All state changes happen under mu and never across a network call.
type Store struct {
	repo     Repository
	logger   *slog.Logger
	onChange func(State)
	now      func() time.Time
	pending  map[string]bool
	err      string
	items    []pkgapi.Favorite
	loading  int
	mu       sync.Mutex
}

// NewStore creates a favorites store backed by repo
func NewStore(repo Repository, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		repo:    repo,
		logger:  logger,
		now:     time.Now,
		pending: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load заменяет список избранного ответом сервера.
// При ошибке список не меняется, сообщение сохраняется в Err.
func (s *Store) Load(ctx context.Context) error {
	s.update(func() {
		s.loading++
		s.err = ""
	})

	items, err := s.repo.ListFavorites(ctx)
	if err != nil {
		s.logger.Warn("Failed to load favorites", "error", err)
		s.update(func() {
			s.loading--
			s.err = errorMessage(err, "failed to fetch favorites")
		})
		return fmt.Errorf("load favorites: %w", err)
	}

	s.update(func() {
		s.loading--
		s.items = dedupe(items)
		s.err = ""
	})

	s.logger.Debug("Favorites loaded", "count", len(items))
	return nil
}

// Toggle переключает товар в избранном и ждет ответа сервера.
// Возвращает статус, выбранный сервером (added/removed).
// Если для product.ID уже есть незавершенный toggle, возвращается ErrTogglePending.
func (s *Store) Toggle(ctx context.Context, product pkgapi.Product) (pkgapi.ToggleStatus, error) {
	productID := product.ID
	if productID == "" {
		return "", fmt.Errorf("product id is required")
	}

	if !s.markPending(productID) {
		return "", ErrTogglePending
	}

	resp, err := s.repo.ToggleFavorite(ctx, productID)
	if err == nil && resp == nil {
		err = fmt.Errorf("empty toggle response")
	}
	if err == nil && resp.Status != pkgapi.ToggleAdded && resp.Status != pkgapi.ToggleRemoved {
		err = fmt.Errorf("unexpected toggle status %q", resp.Status)
	}

	if err != nil {
		s.logger.Warn("Failed to toggle favorite", "product_id", productID, "error", err)
		s.update(func() {
			delete(s.pending, productID)
			s.err = errorMessage(err, "failed to toggle favorite")
		})
		s.reconcile(ctx)
		return "", fmt.Errorf("toggle favorite %s: %w", productID, err)
	}

	s.update(func() {
		delete(s.pending, productID)
		s.items = removeProduct(s.items, productID)

		if resp.Status == pkgapi.ToggleAdded {
			now := s.now()
			s.items = append(s.items, pkgapi.Favorite{
				ID:        orPlaceholder(resp.ID),
				UserID:    orPlaceholder(resp.UserID),
				Product:   product,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
	})

	s.logger.Debug("Favorite toggled", "product_id", productID, "status", resp.Status)
	return resp.Status, nil
}

// markPending помечает товар как ожидающий ответа; false, если он уже помечен.
// Отклоненная попытка не меняет состояние и не вызывает onChange.
func (s *Store) markPending(productID string) bool {
	s.mu.Lock()
	if s.pending[productID] {
		s.mu.Unlock()
		return false
	}
	s.pending[productID] = true
	var snap State
	if s.onChange != nil {
		snap = s.snapshotLocked()
	}
	s.mu.Unlock()

	if s.onChange != nil {
		s.onChange(snap)
	}
	return true
}

// reconcile перезагружает список после неудачного toggle.
// Ошибка перезагрузки только логируется.
func (s *Store) reconcile(ctx context.Context) {
	items, err := s.repo.ListFavorites(ctx)
	if err != nil {
		s.logger.Warn("Failed to reload favorites after toggle error", "error", err)
		return
	}

	s.update(func() {
		s.items = dedupe(items)
	})
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// IsFavorite reports whether productID is in the list
func (s *Store) IsFavorite(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

// IsPending reports whether a toggle for productID is in flight
func (s *Store) IsPending(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[productID]
}

// Err returns the last error message, empty if none
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// update применяет fn под мьютексом и уведомляет подписчика снимком состояния
func (s *Store) update(fn func()) {
	s.mu.Lock()
	fn()
	var snap State
	if s.onChange != nil {
		snap = s.snapshotLocked()
	}
	s.mu.Unlock()

	if s.onChange != nil {
		s.onChange(snap)
	}
}

func (s *Store) snapshotLocked() State {
	pending := make(map[string]bool, len(s.pending))
	for id, v := range s.pending {
		pending[id] = v
	}

	var items []pkgapi.Favorite
	if len(s.items) > 0 {
		items = make([]pkgapi.Favorite, len(s.items))
		copy(items, s.items)
	}

	return State{
		Favorites: items,
		Pending:   pending,
		Err:       s.err,
		Loading:   s.loading > 0,
	}
}

// removeProduct удаляет все записи с указанным product id
func removeProduct(items []pkgapi.Favorite, productID string) []pkgapi.Favorite {
	result := items[:0:0]
	for _, item := range items {
		if item.Product.ID != productID {
			result = append(result, item)
		}
	}
	return result
}

// dedupe оставляет первую запись для каждого product id
func dedupe(items []pkgapi.Favorite) []pkgapi.Favorite {
	seen := make(map[string]struct{}, len(items))
	result := make([]pkgapi.Favorite, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.Product.ID]; ok {
			continue
		}
		seen[item.Product.ID] = struct{}{}
		result = append(result, item)
	}
	return result
}

func orPlaceholder(v string) string {
	if v == "" {
		return PlaceholderID
	}
	return v
}

func errorMessage(err error, fallback string) string {
	var apiErr *pkgapi.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
