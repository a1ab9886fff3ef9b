// Package search implements search-as-you-type: the query is debounced,
// answers for outdated queries are dropped and the fetched results are
// filtered and sorted locally.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/storefront/internal/client/products"
	"github.com/iudanet/storefront/internal/client/storage"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

// DefaultDebounce пауза после последнего ввода перед запросом
const DefaultDebounce = 500 * time.Millisecond

//go:generate moq -out searcher_mock.go . Searcher

// Searcher выполняет поиск на сервере (products.Service)
type Searcher interface {
	Search(ctx context.Context, query string) ([]pkgapi.Product, error)
}

// State снимок сессии поиска; Results уже отфильтрованы и отсортированы
type State struct {
	Query   string
	Err     string
	Results []pkgapi.Product
	Filters storage.SearchFilters
	Loading bool
}

// Option настраивает Session
type Option func(*Session)

// WithDebounce переопределяет паузу debounce
func WithDebounce(d time.Duration) Option {
	return func(s *Session) {
		if d >= 0 {
			s.debounce = d
		}
	}
}

// WithOnChange регистрирует функцию, вызываемую после каждого изменения состояния
func WithOnChange(fn func(State)) Option {
	return func(s *Session) {
		s.onChange = fn
	}
}

// Session хранит запрос, фильтры и результаты поиска
type Session struct {
	searcher Searcher
	prefs    storage.FilterStorage
	logger   *slog.Logger
	onChange func(State)
	ctx      context.Context
	cancel   context.CancelFunc
	timer    *time.Timer
	query    string
	err      string
	results  []pkgapi.Product
	filters  storage.SearchFilters
	debounce time.Duration
	gen      uint64
	inflight sync.WaitGroup
	loading  bool
	mu       sync.Mutex
}

// NewSession создает сессию поиска. prefs может быть nil, тогда фильтры не сохраняются.
func NewSession(searcher Searcher, prefs storage.FilterStorage, logger *slog.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		searcher: searcher,
		prefs:    prefs,
		logger:   logger,
		debounce: DefaultDebounce,
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore загружает последние сохраненные фильтры
func (s *Session) Restore(ctx context.Context) error {
	if s.prefs == nil {
		return nil
	}

	filters, err := s.prefs.GetSearchFilters(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore search filters: %w", err)
	}

	s.update(func() {
		s.filters = filters
	})
	return nil
}

// SetQuery запоминает запрос и планирует поиск через паузу debounce.
// Каждый новый вызов отменяет ранее запланированный поиск.
func (s *Session) SetQuery(text string) {
	s.mu.Lock()
	s.query = text
	s.gen++
	gen := s.gen
	s.stopTimerLocked()

	s.inflight.Add(1)
	s.timer = time.AfterFunc(s.debounce, func() {
		defer s.inflight.Done()
		s.run(gen)
	})
	s.mu.Unlock()
}

// SetFilters применяет фильтры, сохраняет их и сразу повторяет текущий запрос
func (s *Session) SetFilters(ctx context.Context, filters storage.SearchFilters) error {
	s.mu.Lock()
	s.filters = filters
	s.gen++
	gen := s.gen
	s.stopTimerLocked()
	s.inflight.Add(1)
	s.mu.Unlock()

	s.notify()

	s.run(gen)
	s.inflight.Done()

	return s.persist(ctx, filters)
}

// Clear сбрасывает запрос, результаты, фильтры и ошибку
func (s *Session) Clear(ctx context.Context) error {
	s.update(func() {
		s.gen++
		s.stopTimerLocked()
		s.query = ""
		s.results = nil
		s.filters = storage.SearchFilters{}
		s.err = ""
		s.loading = false
	})

	return s.persist(ctx, storage.SearchFilters{})
}

// Wait блокируется, пока не завершатся запланированные и выполняющиеся поиски
func (s *Session) Wait() {
	s.inflight.Wait()
}

// Close отменяет запланированный поиск и выполняющийся запрос
func (s *Session) Close() {
	s.mu.Lock()
	s.gen++
	s.stopTimerLocked()
	s.mu.Unlock()

	s.cancel()
}

// Results возвращает результаты с примененными фильтрами и сортировкой
func (s *Session) Results() []pkgapi.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return products.Apply(s.results, s.filters)
}

// State returns a snapshot of the session
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// run выполняет поиск для поколения gen. Ответ отбрасывается,
// если за время запроса запрос или фильтры сменились.
func (s *Session) run(gen uint64) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	query := strings.TrimSpace(s.query)
	if query == "" {
		s.results = nil
		s.err = ""
		s.loading = false
		s.mu.Unlock()
		s.notify()
		return
	}
	s.loading = true
	s.mu.Unlock()
	s.notify()

	results, err := s.searcher.Search(s.ctx, query)

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		s.logger.Debug("discarding stale search results", "query", query)
		return
	}
	s.loading = false
	if err != nil {
		s.err = err.Error()
		s.logger.Warn("search failed", "query", query, "error", err)
	} else {
		s.err = ""
		s.results = results
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Session) persist(ctx context.Context, filters storage.SearchFilters) error {
	if s.prefs == nil {
		return nil
	}
	if err := s.prefs.SaveSearchFilters(ctx, filters); err != nil {
		return fmt.Errorf("failed to save search filters: %w", err)
	}
	return nil
}

// stopTimerLocked отменяет запланированный поиск; вызывается под mu
func (s *Session) stopTimerLocked() {
	if s.timer != nil && s.timer.Stop() {
		s.inflight.Done()
	}
	s.timer = nil
}

func (s *Session) update(fn func()) {
	s.mu.Lock()
	fn()
	s.mu.Unlock()
	s.notify()
}

func (s *Session) notify() {
	if s.onChange == nil {
		return
	}
	s.onChange(s.State())
}

func (s *Session) stateLocked() State {
	return State{
		Query:   s.query,
		Err:     s.err,
		Results: products.Apply(s.results, s.filters),
		Filters: s.filters,
		Loading: s.loading,
	}
}
