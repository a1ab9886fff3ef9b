package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/iudanet/storefront/internal/server/handlers"
)

// RateLimiter ограничивает частоту запросов по ключу (обычно IP адрес).
// Для каждого ключа заводится свой token bucket из golang.org/x/time/rate.
type RateLimiter struct {
	now      func() time.Time
	limiters map[string]*limiterEntry
	logger   *slog.Logger
	cleanupC chan struct{}
	stopOnce sync.Once
	idleTTL  time.Duration
	limit    rate.Limit
	burst    int
	mu       sync.Mutex
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter создает новый rate limiter
// limit - запросов в секунду, burst - размер всплеска.
// Неактивные ключи удаляются через idleTTL.
func NewRateLimiter(limit rate.Limit, burst int, idleTTL time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		now:      time.Now,
		limiters: make(map[string]*limiterEntry),
		limit:    limit,
		burst:    burst,
		idleTTL:  idleTTL,
		logger:   logger,
		cleanupC: make(chan struct{}),
	}

	// Запускаем периодическую очистку неактивных ключей
	go rl.cleanup()

	return rl
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.idleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.removeIdle()
		case <-rl.cleanupC:
			return
		}
	}
}

// removeIdle удаляет limiters, которые не использовались дольше idleTTL
func (rl *RateLimiter) removeIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, e := range rl.limiters {
		if now.Sub(e.lastSeen) > rl.idleTTL {
			delete(rl.limiters, key)
		}
	}
}

// Stop останавливает cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.cleanupC) })
}

// Allow проверяет, разрешен ли запрос для данного ключа
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	now := rl.now()
	e, ok := rl.limiters[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = e
	}
	e.lastSeen = now
	rl.mu.Unlock()

	return e.limiter.AllowN(now, 1)
}

// Handler возвращает middleware, отвечающий 429 при превышении лимита
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := getClientIP(r)

		if !rl.Allow(key) {
			rl.reject(w, r, key)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) reject(w http.ResponseWriter, r *http.Request, key string) {
	rl.logger.WarnContext(r.Context(), "rate limit exceeded",
		slog.String("ip", key),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	w.Header().Set("Retry-After", "1")
	_ = handlers.WriteError(w, http.StatusTooManyRequests, handlers.CodeRateLimited,
		"rate limit exceeded, please try again later")
}

// PathRateLimit отдельный лимит для конкретного пути
type PathRateLimit struct {
	Path  string
	Limit rate.Limit
	Burst int
}

// RateLimitByPath держит отдельные limiters для перечисленных путей
// и общий limiter для всех остальных
type RateLimitByPath struct {
	limiters map[string]*RateLimiter
	fallback *RateLimiter
}

// NewRateLimitByPath создает limiter с кастомными лимитами для путей
func NewRateLimitByPath(limits []PathRateLimit, fallback *RateLimiter, idleTTL time.Duration, logger *slog.Logger) *RateLimitByPath {
	rp := &RateLimitByPath{
		limiters: make(map[string]*RateLimiter, len(limits)),
		fallback: fallback,
	}
	for _, l := range limits {
		rp.limiters[l.Path] = NewRateLimiter(l.Limit, l.Burst, idleTTL, logger)
	}
	return rp
}

// Handler возвращает middleware; путь без своего лимита проверяется общим limiter
func (rp *RateLimitByPath) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter, ok := rp.limiters[r.URL.Path]
		if !ok {
			limiter = rp.fallback
		}

		key := getClientIP(r)
		if !limiter.Allow(key) {
			limiter.reject(w, r, key)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Stop останавливает все limiters
func (rp *RateLimitByPath) Stop() {
	for _, l := range rp.limiters {
		l.Stop()
	}
	rp.fallback.Stop()
}

// getClientIP извлекает IP адрес клиента из запроса
// Проверяет заголовки X-Forwarded-For и X-Real-IP для прокси
func getClientIP(r *http.Request) string {
	// Берем первый IP из X-Forwarded-For (реальный клиент)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr без порта, иначе каждое соединение получит свой bucket
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
