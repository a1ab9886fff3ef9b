package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/iudanet/storefront/internal/server/handlers"
)

// fakeClock управляемое время для limiter
type fakeClock struct {
	t  time.Time
	mu sync.Mutex
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestLimiter(t *testing.T, limit rate.Limit, burst int) (*RateLimiter, *fakeClock) {
	t.Helper()

	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(limit, burst, time.Minute, setupTestLogger())
	rl.now = clock.Now
	t.Cleanup(rl.Stop)
	return rl, clock
}

func TestRateLimiter_Allow(t *testing.T) {
	rl, clock := newTestLimiter(t, 1, 2)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"), "burst exhausted")

	// Другой ключ имеет свой bucket
	assert.True(t, rl.Allow("10.0.0.2"))

	// Через секунду появляется один токен
	clock.Advance(time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_RemoveIdle(t *testing.T) {
	rl, clock := newTestLimiter(t, 1, 1)

	require.True(t, rl.Allow("old"))
	clock.Advance(2 * time.Minute)
	require.True(t, rl.Allow("fresh"))

	rl.removeIdle()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.limiters, "old")
	assert.Contains(t, rl.limiters, "fresh")
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute, setupTestLogger())
	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}

func TestRateLimiter_Handler(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, 1)

	calls := 0
	handler := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.RemoteAddr = "192.168.1.10:50000"

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Тот же IP с другого порта попадает в тот же bucket
	req2 := httptest.NewRequest(http.MethodGet, "/products", nil)
	req2.RemoteAddr = "192.168.1.10:50001"

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req2)

	requireEnvelopeError(t, w, http.StatusTooManyRequests, handlers.CodeRateLimited)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Equal(t, 1, calls)
}

func TestRateLimitByPath(t *testing.T) {
	fallback, _ := newTestLimiter(t, 100, 100)
	rp := NewRateLimitByPath([]PathRateLimit{
		{Path: "/users/login", Limit: rate.Every(time.Minute), Burst: 1},
	}, fallback, time.Minute, setupTestLogger())
	t.Cleanup(rp.Stop)

	handler := rp.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(path string) int {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = "10.1.1.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("/users/login"))
	assert.Equal(t, http.StatusTooManyRequests, do("/users/login"))

	// Остальные пути проверяются общим лимитом
	for range 5 {
		assert.Equal(t, http.StatusOK, do("/products"))
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		headers    map[string]string
		name       string
		remoteAddr string
		expected   string
	}{
		{
			name:       "X-Forwarded-For single IP",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.1"},
			remoteAddr: "10.0.0.1:1234",
			expected:   "203.0.113.1",
		},
		{
			name:       "X-Forwarded-For chain",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.1, 70.41.3.18, 150.172.238.178"},
			remoteAddr: "10.0.0.1:1234",
			expected:   "203.0.113.1",
		},
		{
			name:       "X-Real-IP",
			headers:    map[string]string{"X-Real-IP": "198.51.100.7"},
			remoteAddr: "10.0.0.1:1234",
			expected:   "198.51.100.7",
		},
		{
			name:       "RemoteAddr with port",
			remoteAddr: "192.0.2.5:8080",
			expected:   "192.0.2.5",
		},
		{
			name:       "IPv6 RemoteAddr",
			remoteAddr: "[2001:db8::1]:443",
			expected:   "2001:db8::1",
		},
		{
			name:       "RemoteAddr without port",
			remoteAddr: "192.0.2.5",
			expected:   "192.0.2.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.expected, getClientIP(req))
		})
	}
}
