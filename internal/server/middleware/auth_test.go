package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/storefront/internal/server/handlers"
	"github.com/iudanet/storefront/internal/server/jwt"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

const testSecret = "test-secret-key-0123456789"

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

// testHandler is a simple handler that checks context values
func testHandler(t *testing.T, expectedUserID, expectedUsername string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := handlers.GetUserID(r.Context())
		require.True(t, ok, "user_id should be in context")
		assert.Equal(t, expectedUserID, userID)

		username, ok := handlers.GetUsername(r.Context())
		require.True(t, ok, "username should be in context")
		assert.Equal(t, expectedUsername, username)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

// requireEnvelopeError проверяет, что ответ - envelope с ошибкой
func requireEnvelopeError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	require.Equal(t, status, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var env pkgapi.Envelope[any]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, code, env.Error.Code)
}

func TestAuthMiddleware_Success(t *testing.T) {
	tokens := jwt.NewService(testSecret, 15*time.Minute)

	token, _, err := tokens.GenerateAccessToken("user123", "testuser")
	require.NoError(t, err)

	wrappedHandler := AuthMiddleware(setupTestLogger(), tokens)(testHandler(t, "user123", "testuser"))

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	wrappedHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestAuthMiddleware_SchemeCaseInsensitive(t *testing.T) {
	tokens := jwt.NewService(testSecret, 15*time.Minute)
	token, _, err := tokens.GenerateAccessToken("user123", "testuser")
	require.NoError(t, err)

	wrappedHandler := AuthMiddleware(setupTestLogger(), tokens)(testHandler(t, "user123", "testuser"))

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "bearer "+token)

	w := httptest.NewRecorder()
	wrappedHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tokens := jwt.NewService(testSecret, 15*time.Minute)
	valid, _, err := tokens.GenerateAccessToken("user123", "testuser")
	require.NoError(t, err)

	otherSecret, _, err := jwt.NewService("another-secret-key-987654321", time.Minute).GenerateAccessToken("user123", "testuser")
	require.NoError(t, err)

	expired, _, err := jwt.NewService(testSecret, -time.Minute).GenerateAccessToken("user123", "testuser")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no scheme", header: valid},
		{name: "basic scheme", header: "Basic " + valid},
		{name: "empty token", header: "Bearer "},
		{name: "garbage token", header: "Bearer not.a.jwt"},
		{name: "wrong secret", header: "Bearer " + otherSecret},
		{name: "expired", header: "Bearer " + expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			AuthMiddleware(setupTestLogger(), tokens)(next).ServeHTTP(w, req)

			assert.False(t, called, "next handler must not be called")
			requireEnvelopeError(t, w, http.StatusUnauthorized, handlers.CodeUnauthorized)
			assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Bearer")
		})
	}
}
