package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/storefront/internal/server/handlers"
)

func TestRecoveryMiddleware_Panic(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong: secret detail")
	})

	req := httptest.NewRequest(http.MethodGet, "/products/p1", nil)
	w := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		RecoveryMiddleware(logger)(panicking).ServeHTTP(w, req)
	})

	requireEnvelopeError(t, w, http.StatusInternalServerError, handlers.CodeInternal)
	assert.NotContains(t, w.Body.String(), "secret detail")

	logs := logBuf.String()
	assert.Contains(t, logs, "panic recovered")
	assert.Contains(t, logs, "secret detail")
	assert.Contains(t, logs, "/products/p1")
	assert.Contains(t, logs, "stack=")
}

func TestRecoveryMiddleware_NoPanic(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))
	})

	req := httptest.NewRequest(http.MethodPost, "/favorites/p1", nil)
	w := httptest.NewRecorder()

	RecoveryMiddleware(setupTestLogger())(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "created", w.Body.String())
}

func TestRecoveryMiddleware_ErrorValue(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var m map[string]int
		m["boom"] = 1 // panic: assignment to entry in nil map
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	RecoveryMiddleware(setupTestLogger())(next).ServeHTTP(w, req)

	requireEnvelopeError(t, w, http.StatusInternalServerError, handlers.CodeInternal)
}

func TestRecoveryMiddleware_AbortHandlerRepanics(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		RecoveryMiddleware(setupTestLogger())(next).ServeHTTP(w, req)
	})
}
