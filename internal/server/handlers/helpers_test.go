package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	pkgapi "github.com/iudanet/storefront/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testRequest описывает запрос к handler в тестах
type testRequest struct {
	body       any
	pathValues map[string]string
	method     string
	target     string
	userID     string
}

// serve вызывает handler напрямую; userID кладется в контекст, как это делает AuthMiddleware
func serve(t *testing.T, h http.HandlerFunc, tr testRequest) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	switch b := tr.body.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(tr.method, tr.target, body)
	for k, v := range tr.pathValues {
		req.SetPathValue(k, v)
	}
	if tr.userID != "" {
		req = req.WithContext(WithUser(req.Context(), tr.userID, "tester"))
	}

	w := httptest.NewRecorder()
	h(w, req)
	return w
}

// decodeEnvelope разбирает envelope ответа
func decodeEnvelope[T any](t *testing.T, w *httptest.ResponseRecorder) pkgapi.Envelope[T] {
	t.Helper()

	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var env pkgapi.Envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotEmpty(t, env.Timestamp)
	return env
}

// requireError проверяет статус и код ошибки в envelope
func requireError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) pkgapi.Envelope[any] {
	t.Helper()

	require.Equal(t, status, w.Code, w.Body.String())
	env := decodeEnvelope[any](t, w)
	require.False(t, env.Success)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)
	require.NotEmpty(t, env.Message)
	return env
}
