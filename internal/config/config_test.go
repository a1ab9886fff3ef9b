package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestLoadClient_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadClient(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultClient(), cfg)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.SearchDebounce)
}

func TestLoadClient_ParsesAndTrims(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "client.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
server_url = "  https://shop.example.com  "
db_path = "~/storefront/client.db"
timeout = "3s"
log_level = "debug"
search_debounce = "250ms"
`), 0o600))

	cfg, err := LoadClient(path)
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example.com", cfg.ServerURL)
	assert.Equal(t, filepath.Join(home, "storefront", "client.db"), cfg.DBPath)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadClient_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "bad toml", content: `server_url = `, errMsg: "parse config"},
		{name: "bad timeout", content: `timeout = "soon"`, errMsg: "timeout"},
		{name: "negative debounce", content: `search_debounce = "-1s"`, errMsg: "search_debounce"},
		{name: "bad log level", content: `log_level = "loud"`, errMsg: "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "client.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := LoadClient(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestClient_ApplyEnv(t *testing.T) {
	cfg := DefaultClient()
	cfg.ApplyEnv(envMap(map[string]string{
		EnvServerURL: "http://api.local:9000",
		EnvDBPath:    "/tmp/other.db",
	}))

	assert.Equal(t, "http://api.local:9000", cfg.ServerURL)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)

	// Пустые переменные не сбрасывают значения
	cfg.ApplyEnv(envMap(nil))
	assert.Equal(t, "http://api.local:9000", cfg.ServerURL)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	level, err = ParseLevel("ERROR")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestServer_ApplyEnvAndValidate(t *testing.T) {
	cfg := DefaultServer()
	require.Error(t, cfg.Validate(), "secret is required")

	cfg.ApplyEnv(envMap(map[string]string{
		EnvJWTSecret: "0123456789abcdef0123",
		EnvAddr:      "127.0.0.1:9090",
		EnvServerDB:  ":memory:",
	}))

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, ":memory:", cfg.DBPath)

	cfg.JWTSecret = "short"
	assert.Error(t, cfg.Validate())

	cfg = DefaultServer()
	cfg.JWTSecret = "0123456789abcdef0123"
	cfg.RateBurst = 0
	assert.Error(t, cfg.Validate())
}
