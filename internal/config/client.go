package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	// DefaultClientConfigPath путь к файлу настроек клиента
	DefaultClientConfigPath = "~/.config/storefront/client.toml"

	defaultServerURL      = "http://localhost:8080"
	defaultDBPath         = "storefront-client.db"
	defaultTimeout        = 10 * time.Second
	defaultSearchDebounce = 500 * time.Millisecond
	defaultLogLevel       = "info"
)

// Env variables recognized by the client
const (
	EnvServerURL = "STOREFRONT_SERVER"
	EnvDBPath    = "STOREFRONT_DB"
)

// Client настройки CLI клиента
type Client struct {
	ServerURL      string
	DBPath         string
	LogLevel       string
	Timeout        time.Duration
	SearchDebounce time.Duration
}

// DefaultClient возвращает настройки по умолчанию
func DefaultClient() Client {
	return Client{
		ServerURL:      defaultServerURL,
		DBPath:         defaultDBPath,
		LogLevel:       defaultLogLevel,
		Timeout:        defaultTimeout,
		SearchDebounce: defaultSearchDebounce,
	}
}

// LoadClient читает TOML файл поверх значений по умолчанию.
// Отсутствующий файл не ошибка.
func LoadClient(path string) (Client, error) {
	cfg := DefaultClient()

	if strings.TrimSpace(path) == "" {
		path = DefaultClientConfigPath
	}
	resolved, err := expandPath(path)
	if err != nil {
		return Client{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Client{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Client{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ServerURL      string `toml:"server_url"`
		DBPath         string `toml:"db_path"`
		Timeout        string `toml:"timeout"`
		LogLevel       string `toml:"log_level"`
		SearchDebounce string `toml:"search_debounce"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Client{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.ServerURL); v != "" {
		cfg.ServerURL = v
	}
	if v := strings.TrimSpace(raw.DBPath); v != "" {
		cfg.DBPath, err = expandPath(v)
		if err != nil {
			return Client{}, fmt.Errorf("db_path: %w", err)
		}
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	if cfg.Timeout, err = parseDuration(raw.Timeout, cfg.Timeout); err != nil {
		return Client{}, fmt.Errorf("timeout: %w", err)
	}
	if cfg.SearchDebounce, err = parseDuration(raw.SearchDebounce, cfg.SearchDebounce); err != nil {
		return Client{}, fmt.Errorf("search_debounce: %w", err)
	}

	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Client{}, err
	}

	return cfg, nil
}

// ApplyEnv переопределяет значения из переменных окружения
func (c *Client) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvServerURL)); v != "" {
		c.ServerURL = v
	}
	if v := strings.TrimSpace(getenv(EnvDBPath)); v != "" {
		c.DBPath = v
	}
}

// ParseLevel переводит строку debug|info|warn|error в slog.Level
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration %s must not be negative", value)
	}
	return d, nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
