package config

import (
	"fmt"
	"strings"
	"time"
)

// Env variables recognized by the server
const (
	EnvJWTSecret = "STOREFRONT_JWT_SECRET"
	EnvAddr      = "STOREFRONT_ADDR"
	EnvServerDB  = "STOREFRONT_SERVER_DB"
)

const minSecretLen = 16

// Server настройки reference сервера
type Server struct {
	Addr            string
	DBPath          string
	JWTSecret       string
	LogLevel        string
	AllowedOrigins  []string
	TokenTTL        time.Duration
	ShutdownTimeout time.Duration
	RateLimit       float64
	RateBurst       int
	SeedCatalog     bool
}

// DefaultServer возвращает настройки сервера по умолчанию
func DefaultServer() Server {
	return Server{
		Addr:            ":8080",
		DBPath:          "storefront.db",
		LogLevel:        defaultLogLevel,
		AllowedOrigins:  []string{"*"},
		TokenTTL:        24 * time.Hour,
		ShutdownTimeout: 10 * time.Second,
		RateLimit:       20,
		RateBurst:       40,
		SeedCatalog:     true,
	}
}

// ApplyEnv переопределяет значения из переменных окружения
func (s *Server) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvAddr)); v != "" {
		s.Addr = v
	}
	if v := strings.TrimSpace(getenv(EnvServerDB)); v != "" {
		s.DBPath = v
	}
	if v := getenv(EnvJWTSecret); v != "" {
		s.JWTSecret = v
	}
}

// Validate проверяет обязательные параметры
func (s Server) Validate() error {
	if len(s.JWTSecret) < minSecretLen {
		return fmt.Errorf("jwt secret must be at least %d characters (set %s)", minSecretLen, EnvJWTSecret)
	}
	if s.Addr == "" {
		return fmt.Errorf("listen address is empty")
	}
	if s.DBPath == "" {
		return fmt.Errorf("database path is empty")
	}
	if s.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}
	if s.RateLimit <= 0 || s.RateBurst <= 0 {
		return fmt.Errorf("rate limit and burst must be positive")
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}
