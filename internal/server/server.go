// Package server собирает HTTP API reference сервера: маршруты, middleware и жизненный цикл.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/iudanet/storefront/internal/config"
	"github.com/iudanet/storefront/internal/server/handlers"
	"github.com/iudanet/storefront/internal/server/jwt"
	"github.com/iudanet/storefront/internal/server/middleware"
	"github.com/iudanet/storefront/internal/server/storage"
)

// Лимиты для эндпоинтов входа и регистрации (перебор паролей)
const (
	authRateLimit  = rate.Limit(1)
	authRateBurst  = 5
	limiterIdleTTL = 10 * time.Minute
)

// Store хранилище, которое нужно серверу целиком
type Store interface {
	storage.UserStorage
	storage.ProductStorage
	storage.FavoriteStorage
	storage.ReviewStorage
	handlers.Pinger
}

// Server HTTP сервер API
type Server struct {
	logger   *slog.Logger
	handler  http.Handler
	limiters *middleware.RateLimitByPath
	cfg      config.Server
}

// New собирает маршруты и цепочку middleware.
// reg используется и для HTTP метрик, и для /metrics.
func New(cfg config.Server, logger *slog.Logger, store Store, tokens *jwt.Service, reg *prometheus.Registry, version string) *Server {
	authHandler := handlers.NewAuthHandler(logger, store, tokens)
	userHandler := handlers.NewUserHandler(logger, store)
	productHandler := handlers.NewProductHandler(logger, store)
	reviewHandler := handlers.NewReviewHandler(logger, store, store)
	favoriteHandler := handlers.NewFavoriteHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store, version)

	requireAuth := middleware.AuthMiddleware(logger, tokens)
	protected := func(h http.HandlerFunc) http.Handler { return requireAuth(h) }

	mux := http.NewServeMux()

	mux.HandleFunc("POST /users/register", authHandler.Register)
	mux.HandleFunc("POST /users/login", authHandler.Login)
	mux.Handle("GET /users/me", protected(userHandler.Me))
	mux.Handle("PUT /users/{id}", protected(userHandler.Update))

	// /products/search объявлен точнее, чем /products/{id}, конфликта нет
	mux.HandleFunc("GET /products", productHandler.List)
	mux.HandleFunc("GET /products/search", productHandler.Search)
	mux.HandleFunc("GET /products/{id}", productHandler.Get)
	mux.HandleFunc("GET /products/{id}/reviews", reviewHandler.List)
	mux.Handle("POST /products/{id}/reviews", protected(reviewHandler.Create))

	mux.Handle("PUT /reviews/{id}", protected(reviewHandler.Update))
	mux.Handle("DELETE /reviews/{id}", protected(reviewHandler.Delete))

	mux.Handle("GET /favorites", protected(favoriteHandler.List))
	mux.Handle("POST /favorites/{productId}", protected(favoriteHandler.Toggle))

	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	limiters := middleware.NewRateLimitByPath(
		[]middleware.PathRateLimit{
			{Path: "/users/login", Limit: authRateLimit, Burst: authRateBurst},
			{Path: "/users/register", Limit: authRateLimit, Burst: authRateBurst},
		},
		middleware.NewRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst, limiterIdleTTL, logger),
		limiterIdleTTL,
		logger,
	)

	metrics := middleware.NewMetrics(reg)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         600,
	})

	// Порядок снаружи внутрь: cors -> recovery -> logging -> metrics -> rate limit -> mux.
	// Между logging/metrics и mux запрос не копируется, поэтому r.Pattern виден снаружи.
	var h http.Handler = mux
	h = limiters.Handler(h)
	h = metrics.Handler(h)
	h = middleware.LoggingWithSkip(logger, []string{"/health", "/metrics"})(h)
	h = middleware.RecoveryMiddleware(logger)(h)
	h = corsHandler.Handler(h)

	return &Server{
		logger:   logger,
		handler:  h,
		limiters: limiters,
		cfg:      cfg,
	}
}

// NewRegistry создает registry с метриками процесса и Go runtime
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return reg
}

// Handler возвращает корневой handler со всеми middleware
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run слушает cfg.Addr до отмены ctx, затем корректно завершает работу
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает соединения ln до отмены ctx
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.limiters.Stop()

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", slog.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server", slog.Duration("timeout", s.cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
