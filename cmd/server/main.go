package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/iudanet/storefront/internal/config"
	"github.com/iudanet/storefront/internal/server"
	"github.com/iudanet/storefront/internal/server/jwt"
	"github.com/iudanet/storefront/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultServer()

	showVersion := flag.Bool("version", false, "Show version information")
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address (env "+config.EnvAddr+")")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to SQLite database (env "+config.EnvServerDB+")")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "Access token lifetime")
	flag.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")
	flag.Float64Var(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Requests per second per client IP")
	flag.IntVar(&cfg.RateBurst, "rate-burst", cfg.RateBurst, "Burst size per client IP")
	flag.BoolVar(&cfg.SeedCatalog, "seed", cfg.SeedCatalog, "Fill an empty catalog with demo products")
	origins := flag.String("cors-origins", strings.Join(cfg.AllowedOrigins, ","), "Comma separated list of allowed CORS origins")

	flag.Parse()

	if *showVersion {
		printVersion()
		return 0
	}

	// Переменные окружения перекрывают флаги только если флаг не задан явно
	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	addr, dbPath := cfg.Addr, cfg.DBPath
	cfg.ApplyEnv(os.Getenv)
	if explicit["addr"] {
		cfg.Addr = addr
	}
	if explicit["db"] {
		cfg.DBPath = dbPath
	}
	cfg.AllowedOrigins = splitList(*origins)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Storefront server starting",
		slog.String("version", Version),
		slog.String("addr", cfg.Addr),
		slog.String("db", cfg.DBPath))

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if cfg.SeedCatalog {
		seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		n, err := store.SeedCatalog(seedCtx)
		cancel()
		if err != nil {
			logger.Error("failed to seed catalog", slog.Any("error", err))
			return 1
		}
		if n > 0 {
			logger.Info("catalog seeded", slog.Int("products", n))
		}
	}

	srv := server.New(cfg, logger, store, jwt.NewService(cfg.JWTSecret, cfg.TokenTTL), server.NewRegistry(), Version)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		return 1
	}

	logger.Info("server stopped")
	return 0
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func printVersion() {
	fmt.Printf("Storefront Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
