package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/storefront/internal/client/api"
	"github.com/iudanet/storefront/internal/client/auth"
	"github.com/iudanet/storefront/internal/client/cli"
	"github.com/iudanet/storefront/internal/client/favorites"
	"github.com/iudanet/storefront/internal/client/iocli"
	"github.com/iudanet/storefront/internal/client/products"
	"github.com/iudanet/storefront/internal/client/profile"
	"github.com/iudanet/storefront/internal/client/reviews"
	"github.com/iudanet/storefront/internal/client/search"
	"github.com/iudanet/storefront/internal/client/storage/boltdb"
	"github.com/iudanet/storefront/internal/config"
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
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", config.DefaultClientConfigPath, "Path to TOML config file")
	serverURL := flag.String("server", "", "Server URL (overrides config and "+config.EnvServerURL+")")
	dbPath := flag.String("db", "", "Path to local database (overrides config and "+config.EnvDBPath+")")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	password := flag.String("password", "", "Password for login/register (insecure, prefer "+cli.EnvPassword+")")
	passwordFile := flag.String("password-file", "", "Read password for login/register from file")

	flag.Parse()

	if *showVersion {
		printVersion()
		return 0
	}

	out := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(out)
		return 1
	}

	// Приоритет: флаг > переменная окружения > файл > значения по умолчанию
	cfg, err := config.LoadClient(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	cfg.ApplyEnv(os.Getenv)
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		return 1
	}
	// Логи в stderr, чтобы не смешивать с выводом команд
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	// auth сервис сам ходит через клиент, поэтому токен подключается после
	apiClient := api.NewClient(cfg.ServerURL, api.WithTimeout(cfg.Timeout))
	authService := auth.NewService(apiClient, boltStorage, logger)
	apiClient.SetTokenSource(authService)

	productService := products.NewService(apiClient)

	searchSession := search.NewSession(productService, boltStorage, logger, search.WithDebounce(cfg.SearchDebounce))
	defer searchSession.Close()

	app := cli.New(cli.Deps{
		IO:          out,
		AuthService: authService,
		Products:    productService,
		Reviews:     reviews.NewService(apiClient),
		Favorites:   favorites.NewStore(apiClient, logger),
		Profile:     profile.NewStore(apiClient, logger),
		Search:      searchSession,
		Passwords: cli.Passwords{
			FromFile: *passwordFile,
			FromArgs: *password,
		},
	})

	logger.Debug("running command", slog.String("command", args[0]), slog.String("server", cfg.ServerURL))

	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printVersion() {
	fmt.Printf("Storefront Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
