package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/iudanet/storefront/internal/client/auth"
	"github.com/iudanet/storefront/internal/client/iocli"
	"github.com/iudanet/storefront/internal/client/storage"
)

// EnvPassword переменная окружения с паролем для неинтерактивного login/register
const EnvPassword = "STOREFRONT_PASSWORD"

// ErrNotAuthenticated возвращается командами, которым нужна сессия
var ErrNotAuthenticated = errors.New("not authenticated. Please run 'storefront login' first")

// Passwords источники пароля кроме интерактивного ввода
type Passwords struct {
	FromFile string
	FromArgs string
}

// Deps сервисы, которыми пользуются команды
type Deps struct {
	IO          iocli.IO
	AuthService auth.Service
	Products    ProductService
	Reviews     ReviewService
	Favorites   FavoriteStore
	Profile     ProfileStore
	Search      SearchSession
	Passwords   Passwords
}

type Cli struct {
	io          iocli.IO
	authService auth.Service
	products    ProductService
	reviews     ReviewService
	favorites   FavoriteStore
	profile     ProfileStore
	search      SearchSession
	passwords   Passwords
}

func New(deps Deps) *Cli {
	return &Cli{
		io:          deps.IO,
		authService: deps.AuthService,
		products:    deps.Products,
		reviews:     deps.Reviews,
		favorites:   deps.Favorites,
		profile:     deps.Profile,
		search:      deps.Search,
		passwords:   deps.Passwords,
	}
}

// requireAuth проверяет, что есть действующая сессия
func (c *Cli) requireAuth(ctx context.Context) error {
	ok, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}
	if !ok {
		return ErrNotAuthenticated
	}
	return nil
}

// currentSession возвращает сохраненную сессию или ErrNotAuthenticated
func (c *Cli) currentSession(ctx context.Context) (*storage.Session, error) {
	session, err := c.authService.Session(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}
	return session, nil
}

// getPassword retrieves password from various sources with priority:
// 1. Environment variable STOREFRONT_PASSWORD
// 2. File specified in passwords.FromFile
// 3. Command-line parameter passwords.FromArgs
// 4. Interactive prompt (fallback)
func (c *Cli) getPassword(prompt string) (string, error) {
	// Priority 1: Environment variable
	if envPassword := os.Getenv(EnvPassword); envPassword != "" {
		return envPassword, nil
	}

	// Priority 2: File
	if c.passwords.FromFile != "" {
		content, err := os.ReadFile(c.passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	// Priority 3: CLI parameter
	if c.passwords.FromArgs != "" {
		return c.passwords.FromArgs, nil
	}

	// Priority 4: Interactive prompt (fallback)
	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}

// interactivePassword сообщает, будет ли пароль запрошен с терминала
func (c *Cli) interactivePassword() bool {
	return os.Getenv(EnvPassword) == "" && c.passwords.FromFile == "" && c.passwords.FromArgs == ""
}

func PrintUsage(out iocli.IO) {
	out.Println("Storefront Client")
	out.Println()
	out.Println("Usage:")
	out.Println("  storefront [OPTIONS] COMMAND [ARGS]")
	out.Println()
	out.Println("Options:")
	out.Println("  --version              Show version information")
	out.Println("  --config PATH          Path to TOML config (default: ~/.config/storefront/client.toml)")
	out.Println("  --server URL           Server URL (default: http://localhost:8080)")
	out.Println("  --db PATH              Path to local database (default: storefront-client.db)")
	out.Println("  --log-level LEVEL      debug, info, warn or error")
	out.Println("  --password PASSWORD    Password (not recommended, use env var or file)")
	out.Println("  --password-file PATH   Path to file containing password")
	out.Println()
	out.Println("Password Priority (highest to lowest):")
	out.Println("  1. STOREFRONT_PASSWORD environment variable")
	out.Println("  2. --password-file (file path)")
	out.Println("  3. --password (command line)")
	out.Println("  4. Interactive prompt (fallback)")
	out.Println()
	out.Println("Commands:")
	out.Println("  register                             Register new user")
	out.Println("  login                                Login to server")
	out.Println("  logout                               Remove local session")
	out.Println("  whoami                               Show current session")
	out.Println("  products [flags]                     List catalog (--page --limit --sort --order --vendor --min --max)")
	out.Println("  product <id>                         Show product details and reviews")
	out.Println("  search <query> [flags]               Search products (--vendor --min --max --sort --order --reset)")
	out.Println("  favorites                            List favorite products")
	out.Println("  favorite <product-id>                Add or remove product from favorites")
	out.Println("  review <product-id> <rating> <text>  Write a review (rating 1-5)")
	out.Println("  review edit <review-id> [flags]      Edit a review (--rating --comment)")
	out.Println("  review delete <review-id>            Delete a review")
	out.Println("  profile                              Show profile")
	out.Println("  profile update [flags]               Update profile (--name --avatar)")
	out.Println()
	out.Println("Examples:")
	out.Println("  storefront register")
	out.Println("  storefront login")
	out.Println("  storefront products --sort price --order asc --max 100")
	out.Println("  storefront search lamp --vendor acme")
	out.Println("  storefront favorite 6f1c2a9e-2d88-4aa1-a9e1-13aa6e4976d5")
	out.Println("  storefront --server https://shop.example.com login")
}
