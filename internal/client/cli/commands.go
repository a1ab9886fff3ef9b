package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду CLI
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "whoami", "status":
		return c.runWhoami(ctx)
	case "products", "list":
		return c.runProducts(ctx, args)
	case "product", "get":
		return c.runProduct(ctx, args)
	case "search":
		return c.runSearch(ctx, args)
	case "favorites":
		return c.runFavorites(ctx)
	case "favorite":
		return c.runToggleFavorite(ctx, args)
	case "review":
		return c.runReview(ctx, args)
	case "profile":
		return c.runProfile(ctx, args)
	case "help":
		PrintUsage(c.io)
		return nil
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}
}
