package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/storefront/internal/client/favorites"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

func (c *Cli) runFavorites(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	if err := c.favorites.Load(ctx); err != nil {
		return err
	}

	state := c.favorites.Snapshot()

	c.io.Println("=== Favorites ===")
	c.io.Println()

	if len(state.Favorites) == 0 {
		c.io.Println("No favorites yet.")
		c.io.Println()
		c.io.Println("Use 'storefront favorite <product-id>' to add one.")
		return nil
	}

	items := make([]pkgapi.Product, 0, len(state.Favorites))
	for _, fav := range state.Favorites {
		items = append(items, fav.Product)
	}
	c.printProducts(items)

	c.io.Println()
	c.io.Printf("Total: %d favorite(s)\n", len(state.Favorites))
	return nil
}

func (c *Cli) runToggleFavorite(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing product ID. Usage: storefront favorite <product-id>")
	}
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	// Store хранит товар целиком, поэтому сначала получаем карточку
	product, err := c.products.Get(ctx, args[0])
	if err != nil {
		return err
	}

	status, err := c.favorites.Toggle(ctx, *product)
	if err != nil {
		if errors.Is(err, favorites.ErrTogglePending) {
			return fmt.Errorf("a favorite update for this product is already in progress")
		}
		return err
	}

	switch status {
	case pkgapi.ToggleAdded:
		c.io.Printf("♥ Added to favorites: %s\n", productLine(*product))
	case pkgapi.ToggleRemoved:
		c.io.Printf("♡ Removed from favorites: %s\n", productLine(*product))
	}
	return nil
}
