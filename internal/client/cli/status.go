package cli

import (
	"context"
	"time"
)

func (c *Cli) runWhoami(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	session, err := c.currentSession(ctx)
	if err != nil {
		if err == ErrNotAuthenticated {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'storefront login' to authenticate.")
			return nil
		}
		return err
	}

	c.io.Printf("User:      %s\n", session.User.Username)
	c.io.Printf("Email:     %s\n", session.User.Email)
	c.io.Printf("User ID:   %s\n", session.User.ID)

	if session.Expired(time.Now()) {
		c.io.Println("Status:    Session expired")
		c.io.Println()
		c.io.Println("Run 'storefront login' to renew the session.")
		return nil
	}

	c.io.Println("Status:    Authenticated")
	if !session.ExpiresAt.IsZero() {
		remaining := time.Until(session.ExpiresAt).Round(time.Minute)
		c.io.Printf("Expires:   %s (in %s)\n", session.ExpiresAt.Local().Format("2006-01-02 15:04"), remaining)
	}

	return nil
}
