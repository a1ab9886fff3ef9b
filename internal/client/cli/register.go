package cli

import (
	"context"
	"fmt"

	pkgapi "github.com/iudanet/storefront/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	fullName, err := c.io.ReadInput("Full name: ")
	if err != nil {
		return fmt.Errorf("failed to read full name: %w", err)
	}

	password, err := c.getPassword("Password: ")
	if err != nil {
		return err
	}

	// Подтверждение нужно только при вводе с терминала
	if c.interactivePassword() {
		confirm, err := c.io.ReadPassword("Confirm password: ")
		if err != nil {
			return fmt.Errorf("failed to read password confirmation: %w", err)
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}
	}

	c.io.Println()
	c.io.Println("Registering...")

	session, err := c.authService.Register(ctx, pkgapi.RegisterRequest{
		Email:    email,
		Username: username,
		Password: password,
		FullName: fullName,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("User ID:  %s\n", session.User.ID)
	c.io.Printf("Username: %s\n", session.User.Username)
	c.io.Println()
	c.io.Println("You are now logged in.")

	return nil
}
