package cli

import (
	"context"
	"time"
)

func (c *Cli) RunLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Login successful!")
	c.io.Printf("User: %s\n", c.client.UserID())
	c.io.Printf("Session expires: %s\n", c.client.ExpiresAt().Format(time.RFC3339))

	return nil
}
