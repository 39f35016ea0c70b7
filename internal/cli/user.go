package cli

import (
	"context"
	"fmt"
)

func (c *Cli) RunUser(ctx context.Context) error {
	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	if c.raw {
		raw, err := c.client.GetUserRaw(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch user: %w", err)
		}
		return c.printJSON(raw)
	}

	user, err := c.client.GetUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}

	c.io.Printf("Username: %s\n", user.Username)
	c.io.Printf("Email:    %s\n", user.Email)

	return nil
}
