package cli

import (
	"context"
	"time"

	"github.com/zini/nella/pkg/nella"
)

func (c *Cli) RunStatus(ctx context.Context) error {
	c.io.Println("=== Token Cache Status ===")
	c.io.Println()

	entry, err := c.cache.Load(ctx)
	if err != nil {
		c.io.Println("No usable cached token.")
		c.io.Println()
		c.io.Println("Run 'nella login' to authenticate.")
		return nil
	}

	c.io.Println("Cached token found.")
	c.io.Printf("Age: %s\n", entry.Age.Round(time.Second))

	if entry.Age >= nella.TokenMaxAge {
		c.io.Println("The token is stale and will not be reused.")
	} else {
		c.io.Printf("Fresh for another %s.\n", (nella.TokenMaxAge - entry.Age).Round(time.Second))
	}

	return nil
}
