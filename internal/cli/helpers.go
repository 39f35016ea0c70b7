package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// ensureAuth resolves credentials and authenticates, preferring a cached
// token so the password prompt is usually skipped on repeat invocations.
// Username comes from NELLA_USERNAME or an interactive prompt, password
// from NELLA_PASSWORD or an interactive prompt.
func (c *Cli) ensureAuth(ctx context.Context) error {
	if c.client.IsAuthenticated() {
		return nil
	}

	username := os.Getenv("NELLA_USERNAME")
	if username == "" {
		input, err := c.io.ReadInput("Username: ")
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
		username = input
	}

	password := os.Getenv("NELLA_PASSWORD")
	if password == "" {
		input, err := c.io.ReadPassword("Password: ")
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = input
	}

	return c.client.Authenticate(ctx, username, password, true)
}

// printJSON pretty-prints a raw payload
func (c *Cli) printJSON(raw json.RawMessage) error {
	var buf any
	if err := json.Unmarshal(raw, &buf); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	pretty, err := json.MarshalIndent(buf, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format payload: %w", err)
	}
	c.io.Println(string(pretty))
	return nil
}
