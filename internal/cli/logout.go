package cli

import "context"

func (c *Cli) RunLogout(ctx context.Context) error {
	c.client.Logout(ctx)

	c.io.Println("Logout successful!")
	c.io.Println("The cached token has been removed.")

	return nil
}
