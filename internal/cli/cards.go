package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/zini/nella/pkg/models"
)

func (c *Cli) RunCards(ctx context.Context) error {
	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	if c.raw {
		raw, err := c.client.GetCardsRaw(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch cards: %w", err)
		}
		return c.printJSON(raw)
	}

	cards, err := c.client.GetCards(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch cards: %w", err)
	}

	if len(cards) == 0 {
		c.io.Println("No travel cards.")
		return nil
	}

	for i := range cards {
		if i > 0 {
			c.io.Println()
		}
		c.printCard(&cards[i])
	}

	return nil
}

func (c *Cli) RunCard(ctx context.Context, number string) error {
	if number == "" {
		return fmt.Errorf("card number is required")
	}

	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	if c.raw {
		raw, err := c.client.GetCardRaw(ctx, number)
		if err != nil {
			return fmt.Errorf("failed to fetch card: %w", err)
		}
		return c.printJSON(raw)
	}

	card, err := c.client.GetCard(ctx, number)
	if err != nil {
		return fmt.Errorf("failed to fetch card: %w", err)
	}

	c.printCard(card)
	return nil
}

func (c *Cli) RunProducts(ctx context.Context, cardID string) error {
	if cardID == "" {
		return fmt.Errorf("card id is required")
	}

	if err := c.ensureAuth(ctx); err != nil {
		return err
	}

	// Products have no typed model, so this is always raw output
	raw, err := c.client.GetCardProducts(ctx, cardID)
	if err != nil {
		return fmt.Errorf("failed to fetch products: %w", err)
	}

	return c.printJSON(raw)
}

func (c *Cli) printCard(card *models.Card) {
	active := "inactive"
	if card.IsActive {
		active = "active"
	}

	c.io.Printf("%s (%s, %s)\n", card.Name, card.Number, active)
	c.io.Printf("  Created: %s\n", card.CreationDate.Format(time.DateOnly))
	c.io.Printf("  Expires: %s\n", card.ExpiryDate.Format(time.DateOnly))

	for _, ticket := range card.Tickets {
		c.io.Printf("  Ticket: %s (%s), balance %.2f EUR (updated %s)\n",
			ticket.Type, ticket.State, ticket.Balance,
			ticket.BalanceUpdatedAt.Format(time.DateOnly))
		for _, zone := range ticket.ValidZones {
			c.io.Printf("    Valid: %s - %s\n", zone.From, zone.To)
		}
	}
}
