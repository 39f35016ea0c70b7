package nella

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/zini/nella/pkg/api"
	"github.com/zini/nella/pkg/models"
)

// GetCard returns full card detail, including tickets, for the given card
// number or id
func (c *Client) GetCard(ctx context.Context, cardID string) (*models.Card, error) {
	raw, err := c.GetCardRaw(ctx, cardID)
	if err != nil {
		return nil, err
	}

	var resp api.CardResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode card response: %w", err)
	}

	return mapCard(&resp)
}

// GetCardRaw returns the card payload as parsed JSON without model mapping
func (c *Client) GetCardRaw(ctx context.Context, cardID string) (json.RawMessage, error) {
	return c.do(ctx, "cards/"+url.PathEscape(cardID), nil, http.MethodGet)
}

// GetCards returns all cards of the logged in user with full detail. The
// cards/ listing is a summary, so each entry costs a follow-up cards/{id}
// request keyed by card number.
func (c *Client) GetCards(ctx context.Context) ([]models.Card, error) {
	raw, err := c.GetCardsRaw(ctx)
	if err != nil {
		return nil, err
	}

	var summaries []api.CardSummary
	if err := json.Unmarshal(raw, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode card listing: %w", err)
	}

	cards := make([]models.Card, 0, len(summaries))
	for _, summary := range summaries {
		card, err := c.GetCard(ctx, summary.Number)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch card %s: %w", summary.Number, err)
		}
		cards = append(cards, *card)
	}

	c.log.Debug("fetched cards", "count", len(cards))
	return cards, nil
}

// GetCardsRaw returns the card listing as parsed JSON without the follow-up
// detail requests
func (c *Client) GetCardsRaw(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, "cards/", nil, http.MethodGet)
}

// GetCardProducts returns the products that can be bought for the card.
// The payload has no typed model yet and is passed through as-is.
func (c *Client) GetCardProducts(ctx context.Context, cardID string) (json.RawMessage, error) {
	return c.do(ctx, "cards/products/ThatCanBeBought/"+url.PathEscape(cardID), nil, http.MethodGet)
}

// mapCard converts a wire card payload into the domain model
func mapCard(resp *api.CardResponse) (*models.Card, error) {
	expiry, err := ParseAPIDate(resp.ExpiryDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse card expiry date: %w", err)
	}
	created, err := ParseAPIDate(resp.DeliveredDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse card delivery date: %w", err)
	}

	tickets := make([]models.Ticket, 0, len(resp.Tickets))
	for _, t := range resp.Tickets {
		ticket, err := mapTicket(&t)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, *ticket)
	}

	return &models.Card{
		Name:         resp.Name,
		Number:       resp.Number,
		CardID:       resp.ID,
		ExpiryDate:   expiry,
		CreationDate: created,
		IsActive:     resp.IsActive,
		Tickets:      tickets,
	}, nil
}

// mapTicket converts a wire ticket payload, flattening each validity area
// into a from/to zone name pair
func mapTicket(resp *api.TicketResponse) (*models.Ticket, error) {
	updated, err := ParseAPIDate(resp.BalanceUpdatedDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ticket balance date: %w", err)
	}

	zones := make([]models.Zone, 0, len(resp.ValidityArea))
	for _, area := range resp.ValidityArea {
		zones = append(zones, models.Zone{
			From: area.FromZone.Name,
			To:   area.ToZone.Name,
		})
	}

	return &models.Ticket{
		Balance:          resp.Balance,
		BalanceUpdatedAt: updated,
		State:            resp.State,
		Type:             resp.TicketType,
		ValidZones:       zones,
	}, nil
}
