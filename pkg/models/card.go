package models

import "time"

// Card represents a TKL travel card. A card owns its tickets by value.
type Card struct {
	Name         string    `json:"name"`          // Name user-assigned card name
	Number       string    `json:"number"`        // Number card number printed on the card
	CardID       string    `json:"card_id"`       // CardID backend identifier
	ExpiryDate   time.Time `json:"expiry_date"`   // ExpiryDate card expiration date
	CreationDate time.Time `json:"creation_date"` // CreationDate card delivery date
	IsActive     bool      `json:"is_active"`     // IsActive whether the card is active
	Tickets      []Ticket  `json:"tickets"`       // Tickets tickets loaded on the card
}

// Ticket represents a single ticket loaded on a travel card
type Ticket struct {
	Balance          float64   `json:"balance"`            // Balance remaining value in euros
	BalanceUpdatedAt time.Time `json:"balance_updated_at"` // BalanceUpdatedAt last balance update
	State            string    `json:"state"`              // State backend ticket state
	Type             string    `json:"type"`               // Type backend ticket type
	ValidZones       []Zone    `json:"valid_zones"`        // ValidZones fare zones the ticket covers
}

// Zone is a fare zone boundary pair a ticket is valid between
type Zone struct {
	From string `json:"from"`
	To   string `json:"to"`
}
