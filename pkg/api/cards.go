package api

// CardSummary represents one entry of the cards/ listing. The listing is a
// shortened view; full card detail requires a follow-up cards/{id} request
// keyed by Number.
type CardSummary struct {
	Name   string `json:"Name"`
	Number string `json:"Number"`
}

// CardResponse represents the full cards/{id} payload
type CardResponse struct {
	Name          string           `json:"Name"`
	Number        string           `json:"Number"`
	ID            string           `json:"Id"`
	ExpiryDate    string           `json:"ExpiryDate"`
	IsActive      bool             `json:"IsActive"`
	DeliveredDate string           `json:"DeliveredDate"` // card creation date
	Tickets       []TicketResponse `json:"Tickets"`
}

// TicketResponse represents a single ticket inside a card payload
type TicketResponse struct {
	Balance            float64                `json:"Balance"`
	BalanceUpdatedDate string                 `json:"BalanceUpdatedDate"`
	State              string                 `json:"State"`
	TicketType         string                 `json:"TicketType"`
	ValidityArea       []ValidityAreaResponse `json:"ValidityArea"`
}

// ValidityAreaResponse represents one fare zone boundary pair of a ticket
type ValidityAreaResponse struct {
	FromZone ZoneRef `json:"FromZone"`
	ToZone   ZoneRef `json:"ToZone"`
}

// ZoneRef is a named zone reference inside a validity area
type ZoneRef struct {
	Name string `json:"Name"`
}
