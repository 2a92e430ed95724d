package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus represents where a quote stands with the customer.
//
// Domain notes:
//   - active -> converted and active -> lost are the transitions offered to users.
//   - No transition guard is applied; any known status may be written at any time.
type QuoteStatus string

const (
	QuoteStatusActive    QuoteStatus = "active"
	QuoteStatusConverted QuoteStatus = "converted"
	QuoteStatusLost      QuoteStatus = "lost"
)

// ParseQuoteStatus accepts the known status names, case-insensitively.
func ParseQuoteStatus(s string) (QuoteStatus, bool) {
	switch QuoteStatus(normalizeToken(s)) {
	case QuoteStatusActive:
		return QuoteStatusActive, true
	case QuoteStatusConverted:
		return QuoteStatusConverted, true
	case QuoteStatusLost:
		return QuoteStatusLost, true
	}
	return "", false
}

// QuoteStatuses lists every status in display order.
func QuoteStatuses() []QuoteStatus {
	return []QuoteStatus{QuoteStatusActive, QuoteStatusConverted, QuoteStatusLost}
}

type PropertyAddress struct {
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
}

// PropertyDetails is the display snapshot of the property taken when the quote
// is created. It is not refreshed when the customer changes later.
type PropertyDetails struct {
	Address   PropertyAddress `json:"address"`
	Type      string          `json:"type"`
	Size      string          `json:"size"`
	YearBuilt string          `json:"year_built"`
	Bedrooms  string          `json:"bedrooms"`
	Bathrooms string          `json:"bathrooms"`
}

// Quote is a priced proposal bound to a template snapshot.
//
// Monetary representation:
//   - Total is the computed job price.
//
// Tracking timestamps are nil until the event happens.
type Quote struct {
	ID              string            `json:"id"`
	OwnerID         string            `json:"owner_id"`
	CustomerID      string            `json:"customer_id"`
	CustomerName    string            `json:"customer_name"`
	Status          QuoteStatus       `json:"status"`
	Service         string            `json:"service"`
	Total           decimal.Decimal   `json:"total"`
	Zones           int               `json:"zones"`
	TemplateID      string            `json:"template_id"`
	Content         []TemplateSection `json:"content"`
	PropertyDetails PropertyDetails   `json:"property_details"`
	CreatedAt       time.Time         `json:"created_at"`
	SentAt          *time.Time        `json:"sent_at,omitempty"`
	OpenedAt        *time.Time        `json:"opened_at,omitempty"`
	ClickedAt       *time.Time        `json:"clicked_at,omitempty"`
}
