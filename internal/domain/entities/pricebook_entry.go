package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricebookEntry is one priced catalog item.
//
// Monetary representation:
//   - Price is a non-negative decimal unit price.
type PricebookEntry struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	BatchID     string          `json:"upload_id"`
	Deleted     bool            `json:"deleted"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
