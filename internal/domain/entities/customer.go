package entities

import (
	"strings"
	"time"
)

// Customer is the canonical customer record.
//
// FullAddress is derived from the address components and must never be set by hand:
// call RefreshFullAddress after touching Address, City, State or PostalCode.
type Customer struct {
	ID          string             `json:"id"`
	OwnerID     string             `json:"owner_id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Address     string             `json:"address"`
	City        string             `json:"city"`
	State       string             `json:"state"`
	PostalCode  string             `json:"postal_code"`
	FullAddress string             `json:"full_address"`
	Property    PropertyAttributes `json:"property"`
	BatchID     string             `json:"upload_id"`
	Deleted     bool               `json:"deleted"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func (c *Customer) RefreshFullAddress() {
	c.FullAddress = CombineAddress(c.Address, c.City, c.State, c.PostalCode)
}

// HasPropertyAddress reports whether street, city and state are all present.
func (c Customer) HasPropertyAddress() bool {
	return strings.TrimSpace(c.Address) != "" &&
		strings.TrimSpace(c.City) != "" &&
		strings.TrimSpace(c.State) != ""
}

// CombineAddress renders "street, city, state zip", skipping empty parts.
func CombineAddress(street, city, state, postalCode string) string {
	parts := make([]string, 0, 3)
	if s := strings.TrimSpace(street); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(city); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(strings.TrimSpace(state) + " " + strings.TrimSpace(postalCode)); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}
