package entities

import "time"

// Permit is a recently filed building permit reported by the property data service.
type Permit struct {
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Value       float64   `json:"value"`
}

// PropertyAttributes are the enrichment fields attached to a customer.
//
// Sizes are square feet. Zero values mean "unknown".
type PropertyAttributes struct {
	PropertyType  string   `json:"property_type"`
	SquareFeet    int      `json:"property_size"`
	LotSizeSqFt   int      `json:"lot_size"`
	YearBuilt     int      `json:"year_built"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     float64  `json:"bathrooms"`
	RecentPermits []Permit `json:"recent_permits,omitempty"`
}

// IsZero reports whether no structured attribute has been recorded.
func (a PropertyAttributes) IsZero() bool {
	return a.PropertyType == "" && a.SquareFeet == 0 && a.LotSizeSqFt == 0 &&
		a.YearBuilt == 0 && a.Bedrooms == 0 && a.Bathrooms == 0
}
