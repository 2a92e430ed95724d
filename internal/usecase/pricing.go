package usecase

import (
	"fmt"
	"strings"

	"servicescale/internal/domain/entities"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Pricebook item names the quote total is priced from.
const (
	BasePriceItemName      = "Base HVAC System"
	AdditionalZoneItemName = "Additional Zone"
)

var (
	DefaultBasePrice           = decimal.NewFromInt(5000)
	DefaultAdditionalZonePrice = decimal.NewFromInt(2500)
)

// Pricing is the pair of unit prices a zone-based quote is computed from.
type Pricing struct {
	BasePrice           decimal.Decimal
	AdditionalZonePrice decimal.Decimal
}

// PricingFromPricebook reads both prices from the catalog, falling back to the
// defaults for names that are missing.
func PricingFromPricebook(entries []entities.PricebookEntry) Pricing {
	p := Pricing{BasePrice: DefaultBasePrice, AdditionalZonePrice: DefaultAdditionalZonePrice}
	if v, ok := lookupPrice(entries, BasePriceItemName); ok {
		p.BasePrice = v
	}
	if v, ok := lookupPrice(entries, AdditionalZoneItemName); ok {
		p.AdditionalZonePrice = v
	}
	return p
}

// Total is base + (zones-1) x additional zone. Zone counts below one are priced
// as a single zone.
func (p Pricing) Total(zones int) decimal.Decimal {
	extra := zones - 1
	if extra < 0 {
		extra = 0
	}
	return p.BasePrice.Add(p.AdditionalZonePrice.Mul(decimal.NewFromInt(int64(extra))))
}

// lookupPrice matches names case-insensitively, ignoring surrounding blanks and
// soft-deleted entries. The first match in list order wins.
func lookupPrice(entries []entities.PricebookEntry, name string) (decimal.Decimal, bool) {
	want := strings.TrimSpace(name)
	for _, e := range entries {
		if e.Deleted {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(e.Name), want) {
			return e.Price, true
		}
	}
	return decimal.Zero, false
}

func ServiceLabel(zones int) string {
	return fmt.Sprintf("%d-Zone HVAC System", zones)
}

var displayPrinter = message.NewPrinter(language.English)

// propertyDetails snapshots the attributes as display strings. Unknown values
// stay empty.
func propertyDetails(c entities.Customer, a entities.PropertyAttributes) entities.PropertyDetails {
	d := entities.PropertyDetails{
		Address: entities.PropertyAddress{
			StreetAddress: c.Address,
			City:          c.City,
			State:         c.State,
			PostalCode:    c.PostalCode,
		},
		Type: a.PropertyType,
	}
	if a.SquareFeet > 0 {
		d.Size = displayPrinter.Sprintf("%d sqft", a.SquareFeet)
	}
	if a.YearBuilt > 0 {
		d.YearBuilt = fmt.Sprintf("%d", a.YearBuilt)
	}
	if a.Bedrooms > 0 {
		d.Bedrooms = fmt.Sprintf("%d", a.Bedrooms)
	}
	if a.Bathrooms > 0 {
		d.Bathrooms = decimal.NewFromFloat(a.Bathrooms).String()
	}
	return d
}
