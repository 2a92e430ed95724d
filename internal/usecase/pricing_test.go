package usecase

import (
	"testing"

	"servicescale/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestPricing_Total(t *testing.T) {
	p := Pricing{BasePrice: DefaultBasePrice, AdditionalZonePrice: DefaultAdditionalZonePrice}
	cases := map[int]int64{
		0: 5000,
		1: 5000,
		2: 7500,
		3: 10000,
		4: 12500,
	}
	for zones, want := range cases {
		if got := p.Total(zones); !got.Equal(decimal.NewFromInt(want)) {
			t.Fatalf("Total(%d) = %s, want %d", zones, got, want)
		}
	}
}

func TestPricingFromPricebook(t *testing.T) {
	t.Run("defaults when missing", func(t *testing.T) {
		p := PricingFromPricebook(nil)
		if !p.BasePrice.Equal(DefaultBasePrice) || !p.AdditionalZonePrice.Equal(DefaultAdditionalZonePrice) {
			t.Fatalf("unexpected pricing: %+v", p)
		}
	})

	t.Run("name match ignores case and blanks and skips deleted", func(t *testing.T) {
		entries := []entities.PricebookEntry{
			{Name: "Base HVAC System", Price: decimal.NewFromInt(1), Deleted: true},
			{Name: "  base hvac system ", Price: decimal.NewFromInt(5500)},
			{Name: "Base HVAC System", Price: decimal.NewFromInt(9999)},
			{Name: "ADDITIONAL ZONE", Price: decimal.RequireFromString("1800.50")},
		}
		p := PricingFromPricebook(entries)
		if !p.BasePrice.Equal(decimal.NewFromInt(5500)) {
			t.Fatalf("expected first active base price, got %s", p.BasePrice)
		}
		if !p.AdditionalZonePrice.Equal(decimal.RequireFromString("1800.50")) {
			t.Fatalf("unexpected additional zone price %s", p.AdditionalZonePrice)
		}
		if got := p.Total(3); !got.Equal(decimal.NewFromInt(9101)) {
			t.Fatalf("unexpected total %s", got)
		}
	})
}

func TestServiceLabel(t *testing.T) {
	if got := ServiceLabel(2); got != "2-Zone HVAC System" {
		t.Fatalf("unexpected label %q", got)
	}
}
