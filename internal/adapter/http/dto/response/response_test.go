package response

import (
	"testing"
	"time"

	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromCustomerView(t *testing.T) {
	permitDate := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	v := usecase.CustomerView{
		Customer: entities.Customer{
			ID:          "c1",
			Name:        "Jane",
			FullAddress: "1 Elm St, Austin, TX 78701",
			BatchID:     entities.ManualBatchID,
			Property: entities.PropertyAttributes{
				PropertyType:  "SFR",
				SquareFeet:    3000,
				Bathrooms:     3,
				RecentPermits: []entities.Permit{{Date: permitDate, Type: "HVAC", Description: "Replace unit", Value: 9000}},
			},
		},
		Zones: 3,
	}

	res := FromCustomerView(v)
	if res.ID != "c1" || res.Zones != 3 || res.PropertySize != 3000 || res.Bathrooms != 3 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.UploadName != "Manually Added" {
		t.Fatalf("expected manual batch label, got %q", res.UploadName)
	}
	if len(res.RecentPermits) != 1 || res.RecentPermits[0].Date != "2024-03-09" {
		t.Fatalf("unexpected permits: %+v", res.RecentPermits)
	}
}

func TestFromPricebookEntry(t *testing.T) {
	res := FromPricebookEntry(entities.PricebookEntry{ID: "p1", Name: "Base", Price: decimal.NewFromInt(5000), BatchID: "42"})
	if res.Price != "5000.00" {
		t.Fatalf("expected 5000.00, got %s", res.Price)
	}
	if res.UploadName != "Upload 42" {
		t.Fatalf("expected Upload 42, got %q", res.UploadName)
	}
}

func TestFromQuote(t *testing.T) {
	res := FromQuote(entities.Quote{ID: "q1", Status: entities.QuoteStatusActive, Total: decimal.RequireFromString("10000.5")})
	if res.Total != "10000.50" || res.Status != "active" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Content == nil {
		t.Fatalf("expected empty content to render as an empty list")
	}
}

func TestFromQuoteStats(t *testing.T) {
	res := FromQuoteStats(usecase.QuoteStats{
		Total:          2,
		ByStatus:       map[entities.QuoteStatus]int{entities.QuoteStatusConverted: 1, entities.QuoteStatusActive: 1},
		TotalValue:     decimal.NewFromInt(15000),
		ConvertedValue: decimal.NewFromInt(5000),
		ConversionRate: 0.5,
	})
	if res.ByStatus["lost"] != 0 || res.ByStatus["converted"] != 1 || len(res.ByStatus) != 3 {
		t.Fatalf("unexpected status counts: %v", res.ByStatus)
	}
	if res.TotalValue != "15000.00" || res.ConvertedValue != "5000.00" {
		t.Fatalf("unexpected values: %+v", res)
	}
}

func TestFromTemplate_SortsSections(t *testing.T) {
	res := FromTemplate(entities.Template{
		ID: "t1",
		Sections: []entities.TemplateSection{
			{ID: "b", Order: 2},
			{ID: "a", Order: 1},
		},
	})
	if len(res.Sections) != 2 || res.Sections[0].ID != "a" {
		t.Fatalf("expected sections ordered by Order, got %+v", res.Sections)
	}
}

func TestFromUpload(t *testing.T) {
	res := FromUpload(entities.Upload{ID: "7", Kind: entities.UploadKindPricebook, RowCount: 3})
	if res.Name != "Upload 7" || res.Kind != "pricebook" || res.RowCount != 3 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}
