package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"servicescale/internal/domain/entities"
	mock_interfaces "servicescale/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func elmStreet() entities.Customer {
	return entities.Customer{
		Name:       "Jane Doe",
		Address:    "12 Elm St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
		Property: entities.PropertyAttributes{
			PropertyType: "Single Family",
			SquareFeet:   3000,
			YearBuilt:    1995,
			Bedrooms:     4,
			Bathrooms:    3,
		},
	}
}

func TestAssembleQuote(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	pricing := Pricing{BasePrice: DefaultBasePrice, AdditionalZonePrice: DefaultAdditionalZonePrice}
	tpl := &entities.Template{ID: "tpl-1", Sections: []entities.TemplateSection{
		{ID: "s2", Title: "Scope", Order: 2},
		{ID: "s1", Title: "Intro", Order: 1},
	}}

	q, err := AssembleQuote(elmStreet(), pricing, entities.DefaultRuleConfig(), tpl, DefaultPropertyResolver(), now)
	require.NoError(t, err)

	assert.Equal(t, 3, q.Zones)
	assert.Equal(t, "3-Zone HVAC System", q.Service)
	assert.True(t, q.Total.Equal(decimal.NewFromInt(10000)), q.Total.String())
	assert.Equal(t, entities.QuoteStatusActive, q.Status)
	assert.Equal(t, "tpl-1", q.TemplateID)
	require.Len(t, q.Content, 2)
	assert.Equal(t, "Intro", q.Content[0].Title)
	assert.Equal(t, entities.PropertyDetails{
		Address:   entities.PropertyAddress{StreetAddress: "12 Elm St", City: "Springfield", State: "IL", PostalCode: "62701"},
		Type:      "Single Family",
		Size:      "3,000 sqft",
		YearBuilt: "1995",
		Bedrooms:  "4",
		Bathrooms: "3",
	}, q.PropertyDetails)
	assert.Equal(t, now, q.CreatedAt)

	t.Run("template snapshot is detached", func(t *testing.T) {
		tpl.Sections[0].Title = "Changed"
		assert.Equal(t, "Scope", q.Content[1].Title)
	})

	t.Run("no template", func(t *testing.T) {
		q, err := AssembleQuote(elmStreet(), pricing, entities.DefaultRuleConfig(), nil, DefaultPropertyResolver(), now)
		require.NoError(t, err)
		assert.Equal(t, "", q.TemplateID)
		assert.NotNil(t, q.Content)
		assert.Empty(t, q.Content)
	})

	t.Run("missing address", func(t *testing.T) {
		c := elmStreet()
		c.City = " "
		_, err := AssembleQuote(c, pricing, entities.DefaultRuleConfig(), nil, DefaultPropertyResolver(), now)
		if !errors.Is(err, ErrMissingPropertyAddress) {
			t.Fatalf("expected ErrMissingPropertyAddress, got %v", err)
		}
	})

	t.Run("unknown attributes", func(t *testing.T) {
		c := elmStreet()
		c.Property = entities.PropertyAttributes{}
		q, err := AssembleQuote(c, pricing, entities.DefaultRuleConfig(), nil, DefaultPropertyResolver(), now)
		require.NoError(t, err)
		assert.Equal(t, 1, q.Zones)
		assert.True(t, q.Total.Equal(decimal.NewFromInt(5000)))
		assert.Equal(t, "", q.PropertyDetails.Size)
		assert.Equal(t, "", q.PropertyDetails.Bathrooms)
	})
}

func TestQuoteUseCase_GenerateQuotes(t *testing.T) {
	s := newTestStack()
	ctx := ownerCtx()

	var ids []string
	for _, name := range []string{"A", "B", "C", "D"} {
		c := elmStreet()
		c.Name = name
		added, err := s.customers.AddMany(ctx, []entities.Customer{c}, "b-1")
		require.NoError(t, err)
		ids = append(ids, added[0].ID)
	}
	noCity, err := s.customers.CreateManual(ctx, CustomerInput{Name: "E", Address: "1 Main St", State: "IL"})
	require.NoError(t, err)
	ids = append(ids, noCity.ID)

	_, err = s.pricebook.CreateManual(ctx, PricebookEntryInput{Name: "Base HVAC System", Price: decimal.NewFromInt(6000)})
	require.NoError(t, err)

	res := s.quotes.GenerateQuotes(ctx, ids, "")
	assert.Equal(t, BatchResult{Succeeded: 4, Failed: 1}, res)

	quotes, err := s.quotes.List(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 4)
	for _, q := range quotes {
		assert.True(t, q.Total.Equal(decimal.NewFromInt(11000)), q.Total.String())
		assert.Equal(t, 3, q.Zones)
		assert.Empty(t, q.Content)
	}

	t.Run("deleted customers are skipped", func(t *testing.T) {
		_, err := s.customers.SoftDelete(ctx, ids[0])
		require.NoError(t, err)
		res := s.quotes.GenerateQuotes(ctx, ids[:2], "")
		assert.Equal(t, BatchResult{Succeeded: 1}, res)
	})

	t.Run("unknown customer counts as failed", func(t *testing.T) {
		res := s.quotes.GenerateQuotes(ctx, []string{"missing"}, "")
		assert.Equal(t, BatchResult{Failed: 1}, res)
	})
}

func TestQuoteUseCase_GenerateQuotesStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIRecordStore(ctrl)

	s := newTestStack()
	pricebook := NewPricebookUseCase(store, nil)
	quotes := NewQuoteUseCase(s.store, s.customers, pricebook, s.templates, s.rules, nil, nil)

	store.EXPECT().Select(gomock.Any(), TablePricebookEntries, gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	res := quotes.GenerateQuotes(ownerCtx(), []string{"a", "b", "c"}, "")
	assert.Equal(t, BatchResult{Failed: 3}, res)
}

func TestQuoteUseCase_RulesChangeAffectsNewQuotesOnly(t *testing.T) {
	s := newTestStack()
	ctx := ownerCtx()

	added, err := s.customers.AddMany(ctx, []entities.Customer{elmStreet()}, "b-1")
	require.NoError(t, err)

	first, err := s.quotes.CreateFromCustomer(ctx, added[0].ID, "")
	require.NoError(t, err)
	assert.Equal(t, 3, first.Zones)

	maxZones := 2
	_, err = s.rules.Update(ctx, entities.RuleConfigPatch{MaxZones: &maxZones})
	require.NoError(t, err)

	second, err := s.quotes.CreateFromCustomer(ctx, added[0].ID, "")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Zones)
	assert.True(t, second.Total.Equal(decimal.NewFromInt(7500)))

	stored, err := s.quotes.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Zones)
	assert.True(t, stored.Total.Equal(decimal.NewFromInt(10000)))
}

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	s := newTestStack()
	ctx := ownerCtx()

	c, err := s.customers.CreateManual(ctx, CustomerInput{Name: "Jane"})
	require.NoError(t, err)

	_, err = s.quotes.CreateQuote(ctx, QuoteInput{CustomerID: c.ID, Service: "Duct cleaning", Total: decimal.NewFromInt(-1)})
	if !errors.Is(err, ErrInvalidQuoteTotal) {
		t.Fatalf("expected ErrInvalidQuoteTotal, got %v", err)
	}

	q, err := s.quotes.CreateQuote(ctx, QuoteInput{CustomerID: c.ID, Service: " Duct cleaning ", Total: decimal.RequireFromString("349.99")})
	require.NoError(t, err)
	assert.Equal(t, "Duct cleaning", q.Service)
	assert.Equal(t, "Jane", q.CustomerName)
	assert.True(t, q.Total.Equal(decimal.RequireFromString("349.99")))
}

func TestQuoteUseCase_StatusAndTracking(t *testing.T) {
	s := newTestStack()
	ctx := ownerCtx()

	added, err := s.customers.AddMany(ctx, []entities.Customer{elmStreet()}, "b-1")
	require.NoError(t, err)
	q, err := s.quotes.CreateFromCustomer(ctx, added[0].ID, "")
	require.NoError(t, err)
	assert.Nil(t, q.SentAt)
	assert.Nil(t, q.OpenedAt)

	t.Run("update status", func(t *testing.T) {
		updated, err := s.quotes.UpdateStatus(ctx, q.ID, " Converted ")
		require.NoError(t, err)
		assert.Equal(t, entities.QuoteStatusConverted, updated.Status)

		// no transition guard
		updated, err = s.quotes.UpdateStatus(ctx, q.ID, "active")
		require.NoError(t, err)
		assert.Equal(t, entities.QuoteStatusActive, updated.Status)

		_, err = s.quotes.UpdateStatus(ctx, q.ID, "pending")
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("mark sent", func(t *testing.T) {
		sent, err := s.quotes.MarkSent(ctx, q.ID)
		require.NoError(t, err)
		require.NotNil(t, sent.SentAt)
	})

	t.Run("track view keeps the first open", func(t *testing.T) {
		first, err := s.quotes.TrackView(ctx, q.ID)
		require.NoError(t, err)
		require.NotNil(t, first.OpenedAt)
		require.NotNil(t, first.ClickedAt)
		assert.True(t, first.OpenedAt.Equal(*first.ClickedAt))

		second, err := s.quotes.TrackView(ctx, q.ID)
		require.NoError(t, err)
		assert.True(t, second.OpenedAt.Equal(*first.OpenedAt))
		assert.True(t, second.ClickedAt.After(*first.ClickedAt))
	})

	t.Run("unknown quote", func(t *testing.T) {
		_, err := s.quotes.TrackView(ctx, "missing")
		if !IsNotFound(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.quotes.Delete(ctx, q.ID))
		if err := s.quotes.Delete(ctx, q.ID); !IsNotFound(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestQuoteUseCase_Stats(t *testing.T) {
	s := newTestStack()
	ctx := ownerCtx()

	stats, err := s.quotes.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.ConversionRate)

	c, err := s.customers.CreateManual(ctx, CustomerInput{Name: "Jane"})
	require.NoError(t, err)

	totals := []string{"1000", "2000", "3000"}
	var ids []string
	for _, total := range totals {
		q, err := s.quotes.CreateQuote(ctx, QuoteInput{CustomerID: c.ID, Service: "Tune-up", Total: decimal.RequireFromString(total)})
		require.NoError(t, err)
		ids = append(ids, q.ID)
	}
	_, err = s.quotes.UpdateStatus(ctx, ids[1], "converted")
	require.NoError(t, err)
	_, err = s.quotes.UpdateStatus(ctx, ids[2], "lost")
	require.NoError(t, err)

	stats, err = s.quotes.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, map[entities.QuoteStatus]int{
		entities.QuoteStatusActive:    1,
		entities.QuoteStatusConverted: 1,
		entities.QuoteStatusLost:      1,
	}, stats.ByStatus)
	assert.True(t, stats.TotalValue.Equal(decimal.NewFromInt(6000)))
	assert.True(t, stats.ConvertedValue.Equal(decimal.NewFromInt(2000)))
	assert.InDelta(t, 1.0/3.0, stats.ConversionRate, 1e-9)
}

func TestQuoteUseCase_RequiresOwner(t *testing.T) {
	s := newTestStack()
	_, err := s.quotes.List(context.Background())
	if !errors.Is(err, ErrMissingOwner) {
		t.Fatalf("expected ErrMissingOwner, got %v", err)
	}
}

func TestQuoteUseCase_PropertySnapshotSurvivesCustomerEdits(t *testing.T) {
	s := newTestStack()
	ctx := ownerCtx()

	added, err := s.customers.AddMany(ctx, []entities.Customer{elmStreet()}, "b-1")
	require.NoError(t, err)
	q, err := s.quotes.CreateFromCustomer(ctx, added[0].ID, "")
	require.NoError(t, err)
	want := q.PropertyDetails

	street, city, ptype := "99 Oak Ave", "Chicago", "Condo"
	size, beds, baths := 900, 1, 1.0
	_, err = s.customers.Update(ctx, added[0].ID, CustomerPatch{
		Address:      &street,
		City:         &city,
		PropertyType: &ptype,
		SquareFeet:   &size,
		Bedrooms:     &beds,
		Bathrooms:    &baths,
	})
	require.NoError(t, err)
	_, err = s.customers.ApplyEnrichment(ctx, added[0].ID, entities.PropertyAttributes{PropertyType: "Duplex", SquareFeet: 1500})
	require.NoError(t, err)

	got, err := s.quotes.Get(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got.PropertyDetails)
	assert.Equal(t, "12 Elm St", got.PropertyDetails.Address.StreetAddress)
	assert.Equal(t, "3,000 sqft", got.PropertyDetails.Size)
	assert.Equal(t, 3, got.Zones)
}

func TestQuoteUseCase_StreetNamedLikeAHintPricesOneZone(t *testing.T) {
	s := newTestStack()
	ctx := ownerCtx()

	c, err := s.customers.CreateManual(ctx, CustomerInput{
		Name: "Bath Road", Address: "100 Bath Rd", City: "Springfield", State: "IL", PostalCode: "62701",
	})
	require.NoError(t, err)

	q, err := s.quotes.CreateFromCustomer(ctx, c.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 1, q.Zones)
	assert.True(t, q.Total.Equal(decimal.NewFromInt(5000)), q.Total.String())
	assert.Equal(t, "", q.PropertyDetails.Bathrooms)
}
