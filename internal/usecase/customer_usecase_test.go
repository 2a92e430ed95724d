package usecase

import (
	"testing"

	"servicescale/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerUseCase_List(t *testing.T) {
	s := newTestStack()
	ctx := ownerCtx()

	big := elmStreet()
	big.Name = "Big House"
	small := entities.Customer{Name: "Small Flat", Email: "flat@example.com", Address: "4 Main St", City: "Shelbyville", State: "IL"}
	_, err := s.customers.AddMany(ctx, []entities.Customer{big, small}, "b-1")
	require.NoError(t, err)
	hinted := entities.Customer{Name: "Hinted", Address: "9 Oak Ave, 5,000 sqft", City: "Springfield", State: "IL"}
	added, err := s.customers.AddMany(ctx, []entities.Customer{hinted}, "b-2")
	require.NoError(t, err)

	all, err := s.customers.List(ctx, CustomerFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	zones := map[string]int{}
	for _, v := range all {
		zones[v.Name] = v.Zones
	}
	assert.Equal(t, map[string]int{"Big House": 3, "Small Flat": 1, "Hinted": 3}, zones)

	bySearch, err := s.customers.List(ctx, CustomerFilter{Search: "FLAT@"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Small Flat", bySearch[0].Name)

	byCity, err := s.customers.List(ctx, CustomerFilter{City: "springfield", BatchID: "b-1"})
	require.NoError(t, err)
	require.Len(t, byCity, 1)
	assert.Equal(t, "Big House", byCity[0].Name)

	_, err = s.customers.SoftDelete(ctx, added[0].ID)
	require.NoError(t, err)
	visible, err := s.customers.List(ctx, CustomerFilter{})
	require.NoError(t, err)
	assert.Len(t, visible, 2)
	withDeleted, err := s.customers.List(ctx, CustomerFilter{IncludeDeleted: true})
	require.NoError(t, err)
	assert.Len(t, withDeleted, 3)
}

func TestCustomerUseCase_ListZoneFilterIgnoresStreetNames(t *testing.T) {
	s := newTestStack()
	ctx := ownerCtx()

	_, err := s.customers.AddMany(ctx, []entities.Customer{
		{Name: "Bath Road", Address: "100 Bath Rd", City: "Springfield", State: "IL", PostalCode: "62701"},
		{Name: "Beds Lane", Address: "12 Beds Ln", City: "Austin", State: "TX"},
	}, "b-1")
	require.NoError(t, err)

	multi, err := s.customers.List(ctx, CustomerFilter{Zones: 2})
	require.NoError(t, err)
	assert.Empty(t, multi)

	single, err := s.customers.List(ctx, CustomerFilter{Zones: 1})
	require.NoError(t, err)
	assert.Len(t, single, 2)
}

func TestCustomerUseCase_UpdateRebuildsFullAddress(t *testing.T) {
	s := newTestStack()
	ctx := ownerCtx()

	c, err := s.customers.CreateManual(ctx, CustomerInput{Name: "Jane", Address: "12 Elm St", City: "Springfield", State: "IL", PostalCode: "62701"})
	require.NoError(t, err)
	assert.Equal(t, "12 Elm St, Springfield, IL 62701", c.FullAddress)

	city := "Chicago"
	updated, err := s.customers.Update(ctx, c.ID, CustomerPatch{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Chicago", updated.City)
	assert.Equal(t, "12 Elm St, Chicago, IL 62701", updated.FullAddress)

	email := "jane@example.com"
	updated, err = s.customers.Update(ctx, c.ID, CustomerPatch{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "12 Elm St, Chicago, IL 62701", updated.FullAddress)
	assert.Equal(t, email, updated.Email)

	blank := " "
	if _, err := s.customers.Update(ctx, c.ID, CustomerPatch{Name: &blank}); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCustomerUseCase_CreateManualRequiresName(t *testing.T) {
	s := newTestStack()
	if _, err := s.customers.CreateManual(ownerCtx(), CustomerInput{Email: "x@example.com"}); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPricebookUseCase_Validation(t *testing.T) {
	s := newTestStack()
	ctx := ownerCtx()

	if _, err := s.pricebook.CreateManual(ctx, PricebookEntryInput{Name: "Filter", Price: decimal.RequireFromString("-1")}); err != ErrNegativePrice {
		t.Fatalf("expected ErrNegativePrice, got %v", err)
	}
	e, err := s.pricebook.CreateManual(ctx, PricebookEntryInput{Name: " Filter ", Price: decimal.RequireFromString("19.99")})
	require.NoError(t, err)
	assert.Equal(t, "Filter", e.Name)

	price := decimal.RequireFromString("24.99")
	updated, err := s.pricebook.Update(ctx, e.ID, PricebookEntryPatch{Price: &price})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(price))

	_, err = s.pricebook.SoftDelete(ctx, e.ID)
	require.NoError(t, err)
	_, ok, err := s.pricebook.PriceByName(ctx, "filter")
	require.NoError(t, err)
	assert.False(t, ok)
}
