package usecase

import (
	"testing"

	"servicescale/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestParseAddressHints(t *testing.T) {
	a := ParseAddressHints("12 Elm St, Springfield, IL 62701 - single-family, 2,400 sqft, built 1995, 3 beds 2.5 baths")
	assert.Equal(t, entities.PropertyAttributes{
		PropertyType: "Single Family",
		SquareFeet:   2400,
		YearBuilt:    1995,
		Bedrooms:     3,
		Bathrooms:    2.5,
	}, a)

	assert.True(t, ParseAddressHints("12 Elm St, Springfield, IL 62701").IsZero())
	assert.Equal(t, "Multi Family", ParseAddressHints("multi-family, 1800 square feet").PropertyType)
	assert.Equal(t, 1800, ParseAddressHints("multi-family, 1800 square feet").SquareFeet)
}

func TestParseAddressHints_StreetNumberIsNotARoomCount(t *testing.T) {
	assert.True(t, ParseAddressHints("100 Bath Rd, Springfield, IL 62701").IsZero())
	assert.True(t, ParseAddressHints("12 Beds Ln, Austin, TX 78701").IsZero())
	assert.True(t, ParseAddressHints("2400 Sqft Way, Austin, TX").IsZero())

	a := ParseAddressHints("12 Beds Ln, Austin, TX 78701, 4 beds 3 baths")
	assert.Equal(t, 4, a.Bedrooms)
	assert.Equal(t, 3.0, a.Bathrooms)
}

func TestDefaultPropertyResolver(t *testing.T) {
	r := DefaultPropertyResolver()

	t.Run("structured attributes win", func(t *testing.T) {
		c := entities.Customer{
			FullAddress: "12 Elm St, 5,000 sqft",
			Property:    entities.PropertyAttributes{SquareFeet: 1200},
		}
		a, ok := r.Resolve(c)
		assert.True(t, ok)
		assert.Equal(t, 1200, a.SquareFeet)
	})

	t.Run("address hints fall back", func(t *testing.T) {
		c := entities.Customer{Address: "12 Elm St, 5,000 sqft", City: "Springfield"}
		a, ok := r.Resolve(c)
		assert.True(t, ok)
		assert.Equal(t, 5000, a.SquareFeet)
	})

	t.Run("nothing known", func(t *testing.T) {
		_, ok := r.Resolve(entities.Customer{Address: "12 Elm St"})
		assert.False(t, ok)
	})

	t.Run("street named like a hint", func(t *testing.T) {
		c := entities.Customer{Address: "100 Bath Rd", City: "Springfield", State: "IL", PostalCode: "62701"}
		_, ok := r.Resolve(c)
		assert.False(t, ok)
	})
}
