package enrichment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const attomBody = `{
  "status": {"code": 0, "msg": "SuccessWithResult"},
  "property": [{
    "summary": {"propClass": "Single Family Residence", "yearBuilt": 1995},
    "building": {"size": {"universalSize": 2400}, "rooms": {"beds": 3, "bathsTotal": 2.5}},
    "lot": {"lotSize1": 0.25},
    "buildingPermits": [
      {"effectiveDate": "2019-03-01", "type": "Roof", "jobValue": 9000},
      {"effectiveDate": "2022-06-15", "type": "HVAC", "description": "Replace furnace", "jobValue": 7500},
      {"effectiveDate": "2015-01-10", "type": "Plumbing"},
      {"effectiveDate": "2021-11-30", "type": "Electrical", "description": "Panel upgrade"}
    ]
  }]
}`

func TestAttomClient_Lookup(t *testing.T) {
	t.Run("maps the first property", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, buildingPermitsPath, r.URL.Path)
			assert.Equal(t, "12 Elm St", r.URL.Query().Get("address1"))
			assert.Equal(t, "Springfield, IL", r.URL.Query().Get("address2"))
			assert.Equal(t, "secret", r.Header.Get("apikey"))
			_, _ = w.Write([]byte(attomBody))
		}))
		defer srv.Close()

		c := NewAttomClient(srv.URL, "secret", 0, srv.Client(), nil)
		a, err := c.Lookup(context.Background(), " 12 Elm St ", "Springfield", "IL")
		require.NoError(t, err)

		assert.Equal(t, "Single Family Residence", a.PropertyType)
		assert.Equal(t, 2400, a.SquareFeet)
		assert.Equal(t, 10890, a.LotSizeSqFt)
		assert.Equal(t, 1995, a.YearBuilt)
		assert.Equal(t, 3, a.Bedrooms)
		assert.Equal(t, 2.5, a.Bathrooms)

		require.Len(t, a.RecentPermits, 3)
		assert.Equal(t, "HVAC", a.RecentPermits[0].Type)
		assert.Equal(t, "Electrical", a.RecentPermits[1].Type)
		assert.Equal(t, "Roof", a.RecentPermits[2].Type)
		assert.Equal(t, "Roof", a.RecentPermits[2].Description)
		assert.Equal(t, time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC), a.RecentPermits[0].Date)
	})

	t.Run("blank input", func(t *testing.T) {
		c := NewAttomClient("http://unused", "secret", 0, nil, nil)
		_, err := c.Lookup(context.Background(), "12 Elm St", " ", "IL")
		assert.ErrorIs(t, err, ErrMissingAddress)
	})

	t.Run("not configured", func(t *testing.T) {
		c := NewAttomClient("http://unused", "", 0, nil, nil)
		_, err := c.Lookup(context.Background(), "12 Elm St", "Springfield", "IL")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("upstream status code", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := NewAttomClient(srv.URL, "secret", 0, srv.Client(), nil)
		_, err := c.Lookup(context.Background(), "12 Elm St", "Springfield", "IL")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("no property", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":{"code":1,"msg":"SuccessWithoutResult"}}`))
		}))
		defer srv.Close()

		c := NewAttomClient(srv.URL, "secret", 0, srv.Client(), nil)
		_, err := c.Lookup(context.Background(), "12 Elm St", "Springfield", "IL")
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})

	t.Run("unknown property class", func(t *testing.T) {
		a := toAttributes(attomProperty{})
		assert.Equal(t, "Unknown", a.PropertyType)
		assert.Empty(t, a.RecentPermits)
	})
}
