package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servicescale/internal/auth"
	"servicescale/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Server:      config.ServerConfig{AppEnv: "test", Port: "0"},
		JWT:         config.JWTConfig{SecretKey: "routes-secret"},
		RecordStore: config.RecordStoreMemory,
		BatchNodeID: 1,
	}
}

type apiClient struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func (a apiClient) do(method, path, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func newTestAPI(t *testing.T) apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := memoryConfig()
	h, err := buildHandlers(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	token, err := auth.GenerateJWT("owner-1", cfg.JWT.SecretKey, time.Hour)
	require.NoError(t, err)
	return apiClient{t: t, router: NewRouter(cfg, zap.NewNop(), h), token: token}
}

func TestRouter_PingAndAuth(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/v1/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)

	anon := api
	anon.token = ""
	w = anon.do(http.MethodGet, "/v1/customers", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_QuoteFromManualCustomer(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/v1/customers", `{"name":"Jane Doe","address":"12 Elm St","city":"Springfield","state":"IL","postal_code":"62701"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var customer struct {
		ID          string `json:"id"`
		FullAddress string `json:"full_address"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customer))
	assert.Equal(t, "12 Elm St, Springfield, IL 62701", customer.FullAddress)

	w = api.do(http.MethodPatch, "/v1/customers/"+customer.ID, `{"property_size":3000,"bathrooms":3}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodPost, "/v1/quotes", `{"customer_id":"`+customer.ID+`"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var quote struct {
		ID     string `json:"id"`
		Total  string `json:"total"`
		Zones  int    `json:"zones"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Equal(t, 3, quote.Zones)
	assert.Equal(t, "10000.00", quote.Total)
	assert.Equal(t, "active", quote.Status)

	w = api.do(http.MethodPatch, "/v1/quotes/"+quote.ID+"/status", `{"status":"converted"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodGet, "/v1/quotes/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"conversion_rate":1`)
}

func TestRouter_ZoneRulesRoundTrip(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPatch, "/v1/settings/hvac-zone-rules", `{"max_zones":2}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodGet, "/v1/settings/hvac-zone-rules", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"max_zones":2`)
	assert.Contains(t, w.Body.String(), `"base_zones":1`)
}

func TestRouter_EnrichmentDisabledCountsFailures(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/v1/customers", `{"name":"Jane","address":"1 Main St","city":"Austin","state":"TX"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var customer struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customer))

	w = api.do(http.MethodPost, "/v1/customers/enrich", `{"customer_ids":["`+customer.ID+`"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"succeeded":0,"failed":1}`, w.Body.String())
}
