package enrichment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	buildingPermitsPath = "/propertyapi/v1.0.0/property/buildingpermits"
	sqftPerAcre         = 43560
	maxRecentPermits    = 3
)

var (
	ErrMissingAddress   = errors.New("missing required address information")
	ErrNotConfigured    = errors.New("missing ATTOM API configuration")
	ErrPropertyNotFound = errors.New("property not found")
)

type attomResponse struct {
	Status struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	} `json:"status"`
	Property []attomProperty `json:"property"`
}

type attomProperty struct {
	Summary struct {
		PropClass string `json:"propClass"`
		YearBuilt int    `json:"yearBuilt"`
	} `json:"summary"`
	Building struct {
		Size struct {
			UniversalSize float64 `json:"universalSize"`
		} `json:"size"`
		Rooms struct {
			Beds       int     `json:"beds"`
			BathsTotal float64 `json:"bathsTotal"`
		} `json:"rooms"`
	} `json:"building"`
	Lot struct {
		LotSize1 float64 `json:"lotSize1"`
	} `json:"lot"`
	BuildingPermits []attomPermit `json:"buildingPermits"`
}

type attomPermit struct {
	EffectiveDate string  `json:"effectiveDate"`
	Type          string  `json:"type"`
	Description   string  `json:"description"`
	JobValue      float64 `json:"jobValue"`
}

// AttomClient looks up properties in the ATTOM building permits API. Calls are
// paced by a token bucket; there is no timeout and no retry.
type AttomClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

var _ interfaces.IPropertyEnricher = (*AttomClient)(nil)

// NewAttomClient builds a client. requestsPerSec <= 0 disables pacing.
func NewAttomClient(baseURL, apiKey string, requestsPerSec float64, httpClient *http.Client, logger *zap.Logger) *AttomClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := rate.Inf
	if requestsPerSec > 0 {
		limit = rate.Limit(requestsPerSec)
	}
	return &AttomClient{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

func (c *AttomClient) Lookup(ctx context.Context, streetAddress, city, state string) (entities.PropertyAttributes, error) {
	streetAddress, city, state = strings.TrimSpace(streetAddress), strings.TrimSpace(city), strings.TrimSpace(state)
	if streetAddress == "" || city == "" || state == "" {
		return entities.PropertyAttributes{}, ErrMissingAddress
	}
	if c.baseURL == "" || c.apiKey == "" {
		return entities.PropertyAttributes{}, ErrNotConfigured
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return entities.PropertyAttributes{}, err
	}

	q := url.Values{}
	q.Set("address1", streetAddress)
	q.Set("address2", city+", "+state)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+buildingPermitsPath+"?"+q.Encode(), nil)
	if err != nil {
		return entities.PropertyAttributes{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("[enrichment][attom] request failed", zap.Error(err))
		return entities.PropertyAttributes{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entities.PropertyAttributes{}, fmt.Errorf("ATTOM API error: %d", resp.StatusCode)
	}

	var body attomResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.PropertyAttributes{}, fmt.Errorf("decode ATTOM response: %w", err)
	}
	if body.Status.Code != 0 || len(body.Property) == 0 {
		return entities.PropertyAttributes{}, ErrPropertyNotFound
	}
	return toAttributes(body.Property[0]), nil
}

func toAttributes(p attomProperty) entities.PropertyAttributes {
	a := entities.PropertyAttributes{
		PropertyType: strings.TrimSpace(p.Summary.PropClass),
		SquareFeet:   int(math.Round(p.Building.Size.UniversalSize)),
		LotSizeSqFt:  int(math.Round(p.Lot.LotSize1 * sqftPerAcre)),
		YearBuilt:    p.Summary.YearBuilt,
		Bedrooms:     p.Building.Rooms.Beds,
		Bathrooms:    p.Building.Rooms.BathsTotal,
	}
	if a.PropertyType == "" {
		a.PropertyType = "Unknown"
	}
	a.RecentPermits = recentPermits(p.BuildingPermits)
	return a
}

// recentPermits returns the newest permits first. A permit without a
// description is described by its type.
func recentPermits(in []attomPermit) []entities.Permit {
	out := make([]entities.Permit, 0, len(in))
	for _, p := range in {
		desc := strings.TrimSpace(p.Description)
		if desc == "" {
			desc = p.Type
		}
		out = append(out, entities.Permit{
			Date:        parsePermitDate(p.EffectiveDate),
			Type:        p.Type,
			Description: desc,
			Value:       p.JobValue,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > maxRecentPermits {
		out = out[:maxRecentPermits]
	}
	return out
}

func parsePermitDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
