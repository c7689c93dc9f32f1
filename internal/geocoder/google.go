// Package geocoder resolves postcodes to coordinates and administrative
// labels through the Google Geocoding API.
package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"grasswren-api/internal/models"
	"grasswren-api/internal/observability"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Client implements a single-attempt postcode resolver.
type Client struct {
	apiKey        string
	baseURL       string
	countrySuffix string
	httpClient    *http.Client
	metrics       *observability.Metrics
	clock         clockwork.Clock
}

// NewClient creates a geocoding client. The HTTP client carries no timeout;
// a stalled upstream holds the request until the caller's context ends.
func NewClient(apiKey, baseURL, countrySuffix string, metrics *observability.Metrics, clock clockwork.Clock) *Client {
	return &Client{
		apiKey:        apiKey,
		baseURL:       baseURL,
		countrySuffix: countrySuffix,
		httpClient:    &http.Client{},
		metrics:       metrics,
		clock:         clock,
	}
}

// Resolve returns the location for a postcode, or nil when the upstream
// fails or has no match.
func (c *Client) Resolve(ctx context.Context, postcode string) *models.Location {
	start := c.clock.Now()

	loc, err := c.lookup(ctx, postcode)
	switch {
	case err != nil:
		c.metrics.ObserveUpstream(observability.UpstreamGeocoder, observability.OutcomeError, c.clock.Since(start))
		log.Ctx(ctx).Warn().Err(err).Str("postcode", postcode).Msg("geocoding failed")
		return nil
	case loc == nil:
		c.metrics.ObserveUpstream(observability.UpstreamGeocoder, observability.OutcomeEmpty, c.clock.Since(start))
		log.Ctx(ctx).Info().Str("postcode", postcode).Msg("geocoding returned no results")
		return nil
	}

	c.metrics.ObserveUpstream(observability.UpstreamGeocoder, observability.OutcomeSuccess, c.clock.Since(start))
	return loc
}

func (c *Client) lookup(ctx context.Context, postcode string) (*models.Location, error) {
	params := url.Values{
		"address": {postcode + c.countrySuffix},
		"key":     {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocoder: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoder: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("geocoder: status %d: %s", resp.StatusCode, body)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("geocoder: decode response: %w", err)
	}

	switch payload.Status {
	case statusOK:
	case statusZeroResults:
		return nil, nil
	default:
		return nil, fmt.Errorf("geocoder: api status %s: %s", payload.Status, payload.ErrorMessage)
	}

	if len(payload.Results) == 0 {
		return nil, nil
	}

	r := payload.Results[0]
	loc := &models.Location{
		Latitude:  r.Geometry.Location.Lat,
		Longitude: r.Geometry.Location.Lng,
	}
	for _, comp := range r.AddressComponents {
		switch {
		case comp.hasType("locality"):
			loc.City = comp.LongName
		case comp.hasType("administrative_area_level_1"):
			loc.Region = comp.LongName
		}
	}

	return loc, nil
}

// Google Geocoding API response types.

const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

type response struct {
	Status       string   `json:"status"`
	ErrorMessage string   `json:"error_message,omitempty"`
	Results      []result `json:"results"`
}

type result struct {
	AddressComponents []addressComponent `json:"address_components"`
	Geometry          struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

type addressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

func (a addressComponent) hasType(t string) bool {
	for _, typ := range a.Types {
		if typ == t {
			return true
		}
	}
	return false
}
