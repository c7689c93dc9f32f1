// Package firemodel calls the external fire-risk model-serving endpoint.
package firemodel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"grasswren-api/internal/models"
	"grasswren-api/internal/observability"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// MaxScore is the upper bound of the model's score scale.
const MaxScore = 10000.0

// Client scores a location and date with the external model.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	metrics    *observability.Metrics
	clock      clockwork.Clock
}

// NewClient creates a model client for endpoint.
func NewClient(endpoint, apiKey string, metrics *observability.Metrics, clock clockwork.Clock) *Client {
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{},
		metrics:    metrics,
		clock:      clock,
	}
}

type predictRequest struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Date      string  `json:"date"`
}

type predictResponse struct {
	Prediction *float64 `json:"prediction"`
}

// Predict returns the model score in [0, MaxScore], or None on any failure.
func (c *Client) Predict(ctx context.Context, lon, lat float64, date time.Time) models.Optional[float64] {
	start := c.clock.Now()

	score, err := c.predict(ctx, lon, lat, date)
	if err != nil {
		c.metrics.ObserveUpstream(observability.UpstreamFireModel, observability.OutcomeError, c.clock.Since(start))
		log.Ctx(ctx).Warn().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("fire model prediction unavailable")
		return models.None[float64]()
	}

	c.metrics.ObserveUpstream(observability.UpstreamFireModel, observability.OutcomeSuccess, c.clock.Since(start))
	return models.Some(score)
}

func (c *Client) predict(ctx context.Context, lon, lat float64, date time.Time) (float64, error) {
	if c.endpoint == "" {
		return 0, errors.New("firemodel: no endpoint configured")
	}

	body, err := json.Marshal(predictRequest{
		Longitude: lon,
		Latitude:  lat,
		Date:      date.Format(time.DateOnly),
	})
	if err != nil {
		return 0, fmt.Errorf("firemodel: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("firemodel: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("firemodel: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("firemodel: status %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("firemodel: decode response: %w", err)
	}
	if out.Prediction == nil {
		return 0, errors.New("firemodel: response has no prediction")
	}

	score := *out.Prediction
	if score < 0 || score > MaxScore {
		return 0, fmt.Errorf("firemodel: prediction %v outside [0, %v]", score, MaxScore)
	}

	return score, nil
}
