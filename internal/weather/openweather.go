// Package weather fetches multi-day forecasts from the OpenWeatherMap
// One Call API.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"grasswren-api/internal/models"
	"grasswren-api/internal/observability"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Client fetches daily forecasts. Every failure is absorbed into an absent
// result.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
	clock      clockwork.Clock
}

// NewClient creates a forecast client.
func NewClient(apiKey, baseURL string, metrics *observability.Metrics, clock clockwork.Clock) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{},
		metrics:    metrics,
		clock:      clock,
	}
}

// Forecast returns the daily forecast for a coordinate, or None when the
// upstream is unavailable.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) models.Optional[[]models.WeatherDayForecast] {
	start := c.clock.Now()

	days, err := c.fetch(ctx, lat, lon)
	if err != nil {
		c.metrics.ObserveUpstream(observability.UpstreamWeather, observability.OutcomeError, c.clock.Since(start))
		log.Ctx(ctx).Warn().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("weather forecast unavailable")
		return models.None[[]models.WeatherDayForecast]()
	}

	c.metrics.ObserveUpstream(observability.UpstreamWeather, observability.OutcomeSuccess, c.clock.Since(start))
	return models.Some(days)
}

func (c *Client) fetch(ctx context.Context, lat, lon float64) ([]models.WeatherDayForecast, error) {
	params := url.Values{
		"lat":     {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":     {strconv.FormatFloat(lon, 'f', -1, 64)},
		"exclude": {"current,minutely,hourly,alerts"},
		"units":   {"metric"},
		"appid":   {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("weather: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather: status %d", resp.StatusCode)
	}

	var payload oneCallResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("weather: decode response: %w", err)
	}
	if payload.Daily == nil {
		return nil, errors.New("weather: response has no daily forecast")
	}

	days := make([]models.WeatherDayForecast, 0, len(payload.Daily))
	for _, d := range payload.Daily {
		days = append(days, models.WeatherDayForecast{
			Date:      time.Unix(d.Dt, 0).UTC(),
			Humidity:  d.Humidity,
			WindSpeed: d.WindSpeed,
			TempMax:   d.Temp.Max,
		})
	}

	return days, nil
}

// One Call API response types.

type oneCallResponse struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Daily []daily `json:"daily"`
}

type daily struct {
	Dt        int64   `json:"dt"`
	Humidity  float64 `json:"humidity"`
	WindSpeed float64 `json:"wind_speed"`
	Temp      struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"temp"`
}
