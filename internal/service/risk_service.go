package service

import (
	"context"
	"fmt"
	"time"

	"grasswren-api/internal/models"
	"grasswren-api/internal/observability"
	"grasswren-api/internal/risk"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// LocationResolver geocodes a postcode; nil means no coordinates available.
type LocationResolver interface {
	Resolve(ctx context.Context, postcode string) *models.Location
}

// FireHistoryRepository provides historical fire incidence near a point.
type FireHistoryRepository interface {
	FireIncidentsNear(ctx context.Context, lon, lat float64) ([]models.FireIncidentAggregate, error)
}

// ForecastProvider provides the short-term forecast, absent on failure.
type ForecastProvider interface {
	Forecast(ctx context.Context, lat, lon float64) models.Optional[[]models.WeatherDayForecast]
}

// RiskModel provides the external model score, absent on failure.
type RiskModel interface {
	Predict(ctx context.Context, lon, lat float64, date time.Time) models.Optional[float64]
}

// RiskService estimates fire risk for a postcode and date
type RiskService struct {
	geocoder LocationResolver
	fires    FireHistoryRepository
	weather  ForecastProvider
	model    RiskModel
	metrics  *observability.Metrics
	clock    clockwork.Clock
}

// NewRiskService creates a new risk service
func NewRiskService(geocoder LocationResolver, fires FireHistoryRepository, weather ForecastProvider, model RiskModel, metrics *observability.Metrics, clock clockwork.Clock) *RiskService {
	return &RiskService{
		geocoder: geocoder,
		fires:    fires,
		weather:  weather,
		model:    model,
		metrics:  metrics,
		clock:    clock,
	}
}

// Estimate resolves the postcode, then gathers fire history, forecast and
// model score concurrently and fuses them. Only a fire history failure
// fails the estimate.
func (s *RiskService) Estimate(ctx context.Context, postcode string, currentDate time.Time) (*models.RiskEstimate, error) {
	if postcode == "" {
		return nil, fmt.Errorf("service: %w: postcode cannot be empty", ErrValidation)
	}

	loc := s.geocoder.Resolve(ctx, postcode)
	if loc == nil {
		return nil, fmt.Errorf("service: postcode %q: %w", postcode, ErrLocationNotFound)
	}

	var (
		history    []models.FireIncidentAggregate
		forecast   models.Optional[[]models.WeatherDayForecast]
		prediction models.Optional[float64]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := s.clock.Now()
		h, err := s.fires.FireIncidentsNear(gctx, loc.Longitude, loc.Latitude)
		if err != nil {
			s.metrics.ObserveUpstream(observability.UpstreamFireStore, observability.OutcomeError, s.clock.Since(start))
			return err
		}
		outcome := observability.OutcomeSuccess
		if len(h) == 0 {
			outcome = observability.OutcomeEmpty
		}
		s.metrics.ObserveUpstream(observability.UpstreamFireStore, outcome, s.clock.Since(start))
		history = h
		return nil
	})
	g.Go(func() error {
		forecast = s.weather.Forecast(gctx, loc.Latitude, loc.Longitude)
		return nil
	})
	g.Go(func() error {
		prediction = s.model.Predict(gctx, loc.Longitude, loc.Latitude, currentDate)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("postcode", postcode).Msg("historical fire query failed")
		return nil, fmt.Errorf("service: %w: %w", ErrUpstream, err)
	}

	result := risk.Aggregate(risk.Inputs{
		CurrentDate: currentDate,
		History:     history,
		Weather:     forecast,
		Prediction:  prediction,
	})
	s.metrics.ObserveRiskLevel(string(result.Level))

	log.Ctx(ctx).Debug().
		Str("postcode", postcode).
		Bool("weather", forecast.Present()).
		Bool("model", prediction.Present()).
		Int("buckets", len(history)).
		Str("level", string(result.Level)).
		Msg("risk estimated")

	return &models.RiskEstimate{
		Latitude:       loc.Latitude,
		Longitude:      loc.Longitude,
		RiskLevel:      result.Level,
		Probability:    result.Formatted(),
		HistoricalData: history,
		City:           loc.City,
		State:          loc.Region,
	}, nil
}
