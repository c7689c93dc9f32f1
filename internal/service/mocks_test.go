package service

import (
	"context"
	"time"

	"grasswren-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockLocationResolver is a mock implementation of the LocationResolver interface
type MockLocationResolver struct {
	mock.Mock
}

func (m *MockLocationResolver) Resolve(ctx context.Context, postcode string) *models.Location {
	args := m.Called(ctx, postcode)
	loc, _ := args.Get(0).(*models.Location)
	return loc
}

// MockFireHistoryRepository is a mock implementation of the FireHistoryRepository interface
type MockFireHistoryRepository struct {
	mock.Mock
}

func (m *MockFireHistoryRepository) FireIncidentsNear(ctx context.Context, lon, lat float64) ([]models.FireIncidentAggregate, error) {
	args := m.Called(ctx, lon, lat)
	history, _ := args.Get(0).([]models.FireIncidentAggregate)
	return history, args.Error(1)
}

type MockForecastProvider struct {
	mock.Mock
}

func (m *MockForecastProvider) Forecast(ctx context.Context, lat, lon float64) models.Optional[[]models.WeatherDayForecast] {
	args := m.Called(ctx, lat, lon)
	return args.Get(0).(models.Optional[[]models.WeatherDayForecast])
}

type MockRiskModel struct {
	mock.Mock
}

func (m *MockRiskModel) Predict(ctx context.Context, lon, lat float64, date time.Time) models.Optional[float64] {
	args := m.Called(ctx, lon, lat, date)
	return args.Get(0).(models.Optional[float64])
}

type MockObservationRepository struct {
	mock.Mock
}

func (m *MockObservationRepository) ListObservations(ctx context.Context) ([]models.Observation, error) {
	args := m.Called(ctx)
	observations, _ := args.Get(0).([]models.Observation)
	return observations, args.Error(1)
}
