package risk

import (
	"regexp"
	"testing"
	"time"

	"grasswren-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextMonth(t *testing.T) {
	assert.Equal(t, 2, NextMonth(date(2024, time.January, 31)))
	assert.Equal(t, 1, NextMonth(date(2024, time.December, 15)))
	assert.Equal(t, 12, NextMonth(date(2024, time.November, 1)))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		probability float64
		expected    models.RiskLevel
	}{
		{0, models.RiskModerate},
		{25, models.RiskModerate},
		{25.01, models.RiskHigh},
		{50, models.RiskHigh},
		{50.01, models.RiskExtreme},
		{75, models.RiskExtreme},
		{75.01, models.RiskCatastrophic},
		{150, models.RiskCatastrophic},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Classify(tt.probability), "probability %v", tt.probability)
	}
}

func TestWeatherAdjustment(t *testing.T) {
	tests := []struct {
		name     string
		day      models.WeatherDayForecast
		expected float64
	}{
		{"dry windy hot", models.WeatherDayForecast{Humidity: 25, WindSpeed: 10, TempMax: 35}, 2},
		{"dry windy mild", models.WeatherDayForecast{Humidity: 25, WindSpeed: 10, TempMax: 20}, 1},
		{"dry windy extreme", models.WeatherDayForecast{Humidity: 10, WindSpeed: 12, TempMax: 45}, 3},
		{"exactly 40 is not extreme", models.WeatherDayForecast{Humidity: 10, WindSpeed: 12, TempMax: 40}, 2},
		{"humid", models.WeatherDayForecast{Humidity: 30, WindSpeed: 12, TempMax: 45}, 0},
		{"calm", models.WeatherDayForecast{Humidity: 10, WindSpeed: 5, TempMax: 45}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeatherAdjustment([]models.WeatherDayForecast{tt.day}))
		})
	}
}

func TestAggregate(t *testing.T) {
	history := []models.FireIncidentAggregate{
		{Count: 3, Month: 2, FireDate: date(2023, time.February, 1)},
		{Count: 5, Month: 1, FireDate: date(2023, time.January, 1)},
		{Count: 2, Month: 2, FireDate: date(2022, time.February, 1)},
	}

	tests := []struct {
		name        string
		in          Inputs
		probability float64
		formatted   string
		level       models.RiskLevel
	}{
		{
			name:        "no fires and no signals",
			in:          Inputs{CurrentDate: date(2024, time.January, 10)},
			probability: 0,
			formatted:   "0.00%",
			level:       models.RiskModerate,
		},
		{
			name:        "history only",
			in:          Inputs{CurrentDate: date(2024, time.January, 10), History: history},
			probability: 50,
			formatted:   "50.00%",
			level:       models.RiskHigh,
		},
		{
			name: "history with weather",
			in: Inputs{
				CurrentDate: date(2024, time.January, 10),
				History:     history,
				Weather: models.Some([]models.WeatherDayForecast{
					{Humidity: 25, WindSpeed: 10, TempMax: 35},
					{Humidity: 80, WindSpeed: 10, TempMax: 35},
				}),
			},
			probability: 52,
			formatted:   "52.00%",
			level:       models.RiskExtreme,
		},
		{
			name: "model fusion lands on boundary",
			in: Inputs{
				CurrentDate: date(2024, time.December, 10),
				History:     []models.FireIncidentAggregate{{Count: 2, Month: 1}, {Count: 3, Month: 6}},
				Prediction:  models.Some(6000.0),
			},
			probability: 50,
			formatted:   "50.00%",
			level:       models.RiskHigh,
		},
		{
			name: "missing model leaves probability unchanged",
			in: Inputs{
				CurrentDate: date(2024, time.December, 10),
				History:     []models.FireIncidentAggregate{{Count: 2, Month: 1}, {Count: 3, Month: 6}},
				Prediction:  models.None[float64](),
			},
			probability: 40,
			formatted:   "40.00%",
			level:       models.RiskHigh,
		},
		{
			name: "exactly 75 stays extreme",
			in: Inputs{
				CurrentDate: date(2024, time.March, 1),
				History:     []models.FireIncidentAggregate{{Count: 3, Month: 4}, {Count: 1, Month: 9}},
			},
			probability: 75,
			formatted:   "75.00%",
			level:       models.RiskExtreme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Aggregate(tt.in)
			assert.InDelta(t, tt.probability, result.Probability, 1e-9)
			assert.Equal(t, tt.formatted, result.Formatted())
			assert.Equal(t, tt.level, result.Level)
		})
	}
}

func TestAggregate_OutputShape(t *testing.T) {
	pattern := regexp.MustCompile(`^\d+\.\d{2}%$`)
	levels := []models.RiskLevel{models.RiskModerate, models.RiskHigh, models.RiskExtreme, models.RiskCatastrophic}

	for _, prediction := range []float64{0, 1234.5, 5000, 9999, 10000} {
		result := Aggregate(Inputs{
			CurrentDate: date(2024, time.July, 4),
			History:     []models.FireIncidentAggregate{{Count: 7, Month: 8}, {Count: 4, Month: 2}},
			Weather:     models.Some([]models.WeatherDayForecast{{Humidity: 5, WindSpeed: 20, TempMax: 44}}),
			Prediction:  models.Some(prediction),
		})
		assert.Regexp(t, pattern, result.Formatted())
		assert.Contains(t, levels, result.Level)
	}
}
