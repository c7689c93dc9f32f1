// Package risk fuses historical fire incidence, the short-term forecast and
// the external model score into a single fire-risk estimate.
package risk

import (
	"fmt"
	"time"

	"grasswren-api/internal/models"
)

// Dry-and-windy day thresholds applied to each forecast day.
const (
	dryHumidity    = 30.0
	windySpeed     = 5.0
	hotTempMax     = 30.0
	extremeTempMax = 40.0
)

// modelScale maps the 0–10000 model score onto the percent range.
const modelScale = 100.0

// Inputs are the joined signals for one estimation.
type Inputs struct {
	CurrentDate time.Time
	History     []models.FireIncidentAggregate
	Weather     models.Optional[[]models.WeatherDayForecast]
	Prediction  models.Optional[float64]
}

// Result is the fused probability and its classification.
type Result struct {
	Probability float64
	Level       models.RiskLevel
}

// Formatted renders the probability with two decimals and a percent suffix.
func (r Result) Formatted() string {
	return fmt.Sprintf("%.2f%%", r.Probability)
}

// Aggregate computes the risk estimate. It performs no I/O.
func Aggregate(in Inputs) Result {
	target := NextMonth(in.CurrentDate)

	var nextMonthFires, totalFires int
	for _, bucket := range in.History {
		if bucket.Month == target {
			nextMonthFires += bucket.Count
		}
		totalFires += bucket.Count
	}

	probability := 0.0
	if totalFires > 0 {
		probability = float64(nextMonthFires) / float64(totalFires) * 100
	}

	if days, ok := in.Weather.Get(); ok {
		probability += WeatherAdjustment(days)
	}

	if prediction, ok := in.Prediction.Get(); ok {
		probability = (probability + prediction/modelScale) / 2
	}

	return Result{Probability: probability, Level: Classify(probability)}
}

// NextMonth returns the calendar month (1–12) following t.
func NextMonth(t time.Time) int {
	return int(t.Month())%12 + 1
}

// WeatherAdjustment scores dry and windy forecast days. Each such day adds 1,
// plus 1 if hotter than 30°C and 1 more if hotter than 40°C.
func WeatherAdjustment(days []models.WeatherDayForecast) float64 {
	var adj float64
	for _, d := range days {
		if d.Humidity >= dryHumidity || d.WindSpeed <= windySpeed {
			continue
		}
		adj++
		if d.TempMax > hotTempMax {
			adj++
		}
		if d.TempMax > extremeTempMax {
			adj++
		}
	}
	return adj
}

// Classify maps a probability to a risk level. Boundaries are exclusive.
func Classify(probability float64) models.RiskLevel {
	switch {
	case probability > 75:
		return models.RiskCatastrophic
	case probability > 50:
		return models.RiskExtreme
	case probability > 25:
		return models.RiskHigh
	default:
		return models.RiskModerate
	}
}
