package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Upstream names used as metric labels.
const (
	UpstreamGeocoder  = "geocoder"
	UpstreamWeather   = "weather"
	UpstreamFireModel = "fire_model"
	UpstreamFireStore = "fire_store"
)

// Outcomes of an upstream call.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeEmpty   = "empty"
)

// Metrics holds the Prometheus collectors for the API.
type Metrics struct {
	UpstreamRequests *prometheus.CounterVec   // labels: upstream, outcome
	UpstreamDuration *prometheus.HistogramVec // labels: upstream
	RiskEstimates    *prometheus.CounterVec   // labels: level
	GeocodeCache     *prometheus.CounterVec   // labels: result={hit,miss,error}
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "grasswren",
			Name:      "upstream_requests_total",
			Help:      "Outbound calls by upstream and outcome.",
		}, []string{"upstream", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "grasswren",
			Name:      "upstream_request_duration_seconds",
			Help:      "Outbound call duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"upstream"}),
		RiskEstimates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "grasswren",
			Name:      "risk_estimates_total",
			Help:      "Completed risk estimates by level.",
		}, []string{"level"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "grasswren",
			Name:      "geocode_cache_total",
			Help:      "Geocode cache lookups by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.RiskEstimates,
		m.GeocodeCache,
	)

	return m
}

// ObserveUpstream records one outbound call. Safe on a nil receiver.
func (m *Metrics) ObserveUpstream(upstream, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(upstream, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(upstream).Observe(took.Seconds())
}

// ObserveRiskLevel counts a completed estimate. Safe on a nil receiver.
func (m *Metrics) ObserveRiskLevel(level string) {
	if m == nil {
		return
	}
	m.RiskEstimates.WithLabelValues(level).Inc()
}

// ObserveCache counts a geocode cache lookup. Safe on a nil receiver.
func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.GeocodeCache.WithLabelValues(result).Inc()
}
