package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveUpstream(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveUpstream(UpstreamWeather, OutcomeSuccess, 120*time.Millisecond)
	m.ObserveUpstream(UpstreamWeather, OutcomeError, time.Second)
	m.ObserveUpstream(UpstreamWeather, OutcomeError, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues(UpstreamWeather, OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues(UpstreamWeather, OutcomeError)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.UpstreamDuration))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveUpstream(UpstreamGeocoder, OutcomeSuccess, time.Second)
		m.ObserveRiskLevel("High")
		m.ObserveCache("hit")
	})
}

func TestMetrics_RegisterTwicePanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)

	assert.Panics(t, func() { NewMetrics(reg) })
}
