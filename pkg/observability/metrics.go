package observability

import (
	"github.com/aretw0/insist"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts checks by operation and outcome and records their duration.
type Metrics struct {
	checks   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insist_checks_total",
				Help: "Total number of checks by operation and result",
			},
			[]string{"op", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "insist_check_duration_seconds",
				Help:    "Duration of checks",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"op"},
		),
	}
	for _, c := range []prometheus.Collector{m.checks, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records one event.
func (m *Metrics) Observe(e insist.Event) {
	result := "ok"
	if !e.OK() {
		result = "error"
	}
	m.checks.WithLabelValues(string(e.Op), result).Inc()
	m.duration.WithLabelValues(string(e.Op)).Observe(e.Duration.Seconds())
}

// Hooks returns checker hooks feeding these metrics.
func (m *Metrics) Hooks() insist.Hooks {
	return insist.Hooks{OnCheck: m.Observe}
}
