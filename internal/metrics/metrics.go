package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for model calls.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeCanceled = "canceled"
)

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	ModelCalls        *prometheus.CounterVec
	ModelCallDuration *prometheus.HistogramVec
	Classifications   *prometheus.CounterVec
}

// New registers the collectors on reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		ModelCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "model_calls_total",
				Help: "Total number of chat-completion calls by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		ModelCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "model_call_duration_seconds",
				Help:    "Duration of chat-completion calls in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"operation"},
		),
		Classifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "query_classifications_total",
				Help: "Total number of classified queries by resulting category",
			},
			[]string{"category"},
		),
	}
}

// ObserveModelCall records one finished model call.
func (m *Metrics) ObserveModelCall(operation string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	switch {
	case errors.Is(err, context.Canceled):
		outcome = OutcomeCanceled
	case err != nil:
		outcome = OutcomeError
	}
	m.ModelCalls.WithLabelValues(operation, outcome).Inc()
	m.ModelCallDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveClassification counts a classifier result.
func (m *Metrics) ObserveClassification(category string) {
	if m == nil {
		return
	}
	m.Classifications.WithLabelValues(category).Inc()
}
