package rbfnet

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors an Evaluator updates. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	Evaluations *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
	Pairs       prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rbfnet_evaluations_total",
				Help: "Total number of kernel evaluations by precision and outcome",
			},
			[]string{"precision", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rbfnet_evaluation_duration_seconds",
				Help:    "Wall time of successful kernel evaluations in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 12),
			},
			[]string{"precision"},
		),
		Pairs: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "rbfnet_kernel_pairs_total",
				Help: "Total number of point pairs evaluated",
			},
		),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.Evaluations, m.Duration, m.Pairs} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func (m *Metrics) observe(precision string, n int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Evaluations.WithLabelValues(precision, "ok").Inc()
	m.Duration.WithLabelValues(precision).Observe(elapsed.Seconds())
	m.Pairs.Add(float64(n) * float64(n))
}

func (m *Metrics) observeError(precision string, err error) {
	if m == nil {
		return
	}
	m.Evaluations.WithLabelValues(precision, outcome(err)).Inc()
}

// outcome maps an error to its metric label
func outcome(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "error"
	}
	switch e.Type {
	case ErrTypeDimensionMismatch:
		return "dimension_mismatch"
	case ErrTypeDomain:
		return "domain"
	case ErrTypeNumericAnomaly:
		return "numeric_anomaly"
	default:
		return "error"
	}
}
