package main

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"

	"github.com/LynnColeArt/rbfnet"
)

// newMetrics registers the evaluator collectors on a private registry
func newMetrics() (*prometheus.Registry, *rbfnet.Metrics, error) {
	reg := prometheus.NewRegistry()
	m, err := rbfnet.NewMetrics(reg)
	if err != nil {
		return nil, nil, err
	}
	return reg, m, nil
}

// logMetrics writes every gathered sample at debug level
func logMetrics(log zerolog.Logger, g prometheus.Gatherer) {
	if log.GetLevel() > zerolog.DebugLevel {
		return
	}
	families, err := g.Gather()
	if err != nil {
		log.Warn().Err(err).Msg("Gathering metrics failed")
		return
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			ev := log.Debug().Str("metric", mf.GetName())
			for _, lp := range m.GetLabel() {
				ev = ev.Str(lp.GetName(), lp.GetValue())
			}
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				ev = ev.Float64("value", m.GetCounter().GetValue())
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				ev = ev.Uint64("count", h.GetSampleCount()).Float64("sum", h.GetSampleSum())
			}
			ev.Msg("Metric")
		}
	}
}
