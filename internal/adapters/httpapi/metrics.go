package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics bundles the server's Prometheus collectors.
// Each server instance owns its registry so tests can spin up handlers
// independently without collector name collisions.
type metrics struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	sourceLines prometheus.Histogram
	cacheHits   prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tmconv_conversions_total",
				Help: "Total conversion requests by outcome.",
			},
			[]string{"status"},
		),
		sourceLines: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tmconv_source_lines",
				Help:    "Number of lines per submitted source.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		cacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tmconv_cache_hits_total",
				Help: "Conversions served from the cache.",
			},
		),
	}
	m.registry.MustRegister(m.conversions, m.sourceLines, m.cacheHits)
	return m
}
