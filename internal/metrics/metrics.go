package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Doveguide
type MetricsRegistry struct {
	// Import Metrics
	RingsDecodedTotal prometheus.Counter
	RowsRejectedTotal prometheus.Counter
	DecodeErrorsTotal prometheus.CounterVec
	ImportDuration    prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Fetch Metrics
	FetchesTotal prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// Import Metrics
		RingsDecodedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "doveguide_rings_decoded_total",
				Help: "Total ring records decoded successfully",
			},
		),
		RowsRejectedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "doveguide_rows_rejected_total",
				Help: "Total source rows rejected with decode errors",
			},
		),
		DecodeErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doveguide_decode_errors_total",
				Help: "Total field-level decode errors by error kind",
			},
			[]string{"kind"},
		),
		ImportDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "doveguide_import_duration_seconds",
				Help:    "Full guide import time in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"source"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doveguide_cache_hits_total",
				Help: "Total guide cache hits by source",
			},
			[]string{"source"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doveguide_cache_misses_total",
				Help: "Total guide cache misses by source",
			},
			[]string{"source"},
		),

		// Fetch Metrics
		FetchesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doveguide_fetches_total",
				Help: "Total export downloads by outcome",
			},
			[]string{"outcome"},
		),
	}
}
