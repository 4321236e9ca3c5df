package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the staging batch.
type Metrics struct {
	RowsRead       prometheus.Counter
	RowsNormalized prometheus.Counter
	RowFailures    prometheus.Counter

	// CalcTypeAssigned counts normalized rows by their assigned calc type,
	// which makes vocabulary drift visible (a fallback-heavy run shows up as
	// a per_unit spike).
	CalcTypeAssigned *prometheus.CounterVec // label: calc_type

	BatchDuration prometheus.Histogram
}

// NewMetrics creates and registers all batch metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RowsRead,
		m.RowsNormalized,
		m.RowFailures,
		m.CalcTypeAssigned,
		m.BatchDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RowsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fee_etl",
			Name:      "rows_read_total",
			Help:      "Total raw rows read from the source file.",
		}),
		RowsNormalized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fee_etl",
			Name:      "rows_normalized_total",
			Help:      "Total rows successfully normalized.",
		}),
		RowFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fee_etl",
			Name:      "row_failures_total",
			Help:      "Total rows skipped due to structural failures.",
		}),
		CalcTypeAssigned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fee_etl",
			Name:      "calc_type_assigned_total",
			Help:      "Normalized rows by assigned calc type.",
		}, []string{"calc_type"}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fee_etl",
			Name:      "batch_duration_seconds",
			Help:      "Duration of a complete extract-normalize-load run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}
}
