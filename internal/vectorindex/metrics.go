package vectorindex

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// IndexSize tracks the number of vectors in the resident snapshot.
	IndexSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "intake",
			Subsystem: "vectorindex",
			Name:      "size",
			Help:      "Number of projects in the resident similarity index",
		},
	)

	// BuildDuration tracks how long full rebuilds take, embedding included.
	BuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "intake",
			Subsystem: "vectorindex",
			Name:      "build_duration_seconds",
			Help:      "Duration of index rebuilds in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	// SearchDuration tracks query embedding plus scan time.
	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "intake",
			Subsystem: "vectorindex",
			Name:      "search_duration_seconds",
			Help:      "Duration of similarity searches in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// OperationsTotal counts index operations.
	// Labels: operation (build, load, search), result (success, error, not_ready)
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "intake",
			Subsystem: "vectorindex",
			Name:      "operations_total",
			Help:      "Total number of index operations by outcome",
		},
		[]string{"operation", "result"},
	)
)
