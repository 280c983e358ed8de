// Package metrics holds the Prometheus collectors for search runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcome labels.
const (
	ResultFound     = "found"
	ResultNoPath    = "no_path"
	ResultCancelled = "cancelled"
	ResultError     = "error"
)

var (
	// SearchesTotal counts completed searches by outcome.
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tileplan_searches_total",
			Help: "Total number of searches by result.",
		},
		[]string{"result"}, // result: found, no_path, cancelled, error
	)

	// SearchDurationSeconds tracks wall time per search including reconstruction.
	SearchDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tileplan_search_duration_seconds",
			Help:    "Execution time of a search.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
	)

	// SearchExpandedNodes tracks how many states were closed.
	SearchExpandedNodes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tileplan_search_expanded_nodes",
			Help:    "Number of states expanded per search.",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000, 50000, 100000},
		},
	)

	// SearchFrontierMaxSize tracks the peak number of queued entries.
	SearchFrontierMaxSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tileplan_search_frontier_max_size",
			Help:    "Maximum frontier size reached during a search.",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000, 50000, 100000},
		},
	)

	// PlanLength tracks the number of actions in found plans.
	PlanLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tileplan_plan_length",
			Help:    "Number of actions in a found plan.",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128},
		},
	)
)
