package pagerank

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes reported by the lookups counter.
const (
	outcomeCached   = "cached"
	outcomeBase     = "base"
	outcomeComputed = "computed"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

var (
	rankLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagerank_lookups_total",
			Help: "Total number of rank lookups, labeled by outcome",
		},
		[]string{"outcome"},
	)

	solverIterations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pagerank_solver_iterations",
			Help:    "Number of power iterations executed per rank computation",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		},
	)

	solverCapped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pagerank_solver_capped_total",
			Help: "Number of rank computations that hit the iteration cap before converging",
		},
	)
)
