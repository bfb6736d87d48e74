// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchesStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_searches_started_total",
			Help: "Total number of matchmaking searches started",
		},
		[]string{"mode"},
	)

	SearchesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_searches_rejected_total",
			Help: "Total number of search starts rejected by the completeness gate",
		},
		[]string{"reason"},
	)

	SearchesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_searches_completed_total",
			Help: "Total number of searches that reached the matched state",
		},
		[]string{"mode"},
	)

	SearchesReset = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "match_searches_reset_total",
			Help: "Total number of confirmed session resets",
		},
	)

	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "match_search_duration_seconds",
			Help: "Wall time a session spent in the searching state",
		},
		[]string{"mode"},
	)

	SuggestionsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_suggestions_returned",
			Help:    "Number of suggestions produced per completed search",
			Buckets: []float64{0, 1, 2, 3, 5, 10},
		},
	)

	ActiveSearches = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "match_active_searches",
			Help: "Number of sessions currently in the searching state",
		},
	)

	PoolSourceErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_pool_source_errors_total",
			Help: "Total number of candidate pool backend failures",
		},
		[]string{"source"},
	)
)
