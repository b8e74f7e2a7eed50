package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	suggestionQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suggestion_queries_total",
			Help: "Suggestion queries by outcome (empty, hit, miss)",
		},
		[]string{"outcome"},
	)

	suggestionResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "suggestion_results",
			Help:    "Number of cities returned per non-empty query",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 10},
		},
	)
)

func observeSuggestion(query string, n int) {
	switch {
	case query == "":
		suggestionQueriesTotal.WithLabelValues("empty").Inc()
		return
	case n == 0:
		suggestionQueriesTotal.WithLabelValues("miss").Inc()
	default:
		suggestionQueriesTotal.WithLabelValues("hit").Inc()
	}
	suggestionResults.Observe(float64(n))
}
