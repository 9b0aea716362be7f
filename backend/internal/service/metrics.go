package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agora_search_duration_seconds",
			Help:    "Time spent assembling a search result, by relevance mode",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"mode"},
	)

	searchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "agora_search_results",
			Help:    "Number of threads returned by a search",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		},
	)

	likeToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agora_like_toggles_total",
			Help: "Like toggles by target and resulting state",
		},
		[]string{"target", "outcome"},
	)
)
