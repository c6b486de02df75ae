// Package metric holds the prometheus collectors exported on /metrics.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Searches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyfinder_searches_total",
			Help: "Flight searches by how the candidate set was produced (direct, hub, alternative, none)",
		},
		[]string{"source"},
	)

	SynthesizedItineraries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skyfinder_synthesized_itineraries_total",
			Help: "Connecting itineraries built through hub airports",
		},
	)

	AirportCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skyfinder_airport_cache_hits_total",
			Help: "Airport searches answered from the cache",
		},
	)

	AirportCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skyfinder_airport_cache_misses_total",
			Help: "Airport searches computed against the directory",
		},
	)

	PagesLoaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skyfinder_pages_loaded_total",
			Help: "Additional result pages appended by load-more",
		},
	)

	PagesRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skyfinder_pages_rejected_total",
			Help: "Load-more or refresh calls ignored because a page was still loading",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skyfinder_sessions_active",
			Help: "Paging sessions currently held in the session store",
		},
	)
)
