// Package metrics exposes the service's Prometheus collectors. Counters are
// registered on the default registry and served via the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FlightsMaterialized counts flights generated from rotation templates.
	FlightsMaterialized = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "airline",
		Subsystem: "automation",
		Name:      "flights_materialized_total",
		Help:      "Number of concrete flights generated from rotation templates.",
	})

	// RotationsCreated counts accepted rotation templates.
	RotationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "airline",
		Subsystem: "automation",
		Name:      "rotations_created_total",
		Help:      "Number of rotation templates accepted after overlap validation.",
	})

	// ItinerarySearches counts itinerary searches answered from the flight graph.
	ItinerarySearches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "airline",
		Subsystem: "search",
		Name:      "itinerary_searches_total",
		Help:      "Number of itinerary searches that ran the graph expansion.",
	})

	// ItinerarySearchCacheHits counts searches served from cache.
	ItinerarySearchCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "airline",
		Subsystem: "search",
		Name:      "itinerary_search_cache_hits_total",
		Help:      "Number of itinerary searches served from the result cache.",
	})

	// SeatDecrements counts successful seat-window decrements.
	SeatDecrements = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "airline",
		Subsystem: "inventory",
		Name:      "seat_decrements_total",
		Help:      "Number of successful seat-window decrements.",
	})
)
