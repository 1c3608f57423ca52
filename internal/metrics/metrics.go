package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProviderAttemptsTotal tracks provider-chain attempts per category,
	// provider and outcome (success, transport_error, schema_error).
	ProviderAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geolens_provider_attempts_total",
			Help: "Total number of provider chain attempts",
		},
		[]string{"category", "provider", "outcome"},
	)

	// FallbackTotal tracks how often a whole chain failed and the bundled
	// static fallback was served.
	FallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geolens_fallback_total",
			Help: "Total number of category fetches served from static fallback",
		},
		[]string{"category"},
	)

	// CacheHitsTotal tracks cache hits per category.
	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geolens_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"category"},
	)

	// CacheMissesTotal tracks cache misses per category.
	CacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geolens_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"category"},
	)

	// ProviderLatency tracks per-attempt provider latency.
	ProviderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geolens_provider_latency_seconds",
			Help:    "Provider attempt latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"category", "provider"},
	)

	// ResolutionsTotal tracks feature resolutions by winning tier
	// (code, common_name, official_name, containment, not_found).
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geolens_resolutions_total",
			Help: "Total number of boundary feature resolutions",
		},
		[]string{"tier"},
	)

	// StaleResultsDiscarded counts enrichment results dropped because a
	// newer selection superseded them before arrival.
	StaleResultsDiscarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "geolens_stale_results_discarded_total",
			Help: "Total number of stale enrichment results discarded",
		},
	)
)
