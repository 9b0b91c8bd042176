package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// PortfolioRequestsTotal counts portfolio lookups by outcome
	// (ok, empty, upstream_error, invalid_address).
	PortfolioRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_requests_total",
			Help: "Number of portfolio lookups, labelled by outcome.",
		},
		[]string{"outcome"},
	)

	// CacheHitsTotal counts wallet payloads served from the TTL cache.
	CacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_cache_hits_total",
			Help: "Number of portfolio lookups served from cache.",
		},
	)

	// CacheMissesTotal counts wallet payloads fetched from Helius.
	CacheMissesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_cache_misses_total",
			Help: "Number of portfolio lookups that went to the upstream API.",
		},
	)

	// CacheInvalidationsTotal counts user-triggered refreshes.
	CacheInvalidationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_cache_invalidations_total",
			Help: "Number of explicit cache invalidations.",
		},
	)

	// UpstreamErrorsTotal counts failed Helius calls.
	UpstreamErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "helius_upstream_errors_total",
			Help: "Number of failed requests to the Helius API.",
		},
	)

	// UpstreamRequestDuration tracks Helius call latency.
	UpstreamRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "helius_upstream_request_duration_seconds",
			Help:    "Latency of getAssetsByOwner calls.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// MustRegisterMetrics registers all collectors with the default registry.
// Call once at startup, before serving /metrics.
func MustRegisterMetrics() {
	prometheus.MustRegister(
		PortfolioRequestsTotal,
		CacheHitsTotal,
		CacheMissesTotal,
		CacheInvalidationsTotal,
		UpstreamErrorsTotal,
		UpstreamRequestDuration,
	)
}
