package hub

import "github.com/prometheus/client_golang/prometheus"

var (
	cacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "cookie_cache_hits_total", Help: "cookie lookups answered from cache"},
	)

	cacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "cookie_cache_misses_total", Help: "cookie lookups that went to the hub"},
	)

	verifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cookie_verifications_total", Help: "hub verification calls by outcome"},
		[]string{"outcome"},
	)

	hubRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hub_request_duration_seconds",
			Help:    "hub verification round-trip time.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
	)
)

func init() {
	prometheus.MustRegister(
		cacheHits,
		cacheMisses,
		verifications,
		hubRequestDuration,
	)
}
