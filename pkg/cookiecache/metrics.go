package cookiecache

import "github.com/prometheus/client_golang/prometheus"

var cacheClears = prometheus.NewCounter(
	prometheus.CounterOpts{Name: "cookie_cache_clears_total", Help: "full cookie cache clears"},
)

func init() {
	prometheus.MustRegister(cacheClears)
}
