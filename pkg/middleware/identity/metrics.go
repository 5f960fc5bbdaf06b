package identity

import "github.com/prometheus/client_golang/prometheus"

var identityMismatches = prometheus.NewCounter(
	prometheus.CounterOpts{Name: "identity_mismatches_total", Help: "valid sessions rejected for belonging to another user"},
)

func init() {
	prometheus.MustRegister(identityMismatches)
}
