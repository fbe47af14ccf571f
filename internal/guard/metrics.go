package guard

import "github.com/prometheus/client_golang/prometheus"

var deniedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ownership_denied_total",
		Help: "How many requests were denied because the user does not own the resource.",
	},
	[]string{"resource"},
)

// Collectors returns the Prometheus metrics of the guard.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{deniedTotal}
}
