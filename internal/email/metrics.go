package email

import "github.com/prometheus/client_golang/prometheus"

var mailsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "mails_total",
		Help: "How many mails were handled, partitioned by kind and result.",
	},
	[]string{"kind", "result"},
)

// Collectors returns the Prometheus metrics of the mail queue.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{mailsTotal}
}
