package account

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var eventsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "account_events_total",
		Help: "How many account operations were attempted, partitioned by operation and result.",
	},
	[]string{"operation", "result"},
)

// Collectors returns the Prometheus metrics of the account service.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{eventsTotal}
}

func countEvent(operation string, err error) {
	result := "success"
	switch {
	case err == nil:
	case errors.Is(err, ErrDuplicateEmail):
		result = "duplicate"
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrUnauthorized):
		result = "rejected"
	case errors.Is(err, ErrUserNotFound):
		result = "unknown-user"
	case errors.Is(err, ErrNotConfirmed):
		result = "unconfirmed"
	case errors.Is(err, ErrIncorrectPassword):
		result = "wrong-password"
	default:
		result = "error"
	}

	eventsTotal.WithLabelValues(operation, result).Inc()
}
