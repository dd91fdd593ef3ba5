package traceix

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "traceix_client",
			Name:      "requests_total",
			Help:      "API operations issued, by endpoint.",
		},
		[]string{"endpoint"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "traceix_client",
			Name:      "request_failures_total",
			Help:      "API operations that returned an error, by endpoint.",
		},
		[]string{"endpoint"},
	)
)

func observeRequest(endpoint string, err error) {
	requestsTotal.WithLabelValues(endpoint).Inc()
	if err != nil {
		requestFailuresTotal.WithLabelValues(endpoint).Inc()
	}
}
