package apiclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK             = "ok"
	outcomeTransportError = "transport_error"
	outcomeHTTPError      = "http_error"
	outcomeDecodeError    = "decode_error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dulpromax_client",
			Name:      "requests_total",
			Help:      "API calls issued, by method, route template and outcome.",
		},
		[]string{"method", "route", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dulpromax_client",
			Name:      "request_duration_seconds",
			Help:      "Latency of API calls until a response or transport failure.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

func observe(method, route, outcome string, start time.Time) {
	requestsTotal.WithLabelValues(method, route, outcome).Inc()
	requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}
