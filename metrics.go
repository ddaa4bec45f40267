package patternsapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// The framework label is what the load-test reports pivot on: the same
// series exists once per server variant.
var (
	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "patterns_api_requests_total",
		Help: "HTTP requests served, by framework, route and status.",
	}, []string{"framework", "method", "path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "patterns_api_request_duration_seconds",
		Help:    "HTTP request latency, by framework and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"framework", "method", "path"})
)

func observeRequest(framework, method, path string, status int, elapsed time.Duration) {
	requestTotal.WithLabelValues(framework, method, path, statusLabel(status)).Inc()
	requestDuration.WithLabelValues(framework, method, path).Observe(elapsed.Seconds())
}
