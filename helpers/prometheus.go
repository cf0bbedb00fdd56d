package helpers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campusgram_http_requests_total",
		Help: "Tracks the number of HTTP requests, by method.",
	}, []string{"method"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "campusgram_http_request_duration_seconds",
		Help:    "Tracks the latencies for HTTP requests.",
		Buckets: prometheus.DefBuckets,
	})
)

// GetRegistry exposes the service metrics on a private registry
func GetRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		requestsTotal,
		requestDuration,
	)

	return registry
}

func IncrementRequests(method string) {
	requestsTotal.WithLabelValues(method).Inc()
}

func ObserveRequestDuration(seconds float64) {
	requestDuration.Observe(seconds)
}
