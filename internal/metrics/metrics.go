package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yojana_mitra_requests_total",
			Help: "Total number of HTTP requests handled, by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	ProviderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "yojana_mitra_provider_latency_seconds",
			Help:    "Latency of outbound chat-completions calls, by provider.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	FallbackServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yojana_mitra_fallback_responses_total",
			Help: "Total number of answers served from the local scheme knowledge base.",
		},
	)
)
