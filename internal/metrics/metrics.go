package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// GenerateDuration tracks provider call latency.
	GenerateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "app_generate_duration_seconds",
		Help:    "Time spent waiting on an LLM provider.",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"provider"})

	// GenerateErrors counts failed generations by provider and error kind.
	GenerateErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_generate_errors_total",
		Help: "Failed generations by provider and error kind.",
	}, []string{"provider", "kind"})

	// ProviderAvailable tracks whether each provider is usable.
	ProviderAvailable = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "app_provider_available",
		Help: "Whether an LLM provider is available (1) or not (0).",
	}, []string{"provider"})
)
