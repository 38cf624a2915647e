package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analytics service metrics
var (
	// Completion provider calls
	AIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hris_ai_requests_total",
			Help: "Total number of completion provider requests",
		},
		[]string{"model", "status"}, // status: success/error/empty
	)

	AIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hris_ai_request_duration_seconds",
			Help:    "Completion provider request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 8), // 100ms to ~13s
		},
		[]string{"model"},
	)

	// Deterministic fallbacks taken by the analytics services
	FallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hris_analytics_fallbacks_total",
			Help: "Total number of heuristic fallbacks taken",
		},
		[]string{"operation", "reason"}, // reason: not_configured/provider_error
	)

	// Latest periodic scan result
	AnomaliesDetected = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hris_anomalies_detected",
			Help: "Anomalies found by the most recent periodic scan",
		},
		[]string{"type"},
	)
)
