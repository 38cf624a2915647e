package analytics

import (
	"errors"
	"log/slog"

	"github.com/cmlabs-hris/hris-insights-go/internal/metrics"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/ai"
)

// Operation labels for logs and metrics
const (
	opAnomalies = "detect_anomalies"
	opAttrition = "predict_attrition"
	opFeedback  = "generate_feedback"
)

// recordFallback logs and counts a switch to the heuristic path. A missing
// credential is routine; anything else is a provider failure.
func recordFallback(operation string, err error) {
	if errors.Is(err, ai.ErrNotConfigured) {
		slog.Debug("Completion provider not configured, using heuristics", "operation", operation)
		metrics.FallbacksTotal.WithLabelValues(operation, "not_configured").Inc()
		return
	}
	slog.Warn("Completion provider failed, falling back to heuristics", "operation", operation, "error", err)
	metrics.FallbacksTotal.WithLabelValues(operation, "provider_error").Inc()
}
