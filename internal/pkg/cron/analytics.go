package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-insights-go/internal/domain/analytics"
	"github.com/cmlabs-hris/hris-insights-go/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

const anomalyScanJob = "anomaly_scan"

type AnalyticsJobs struct {
	anomalyService analytics.AnomalyService
	interval       time.Duration
	timeout        time.Duration
	gauge          *prometheus.GaugeVec
}

func NewAnalyticsJobs(anomalyService analytics.AnomalyService, interval, timeout time.Duration) *AnalyticsJobs {
	return &AnalyticsJobs{
		anomalyService: anomalyService,
		interval:       interval,
		timeout:        timeout,
		gauge:          metrics.AnomaliesDetected,
	}
}

// RegisterJobs adds the periodic anomaly scan. A zero interval disables it.
func (j *AnalyticsJobs) RegisterJobs(scheduler *Scheduler) error {
	if j.interval == 0 {
		slog.Info("Cron: periodic anomaly scan disabled")
		return nil
	}
	return scheduler.AddJob(Job{
		Name:     anomalyScanJob,
		Interval: j.interval,
		Timeout:  j.timeout,
		Fn:       j.ScanAnomalies,
	})
}

// ScanAnomalies runs a detection pass and publishes per-type counts.
func (j *AnalyticsJobs) ScanAnomalies(ctx context.Context) error {
	anomalies, err := j.anomalyService.DetectAnomalies(ctx)
	if err != nil {
		return fmt.Errorf("failed to detect anomalies: %w", err)
	}

	counts := make(map[string]int)
	for _, a := range anomalies {
		counts[a.Type]++
	}

	// Types absent from this pass must not keep last pass's value
	j.gauge.Reset()
	for typ, n := range counts {
		j.gauge.WithLabelValues(typ).Set(float64(n))
	}

	slog.Info("Cron: anomaly scan finished", "anomalies", len(anomalies), "types", len(counts))
	return nil
}
