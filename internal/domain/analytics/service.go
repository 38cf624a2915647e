package analytics

import (
	"context"

	"github.com/cmlabs-hris/hris-insights-go/internal/domain/employee"
)

// AnomalyService detects attendance and leave anomalies over current data
type AnomalyService interface {
	// DetectAnomalies asks the completion provider first and falls back to the
	// local scanners, newest anomaly first.
	DetectAnomalies(ctx context.Context) ([]Anomaly, error)
}

// AttritionService scores departure risk for a resolved employee
type AttritionService interface {
	PredictAttrition(ctx context.Context, emp employee.Employee) (*AttritionPrediction, error)
}

// FeedbackService drafts performance review feedback
type FeedbackService interface {
	// GenerateFeedback returns ErrInvalidFeedbackInput, joined with the
	// offending fields as validator.ValidationErrors, when rating or comments is missing.
	GenerateFeedback(ctx context.Context, rating int, comments string) (string, error)
}

// InsightsService serves the aggregate dashboard endpoints
type InsightsService interface {
	GetSummary(ctx context.Context) (*SummaryResponse, error)
	GetGoalPerformance(ctx context.Context) (*GoalPerformanceResponse, error)
	GetLeaveTrends(ctx context.Context) (*LeaveTrendsResponse, error)
	GenerateReportSummary(ctx context.Context) (*ReportSummaryResponse, error)
}
