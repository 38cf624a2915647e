package analytics

import "github.com/shopspring/decimal"

// ========== FEEDBACK ==========

type GenerateFeedbackRequest struct {
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}

type FeedbackResponse struct {
	Feedback string `json:"feedback"`
}

// ========== SUMMARY ==========

// SummaryResponse is the headline numbers of the analytics dashboard
type SummaryResponse struct {
	TotalEmployees     int64  `json:"totalEmployees"`
	OnboardingCount    int64  `json:"onboardingCount"`
	TotalGoals         int64  `json:"totalGoals"`
	AchievedGoals      int64  `json:"achievedGoals"`
	GoalCompletionRate string `json:"goalCompletionRate"` // percent, one decimal
}

// ========== CHARTS ==========

type ChartItem struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type GoalPerformanceResponse struct {
	GoalsByStatus []ChartItem `json:"goalsByStatus"`
}

type PolicyDaysItem struct {
	Name string          `json:"name"`
	Days decimal.Decimal `json:"days"`
}

type LeaveTrendsResponse struct {
	LeaveByPolicy []PolicyDaysItem `json:"leaveByPolicy"`
}

// ========== REPORT SUMMARY ==========

// ReportData is the input of the narrative report generator
type ReportData struct {
	TotalEmployees      int64
	AverageTenureYears  float64
	AverageSatisfaction float64
	TotalOnLeave        int64
	MostCommonReason    string
}

type ReportSummaryResponse struct {
	Summary string `json:"summary"`
}
