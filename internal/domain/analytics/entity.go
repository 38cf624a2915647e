package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityWarning  Severity = "Warning"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

const (
	TypeLateClockIn      = "Late Clock-In"
	TypeLongHours        = "Unusually Long Hours"
	TypeShortHours       = "Unusually Short Hours"
	TypeHighLeaveBalance = "High Leave Balance"
)

// Anomaly is a detected deviation from an expected HR data pattern. It is computed
// on demand and never persisted.
type Anomaly struct {
	ID             string   `json:"id"`
	Type           string   `json:"type"`
	Description    string   `json:"description"`
	EmployeeID     string   `json:"employeeId"`
	EmployeeName   string   `json:"employeeName,omitempty"`
	Severity       Severity `json:"severity"`
	Date           string   `json:"date"`
	Recommendation string   `json:"recommendation"`
}

// DateLayout is the ISO-8601 form anomaly dates are rendered in.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatDate renders t in DateLayout as UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Time parses the anomaly date. Unparseable dates sort as the zero time.
func (a Anomaly) Time() time.Time {
	t, err := time.Parse(time.RFC3339Nano, a.Date)
	if err != nil {
		if d, dErr := time.Parse("2006-01-02", a.Date); dErr == nil {
			return d
		}
		return time.Time{}
	}
	return t
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// AttritionPrediction is the heuristic departure risk for one employee.
// RiskScore is a 0..1 value fixed to two decimals, e.g. "0.35".
type AttritionPrediction struct {
	EmployeeID     string    `json:"employeeId"`
	RiskScore      string    `json:"riskScore"`
	RiskLevel      RiskLevel `json:"riskLevel"`
	PredictionDate string    `json:"predictionDate"`
	Factors        []string  `json:"factors"`
}

// AttritionSignals are the derived inputs both prediction paths share.
type AttritionSignals struct {
	TenureDays      float64
	RecentLeaveDays decimal.Decimal
	GoalAchievement float64
}
