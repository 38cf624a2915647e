package analytics

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/hris-insights-go/internal/domain/analytics"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/goal"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/leave"
)

// Completion budgets per operation
const (
	anomalyMaxTokens     = 1024
	anomalyTemperature   = 0.3
	attritionMaxTokens   = 150
	attritionTemperature = 0.5
	feedbackMaxTokens    = 350
	feedbackTemperature  = 0.75
)

type promptAttendance struct {
	EmployeeID string     `json:"employeeId"`
	CheckIn    *time.Time `json:"checkIn"`
	TotalHours *float64   `json:"totalHours"`
	Date       string     `json:"date"`
}

type promptLeave struct {
	EmployeeID string  `json:"employeeId"`
	Days       float64 `json:"days"`
	Reason     *string `json:"reason"`
}

type promptGoal struct {
	EmployeeID string      `json:"employeeId"`
	Status     goal.Status `json:"status"`
}

func anomalyPrompt(windowDays int, records []attendance.Record, leaves []leave.Record, goals []goal.StatusRecord) (string, error) {
	att := make([]promptAttendance, len(records))
	for i, r := range records {
		att[i] = promptAttendance{
			EmployeeID: r.EmployeeID,
			CheckIn:    r.CheckIn,
			TotalHours: r.TotalHours,
			Date:       r.Date.Format("2006-01-02"),
		}
	}
	lv := make([]promptLeave, len(leaves))
	for i, l := range leaves {
		lv[i] = promptLeave{EmployeeID: l.EmployeeID, Days: l.Days.InexactFloat64(), Reason: l.Reason}
	}
	gl := make([]promptGoal, len(goals))
	for i, g := range goals {
		gl[i] = promptGoal{EmployeeID: g.EmployeeID, Status: g.Status}
	}

	attJSON, err := json.Marshal(att)
	if err != nil {
		return "", fmt.Errorf("failed to encode attendance: %w", err)
	}
	lvJSON, err := json.Marshal(lv)
	if err != nil {
		return "", fmt.Errorf("failed to encode leave: %w", err)
	}
	glJSON, err := json.Marshal(gl)
	if err != nil {
		return "", fmt.Errorf("failed to encode goals: %w", err)
	}

	return fmt.Sprintf(`Analyze the following raw HR data from the last %d days to identify any potential anomalies.
An anomaly is an observation that deviates significantly from other observations.
For each detected anomaly, provide a JSON object with the keys: "id", "type", "description", "employeeId", "severity", "date", and "recommendation".
Severity must be one of "Low", "Medium", "Warning", "High" or "Critical". Dates must be ISO-8601.
Return a single JSON array containing all detected anomaly objects and nothing else.

Data:
- Attendance Records: %s
- Approved Leave Records: %s
- Goal Statuses: %s

Look for patterns such as:
- Consistently late clock-ins.
- Unusually high or low work hours compared to peers or personal average.
- Excessive leave-taking.
- Sudden drops in goal achievement.
- Any other patterns that seem unusual for a corporate environment.

If no anomalies are found, return an empty array.`, windowDays, attJSON, lvJSON, glJSON), nil
}

func attritionPrompt(emp employee.Employee, signals analytics.AttritionSignals, leaveWindowDays int) string {
	return fmt.Sprintf(`Analyze the following employee profile to predict the risk of attrition (Low, Medium, or High). Provide a risk score between 0.0 and 1.0 and a list of the key contributing factors.

Employee Data:
- Job Title: %s
- Department: %s
- Tenure: %.0f days
- Recent Leave Days (last %d days): %s
- Goal Achievement Rate: %s%%

Based on this data, provide a JSON object with the keys: "riskLevel", "riskScore", and "factors".`,
		emp.JobTitle, emp.Department, math.Round(signals.TenureDays), leaveWindowDays,
		signals.RecentLeaveDays.String(), percent(signals.GoalAchievement))
}

func feedbackPrompt(rating int, comments string) string {
	return fmt.Sprintf(`As an expert HR manager, write a constructive and professional performance review feedback. The manager has provided a rating of %d out of 5 and the following comments: "%s". Based on this, generate a well-structured feedback summary including an opening statement, key strengths, areas for development, and a closing statement. The tone should be supportive and professional.`,
		rating, comments)
}

// percent renders a 0..1 ratio as a whole percentage, rounding half away from zero.
func percent(ratio float64) string {
	return fmt.Sprintf("%.0f", math.Round(ratio*100))
}
