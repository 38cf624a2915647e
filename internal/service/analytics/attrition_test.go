package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-insights-go/internal/config"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/analytics"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/goal"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/ai"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var attritionNow = time.Date(2024, time.June, 1, 8, 30, 0, 0, time.UTC)

func hiredDaysAgo(days int) time.Time {
	return attritionNow.AddDate(0, 0, -days)
}

// goalsWithRatio returns ten goals of which achieved are ACHIEVED.
func goalsWithRatio(employeeID string, achieved int) []goal.StatusRecord {
	goals := make([]goal.StatusRecord, 10)
	for i := range goals {
		status := goal.StatusOnTrack
		if i < achieved {
			status = goal.StatusAchieved
		}
		goals[i] = goal.StatusRecord{EmployeeID: employeeID, Status: status}
	}
	return goals
}

func newAttritionService(leaveDays int64, goals []goal.StatusRecord, completer ai.Completer) (analytics.AttritionService, *fakeLeaveRepo) {
	leaveRepo := &fakeLeaveRepo{sumDays: decimal.NewFromInt(leaveDays)}
	goalRepo := &fakeGoalRepo{byEmployee: map[string][]goal.StatusRecord{"e1": goals}}
	svc := NewAttritionService(leaveRepo, goalRepo, completer, config.DefaultAnalyticsConfig(), clock.Fixed(attritionNow))
	return svc, leaveRepo
}

func TestPredictAttrition_Heuristic(t *testing.T) {
	cases := []struct {
		name      string
		emp       employee.Employee
		leaveDays int64
		goals     []goal.StatusRecord
		score     string
		level     analytics.RiskLevel
		factors   []string
	}{
		{
			name:  "new hire in high-turnover role",
			emp:   employee.Employee{ID: "e1", JobTitle: "Sales Development Representative", HireDate: hiredDaysAgo(10)},
			score: "0.35",
			level: analytics.RiskLow,
			factors: []string{
				"New hire (less than 6 months)",
				"High-turnover role detected: Sales Development Representative",
			},
		},
		{
			name:      "veteran with heavy leave and weak goals",
			emp:       employee.Employee{ID: "e1", JobTitle: "Engineer", HireDate: hiredDaysAgo(1000)},
			leaveDays: 15,
			goals:     goalsWithRatio("e1", 3),
			score:     "0.55",
			level:     analytics.RiskMedium,
			factors: []string{
				"High number of leave days recently (15 days)",
				"Low goal achievement rate (30%)",
			},
		},
		{
			name:    "no signals",
			emp:     employee.Employee{ID: "e1", JobTitle: "Engineer", HireDate: hiredDaysAgo(1000)},
			goals:   goalsWithRatio("e1", 5),
			score:   "0.00",
			level:   analytics.RiskLow,
			factors: []string{"No significant risk factors detected."},
		},
		{
			name:  "exactly 0.4 stays low",
			emp:   employee.Employee{ID: "e1", JobTitle: "Engineer", HireDate: hiredDaysAgo(400)},
			goals: goalsWithRatio("e1", 2),
			score: "0.40",
			level: analytics.RiskLow,
			factors: []string{
				"Relatively new hire (less than 2 years)",
				"Low goal achievement rate (20%)",
			},
		},
		{
			name:      "exactly 0.7 stays medium",
			emp:       employee.Employee{ID: "e1", JobTitle: "Junior Developer", HireDate: hiredDaysAgo(1000)},
			leaveDays: 11,
			goals:     goalsWithRatio("e1", 0),
			score:     "0.70",
			level:     analytics.RiskMedium,
			factors: []string{
				"High-turnover role detected: Junior Developer",
				"High number of leave days recently (11 days)",
				"Low goal achievement rate (0%)",
			},
		},
		{
			name:      "every signal",
			emp:       employee.Employee{ID: "e1", JobTitle: "Customer Support Agent", HireDate: hiredDaysAgo(30)},
			leaveDays: 12,
			goals:     goalsWithRatio("e1", 1),
			score:     "0.90",
			level:     analytics.RiskHigh,
			factors: []string{
				"New hire (less than 6 months)",
				"High-turnover role detected: Customer Support Agent",
				"High number of leave days recently (12 days)",
				"Low goal achievement rate (10%)",
			},
		},
		{
			name:      "ten leave days is not high",
			emp:       employee.Employee{ID: "e1", JobTitle: "Engineer", HireDate: hiredDaysAgo(1000)},
			leaveDays: 10,
			score:     "0.00",
			level:     analytics.RiskLow,
			factors:   []string{"No significant risk factors detected."},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc, _ := newAttritionService(c.leaveDays, c.goals, ai.NullCompleter{})

			got, err := svc.PredictAttrition(context.Background(), c.emp)
			require.NoError(t, err)

			assert.Equal(t, "e1", got.EmployeeID)
			assert.Equal(t, c.score, got.RiskScore)
			assert.Equal(t, c.level, got.RiskLevel)
			assert.Equal(t, c.factors, got.Factors)
			assert.Equal(t, "2024-06-01T08:30:00.000Z", got.PredictionDate)
		})
	}
}

func TestPredictAttrition_LeaveWindow(t *testing.T) {
	svc, leaveRepo := newAttritionService(0, nil, ai.NullCompleter{})

	_, err := svc.PredictAttrition(context.Background(), employee.Employee{ID: "e1", HireDate: hiredDaysAgo(1000)})
	require.NoError(t, err)
	assert.Equal(t, attritionNow.AddDate(0, 0, -90), leaveRepo.sumSince)
}

func TestPredictAttrition_AIResponse(t *testing.T) {
	completer := &scriptedCompleter{text: `{"riskLevel":"High","riskScore":0.812,"factors":["Long commute","Stalled promotion"]}`}
	svc, _ := newAttritionService(4, nil, completer)
	emp := employee.Employee{ID: "e1", JobTitle: "Junior Developer", Department: "Engineering", HireDate: hiredDaysAgo(200)}

	got, err := svc.PredictAttrition(context.Background(), emp)
	require.NoError(t, err)

	assert.Equal(t, "0.81", got.RiskScore)
	assert.Equal(t, analytics.RiskHigh, got.RiskLevel)
	assert.Equal(t, []string{"Long commute", "Stalled promotion"}, got.Factors)
	assert.Equal(t, "2024-06-01T08:30:00.000Z", got.PredictionDate)

	assert.Equal(t, attritionMaxTokens, completer.maxTokens)
	assert.Contains(t, completer.prompt, "- Job Title: Junior Developer")
	assert.Contains(t, completer.prompt, "- Department: Engineering")
	assert.Contains(t, completer.prompt, "- Tenure: 200 days")
	assert.Contains(t, completer.prompt, "- Recent Leave Days (last 90 days): 4")
	assert.Contains(t, completer.prompt, "- Goal Achievement Rate: 100%")
}

func TestPredictAttrition_AIWithoutFactors(t *testing.T) {
	completer := &scriptedCompleter{text: `{"riskLevel":"Low","riskScore":0.1}`}
	svc, _ := newAttritionService(0, nil, completer)

	got, err := svc.PredictAttrition(context.Background(), employee.Employee{ID: "e1", HireDate: hiredDaysAgo(1000)})
	require.NoError(t, err)
	assert.Equal(t, []string{"AI model did not provide specific factors."}, got.Factors)
	assert.Equal(t, "0.10", got.RiskScore)
}

func TestPredictAttrition_AIFailuresFallBack(t *testing.T) {
	emp := employee.Employee{ID: "e1", JobTitle: "Sales Development Representative", HireDate: hiredDaysAgo(10)}

	for name, completer := range map[string]*scriptedCompleter{
		"provider error": {err: errors.New("502 bad gateway")},
		"not json":       {text: "The risk is high."},
		"out of range":   {text: `{"riskLevel":"High","riskScore":7}`},
		"unknown level":  {text: `{"riskLevel":"Extreme","riskScore":0.9}`},
	} {
		t.Run(name, func(t *testing.T) {
			svc, _ := newAttritionService(0, nil, completer)

			got, err := svc.PredictAttrition(context.Background(), emp)
			require.NoError(t, err)
			assert.Equal(t, "0.35", got.RiskScore)
			assert.Equal(t, analytics.RiskLow, got.RiskLevel)
			assert.Equal(t, 1, completer.calls)
		})
	}
}

func TestPredictAttrition_DataErrorPropagates(t *testing.T) {
	dbErr := errors.New("connection refused")
	completer := &scriptedCompleter{text: `{"riskLevel":"Low","riskScore":0.1}`}
	leaveRepo := &fakeLeaveRepo{err: dbErr}
	svc := NewAttritionService(leaveRepo, &fakeGoalRepo{}, completer, config.DefaultAnalyticsConfig(), clock.Fixed(attritionNow))

	_, err := svc.PredictAttrition(context.Background(), employee.Employee{ID: "e1"})
	assert.ErrorIs(t, err, dbErr)
	assert.Zero(t, completer.calls)
}

func TestScoreAttrition_ConfiguredRoles(t *testing.T) {
	emp := employee.Employee{ID: "e1", JobTitle: "Barista"}
	signals := analytics.AttritionSignals{TenureDays: 1000, RecentLeaveDays: decimal.Zero, GoalAchievement: 1}

	got := ScoreAttrition(emp, signals, []string{"Barista"}, attritionNow)
	assert.Equal(t, "0.15", got.RiskScore)

	got = ScoreAttrition(emp, signals, nil, attritionNow)
	assert.Equal(t, "0.00", got.RiskScore)
}
