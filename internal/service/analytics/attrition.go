package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-insights-go/internal/config"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/analytics"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/goal"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/ai"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Risk weights. They are additive and sum to at most 0.9.
var (
	weightNewHire         = decimal.RequireFromString("0.2")
	weightRecentHire      = decimal.RequireFromString("0.1")
	weightHighTurnover    = decimal.RequireFromString("0.15")
	weightRecentLeave     = decimal.RequireFromString("0.25")
	weightLowAchievement  = decimal.RequireFromString("0.3")
	recentLeaveDaysLimit  = decimal.NewFromInt(10)
	highRiskThreshold     = decimal.RequireFromString("0.7")
	mediumRiskThreshold   = decimal.RequireFromString("0.4")
	lowAchievementCeiling = 0.5
)

const (
	newHireDays    = 180
	recentHireDays = 730

	factorNoneDetected    = "No significant risk factors detected."
	factorNotProvidedByAI = "AI model did not provide specific factors."
)

type AttritionServiceImpl struct {
	leaveRepo leave.LeaveRepository
	goalRepo  goal.GoalRepository
	completer ai.Completer
	cfg       config.AnalyticsConfig
	clock     clock.Clock
}

func NewAttritionService(
	leaveRepo leave.LeaveRepository,
	goalRepo goal.GoalRepository,
	completer ai.Completer,
	cfg config.AnalyticsConfig,
	clk clock.Clock,
) analytics.AttritionService {
	return &AttritionServiceImpl{
		leaveRepo: leaveRepo,
		goalRepo:  goalRepo,
		completer: completer,
		cfg:       cfg,
		clock:     clk,
	}
}

// PredictAttrition implements analytics.AttritionService
func (s *AttritionServiceImpl) PredictAttrition(ctx context.Context, emp employee.Employee) (*analytics.AttritionPrediction, error) {
	now := s.clock.Now()

	signals, err := s.signals(ctx, emp, now)
	if err != nil {
		return nil, err
	}

	if !ai.IsConfigured(s.completer) {
		recordFallback(opAttrition, ai.ErrNotConfigured)
		return ScoreAttrition(emp, signals, s.cfg.HighTurnoverRoles, now), nil
	}

	prediction, err := s.predictWithAI(ctx, emp, signals, now)
	if err != nil {
		recordFallback(opAttrition, err)
		return ScoreAttrition(emp, signals, s.cfg.HighTurnoverRoles, now), nil
	}
	return prediction, nil
}

func (s *AttritionServiceImpl) signals(ctx context.Context, emp employee.Employee, now time.Time) (analytics.AttritionSignals, error) {
	since := now.AddDate(0, 0, -s.cfg.AttritionLeaveWindowDays)

	var (
		leaveDays decimal.Decimal
		goals     []goal.StatusRecord
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leaveDays, err = s.leaveRepo.SumApprovedDays(gCtx, emp.ID, since)
		if err != nil {
			return fmt.Errorf("failed to sum recent leave: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		goals, err = s.goalRepo.ListStatusesByEmployee(gCtx, emp.ID)
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return analytics.AttritionSignals{}, err
	}

	return analytics.AttritionSignals{
		TenureDays:      emp.TenureDays(now),
		RecentLeaveDays: leaveDays,
		GoalAchievement: goal.AchievementRatio(goals),
	}, nil
}

type attritionResult struct {
	RiskLevel analytics.RiskLevel `json:"riskLevel"`
	RiskScore float64             `json:"riskScore"`
	Factors   []string            `json:"factors"`
}

func (s *AttritionServiceImpl) predictWithAI(ctx context.Context, emp employee.Employee, signals analytics.AttritionSignals, now time.Time) (*analytics.AttritionPrediction, error) {
	prompt := attritionPrompt(emp, signals, s.cfg.AttritionLeaveWindowDays)

	text, err := s.completer.Complete(ctx, prompt, attritionMaxTokens, attritionTemperature)
	if err != nil {
		return nil, err
	}

	if err := validator.ValidateJSON(text, validator.AttritionSchema); err != nil {
		return nil, fmt.Errorf("attrition response rejected: %w", err)
	}

	var result attritionResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("failed to decode attrition response: %w", err)
	}

	factors := result.Factors
	if factors == nil {
		factors = []string{factorNotProvidedByAI}
	}

	return &analytics.AttritionPrediction{
		EmployeeID:     emp.ID,
		RiskScore:      decimal.NewFromFloat(result.RiskScore).StringFixed(2),
		RiskLevel:      result.RiskLevel,
		PredictionDate: analytics.FormatDate(now),
		Factors:        factors,
	}, nil
}

// ScoreAttrition is the deterministic weighted-factor scorer. Signals are
// evaluated in a fixed order: tenure, role, recent leave, goal achievement.
func ScoreAttrition(emp employee.Employee, signals analytics.AttritionSignals, highTurnoverRoles []string, now time.Time) *analytics.AttritionPrediction {
	score := decimal.Zero
	var factors []string

	switch {
	case signals.TenureDays < newHireDays:
		score = score.Add(weightNewHire)
		factors = append(factors, "New hire (less than 6 months)")
	case signals.TenureDays < recentHireDays:
		score = score.Add(weightRecentHire)
		factors = append(factors, "Relatively new hire (less than 2 years)")
	}

	if emp.JobTitle != "" && validator.IsInSlice(emp.JobTitle, highTurnoverRoles) {
		score = score.Add(weightHighTurnover)
		factors = append(factors, "High-turnover role detected: "+emp.JobTitle)
	}

	if signals.RecentLeaveDays.GreaterThan(recentLeaveDaysLimit) {
		score = score.Add(weightRecentLeave)
		factors = append(factors, fmt.Sprintf("High number of leave days recently (%s days)", signals.RecentLeaveDays.String()))
	}

	if signals.GoalAchievement < lowAchievementCeiling {
		score = score.Add(weightLowAchievement)
		factors = append(factors, fmt.Sprintf("Low goal achievement rate (%s%%)", percent(signals.GoalAchievement)))
	}

	score = decimal.Min(score, decimal.NewFromInt(1))

	if len(factors) == 0 {
		factors = []string{factorNoneDetected}
	}

	return &analytics.AttritionPrediction{
		EmployeeID:     emp.ID,
		RiskScore:      score.StringFixed(2),
		RiskLevel:      classifyRisk(score),
		PredictionDate: analytics.FormatDate(now),
		Factors:        factors,
	}
}

func classifyRisk(score decimal.Decimal) analytics.RiskLevel {
	switch {
	case score.GreaterThan(highRiskThreshold):
		return analytics.RiskHigh
	case score.GreaterThan(mediumRiskThreshold):
		return analytics.RiskMedium
	default:
		return analytics.RiskLow
	}
}
