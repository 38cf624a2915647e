package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-insights-go/internal/domain/analytics"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/goal"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/performance"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

const daysPerYear = 365.25

type InsightsServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	goalRepo     goal.GoalRepository
	leaveRepo    leave.LeaveRepository
	reviewRepo   performance.ReviewRepository
	clock        clock.Clock
}

func NewInsightsService(
	employeeRepo employee.EmployeeRepository,
	goalRepo goal.GoalRepository,
	leaveRepo leave.LeaveRepository,
	reviewRepo performance.ReviewRepository,
	clk clock.Clock,
) analytics.InsightsService {
	return &InsightsServiceImpl{
		employeeRepo: employeeRepo,
		goalRepo:     goalRepo,
		leaveRepo:    leaveRepo,
		reviewRepo:   reviewRepo,
		clock:        clk,
	}
}

// GetSummary returns headcount and goal completion using parallel queries
func (s *InsightsServiceImpl) GetSummary(ctx context.Context) (*analytics.SummaryResponse, error) {
	var (
		total      int64
		onboarding int64
		goalCounts []goal.StatusCount
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		total, err = s.employeeRepo.Count(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		onboarding, err = s.employeeRepo.CountByStatus(gCtx, employee.StatusOnboarding)
		return err
	})

	g.Go(func() error {
		var err error
		goalCounts, err = s.goalRepo.CountByStatus(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build summary: %w", err)
	}

	var totalGoals, achieved int64
	for _, c := range goalCounts {
		totalGoals += c.Count
		if c.Status == goal.StatusAchieved {
			achieved = c.Count
		}
	}

	rate := 0.0
	if totalGoals > 0 {
		rate = float64(achieved) / float64(totalGoals) * 100
	}

	return &analytics.SummaryResponse{
		TotalEmployees:     total,
		OnboardingCount:    onboarding,
		TotalGoals:         totalGoals,
		AchievedGoals:      achieved,
		GoalCompletionRate: fmt.Sprintf("%.1f", rate),
	}, nil
}

// GetGoalPerformance returns goal counts per status for charting
func (s *InsightsServiceImpl) GetGoalPerformance(ctx context.Context) (*analytics.GoalPerformanceResponse, error) {
	counts, err := s.goalRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count goals: %w", err)
	}

	items := make([]analytics.ChartItem, 0, len(counts))
	for _, c := range counts {
		items = append(items, analytics.ChartItem{
			Name:  strings.ReplaceAll(string(c.Status), "_", " "),
			Value: c.Count,
		})
	}
	return &analytics.GoalPerformanceResponse{GoalsByStatus: items}, nil
}

// GetLeaveTrends returns approved leave days per policy
func (s *InsightsServiceImpl) GetLeaveTrends(ctx context.Context) (*analytics.LeaveTrendsResponse, error) {
	totals, err := s.leaveRepo.ListApprovedDaysByPolicy(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate leave: %w", err)
	}

	items := make([]analytics.PolicyDaysItem, 0, len(totals))
	for _, t := range totals {
		items = append(items, analytics.PolicyDaysItem{Name: t.PolicyName, Days: t.Days})
	}
	return &analytics.LeaveTrendsResponse{LeaveByPolicy: items}, nil
}

// GenerateReportSummary gathers headline figures and renders them as markdown
func (s *InsightsServiceImpl) GenerateReportSummary(ctx context.Context) (*analytics.ReportSummaryResponse, error) {
	now := s.clock.Now()

	var (
		data      analytics.ReportData
		hireDates []time.Time
		ratings   performance.RatingStats
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		data.TotalEmployees, err = s.employeeRepo.Count(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		hireDates, err = s.employeeRepo.ListHireDates(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		ratings, err = s.reviewRepo.RatingStats(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		data.TotalOnLeave, err = s.leaveRepo.CountOnLeave(gCtx, now)
		return err
	})

	g.Go(func() error {
		var err error
		data.MostCommonReason, err = s.leaveRepo.MostCommonReason(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to gather report data: %w", err)
	}

	data.AverageTenureYears = averageTenureYears(hireDates, now)
	data.AverageSatisfaction = ratings.Average
	if data.MostCommonReason == "" {
		data.MostCommonReason = "N/A"
	}

	return &analytics.ReportSummaryResponse{Summary: RenderReportSummary(data)}, nil
}

func averageTenureYears(hireDates []time.Time, now time.Time) float64 {
	if len(hireDates) == 0 {
		return 0
	}
	var totalDays float64
	for _, d := range hireDates {
		totalDays += now.Sub(d).Hours() / 24
	}
	return totalDays / float64(len(hireDates)) / daysPerYear
}
