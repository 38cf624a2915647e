package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/cmlabs-hris/hris-insights-go/internal/config"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/analytics"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/goal"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/ai"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

// maxNameLookups bounds concurrent employee lookups while enriching AI output.
const maxNameLookups = 4

type AnomalyServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	balanceRepo    leave.BalanceRepository
	goalRepo       goal.GoalRepository
	employeeRepo   employee.EmployeeRepository
	completer      ai.Completer
	cfg            config.AnalyticsConfig
	clock          clock.Clock
}

func NewAnomalyService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	balanceRepo leave.BalanceRepository,
	goalRepo goal.GoalRepository,
	employeeRepo employee.EmployeeRepository,
	completer ai.Completer,
	cfg config.AnalyticsConfig,
	clk clock.Clock,
) analytics.AnomalyService {
	return &AnomalyServiceImpl{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		balanceRepo:    balanceRepo,
		goalRepo:       goalRepo,
		employeeRepo:   employeeRepo,
		completer:      completer,
		cfg:            cfg,
		clock:          clk,
	}
}

// DetectAnomalies implements analytics.AnomalyService
func (s *AnomalyServiceImpl) DetectAnomalies(ctx context.Context) ([]analytics.Anomaly, error) {
	if !ai.IsConfigured(s.completer) {
		recordFallback(opAnomalies, ai.ErrNotConfigured)
		return s.scan(ctx)
	}

	anomalies, err := s.detectWithAI(ctx)
	if err != nil {
		recordFallback(opAnomalies, err)
		// The AI call may have consumed the caller's deadline; the scan still runs to completion.
		return s.scan(context.WithoutCancel(ctx))
	}
	return anomalies, nil
}

func (s *AnomalyServiceImpl) detectWithAI(ctx context.Context) ([]analytics.Anomaly, error) {
	since := s.clock.Now().AddDate(0, 0, -s.cfg.WindowDays)

	var (
		records []attendance.Record
		leaves  []leave.Record
		goals   []goal.StatusRecord
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListQualifyingSince(gCtx, since)
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = s.leaveRepo.ListApprovedSince(gCtx, since)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = s.goalRepo.ListStatuses(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to gather anomaly data: %w", err)
	}

	prompt, err := anomalyPrompt(s.cfg.WindowDays, records, leaves, goals)
	if err != nil {
		return nil, err
	}

	text, err := s.completer.Complete(ctx, prompt, anomalyMaxTokens, anomalyTemperature)
	if err != nil {
		return nil, err
	}

	if err := validator.ValidateJSON(text, validator.AnomalyListSchema); err != nil {
		return nil, fmt.Errorf("anomaly response rejected: %w", err)
	}

	anomalies := []analytics.Anomaly{}
	if err := json.Unmarshal([]byte(text), &anomalies); err != nil {
		return nil, fmt.Errorf("failed to decode anomaly response: %w", err)
	}

	s.attachNames(ctx, anomalies)
	return anomalies, nil
}

// attachNames resolves employee names for AI-reported anomalies. A failed
// lookup leaves the name empty.
func (s *AnomalyServiceImpl) attachNames(ctx context.Context, anomalies []analytics.Anomaly) {
	names := make(map[string]string)
	for _, a := range anomalies {
		names[a.EmployeeID] = ""
	}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(maxNameLookups)
	for id := range names {
		g.Go(func() error {
			emp, err := s.employeeRepo.GetByID(ctx, id)
			if err != nil {
				if !errors.Is(err, employee.ErrEmployeeNotFound) {
					slog.Warn("Failed to resolve anomaly employee", "employee_id", id, "error", err)
				}
				return nil
			}
			mu.Lock()
			names[id] = emp.FullName()
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	for i := range anomalies {
		anomalies[i].EmployeeName = names[anomalies[i].EmployeeID]
	}
}

// scan runs the local scanners over current data, newest anomaly first.
func (s *AnomalyServiceImpl) scan(ctx context.Context) ([]analytics.Anomaly, error) {
	now := s.clock.Now()
	since := now.AddDate(0, 0, -s.cfg.WindowDays)

	var (
		records  []attendance.Record
		balances []leave.Balance
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListQualifyingSince(gCtx, since)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		balances, err = s.balanceRepo.ListAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list leave balances: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	anomalies := make([]analytics.Anomaly, 0)
	anomalies = append(anomalies, ScanAttendance(records, s.cfg)...)
	anomalies = append(anomalies, ScanLeaveBalances(balances, s.cfg, now)...)

	SortByRecency(anomalies)
	return anomalies, nil
}

// SortByRecency orders anomalies by date, most recent first. Equal dates keep
// their scan order.
func SortByRecency(anomalies []analytics.Anomaly) {
	sort.SliceStable(anomalies, func(i, j int) bool {
		return anomalies[i].Time().After(anomalies[j].Time())
	})
}
