package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-insights-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/goal"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/performance"
	"github.com/shopspring/decimal"
)

type fakeAttendanceRepo struct {
	records []attendance.Record
	err     error
	since   time.Time
}

func (f *fakeAttendanceRepo) ListQualifyingSince(ctx context.Context, since time.Time) ([]attendance.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.since = since
	return f.records, f.err
}

type fakeLeaveRepo struct {
	approved []leave.Record
	sumDays  decimal.Decimal
	sumSince time.Time
	byPolicy []leave.PolicyDays
	onLeave  int64
	reason   string
	err      error
}

func (f *fakeLeaveRepo) ListApprovedSince(context.Context, time.Time) ([]leave.Record, error) {
	return f.approved, f.err
}

func (f *fakeLeaveRepo) SumApprovedDays(_ context.Context, _ string, since time.Time) (decimal.Decimal, error) {
	f.sumSince = since
	return f.sumDays, f.err
}

func (f *fakeLeaveRepo) ListApprovedDaysByPolicy(context.Context) ([]leave.PolicyDays, error) {
	return f.byPolicy, f.err
}

func (f *fakeLeaveRepo) CountOnLeave(context.Context, time.Time) (int64, error) {
	return f.onLeave, f.err
}

func (f *fakeLeaveRepo) MostCommonReason(context.Context) (string, error) {
	return f.reason, f.err
}

type fakeBalanceRepo struct {
	balances []leave.Balance
	err      error
}

func (f *fakeBalanceRepo) ListAll(ctx context.Context) ([]leave.Balance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.balances, f.err
}

type fakeGoalRepo struct {
	statuses   []goal.StatusRecord
	byEmployee map[string][]goal.StatusRecord
	counts     []goal.StatusCount
	err        error
}

func (f *fakeGoalRepo) ListStatuses(context.Context) ([]goal.StatusRecord, error) {
	return f.statuses, f.err
}

func (f *fakeGoalRepo) ListStatusesByEmployee(_ context.Context, employeeID string) ([]goal.StatusRecord, error) {
	return f.byEmployee[employeeID], f.err
}

func (f *fakeGoalRepo) CountByStatus(context.Context) ([]goal.StatusCount, error) {
	return f.counts, f.err
}

type fakeEmployeeRepo struct {
	employees  map[string]employee.Employee
	lookupErr  error
	count      int64
	onboarding int64
	hireDates  []time.Time
	err        error

	mu      sync.Mutex
	lookups int
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	f.mu.Lock()
	f.lookups++
	f.mu.Unlock()

	if f.lookupErr != nil {
		return employee.Employee{}, f.lookupErr
	}
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) Count(context.Context) (int64, error) {
	return f.count, f.err
}

func (f *fakeEmployeeRepo) CountByStatus(_ context.Context, status employee.Status) (int64, error) {
	if status != employee.StatusOnboarding {
		return 0, f.err
	}
	return f.onboarding, f.err
}

func (f *fakeEmployeeRepo) ListHireDates(context.Context) ([]time.Time, error) {
	return f.hireDates, f.err
}

type fakeReviewRepo struct {
	stats performance.RatingStats
	err   error
}

func (f *fakeReviewRepo) RatingStats(context.Context) (performance.RatingStats, error) {
	return f.stats, f.err
}

// scriptedCompleter returns a canned response and records what it was asked.
type scriptedCompleter struct {
	text string
	err  error

	mu          sync.Mutex
	calls       int
	prompt      string
	maxTokens   int
	temperature float32
}

func (c *scriptedCompleter) Complete(_ context.Context, prompt string, maxTokens int, temperature float32) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.prompt = prompt
	c.maxTokens = maxTokens
	c.temperature = temperature
	return c.text, c.err
}

// cancellingCompleter cancels the caller's context mid-request, the way an
// aborted HTTP request or an expired job deadline does.
type cancellingCompleter struct {
	cancel context.CancelFunc
	calls  int
}

func (c *cancellingCompleter) Complete(ctx context.Context, _ string, _ int, _ float32) (string, error) {
	c.calls++
	c.cancel()
	return "", ctx.Err()
}

func hours(h float64) *float64 { return &h }

func ptr[T any](v T) *T { return &v }

// day returns midnight UTC, the way DATE columns scan.
func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func clockIn(date time.Time, hour, minute int) *time.Time {
	t := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC)
	return &t
}
