package leave

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type LeaveRepository interface {
	// ListApprovedSince returns approved leave starting on or after since.
	ListApprovedSince(ctx context.Context, since time.Time) ([]Record, error)
	// SumApprovedDays returns zero when the employee has no approved leave in the window.
	SumApprovedDays(ctx context.Context, employeeID string, since time.Time) (decimal.Decimal, error)
	ListApprovedDaysByPolicy(ctx context.Context) ([]PolicyDays, error)
	CountOnLeave(ctx context.Context, day time.Time) (int64, error)
	// MostCommonReason returns "" when no leave carries a reason.
	MostCommonReason(ctx context.Context) (string, error)
}

type BalanceRepository interface {
	ListAll(ctx context.Context) ([]Balance, error)
}
