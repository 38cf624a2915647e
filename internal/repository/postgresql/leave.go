package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-insights-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// ListApprovedSince implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListApprovedSince(ctx context.Context, since time.Time) ([]leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, policy_id, start_date, end_date, days, status, reason
		FROM leaves
		WHERE status = $1 AND start_date >= $2::date
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, leave.StatusApproved, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave: %w", err)
	}
	defer rows.Close()

	var records []leave.Record
	for rows.Next() {
		var rec leave.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.PolicyID, &rec.StartDate, &rec.EndDate, &rec.Days, &rec.Status, &rec.Reason,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// SumApprovedDays implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) SumApprovedDays(ctx context.Context, employeeID string, since time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(days), 0)
		FROM leaves
		WHERE employee_id = $1 AND status = $2 AND start_date >= $3::date
	`

	var days decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, leave.StatusApproved, since).Scan(&days); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum leave days for employee %s: %w", employeeID, err)
	}
	return days, nil
}

// ListApprovedDaysByPolicy implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListApprovedDaysByPolicy(ctx context.Context) ([]leave.PolicyDays, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.name, SUM(l.days)
		FROM leaves l
		JOIN leave_policies p ON p.id = l.policy_id
		WHERE l.status = $1
		GROUP BY p.name
		ORDER BY p.name
	`

	rows, err := q.Query(ctx, query, leave.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate leave by policy: %w", err)
	}
	defer rows.Close()

	var totals []leave.PolicyDays
	for rows.Next() {
		var t leave.PolicyDays
		if err := rows.Scan(&t.PolicyName, &t.Days); err != nil {
			return nil, fmt.Errorf("failed to scan policy days: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// CountOnLeave implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) CountOnLeave(ctx context.Context, day time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM leaves
		WHERE status = $1 AND start_date <= $2::date AND end_date >= $2::date
	`

	var count int64
	if err := q.QueryRow(ctx, query, leave.StatusApproved, day).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees on leave: %w", err)
	}
	return count, nil
}

// MostCommonReason implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) MostCommonReason(ctx context.Context) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE((
			SELECT reason
			FROM leaves
			WHERE reason IS NOT NULL AND reason <> ''
			GROUP BY reason
			ORDER BY COUNT(*) DESC, reason
			LIMIT 1
		), '')
	`

	var reason string
	if err := q.QueryRow(ctx, query).Scan(&reason); err != nil {
		return "", fmt.Errorf("failed to find most common leave reason: %w", err)
	}
	return reason, nil
}
