package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-insights-go/internal/domain/goal"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/database"
)

type goalRepositoryImpl struct {
	db *database.DB
}

func NewGoalRepository(db *database.DB) goal.GoalRepository {
	return &goalRepositoryImpl{db: db}
}

// ListStatuses implements goal.GoalRepository.
func (r *goalRepositoryImpl) ListStatuses(ctx context.Context) ([]goal.StatusRecord, error) {
	return r.listStatuses(ctx, `SELECT employee_id, status FROM goals ORDER BY employee_id`)
}

// ListStatusesByEmployee implements goal.GoalRepository.
func (r *goalRepositoryImpl) ListStatusesByEmployee(ctx context.Context, employeeID string) ([]goal.StatusRecord, error) {
	return r.listStatuses(ctx, `SELECT employee_id, status FROM goals WHERE employee_id = $1`, employeeID)
}

func (r *goalRepositoryImpl) listStatuses(ctx context.Context, query string, args ...interface{}) ([]goal.StatusRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list goal statuses: %w", err)
	}
	defer rows.Close()

	var statuses []goal.StatusRecord
	for rows.Next() {
		var s goal.StatusRecord
		if err := rows.Scan(&s.EmployeeID, &s.Status); err != nil {
			return nil, fmt.Errorf("failed to scan goal status: %w", err)
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}

// CountByStatus implements goal.GoalRepository.
func (r *goalRepositoryImpl) CountByStatus(ctx context.Context) ([]goal.StatusCount, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT status, COUNT(*) FROM goals GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count goals by status: %w", err)
	}
	defer rows.Close()

	var counts []goal.StatusCount
	for rows.Next() {
		var c goal.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan goal count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
