package goal

import "context"

type GoalRepository interface {
	ListStatuses(ctx context.Context) ([]StatusRecord, error)
	ListStatusesByEmployee(ctx context.Context, employeeID string) ([]StatusRecord, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}
