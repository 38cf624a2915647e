package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	// GetByID returns ErrEmployeeNotFound when no row matches.
	GetByID(ctx context.Context, id string) (Employee, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	ListHireDates(ctx context.Context) ([]time.Time, error)
}
