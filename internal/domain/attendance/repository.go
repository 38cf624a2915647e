package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// ListQualifyingSince returns records dated on or after since that have
	// a check-in and total hours, joined with the owning employee's name.
	ListQualifyingSince(ctx context.Context, since time.Time) ([]Record, error)
}
