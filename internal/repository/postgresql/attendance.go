package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-insights-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// ListQualifyingSince implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListQualifyingSince(ctx context.Context, since time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out, a.total_hours::float8,
			TRIM(CONCAT_WS(' ', e.first_name, e.last_name))
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date >= $1::date
			AND a.check_in IS NOT NULL
			AND a.total_hours IS NOT NULL
		ORDER BY a.date, a.check_in
	`

	rows, err := q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance since %s: %w", since.Format("2006-01-02"), err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut, &rec.TotalHours, &rec.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
