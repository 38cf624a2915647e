package attendance

import "time"

// Record is one clock-in/clock-out day for an employee.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	TotalHours *float64

	// DTO / Join
	EmployeeName string
}

// Qualifies reports whether the record has both a check-in and worked hours,
// which is what anomaly analysis requires.
func (r Record) Qualifies() bool {
	return r.CheckIn != nil && r.TotalHours != nil
}
