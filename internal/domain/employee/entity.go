package employee

import (
	"strings"
	"time"
)

type Employee struct {
	ID         string
	FirstName  string
	LastName   string
	JobTitle   string
	Department string
	HireDate   time.Time
	Status     Status
}

type Status string

const (
	StatusOnboarding  Status = "ONBOARDING"
	StatusActive      Status = "ACTIVE"
	StatusOffboarding Status = "OFFBOARDING"
	StatusTerminated  Status = "TERMINATED"
)

// FullName joins first and last name the way the dashboard displays it.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// TenureDays returns the whole and fractional days between hire date and now.
func (e Employee) TenureDays(now time.Time) float64 {
	return now.Sub(e.HireDate).Hours() / 24
}
