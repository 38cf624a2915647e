package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Record is a single leave request.
type Record struct {
	ID         string
	EmployeeID string
	PolicyID   string
	StartDate  time.Time
	EndDate    time.Time
	Days       decimal.Decimal
	Status     Status
	Reason     *string
}

// Balance is an employee's accrued and used leave for one policy year.
type Balance struct {
	ID         string
	EmployeeID string
	PolicyID   string
	Accrued    decimal.Decimal
	Used       decimal.Decimal
	Year       int

	// DTO / Join
	EmployeeName string
}

// Remaining returns accrued minus used.
func (b Balance) Remaining() decimal.Decimal {
	return b.Accrued.Sub(b.Used)
}

// PolicyDays is the approved leave total for one policy.
type PolicyDays struct {
	PolicyName string
	Days       decimal.Decimal
}
