package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-insights-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// ListAll implements leave.BalanceRepository.
func (r *leaveBalanceRepositoryImpl) ListAll(ctx context.Context) ([]leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.employee_id, b.policy_id, b.accrued, b.used, b.year,
			TRIM(CONCAT_WS(' ', e.first_name, e.last_name))
		FROM leave_balances b
		JOIN employees e ON e.id = b.employee_id
		ORDER BY b.employee_id, b.policy_id, b.year
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	defer rows.Close()

	var balances []leave.Balance
	for rows.Next() {
		var b leave.Balance
		if err := rows.Scan(&b.ID, &b.EmployeeID, &b.PolicyID, &b.Accrued, &b.Used, &b.Year, &b.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan leave balance: %w", err)
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}
