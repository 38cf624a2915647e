package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-insights-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, first_name, last_name, COALESCE(job_title, ''), COALESCE(department, ''), hire_date, status
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.JobTitle, &emp.Department, &emp.HireDate, &emp.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, fmt.Errorf("employee with id %s: %w", id, employee.ErrEmployeeNotFound)
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}

	return emp, nil
}

// Count implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// CountByStatus implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) CountByStatus(ctx context.Context, status employee.Status) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s employees: %w", status, err)
	}
	return count, nil
}

// ListHireDates implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListHireDates(ctx context.Context) ([]time.Time, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `SELECT hire_date FROM employees WHERE hire_date IS NOT NULL`)
	if err != nil {
		return nil, fmt.Errorf("failed to list hire dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan hire date: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}
