package employee

import "context"

type EmployeeService interface {
	GetByID(ctx context.Context, id string) (Employee, error)
}
