package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/hris-insights-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
	err       error
	calls     int
}

func (s *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	s.calls++
	if s.err != nil {
		return employee.Employee{}, s.err
	}
	emp, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func TestGetByID(t *testing.T) {
	id := uuid.NewString()
	repo := &stubEmployeeRepo{employees: map[string]employee.Employee{
		id: {ID: id, FirstName: "Ana", LastName: "Putri"},
	}}
	svc := NewEmployeeService(repo)

	emp, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Ana Putri", emp.FullName())

	_, err = svc.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetByID_InvalidID(t *testing.T) {
	repo := &stubEmployeeRepo{}
	svc := NewEmployeeService(repo)

	for _, id := range []string{"", "42", "not-a-uuid"} {
		_, err := svc.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, employee.ErrInvalidID, id)

		var fieldErrs validator.ValidationErrors
		require.ErrorAs(t, err, &fieldErrs, id)
		assert.Contains(t, fieldErrs.ToMap(), "employeeId", id)
	}
	assert.Zero(t, repo.calls)
}

func TestGetByID_RepositoryError(t *testing.T) {
	dbErr := errors.New("connection refused")
	svc := NewEmployeeService(&stubEmployeeRepo{err: dbErr})

	_, err := svc.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, dbErr)
}
