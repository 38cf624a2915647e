package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-insights-go/internal/domain/analytics"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Employee domain errors
	case errors.Is(err, employee.ErrInvalidID):
		BadRequest(w, "Invalid employee ID", fieldErrors(err))
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Analytics domain errors
	case errors.Is(err, analytics.ErrInvalidFeedbackInput):
		BadRequest(w, "Rating and comments are required.", fieldErrors(err))

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

// fieldErrors returns the per-field details carried by err, or nil.
func fieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return nil
	}
	return validationErrs.ToMap()
}
