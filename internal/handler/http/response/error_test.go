package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-insights-go/internal/domain/analytics"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	feedbackErr := fmt.Errorf("%w: %w", analytics.ErrInvalidFeedbackInput, validator.ValidationErrors{
		{Field: "rating", Message: "rating is required"},
		{Field: "comments", Message: "comments are required"},
	})

	cases := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantDetails map[string]string
	}{
		{"expired token", auth.ErrTokenExpired, http.StatusUnauthorized, "Token expired", nil},
		{"invalid id", employee.ErrInvalidID, http.StatusBadRequest, "Invalid employee ID", nil},
		{"not found", fmt.Errorf("lookup: %w", employee.ErrEmployeeNotFound), http.StatusNotFound, "Employee not found", nil},
		{
			"feedback fields", feedbackErr, http.StatusBadRequest, "Rating and comments are required.",
			map[string]string{"rating": "rating is required", "comments": "comments are required"},
		},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError, "An unexpected error occurred", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.wantStatus, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.False(t, body.Success)
			assert.Equal(t, c.wantMessage, body.Error.Message)
			assert.Equal(t, c.wantDetails, body.Error.Details)
		})
	}
}
