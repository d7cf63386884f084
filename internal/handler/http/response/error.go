package response

import (
	"errors"
	"net/http"

	"github.com/sanadhr/backoffice-go/internal/domain/auth"
	"github.com/sanadhr/backoffice-go/internal/domain/employee"
	"github.com/sanadhr/backoffice-go/internal/domain/timesheet"
	"github.com/sanadhr/backoffice-go/internal/domain/user"
	"github.com/sanadhr/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccessDisabled):
		Forbidden(w, "Account access has been disabled")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrFinanceRoleRequired):
		Forbidden(w, "Finance role required")
	case errors.Is(err, user.ErrCannotModifyUser):
		Forbidden(w, "Not allowed to modify this user")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrIqamaNumberExists):
		Conflict(w, "Iqama number already registered")
	case errors.Is(err, employee.ErrNoEmployeesForClient):
		NotFound(w, "No active employees found for this client")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrAlreadyGenerated):
		ConflictExists(w, "Timesheet already generated for this client and month")
	case errors.Is(err, timesheet.ErrLineNotFound):
		NotFound(w, "Timesheet line not found")
	case errors.Is(err, timesheet.ErrSummaryNotFound):
		NotFound(w, "Timesheet summary not found")
	case errors.Is(err, timesheet.ErrSummaryAlreadyApproved):
		Conflict(w, "Timesheet summary is already approved")
	case errors.Is(err, timesheet.ErrRevisionReasonRequired):
		BadRequest(w, "A revision reason is required", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
