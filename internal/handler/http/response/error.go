package response

import (
	"errors"
	"net/http"

	"github.com/nominalabs/nomina-backend-go/internal/domain/auth"
	"github.com/nominalabs/nomina-backend-go/internal/domain/employee"
	"github.com/nominalabs/nomina-backend-go/internal/domain/holiday"
	"github.com/nominalabs/nomina-backend-go/internal/domain/payroll"
	"github.com/nominalabs/nomina-backend-go/internal/domain/schedule"
	"github.com/nominalabs/nomina-backend-go/internal/domain/user"
	"github.com/nominalabs/nomina-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrInvalidRefreshToken):
		Unauthorized(w, "Invalid or expired refresh token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrScheduleInUse):
		Conflict(w, "Schedule is referenced by past assignments and cannot change")
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, schedule.ErrShiftAlreadyAssigned):
		Conflict(w, "Employee already has a shift on this date")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already registered for this date")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrFormulasNotFound):
		BadRequest(w, "Surcharge formulas are not configured", nil)
	case errors.Is(err, payroll.ErrInvalidDivisor),
		errors.Is(err, payroll.ErrInvalidThreshold),
		errors.Is(err, payroll.ErrNegativeCoefficient):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid pay period", nil)
	case errors.Is(err, payroll.ErrNoActiveEmployees):
		BadRequest(w, "No active employees to run payroll for", nil)
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrBreakdownNotFound):
		NotFound(w, "Wage breakdown not found")
	case errors.Is(err, payroll.ErrAlreadyDelivered):
		Conflict(w, "Wage breakdown already delivered")
	case errors.Is(err, payroll.ErrNotDelivered):
		Conflict(w, "Only delivered breakdowns can be corrected")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
