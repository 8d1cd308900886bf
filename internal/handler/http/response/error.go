package response

import (
	"errors"
	"net/http"

	"github.com/absensi-hq/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-hq/absensi-backend-go/internal/domain/auth"
	"github.com/absensi-hq/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-hq/absensi-backend-go/internal/domain/holiday"
	"github.com/absensi-hq/absensi-backend-go/internal/domain/user"
	"github.com/absensi-hq/absensi-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Administrator privilege required")
	case errors.Is(err, user.ErrEmployeeRoleRequired):
		Forbidden(w, "Only employees can perform this action")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrAccountNotLinked):
		NotFound(w, "No employee record is linked to this account")
	case errors.Is(err, employee.ErrAccountAlreadyLinked):
		Conflict(w, "Account is already linked to another employee")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No check-in found for today", nil)
	case errors.Is(err, attendance.ErrHolidayToday):
		BadRequest(w, "Cannot check in on a holiday", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "You are not allowed to access this record")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already exists on that date")
	case errors.Is(err, holiday.ErrImportFailed):
		BadRequest(w, "Failed to import holidays from the external feed", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
