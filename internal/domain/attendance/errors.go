package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")
	ErrHolidayToday     = errors.New("today is a holiday, no attendance required")

	// Check-out errors
	ErrNotCheckedIn      = errors.New("you have not checked in today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
)
