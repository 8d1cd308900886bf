package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The store
// enforces uniqueness on (employee_id, date); Create is the only guard against
// duplicate same-day check-ins, application-level pre-checks are not.
type AttendanceRepository interface {
	// Create inserts a new record. A second insert for the same employee and
	// calendar day fails with ErrAlreadyCheckedIn via the unique constraint.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns the record for the employee on the given
	// calendar day, or nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update persists the check-out mutation of an existing record.
	Update(ctx context.Context, att Attendance) error

	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	ListByEmployee(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, int64, error)

	// ListByDate returns every record filed under the given calendar day.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
}
