package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
)

// Attendance is one record per (employee, calendar day). Created at check-in,
// completed at check-out, frozen afterwards.
type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time // calendar day the record is filed under (SQL DATE)
	CheckIn     time.Time
	CheckOut    *time.Time
	Status      Status
	LateMinutes int
	WorkMinutes *int // set at check-out
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	EmployeeName       *string
	EmployeePosition   *string
	EmployeeDepartment *string
}

// AppendNotes concatenates extra notes onto the existing ones with a " | "
// separator. Empty extra leaves notes unchanged; prior text is never replaced.
func AppendNotes(existing, extra string) string {
	if extra == "" {
		return existing
	}
	if existing == "" {
		return extra
	}
	return existing + " | " + extra
}
