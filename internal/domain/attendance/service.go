package attendance

import (
	"context"
)

// AttendanceService owns the daily check-in/check-out state machine
type AttendanceService interface {
	// CheckIn opens today's attendance record for the calling employee,
	// deriving status and late duration from the check-in instant
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut completes today's record, deriving the work duration
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// Today returns the calling employee's record for the current day, or nil
	Today(ctx context.Context) (*AttendanceResponse, error)

	// GetMyAttendance retrieves history for the calling employee
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves records across employees (admin)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetAttendance retrieves a single record with ownership check
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// TodaySummary rolls up today's attendance for the admin dashboard
	TodaySummary(ctx context.Context) (TodaySummary, error)
}
