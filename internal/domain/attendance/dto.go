package attendance

import (
	"time"

	"github.com/absensi-hq/absensi-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	Notes string `json:"notes"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{Field: "notes", Message: "notes must not exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	Notes string `json:"notes"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{Field: "notes", Message: "notes must not exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeID *string
	StartDate  *string // YYYY-MM-DD
	EndDate    *string // YYYY-MM-DD
	Status     *Status
	Page       int
	Limit      int
}

type MyAttendanceFilter struct {
	StartDate *string
	EndDate   *string
	Status    *Status
	Page      int
	Limit     int
}

type AttendanceResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	EmployeeName       *string `json:"employee_name,omitempty"`
	EmployeePosition   *string `json:"employee_position,omitempty"`
	EmployeeDepartment *string `json:"employee_department,omitempty"`
	Date               string  `json:"date"`
	CheckIn            string  `json:"check_in"`
	CheckOut           *string `json:"check_out,omitempty"`
	Status             string  `json:"status"`
	LateMinutes        int     `json:"late_minutes"`
	WorkMinutes        *int    `json:"work_minutes,omitempty"`
	Notes              string  `json:"notes,omitempty"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}

// TodaySummary is the admin dashboard rollup for the current day.
type TodaySummary struct {
	Date           string               `json:"date"`
	TotalEmployees int64                `json:"total_employees"`
	Present        int                  `json:"present"`
	Late           int                  `json:"late"`
	Absent         int64                `json:"absent"`
	Attendances    []AttendanceResponse `json:"attendances"`
}

// NewAttendanceResponse maps an Attendance entity to its API shape.
func NewAttendanceResponse(att Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:                 att.ID,
		EmployeeID:         att.EmployeeID,
		EmployeeName:       att.EmployeeName,
		EmployeePosition:   att.EmployeePosition,
		EmployeeDepartment: att.EmployeeDepartment,
		Date:               att.Date.UTC().Format("2006-01-02"),
		CheckIn:            att.CheckIn.Format(time.RFC3339),
		Status:             string(att.Status),
		LateMinutes:        att.LateMinutes,
		WorkMinutes:        att.WorkMinutes,
		Notes:              att.Notes,
	}
	if att.CheckOut != nil {
		checkOut := att.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &checkOut
	}
	return resp
}
