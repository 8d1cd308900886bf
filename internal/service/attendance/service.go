package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/absensi-hq/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-hq/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-hq/absensi-backend-go/internal/domain/holiday"
	"github.com/absensi-hq/absensi-backend-go/internal/domain/user"
	"github.com/absensi-hq/absensi-backend-go/internal/pkg/clock"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	clock    clock.Clock
	loc      *time.Location
	resolver holiday.Resolver
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	clk clock.Clock,
	loc *time.Location,
	resolver holiday.Resolver,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		clock:                clk,
		loc:                  loc,
		resolver:             resolver,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// claimsFromContext extracts the authenticated user and role from the JWT
// claims placed in the context by the verifier middleware.
func claimsFromContext(ctx context.Context) (userID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return "", "", fmt.Errorf("role claim is missing or invalid")
	}

	return userID, user.Role(roleStr), nil
}

// callerEmployee resolves the employee record of the authenticated user.
// Admins have no employee record and cannot attend.
func (a *AttendanceServiceImpl) callerEmployee(ctx context.Context) (employee.Employee, error) {
	userID, role, err := claimsFromContext(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	if role == user.RoleAdmin {
		return employee.Employee{}, user.ErrEmployeeRoleRequired
	}

	emp, err := a.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, employee.ErrAccountNotLinked
		}
		return employee.Employee{}, fmt.Errorf("failed to resolve employee for user: %w", err)
	}

	return emp, nil
}

// calendarDay normalizes a business-local instant to the timezone-free
// calendar day the record is filed under (UTC midnight, matching how DATE
// columns scan back).
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.callerEmployee(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now(ctx).In(a.loc)

	// Holiday veto happens before touching the attendance store.
	hol, err := a.resolver.HolidayOn(ctx, now)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve holiday: %w", err)
	}
	if hol != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("%s: %w", hol.Name, attendance.ErrHolidayToday)
	}

	status, lateMinutes := attendance.DeriveStatus(now)

	record := attendance.Attendance{
		EmployeeID:  emp.ID,
		Date:        calendarDay(now),
		CheckIn:     now,
		Status:      status,
		LateMinutes: lateMinutes,
		Notes:       req.Notes,
	}

	// No existence pre-check: the unique index on (employee_id, date) is the
	// only duplicate guard, so concurrent check-ins cannot both succeed.
	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	created.EmployeeName = &emp.Name
	created.EmployeePosition = &emp.Position
	return attendance.NewAttendanceResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.callerEmployee(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now(ctx).In(a.loc)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, calendarDay(now))
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	record.CheckOut = &now
	record.Notes = attendance.AppendNotes(record.Notes, req.Notes)
	workMinutes := attendance.DeriveWorkMinutes(record.CheckIn, now)
	record.WorkMinutes = &workMinutes

	if err := a.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	record.EmployeeName = &emp.Name
	record.EmployeePosition = &emp.Position
	return attendance.NewAttendanceResponse(*record), nil
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context) (*attendance.AttendanceResponse, error) {
	emp, err := a.callerEmployee(ctx)
	if err != nil {
		return nil, err
	}

	now := a.clock.Now(ctx).In(a.loc)
	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, calendarDay(now))
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return nil, nil
	}

	resp := attendance.NewAttendanceResponse(*record)
	return &resp, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	emp, err := a.callerEmployee(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	attendances, total, err := a.AttendanceRepository.ListByEmployee(ctx, emp.ID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to get my attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, attendance.NewAttendanceResponse(att))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages(total, filter.Limit),
		Attendances: responses,
	}, nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	attendances, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, attendance.NewAttendanceResponse(att))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages(total, filter.Limit),
		Attendances: responses,
	}, nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	userID, role, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	// Non-admins may only read their own records.
	if role != user.RoleAdmin {
		emp, err := a.EmployeeRepository.GetByUserID(ctx, userID)
		if err != nil || emp.ID != att.EmployeeID {
			return attendance.AttendanceResponse{}, attendance.ErrUnauthorized
		}
	}

	return attendance.NewAttendanceResponse(att), nil
}

// TodaySummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) TodaySummary(ctx context.Context) (attendance.TodaySummary, error) {
	now := a.clock.Now(ctx).In(a.loc)
	today := calendarDay(now)

	attendances, err := a.AttendanceRepository.ListByDate(ctx, today)
	if err != nil {
		return attendance.TodaySummary{}, fmt.Errorf("failed to list today's attendances: %w", err)
	}

	totalEmployees, err := a.EmployeeRepository.Count(ctx)
	if err != nil {
		return attendance.TodaySummary{}, fmt.Errorf("failed to count employees: %w", err)
	}

	summary := attendance.TodaySummary{
		Date:           today.Format("2006-01-02"),
		TotalEmployees: totalEmployees,
		Absent:         totalEmployees - int64(len(attendances)),
	}
	for _, att := range attendances {
		switch att.Status {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusLate:
			summary.Late++
		}
		summary.Attendances = append(summary.Attendances, attendance.NewAttendanceResponse(att))
	}

	return summary, nil
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
