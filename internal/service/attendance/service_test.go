package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/absensi-hq/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-hq/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-hq/absensi-backend-go/internal/domain/holiday"
	"github.com/absensi-hq/absensi-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWITA = time.FixedZone("WITA", 8*3600)

// fixedClock returns a preset instant, letting tests pin "now".
type fixedClock struct {
	now time.Time
}

func (f *fixedClock) Now(ctx context.Context) time.Time { return f.now }

// fakeAttendanceRepo is an in-memory attendance.AttendanceRepository that
// enforces the (employee_id, date) unique constraint under a mutex, the same
// guarantee the database index gives.
type fakeAttendanceRepo struct {
	mu      sync.Mutex
	records map[string]attendance.Attendance // id -> record
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func dayKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.UTC().Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.records {
		if dayKey(existing.EmployeeID, existing.Date) == dayKey(att.EmployeeID, att.Date) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}

	att.ID = uuid.NewString()
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	f.records[att.ID] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	att, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, att := range f.records {
		if dayKey(att.EmployeeID, att.Date) == dayKey(employeeID, date) {
			record := att
			return &record, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[att.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	f.records[att.ID] = att
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Attendance
	for _, att := range f.records {
		out = append(out, att)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.EmployeeID == employeeID {
			out = append(out, att)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.Date.UTC().Format("2006-01-02") == date.UTC().Format("2006-01-02") {
			out = append(out, att)
		}
	}
	return out, nil
}

// fakeEmployeeRepo holds employees keyed by their linked user ID.
type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees map[string]employee.Employee // id -> employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) add(emp employee.Employee) employee.Employee {
	f.mu.Lock()
	defer f.mu.Unlock()
	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	f.employees[emp.ID] = emp
	return emp
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return f.add(emp), nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, emp := range f.employees {
		if emp.UserID != nil && *emp.UserID == userID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.employees)), nil
}

// staticResolver answers HolidayOn from a fixed set of calendar days.
type staticResolver struct {
	holidays []holiday.Holiday
}

func (s *staticResolver) HolidayOn(ctx context.Context, t time.Time) (*holiday.Holiday, error) {
	for i := range s.holidays {
		if s.holidays[i].SameCalendarDay(t) {
			return &s.holidays[i], nil
		}
	}
	return nil, nil
}

func authedContext(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type attendanceFixture struct {
	service        attendance.AttendanceService
	attendanceRepo *fakeAttendanceRepo
	employeeRepo   *fakeEmployeeRepo
	clock          *fixedClock
	resolver       *staticResolver
	employee       employee.Employee
	ctx            context.Context
}

func newAttendanceFixture(t *testing.T, now time.Time) *attendanceFixture {
	t.Helper()

	attendanceRepo := newFakeAttendanceRepo()
	employeeRepo := newFakeEmployeeRepo()
	clk := &fixedClock{now: now}
	resolver := &staticResolver{}

	userID := uuid.NewString()
	emp := employeeRepo.add(employee.Employee{
		UserID:     &userID,
		Name:       "Budi Santoso",
		Position:   "Backend Engineer",
		Department: "Engineering",
		Salary:     decimal.NewFromInt(9000000),
		JoinDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})

	return &attendanceFixture{
		service:        NewAttendanceService(clk, testWITA, resolver, attendanceRepo, employeeRepo),
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          clk,
		resolver:       resolver,
		employee:       emp,
		ctx:            authedContext(t, userID, user.RoleUser),
	}
}

func TestAttendanceService_CheckIn_OnTime(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 3, 10, 8, 45, 30, 0, testWITA)
	fx := newAttendanceFixture(t, now)

	resp, err := fx.service.CheckIn(fx.ctx, attendance.CheckInRequest{Notes: "morning"})

	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.Equal(t, 0, resp.LateMinutes)
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, "morning", resp.Notes)
	assert.Nil(t, resp.CheckOut)
}

func TestAttendanceService_CheckIn_Late(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 3, 10, 9, 25, 0, 0, testWITA)
	fx := newAttendanceFixture(t, now)

	resp, err := fx.service.CheckIn(fx.ctx, attendance.CheckInRequest{})

	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusLate), resp.Status)
	assert.Equal(t, 25, resp.LateMinutes)
}

func TestAttendanceService_CheckIn_ExactlyNineIsOnTime(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 3, 10, 9, 0, 59, 0, testWITA)
	fx := newAttendanceFixture(t, now)

	resp, err := fx.service.CheckIn(fx.ctx, attendance.CheckInRequest{})

	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.Equal(t, 0, resp.LateMinutes)
}

func TestAttendanceService_CheckIn_Twice(t *testing.T) {
	t.Parallel()
	fx := newAttendanceFixture(t, time.Date(2025, 3, 10, 8, 0, 0, 0, testWITA))

	_, err := fx.service.CheckIn(fx.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	_, err = fx.service.CheckIn(fx.ctx, attendance.CheckInRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceService_CheckIn_Concurrent(t *testing.T) {
	t.Parallel()
	fx := newAttendanceFixture(t, time.Date(2025, 3, 10, 8, 0, 0, 0, testWITA))

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = fx.service.CheckIn(fx.ctx, attendance.CheckInRequest{})
		}(i)
	}
	wg.Wait()

	// The unique constraint admits exactly one winner.
	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
		}
	}
	assert.Equal(t, 1, successes)
}

func TestAttendanceService_CheckIn_OnHoliday(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 8, 17, 8, 0, 0, 0, testWITA)
	fx := newAttendanceFixture(t, now)
	fx.resolver.holidays = []holiday.Holiday{{
		Name: "Hari Kemerdekaan",
		Date: time.Date(2025, 8, 17, 0, 0, 0, 0, time.UTC),
		Type: holiday.TypeNational,
	}}

	_, err := fx.service.CheckIn(fx.ctx, attendance.CheckInRequest{})

	assert.ErrorIs(t, err, attendance.ErrHolidayToday)
}

func TestAttendanceService_CheckIn_AdminRejected(t *testing.T) {
	t.Parallel()
	fx := newAttendanceFixture(t, time.Date(2025, 3, 10, 8, 0, 0, 0, testWITA))
	adminCtx := authedContext(t, uuid.NewString(), user.RoleAdmin)

	_, err := fx.service.CheckIn(adminCtx, attendance.CheckInRequest{})

	assert.ErrorIs(t, err, user.ErrEmployeeRoleRequired)
}

func TestAttendanceService_CheckIn_UnlinkedAccount(t *testing.T) {
	t.Parallel()
	fx := newAttendanceFixture(t, time.Date(2025, 3, 10, 8, 0, 0, 0, testWITA))
	strangerCtx := authedContext(t, uuid.NewString(), user.RoleUser)

	_, err := fx.service.CheckIn(strangerCtx, attendance.CheckInRequest{})

	assert.ErrorIs(t, err, employee.ErrAccountNotLinked)
}

func TestAttendanceService_CheckOut_Success(t *testing.T) {
	t.Parallel()
	fx := newAttendanceFixture(t, time.Date(2025, 3, 10, 8, 0, 0, 0, testWITA))

	_, err := fx.service.CheckIn(fx.ctx, attendance.CheckInRequest{Notes: "in"})
	require.NoError(t, err)

	fx.clock.now = time.Date(2025, 3, 10, 17, 30, 45, 0, testWITA)
	resp, err := fx.service.CheckOut(fx.ctx, attendance.CheckOutRequest{Notes: "out"})

	require.NoError(t, err)
	require.NotNil(t, resp.CheckOut)
	require.NotNil(t, resp.WorkMinutes)
	assert.Equal(t, 570, *resp.WorkMinutes)
	assert.Equal(t, "in | out", resp.Notes)
}

func TestAttendanceService_CheckOut_FloorsPartialMinute(t *testing.T) {
	t.Parallel()
	fx := newAttendanceFixture(t, time.Date(2025, 3, 10, 8, 0, 30, 0, testWITA))

	_, err := fx.service.CheckIn(fx.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	fx.clock.now = time.Date(2025, 3, 10, 17, 0, 15, 0, testWITA)
	resp, err := fx.service.CheckOut(fx.ctx, attendance.CheckOutRequest{})

	require.NoError(t, err)
	require.NotNil(t, resp.WorkMinutes)
	assert.Equal(t, 539, *resp.WorkMinutes)
}

func TestAttendanceService_CheckOut_WithoutCheckIn(t *testing.T) {
	t.Parallel()
	fx := newAttendanceFixture(t, time.Date(2025, 3, 10, 17, 0, 0, 0, testWITA))

	_, err := fx.service.CheckOut(fx.ctx, attendance.CheckOutRequest{})

	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestAttendanceService_CheckOut_Twice(t *testing.T) {
	t.Parallel()
	fx := newAttendanceFixture(t, time.Date(2025, 3, 10, 8, 0, 0, 0, testWITA))

	_, err := fx.service.CheckIn(fx.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	fx.clock.now = time.Date(2025, 3, 10, 17, 0, 0, 0, testWITA)
	_, err = fx.service.CheckOut(fx.ctx, attendance.CheckOutRequest{})
	require.NoError(t, err)

	_, err = fx.service.CheckOut(fx.ctx, attendance.CheckOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestAttendanceService_CheckOut_KeepsEmptyNotes(t *testing.T) {
	t.Parallel()
	fx := newAttendanceFixture(t, time.Date(2025, 3, 10, 8, 0, 0, 0, testWITA))

	_, err := fx.service.CheckIn(fx.ctx, attendance.CheckInRequest{Notes: "in"})
	require.NoError(t, err)

	fx.clock.now = time.Date(2025, 3, 10, 17, 0, 0, 0, testWITA)
	resp, err := fx.service.CheckOut(fx.ctx, attendance.CheckOutRequest{})

	require.NoError(t, err)
	assert.Equal(t, "in", resp.Notes)
}

func TestAttendanceService_Today_NoRecord(t *testing.T) {
	t.Parallel()
	fx := newAttendanceFixture(t, time.Date(2025, 3, 10, 8, 0, 0, 0, testWITA))

	resp, err := fx.service.Today(fx.ctx)

	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestAttendanceService_Today_AfterCheckIn(t *testing.T) {
	t.Parallel()
	fx := newAttendanceFixture(t, time.Date(2025, 3, 10, 8, 0, 0, 0, testWITA))

	_, err := fx.service.CheckIn(fx.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	resp, err := fx.service.Today(fx.ctx)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "2025-03-10", resp.Date)
}

func TestAttendanceService_TodaySummary(t *testing.T) {
	t.Parallel()
	fx := newAttendanceFixture(t, time.Date(2025, 3, 10, 8, 0, 0, 0, testWITA))

	// Second employee who never shows up.
	absentUserID := uuid.NewString()
	fx.employeeRepo.add(employee.Employee{
		UserID:     &absentUserID,
		Name:       "Siti Rahma",
		Position:   "Designer",
		Department: "Product",
		Salary:     decimal.NewFromInt(8000000),
		JoinDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	_, err := fx.service.CheckIn(fx.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	adminCtx := authedContext(t, uuid.NewString(), user.RoleAdmin)
	summary, err := fx.service.TodaySummary(adminCtx)

	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", summary.Date)
	assert.Equal(t, int64(2), summary.TotalEmployees)
	assert.Equal(t, 1, summary.Present)
	assert.Equal(t, 0, summary.Late)
	assert.Equal(t, int64(1), summary.Absent)
}

func TestAttendanceService_GetAttendance_OwnershipEnforced(t *testing.T) {
	t.Parallel()
	fx := newAttendanceFixture(t, time.Date(2025, 3, 10, 8, 0, 0, 0, testWITA))

	created, err := fx.service.CheckIn(fx.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	// Another employee cannot read the record.
	otherUserID := uuid.NewString()
	fx.employeeRepo.add(employee.Employee{
		UserID:     &otherUserID,
		Name:       "Andi",
		Position:   "QA",
		Department: "Engineering",
		Salary:     decimal.NewFromInt(7000000),
		JoinDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	otherCtx := authedContext(t, otherUserID, user.RoleUser)

	_, err = fx.service.GetAttendance(otherCtx, created.ID)
	assert.ErrorIs(t, err, attendance.ErrUnauthorized)

	// The owner and an admin both can.
	_, err = fx.service.GetAttendance(fx.ctx, created.ID)
	assert.NoError(t, err)

	adminCtx := authedContext(t, uuid.NewString(), user.RoleAdmin)
	_, err = fx.service.GetAttendance(adminCtx, created.ID)
	assert.NoError(t, err)
}
