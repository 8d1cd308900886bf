package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/absensi-hq/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-hq/absensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in, a.check_out,
	a.status, a.late_minutes, a.work_minutes, a.notes,
	a.created_at, a.updated_at`

// Create implements attendance.AttendanceRepository. The unique index on
// (employee_id, date) makes the insert the single authority on "one record
// per employee per day": a concurrent duplicate fails here, atomically.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, check_in, check_out, status, late_minutes, work_minutes, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.CheckIn,
		att.CheckOut,
		att.Status,
		att.LateMinutes,
		att.WorkMinutes,
		att.Notes,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "attendances_employee_id_date_key") {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.Status, &att.LateMinutes, &att.WorkMinutes, &att.Notes,
		&att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No existing attendance found
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `,
			e.name AS employee_name,
			e.position AS employee_position,
			e.department AS employee_department
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.Status, &att.LateMinutes, &att.WorkMinutes, &att.Notes,
		&att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName, &att.EmployeePosition, &att.EmployeeDepartment,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out = $2,
			status = $3,
			late_minutes = $4,
			work_minutes = $5,
			notes = $6,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID,
		att.CheckOut,
		att.Status,
		att.LateMinutes,
		att.WorkMinutes,
		att.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := `
		SELECT ` + attendanceColumns + `,
			e.name AS employee_name,
			e.position AS employee_position,
			e.department AS employee_department
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE ` + baseWhere + `
		ORDER BY a.date DESC, a.check_in DESC
	`
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	attendances, err := scanAttendanceRows(rows, true)
	if err != nil {
		return nil, 0, err
	}

	return attendances, total, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "a.employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE ` + baseWhere + `
		ORDER BY a.date DESC
	`
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances by employee: %w", err)
	}
	defer rows.Close()

	attendances, err := scanAttendanceRows(rows, false)
	if err != nil {
		return nil, 0, err
	}

	return attendances, total, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `,
			e.name AS employee_name,
			e.position AS employee_position,
			e.department AS employee_department
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY a.check_in ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by date: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows, true)
}

func scanAttendanceRows(rows pgx.Rows, withEmployee bool) ([]attendance.Attendance, error) {
	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		dest := []interface{}{
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
			&att.Status, &att.LateMinutes, &att.WorkMinutes, &att.Notes,
			&att.CreatedAt, &att.UpdatedAt,
		}
		if withEmployee {
			dest = append(dest, &att.EmployeeName, &att.EmployeePosition, &att.EmployeeDepartment)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}
	return attendances, nil
}
