package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/absensi-hq/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-hq/absensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.name, e.position, e.department, e.salary, e.join_date,
	e.created_by, e.created_at, e.updated_at`

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (user_id, name, position, department, salary, join_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.UserID,
		emp.Name,
		emp.Position,
		emp.Department,
		emp.Salary,
		emp.JoinDate,
		emp.CreatedBy,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "employees_user_id_key") {
			return employee.Employee{}, employee.ErrAccountAlreadyLinked
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE e.id = $1
	`

	return r.scanOne(q.QueryRow(ctx, query, id))
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE e.user_id = $1
	`

	return r.scanOne(q.QueryRow(ctx, query, userID))
}

func (r *employeeRepository) scanOne(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.Name, &emp.Position, &emp.Department,
		&emp.Salary, &emp.JoinDate, &emp.CreatedBy, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET user_id = $2,
			name = $3,
			position = $4,
			department = $5,
			salary = $6,
			join_date = $7,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID, emp.UserID, emp.Name, emp.Position, emp.Department, emp.Salary, emp.JoinDate,
	)
	if err != nil {
		if isUniqueViolation(err, "employees_user_id_key") {
			return employee.ErrAccountAlreadyLinked
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND e.name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Department != nil && *filter.Department != "" {
		baseWhere += fmt.Sprintf(" AND e.department = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM employees e WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE ` + baseWhere + `
		ORDER BY e.name ASC
	`
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.UserID, &emp.Name, &emp.Position, &emp.Department,
			&emp.Salary, &emp.JoinDate, &emp.CreatedBy, &emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return employees, total, nil
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return total, nil
}
