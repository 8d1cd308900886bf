package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/absensi-hq/absensi-backend-go/internal/domain/holiday"
	"github.com/absensi-hq/absensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

const holidayColumns = `
	h.id, h.name, h.date, h.type, h.is_recurring, h.description, h.created_by,
	h.created_at, h.updated_at`

// Create implements holiday.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (name, date, type, is_recurring, description, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		h.Name,
		h.Date,
		h.Type,
		h.IsRecurring,
		h.Description,
		h.CreatedBy,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "holidays_date_name_key") {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, nil
}

// GetByID implements holiday.HolidayRepository.
func (r *holidayRepository) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayColumns + `,
			u.name AS created_by_name
		FROM holidays h
		LEFT JOIN users u ON u.id = h.created_by
		WHERE h.id = $1
	`

	var h holiday.Holiday
	err := q.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.Name, &h.Date, &h.Type, &h.IsRecurring, &h.Description, &h.CreatedBy,
		&h.CreatedAt, &h.UpdatedAt,
		&h.CreatedByName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday by ID: %w", err)
	}

	return h, nil
}

// GetByName implements holiday.HolidayRepository.
func (r *holidayRepository) GetByName(ctx context.Context, name string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayColumns + `
		FROM holidays h
		WHERE h.name = $1
		LIMIT 1
	`

	var h holiday.Holiday
	err := q.QueryRow(ctx, query, name).Scan(
		&h.ID, &h.Name, &h.Date, &h.Type, &h.IsRecurring, &h.Description, &h.CreatedBy,
		&h.CreatedAt, &h.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday by name: %w", err)
	}

	return h, nil
}

// ListAll implements holiday.HolidayRepository.
func (r *holidayRepository) ListAll(ctx context.Context) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayColumns + `
		FROM holidays h
		ORDER BY h.date ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	return scanHolidayRows(rows)
}

// ListInRange implements holiday.HolidayRepository.
func (r *holidayRepository) ListInRange(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayColumns + `
		FROM holidays h
		WHERE h.date >= $1 AND h.date <= $2
		ORDER BY h.date ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays in range: %w", err)
	}
	defer rows.Close()

	return scanHolidayRows(rows)
}

// ListUpcoming implements holiday.HolidayRepository.
func (r *holidayRepository) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayColumns + `
		FROM holidays h
		WHERE h.date >= $1
		ORDER BY h.date ASC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, from, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming holidays: %w", err)
	}
	defer rows.Close()

	return scanHolidayRows(rows)
}

// List implements holiday.HolidayRepository.
func (r *holidayRepository) List(ctx context.Context, filter holiday.HolidayFilter) ([]holiday.Holiday, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Year != nil {
		if filter.Month != nil {
			start := time.Date(*filter.Year, *filter.Month, 1, 0, 0, 0, 0, time.UTC)
			end := start.AddDate(0, 1, -1)
			baseWhere += fmt.Sprintf(" AND h.date >= $%d AND h.date <= $%d", argIdx, argIdx+1)
			args = append(args, start, end)
			argIdx += 2
		} else {
			start := time.Date(*filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
			end := time.Date(*filter.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
			baseWhere += fmt.Sprintf(" AND h.date >= $%d AND h.date <= $%d", argIdx, argIdx+1)
			args = append(args, start, end)
			argIdx += 2
		}
	}
	if filter.Type != nil && *filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND h.type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM holidays h WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count holidays: %w", err)
	}

	query := `
		SELECT ` + holidayColumns + `
		FROM holidays h
		WHERE ` + baseWhere + `
		ORDER BY h.date ASC
	`
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	holidays, err := scanHolidayRows(rows)
	if err != nil {
		return nil, 0, err
	}

	return holidays, total, nil
}

// Update implements holiday.HolidayRepository.
func (r *holidayRepository) Update(ctx context.Context, h holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holidays
		SET name = $2,
			date = $3,
			type = $4,
			is_recurring = $5,
			description = $6,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, h.ID, h.Name, h.Date, h.Type, h.IsRecurring, h.Description)
	if err != nil {
		if isUniqueViolation(err, "holidays_date_name_key") {
			return holiday.ErrHolidayExists
		}
		return fmt.Errorf("failed to update holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

func scanHolidayRows(rows pgx.Rows) ([]holiday.Holiday, error) {
	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(
			&h.ID, &h.Name, &h.Date, &h.Type, &h.IsRecurring, &h.Description, &h.CreatedBy,
			&h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan holiday row: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holiday rows: %w", err)
	}
	return holidays, nil
}
