package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// Create inserts a holiday. The (date, name) pair is unique; a duplicate
	// insert fails with ErrHolidayExists.
	Create(ctx context.Context, newHoliday Holiday) (Holiday, error)

	GetByID(ctx context.Context, id string) (Holiday, error)

	// GetByName returns the holiday with the given name, used as the first
	// half of the import dedup key. Returns ErrHolidayNotFound when absent.
	GetByName(ctx context.Context, name string) (Holiday, error)

	// ListAll returns every stored holiday; the resolver scans the full set.
	ListAll(ctx context.Context) ([]Holiday, error)

	// ListInRange returns holidays with from <= date <= to, ascending.
	ListInRange(ctx context.Context, from, to time.Time) ([]Holiday, error)

	// ListUpcoming returns holidays with date >= from, ascending, limited.
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]Holiday, error)

	List(ctx context.Context, filter HolidayFilter) ([]Holiday, int64, error)
	Update(ctx context.Context, h Holiday) error
	Delete(ctx context.Context, id string) error
}
