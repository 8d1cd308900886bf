package holiday

import (
	"context"
	"time"
)

// Resolver answers whether a calendar day is a designated non-working day.
// The attendance engine consumes this to veto check-ins.
type Resolver interface {
	// HolidayOn returns the holiday falling on the calendar day of t, or nil
	// when t is a working day. t is expected in the business timezone.
	HolidayOn(ctx context.Context, t time.Time) (*Holiday, error)
}

// HolidayService defines business logic for holiday management
type HolidayService interface {
	Resolver

	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Get(ctx context.Context, id string) (HolidayResponse, error)
	Update(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter HolidayFilter) (ListHolidayResponse, error)

	// Upcoming returns holidays on or after today, ascending, limited.
	Upcoming(ctx context.Context, limit int) ([]HolidayResponse, error)

	// InRange returns holidays between two calendar days, inclusive on both
	// ends. Dates are YYYY-MM-DD strings.
	InRange(ctx context.Context, startDate, endDate string) ([]HolidayResponse, error)

	// Import pulls public holidays from the external feed and merges them
	// into the store, deduplicating on (date, name).
	Import(ctx context.Context, req ImportRequest) (ImportSummary, error)
}
