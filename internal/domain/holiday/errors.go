package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayExists   = errors.New("a holiday with this name already exists on that date")
	ErrImportFailed    = errors.New("failed to fetch holidays from the external feed")
)
