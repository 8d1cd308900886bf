package holiday

import (
	"time"

	"github.com/absensi-hq/absensi-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Name        string  `json:"name"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Type        string  `json:"type"`
	IsRecurring bool    `json:"is_recurring"`
	Description *string `json:"description"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 200 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 200 characters"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if !ValidType(HolidayType(r.Type)) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of national, religious, company, other"})
	}
	if r.Description != nil && len(*r.Description) > 500 {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description must not exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHolidayRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name"`
	Date        *string `json:"date"`
	Type        *string `json:"type"`
	IsRecurring *bool   `json:"is_recurring"`
	Description *string `json:"description"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}
	if r.Type != nil && !ValidType(HolidayType(*r.Type)) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of national, religious, company, other"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayFilter struct {
	Year  *int
	Month *time.Month
	Type  *HolidayType
	Page  int
	Limit int
}

type ImportRequest struct {
	Country string `json:"country"`
	Year    int    `json:"year"`
}

// ImportSummary tallies a feed import. Per-item failures land in Failed and
// never abort the batch.
type ImportSummary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
	Total    int `json:"total"`
}

type HolidayResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	IsRecurring bool    `json:"is_recurring"`
	Description *string `json:"description,omitempty"`
	CreatedBy   string  `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ListHolidayResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Holidays   []HolidayResponse `json:"holidays"`
}

// NewHolidayResponse maps a Holiday entity to its API shape.
func NewHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.UTC().Format("2006-01-02"),
		Type:        string(h.Type),
		IsRecurring: h.IsRecurring,
		Description: h.Description,
		CreatedBy:   h.CreatedBy,
		CreatedAt:   h.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   h.UpdatedAt.Format(time.RFC3339),
	}
}
