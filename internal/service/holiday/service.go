package holiday

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/absensi-hq/absensi-backend-go/internal/domain/holiday"
	"github.com/absensi-hq/absensi-backend-go/internal/pkg/clock"
	"github.com/absensi-hq/absensi-backend-go/internal/pkg/holidayapi"
	"github.com/absensi-hq/absensi-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

// HolidayFeed is the external public-holiday source consumed by Import.
type HolidayFeed interface {
	PublicHolidays(ctx context.Context, country string, year int) ([]holidayapi.Holiday, error)
}

type HolidayServiceImpl struct {
	clock          clock.Clock
	loc            *time.Location
	feed           HolidayFeed
	defaultCountry string
	holiday.HolidayRepository
}

func NewHolidayService(
	clk clock.Clock,
	loc *time.Location,
	feed HolidayFeed,
	defaultCountry string,
	holidayRepo holiday.HolidayRepository,
) holiday.HolidayService {
	return &HolidayServiceImpl{
		clock:             clk,
		loc:               loc,
		feed:              feed,
		defaultCountry:    defaultCountry,
		HolidayRepository: holidayRepo,
	}
}

func actorFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

// HolidayOn implements holiday.Resolver. It scans the full holiday set and
// matches on calendar-day components only; instants never enter the
// comparison.
func (h *HolidayServiceImpl) HolidayOn(ctx context.Context, t time.Time) (*holiday.Holiday, error) {
	holidays, err := h.HolidayRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	for i := range holidays {
		if holidays[i].SameCalendarDay(t) {
			return &holidays[i], nil
		}
	}
	return nil, nil
}

// Create implements holiday.HolidayService.
func (h *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	actorID, err := actorFromContext(ctx)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.ParseInLocation("2006-01-02", req.Date, time.UTC)

	created, err := h.HolidayRepository.Create(ctx, holiday.Holiday{
		Name:        req.Name,
		Date:        date,
		Type:        holiday.HolidayType(req.Type),
		IsRecurring: req.IsRecurring,
		Description: req.Description,
		CreatedBy:   actorID,
	})
	if err != nil {
		if errors.Is(err, holiday.ErrHolidayExists) {
			return holiday.HolidayResponse{}, holiday.ErrHolidayExists
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday.NewHolidayResponse(created), nil
}

// Get implements holiday.HolidayService.
func (h *HolidayServiceImpl) Get(ctx context.Context, id string) (holiday.HolidayResponse, error) {
	hol, err := h.HolidayRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			return holiday.HolidayResponse{}, holiday.ErrHolidayNotFound
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to get holiday: %w", err)
	}
	return holiday.NewHolidayResponse(hol), nil
}

// Update implements holiday.HolidayService.
func (h *HolidayServiceImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	hol, err := h.HolidayRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			return holiday.HolidayResponse{}, holiday.ErrHolidayNotFound
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to get holiday: %w", err)
	}

	if req.Name != nil {
		hol.Name = *req.Name
	}
	if req.Date != nil {
		date, _ := time.ParseInLocation("2006-01-02", *req.Date, time.UTC)
		hol.Date = date
	}
	if req.Type != nil {
		hol.Type = holiday.HolidayType(*req.Type)
	}
	if req.IsRecurring != nil {
		hol.IsRecurring = *req.IsRecurring
	}
	if req.Description != nil {
		hol.Description = req.Description
	}

	if err := h.HolidayRepository.Update(ctx, hol); err != nil {
		if errors.Is(err, holiday.ErrHolidayExists) {
			return holiday.HolidayResponse{}, holiday.ErrHolidayExists
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to update holiday: %w", err)
	}

	return holiday.NewHolidayResponse(hol), nil
}

// Delete implements holiday.HolidayService.
func (h *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	if err := h.HolidayRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

// List implements holiday.HolidayService.
func (h *HolidayServiceImpl) List(ctx context.Context, filter holiday.HolidayFilter) (holiday.ListHolidayResponse, error) {
	holidays, total, err := h.HolidayRepository.List(ctx, filter)
	if err != nil {
		return holiday.ListHolidayResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, hol := range holidays {
		responses = append(responses, holiday.NewHolidayResponse(hol))
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(filter.Limit)))
	}

	return holiday.ListHolidayResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Holidays:   responses,
	}, nil
}

// Upcoming implements holiday.HolidayService.
func (h *HolidayServiceImpl) Upcoming(ctx context.Context, limit int) ([]holiday.HolidayResponse, error) {
	now := h.clock.Now(ctx).In(h.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	holidays, err := h.HolidayRepository.ListUpcoming(ctx, today, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, hol := range holidays {
		responses = append(responses, holiday.NewHolidayResponse(hol))
	}
	return responses, nil
}

// InRange implements holiday.HolidayService.
func (h *HolidayServiceImpl) InRange(ctx context.Context, startDate, endDate string) ([]holiday.HolidayResponse, error) {
	var errs validator.ValidationErrors
	from, ok := validator.IsValidDate(startDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	to, ok := validator.IsValidDate(endDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if len(errs) == 0 && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	holidays, err := h.HolidayRepository.ListInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays in range: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, hol := range holidays {
		responses = append(responses, holiday.NewHolidayResponse(hol))
	}
	return responses, nil
}

// Import implements holiday.HolidayService. A failed feed call is the only
// fatal outcome; per-item problems are tallied and the batch continues.
func (h *HolidayServiceImpl) Import(ctx context.Context, req holiday.ImportRequest) (holiday.ImportSummary, error) {
	actorID, err := actorFromContext(ctx)
	if err != nil {
		return holiday.ImportSummary{}, err
	}

	if req.Country == "" {
		req.Country = h.defaultCountry
	}
	if req.Year == 0 {
		req.Year = h.clock.Now(ctx).In(h.loc).Year()
	}

	feedHolidays, err := h.feed.PublicHolidays(ctx, req.Country, req.Year)
	if err != nil {
		return holiday.ImportSummary{}, fmt.Errorf("%w: %v", holiday.ErrImportFailed, err)
	}

	summary := holiday.ImportSummary{Total: len(feedHolidays)}
	for _, entry := range feedHolidays {
		date, err := time.ParseInLocation("2006-01-02", entry.Date, time.UTC)
		if err != nil {
			summary.Failed++
			continue
		}

		// Dedup key is (date, name): a name hit alone is not enough, the
		// stored date must fall on the same calendar day.
		existing, err := h.HolidayRepository.GetByName(ctx, entry.Name)
		if err == nil && existing.SameCalendarDay(date) {
			summary.Skipped++
			continue
		}
		if err != nil && !errors.Is(err, holiday.ErrHolidayNotFound) {
			summary.Failed++
			continue
		}

		var description *string
		if entry.Observed != "" && entry.Observed != entry.Date {
			observed := fmt.Sprintf("Observed on %s", entry.Observed)
			description = &observed
		}

		_, err = h.HolidayRepository.Create(ctx, holiday.Holiday{
			Name:        entry.Name,
			Date:        date,
			Type:        holiday.ClassifyType(entry.Name),
			IsRecurring: true,
			Description: description,
			CreatedBy:   actorID,
		})
		if err != nil {
			// The unique (date, name) index catches duplicates the name
			// lookup missed, such as repeated feed entries.
			if errors.Is(err, holiday.ErrHolidayExists) {
				summary.Skipped++
			} else {
				summary.Failed++
			}
			continue
		}
		summary.Imported++
	}

	return summary, nil
}
