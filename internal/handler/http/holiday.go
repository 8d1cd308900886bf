package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/absensi-hq/absensi-backend-go/internal/domain/holiday"
	"github.com/absensi-hq/absensi-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Upcoming(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{
		holidayService: holidayService,
	}
}

// Create implements HolidayHandler.
func (h *holidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Holiday create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.holidayService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", result)
}

// Get implements HolidayHandler.
func (h *holidayHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.holidayService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements HolidayHandler.
func (h *holidayHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req holiday.UpdateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Holiday update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.holidayService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements HolidayHandler.
func (h *holidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.holidayService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}

// List implements HolidayHandler. When both start_date and end_date are
// given the inclusive range query is used instead of the paged filter.
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate != "" || endDate != "" {
		result, err := h.holidayService.InRange(r.Context(), startDate, endDate)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	filter := holiday.HolidayFilter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}
	if v := queryInt(r, "year", 0); v > 0 {
		filter.Year = &v
	}
	if v := queryInt(r, "month", 0); v >= 1 && v <= 12 {
		month := time.Month(v)
		filter.Month = &month
	}
	if v := r.URL.Query().Get("type"); v != "" {
		holidayType := holiday.HolidayType(v)
		filter.Type = &holidayType
	}

	result, err := h.holidayService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Upcoming implements HolidayHandler.
func (h *holidayHandlerImpl) Upcoming(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 5)

	result, err := h.holidayService.Upcoming(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Import implements HolidayHandler.
func (h *holidayHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req holiday.ImportRequest

	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Holiday import decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.holidayService.Import(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday import finished", result)
}
