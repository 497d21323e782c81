package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/schedule"
	"github.com/Muhammedsajid10/spaBackend/internal/handler/http/response"
)

type ScheduleHandler interface {
	GetEmployeeSchedule(w http.ResponseWriter, r *http.Request)
	UpdateWeek(w http.ResponseWriter, r *http.Request)
	GetMySchedule(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// GetEmployeeSchedule implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetEmployeeSchedule(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	query := r.URL.Query()

	filter, err := schedule.ParseRangeFilter(query.Get("startDate"), query.Get("endDate"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.scheduleService.GetEmployeeSchedule(r.Context(), employeeID, filter)
	if err != nil {
		slog.Error("Get employee schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateWeek implements ScheduleHandler.
func (h *ScheduleHandlerImpl) UpdateWeek(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	var updateReq schedule.UpdateWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update week decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	week, err := h.scheduleService.UpdateWeek(r.Context(), employeeID, updateReq)
	if err != nil {
		slog.Error("Update week service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work schedule updated successfully", week)
}

// GetMySchedule implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetMySchedule(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.GetMySchedule(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
