package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/attendance"
	"github.com/Muhammedsajid10/spaBackend/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	MarkAbsent(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CheckIn(r.Context())
	if err != nil {
		slog.Error("Check-in service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked in successfully", result)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CheckOut(r.Context())
	if err != nil {
		slog.Error("Check-out service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", result)
}

// MarkAbsent implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MarkAbsent(w http.ResponseWriter, r *http.Request) {
	var markAbsentReq attendance.MarkAbsentRequest

	if err := json.NewDecoder(r.Body).Decode(&markAbsentReq); err != nil {
		slog.Error("Mark absent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := markAbsentReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.MarkAbsent(r.Context(), markAbsentReq)
	if err != nil {
		slog.Error("Mark absent service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Marked absent successfully", result)
}

// GetMyAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter, err := attendance.ParseListFilter(query.Get("startDate"), query.Get("endDate"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.GetMyAttendance(r.Context(), filter)
	if err != nil {
		slog.Error("Get my attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
