package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/booking"
	"github.com/Muhammedsajid10/spaBackend/internal/handler/http/response"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/validator"
)

type BookingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type BookingHandlerImpl struct {
	bookingService booking.Service
}

func NewBookingHandler(bookingService booking.Service) BookingHandler {
	return &BookingHandlerImpl{bookingService: bookingService}
}

// Create implements BookingHandler.
func (h *BookingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq booking.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create booking decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.bookingService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create booking service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Booking created successfully", created)
}

// GetByID implements BookingHandler.
func (h *BookingHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.bookingService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements BookingHandler.
func (h *BookingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := booking.ListFilter{
		ClientID:   query.Get("clientId"),
		EmployeeID: query.Get("employeeId"),
		Status:     query.Get("status"),
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))
	if raw := query.Get("startDate"); raw != "" {
		if parsed, ok := validator.IsValidDate(raw); ok {
			filter.StartDate = &parsed
		}
	}
	if raw := query.Get("endDate"); raw != "" {
		if parsed, ok := validator.IsValidDate(raw); ok {
			filter.EndDate = &parsed
		}
	}

	bookings, total, err := h.bookingService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List bookings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, bookings, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
	})
}

// ListMine implements BookingHandler.
func (h *BookingHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, bookings)
}

// UpdateStatus implements BookingHandler.
func (h *BookingHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq booking.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update booking status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.bookingService.UpdateStatus(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Update booking status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Booking status updated successfully", updated)
}

// Cancel implements BookingHandler.
func (h *BookingHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Reason string `json:"reason"`
	}
	// Reason is optional; an empty body is fine
	_ = json.NewDecoder(r.Body).Decode(&body)

	if err := h.bookingService.Cancel(r.Context(), id, body.Reason); err != nil {
		slog.Error("Cancel booking service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Booking cancelled successfully", nil)
}
