package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/feedback"
	"github.com/Muhammedsajid10/spaBackend/internal/handler/http/response"
)

type FeedbackHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetByBooking(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	ListByService(w http.ResponseWriter, r *http.Request)
	EmployeeSummary(w http.ResponseWriter, r *http.Request)
	ServiceSummary(w http.ResponseWriter, r *http.Request)
}

type FeedbackHandlerImpl struct {
	feedbackService feedback.Service
}

func NewFeedbackHandler(feedbackService feedback.Service) FeedbackHandler {
	return &FeedbackHandlerImpl{feedbackService: feedbackService}
}

// Submit implements FeedbackHandler.
func (h *FeedbackHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var submitReq feedback.SubmitRequest

	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("Submit feedback decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := submitReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.feedbackService.Submit(r.Context(), submitReq)
	if err != nil {
		slog.Error("Submit feedback service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Feedback submitted successfully", created)
}

// GetByBooking implements FeedbackHandler.
func (h *FeedbackHandlerImpl) GetByBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")

	entries, err := h.feedbackService.GetByBooking(r.Context(), bookingID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// ListMine implements FeedbackHandler.
func (h *FeedbackHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	entries, err := h.feedbackService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// ListByEmployee implements FeedbackHandler.
func (h *FeedbackHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	entries, err := h.feedbackService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// ListByService implements FeedbackHandler.
func (h *FeedbackHandlerImpl) ListByService(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "serviceId")

	entries, err := h.feedbackService.ListByService(r.Context(), serviceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// EmployeeSummary implements FeedbackHandler.
func (h *FeedbackHandlerImpl) EmployeeSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	summary, err := h.feedbackService.EmployeeSummary(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ServiceSummary implements FeedbackHandler.
func (h *FeedbackHandlerImpl) ServiceSummary(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "serviceId")

	summary, err := h.feedbackService.ServiceSummary(r.Context(), serviceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
