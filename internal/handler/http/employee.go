package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/employee"
	"github.com/Muhammedsajid10/spaBackend/internal/handler/http/response"
)

const maxDocumentUploadSize = 10 << 20 // 10 MB

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	UpdateAvailability(w http.ResponseWriter, r *http.Request)
	GetAvailable(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	UploadDocument(w http.ResponseWriter, r *http.Request)
	GetMyRatings(w http.ResponseWriter, r *http.Request)
	GetPerformance(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.employeeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", created)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := employee.ListFilter{
		Position:   query.Get("position"),
		Department: query.Get("department"),
		Search:     query.Get("search"),
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))
	if isActive := query.Get("isActive"); isActive != "" {
		parsed, err := strconv.ParseBool(isActive)
		if err == nil {
			filter.IsActive = &parsed
		}
	}

	employees, total, err := h.employeeService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, employees, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
	})
}

// GetByID implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq employee.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.employeeService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", updated)
}

// Deactivate implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Reason string `json:"reason"`
	}
	// Reason is optional; an empty body is fine
	_ = json.NewDecoder(r.Body).Decode(&body)

	if err := h.employeeService.Deactivate(r.Context(), id, body.Reason); err != nil {
		slog.Error("Deactivate employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deactivated successfully", nil)
}

// UpdateAvailability implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var availabilityReq employee.AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&availabilityReq); err != nil {
		slog.Error("Update availability decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := availabilityReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	availability, err := h.employeeService.UpdateAvailability(r.Context(), id, availabilityReq)
	if err != nil {
		slog.Error("Update availability service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Availability updated successfully", availability)
}

// GetAvailable implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetAvailable(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter, err := employee.ParseAvailableFilter(
		query.Get("serviceId"),
		query.Get("startTime"),
		query.Get("endTime"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	available, err := h.employeeService.GetAvailable(r.Context(), filter)
	if err != nil {
		slog.Error("Get available employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, available)
}

// Search implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.employeeService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Stats implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.employeeService.Stats(r.Context())
	if err != nil {
		slog.Error("Employee stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// UploadDocument implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UploadDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxDocumentUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.HandleError(w, employee.ErrInvalidDocumentUpload)
		return
	}
	defer file.Close()

	uploadReq := employee.DocumentUploadRequest{
		Type:       r.FormValue("type"),
		Name:       r.FormValue("name"),
		File:       file,
		FileHeader: header,
	}
	if err := uploadReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	document, err := h.employeeService.UploadDocument(r.Context(), id, uploadReq)
	if err != nil {
		slog.Error("Upload document service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document uploaded successfully", document)
}

// GetMyRatings implements EmployeeHandler.
// GetPerformance implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetPerformance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	perf, err := h.employeeService.GetPerformance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, perf)
}

func (h *EmployeeHandlerImpl) GetMyRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.employeeService.GetMyRatings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, ratings)
}
