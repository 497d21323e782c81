package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/catalog"
	"github.com/Muhammedsajid10/spaBackend/internal/handler/http/response"
)

type CatalogHandler interface {
	CreateCategory(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
	DeleteCategory(w http.ResponseWriter, r *http.Request)
	CreateService(w http.ResponseWriter, r *http.Request)
	GetService(w http.ResponseWriter, r *http.Request)
	ListServices(w http.ResponseWriter, r *http.Request)
	UpdateService(w http.ResponseWriter, r *http.Request)
}

type CatalogHandlerImpl struct {
	catalogService catalog.CatalogService
}

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &CatalogHandlerImpl{catalogService: catalogService}
}

// CreateCategory implements CatalogHandler.
func (h *CatalogHandlerImpl) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var createReq catalog.CreateCategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create category decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.catalogService.CreateCategory(r.Context(), createReq)
	if err != nil {
		slog.Error("Create category service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Category created successfully", created)
}

// ListCategories implements CatalogHandler.
func (h *CatalogHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		slog.Error("List categories service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, categories)
}

// DeleteCategory implements CatalogHandler.
func (h *CatalogHandlerImpl) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalogService.DeleteCategory(r.Context(), id); err != nil {
		slog.Error("Delete category service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Category deleted successfully", nil)
}

// CreateService implements CatalogHandler.
func (h *CatalogHandlerImpl) CreateService(w http.ResponseWriter, r *http.Request) {
	var createReq catalog.CreateServiceRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create service decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.catalogService.CreateService(r.Context(), createReq)
	if err != nil {
		slog.Error("Create service service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Service created successfully", created)
}

// GetService implements CatalogHandler.
func (h *CatalogHandlerImpl) GetService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.catalogService.GetService(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListServices implements CatalogHandler.
func (h *CatalogHandlerImpl) ListServices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	activeOnly := true
	if raw := query.Get("includeInactive"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err == nil && include {
			activeOnly = false
		}
	}

	services, err := h.catalogService.ListServices(r.Context(), query.Get("categoryId"), activeOnly)
	if err != nil {
		slog.Error("List services service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, services)
}

// UpdateService implements CatalogHandler.
func (h *CatalogHandlerImpl) UpdateService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq catalog.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update service decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.catalogService.UpdateService(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Update service service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Service updated successfully", updated)
}
