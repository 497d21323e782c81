package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/membership"
	"github.com/Muhammedsajid10/spaBackend/internal/handler/http/response"
)

type MembershipHandler interface {
	CreatePlan(w http.ResponseWriter, r *http.Request)
	ListPlans(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	UseSession(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type MembershipHandlerImpl struct {
	membershipService membership.Service
}

func NewMembershipHandler(membershipService membership.Service) MembershipHandler {
	return &MembershipHandlerImpl{membershipService: membershipService}
}

// CreatePlan implements MembershipHandler.
func (h *MembershipHandlerImpl) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var createReq membership.CreatePlanRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create membership plan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.membershipService.CreatePlan(r.Context(), createReq)
	if err != nil {
		slog.Error("Create membership plan service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Membership plan created successfully", created)
}

// ListPlans implements MembershipHandler.
func (h *MembershipHandlerImpl) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.membershipService.ListPlans(r.Context())
	if err != nil {
		slog.Error("List membership plans service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, plans)
}

// Purchase implements MembershipHandler.
func (h *MembershipHandlerImpl) Purchase(w http.ResponseWriter, r *http.Request) {
	var purchaseReq membership.PurchaseRequest

	if err := json.NewDecoder(r.Body).Decode(&purchaseReq); err != nil {
		slog.Error("Purchase membership decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := purchaseReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	purchased, err := h.membershipService.Purchase(r.Context(), purchaseReq)
	if err != nil {
		slog.Error("Purchase membership service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Membership purchased successfully", purchased)
}

// ListMine implements MembershipHandler.
func (h *MembershipHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	memberships, err := h.membershipService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, memberships)
}

// GetByID implements MembershipHandler.
func (h *MembershipHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.membershipService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// UseSession implements MembershipHandler.
func (h *MembershipHandlerImpl) UseSession(w http.ResponseWriter, r *http.Request) {
	var useReq membership.UseSessionRequest

	if err := json.NewDecoder(r.Body).Decode(&useReq); err != nil {
		slog.Error("Use session decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := useReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.membershipService.UseSession(r.Context(), useReq)
	if err != nil {
		slog.Error("Use session service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Session recorded successfully", updated)
}

// Cancel implements MembershipHandler.
func (h *MembershipHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.membershipService.Cancel(r.Context(), id); err != nil {
		slog.Error("Cancel membership service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Membership cancelled successfully", nil)
}
