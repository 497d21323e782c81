package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/giftcard"
	"github.com/Muhammedsajid10/spaBackend/internal/handler/http/response"
)

type GiftCardHandler interface {
	CreateTemplate(w http.ResponseWriter, r *http.Request)
	UpdateTemplate(w http.ResponseWriter, r *http.Request)
	ListTemplates(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
	GetByCode(w http.ResponseWriter, r *http.Request)
	ValidateCard(w http.ResponseWriter, r *http.Request)
	Redeem(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type GiftCardHandlerImpl struct {
	giftCardService giftcard.Service
}

func NewGiftCardHandler(giftCardService giftcard.Service) GiftCardHandler {
	return &GiftCardHandlerImpl{giftCardService: giftCardService}
}

// CreateTemplate implements GiftCardHandler.
func (h *GiftCardHandlerImpl) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var createReq giftcard.CreateTemplateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create gift card template decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.giftCardService.CreateTemplate(r.Context(), createReq)
	if err != nil {
		slog.Error("Create gift card template service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Gift card template created successfully", created)
}

// UpdateTemplate implements GiftCardHandler.
func (h *GiftCardHandlerImpl) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq giftcard.UpdateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update gift card template decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.giftCardService.UpdateTemplate(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Update gift card template service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Gift card template updated successfully", updated)
}

// ListTemplates implements GiftCardHandler.
func (h *GiftCardHandlerImpl) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.giftCardService.ListTemplates(r.Context())
	if err != nil {
		slog.Error("List gift card templates service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, templates)
}

// Purchase implements GiftCardHandler.
func (h *GiftCardHandlerImpl) Purchase(w http.ResponseWriter, r *http.Request) {
	var purchaseReq giftcard.PurchaseRequest

	if err := json.NewDecoder(r.Body).Decode(&purchaseReq); err != nil {
		slog.Error("Purchase gift card decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := purchaseReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	purchased, err := h.giftCardService.Purchase(r.Context(), purchaseReq)
	if err != nil {
		slog.Error("Purchase gift card service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Gift card purchased successfully", purchased)
}

// GetByCode implements GiftCardHandler.
func (h *GiftCardHandlerImpl) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	found, err := h.giftCardService.GetByCode(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ValidateCard implements GiftCardHandler.
func (h *GiftCardHandlerImpl) ValidateCard(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	result, err := h.giftCardService.ValidateCard(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Redeem implements GiftCardHandler.
func (h *GiftCardHandlerImpl) Redeem(w http.ResponseWriter, r *http.Request) {
	var redeemReq giftcard.RedeemRequest

	if err := json.NewDecoder(r.Body).Decode(&redeemReq); err != nil {
		slog.Error("Redeem gift card decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := redeemReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	redeemed, err := h.giftCardService.Redeem(r.Context(), redeemReq)
	if err != nil {
		slog.Error("Redeem gift card service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Gift card redeemed successfully", redeemed)
}

// ListMine implements GiftCardHandler.
func (h *GiftCardHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	cards, err := h.giftCardService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cards)
}

// Cancel implements GiftCardHandler.
func (h *GiftCardHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.giftCardService.Cancel(r.Context(), id); err != nil {
		slog.Error("Cancel gift card service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Gift card cancelled successfully", nil)
}

// Stats implements GiftCardHandler.
func (h *GiftCardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.giftCardService.Stats(r.Context())
	if err != nil {
		slog.Error("Gift card stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
