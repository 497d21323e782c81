package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/payment"
	"github.com/Muhammedsajid10/spaBackend/internal/handler/http/response"
)

const maxWebhookBodySize = 64 << 10 // 64 KB

type PaymentHandler interface {
	CreateIntent(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Refund(w http.ResponseWriter, r *http.Request)
	Gateways(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
	CashMovements(w http.ResponseWriter, r *http.Request)
}

type PaymentHandlerImpl struct {
	paymentService payment.Service
}

func NewPaymentHandler(paymentService payment.Service) PaymentHandler {
	return &PaymentHandlerImpl{paymentService: paymentService}
}

// CreateIntent implements PaymentHandler.
func (h *PaymentHandlerImpl) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var createReq payment.CreateIntentRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create intent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	intent, err := h.paymentService.CreateIntent(r.Context(), createReq)
	if err != nil {
		slog.Error("Create intent service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment intent created successfully", intent)
}

// Confirm implements PaymentHandler.
func (h *PaymentHandlerImpl) Confirm(w http.ResponseWriter, r *http.Request) {
	var confirmReq payment.ConfirmRequest

	if err := json.NewDecoder(r.Body).Decode(&confirmReq); err != nil {
		slog.Error("Confirm payment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := confirmReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	confirmed, err := h.paymentService.Confirm(r.Context(), confirmReq)
	if err != nil {
		slog.Error("Confirm payment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment confirmed successfully", confirmed)
}

// GetByID implements PaymentHandler.
func (h *PaymentHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.paymentService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Status implements PaymentHandler.
func (h *PaymentHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	intentID := chi.URLParam(r, "intentId")

	status, err := h.paymentService.Status(r.Context(), intentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// History implements PaymentHandler.
func (h *PaymentHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := payment.HistoryFilter{Status: query.Get("status")}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	payments, total, err := h.paymentService.History(r.Context(), filter)
	if err != nil {
		slog.Error("Payment history service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, payments, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
	})
}

// Refund implements PaymentHandler.
func (h *PaymentHandlerImpl) Refund(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var refundReq payment.RefundRequest
	if err := json.NewDecoder(r.Body).Decode(&refundReq); err != nil {
		slog.Error("Refund decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := refundReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	refunded, err := h.paymentService.Refund(r.Context(), id, refundReq)
	if err != nil {
		slog.Error("Refund service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Refund processed successfully", refunded)
}

// Gateways implements PaymentHandler.
func (h *PaymentHandlerImpl) Gateways(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.paymentService.Gateways(r.Context()))
}

// Webhook implements PaymentHandler. The raw body is needed for signature
// verification, so this endpoint skips the usual JSON decoding.
func (h *PaymentHandlerImpl) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodySize))
	if err != nil {
		response.BadRequest(w, "Failed to read request body", nil)
		return
	}

	signature := r.Header.Get("Stripe-Signature")
	if err := h.paymentService.HandleWebhook(r.Context(), payload, signature); err != nil {
		slog.Error("Webhook processing error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

// CashMovements implements PaymentHandler.
func (h *PaymentHandlerImpl) CashMovements(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	summary, err := h.paymentService.CashMovementSummary(r.Context(), query.Get("startDate"), query.Get("endDate"))
	if err != nil {
		slog.Error("Cash movements service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
