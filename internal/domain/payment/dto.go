package payment

import (
	"math"
	"strings"
	"time"

	"github.com/Muhammedsajid10/spaBackend/internal/pkg/validator"
)

// ========================================
// PAYMENT DTOs
// ========================================

// ToCents converts a display amount to integer minor units.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts integer minor units back to a display amount.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

type CreateIntentRequest struct {
	BookingID   string  `json:"bookingId"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Method      string  `json:"paymentMethod"`
	Description *string `json:"description"`
}

func (r *CreateIntentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BookingID) {
		errs = append(errs, validator.ValidationError{
			Field:   "bookingId",
			Message: "bookingId is required",
		})
	}

	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if !validator.IsValidCurrency(r.Currency) {
		errs = append(errs, validator.ValidationError{
			Field:   "currency",
			Message: "unsupported currency",
		})
	}

	if !validator.IsInSlice(r.Method, Methods) {
		errs = append(errs, validator.ValidationError{
			Field:   "paymentMethod",
			Message: "paymentMethod must be one of: " + strings.Join(Methods, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateIntentResponse struct {
	PaymentID       string  `json:"paymentId"`
	PaymentIntentID string  `json:"paymentIntentId"`
	ClientSecret    string  `json:"clientSecret,omitempty"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Status          string  `json:"status"`
}

type ConfirmRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
}

func (r *ConfirmRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PaymentIntentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "paymentIntentId",
			Message: "paymentIntentId is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RefundRequest struct {
	Amount *float64 `json:"amount"`
	Reason *string  `json:"reason"`
}

func (r *RefundRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount != nil && *r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if r.Reason == nil || validator.IsEmpty(*r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID            string     `json:"id"`
	BookingID     string     `json:"bookingId"`
	BookingNumber string     `json:"bookingNumber,omitempty"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	Method        string     `json:"paymentMethod"`
	Gateway       string     `json:"gateway"`
	Status        string     `json:"status"`
	RefundedAmount float64   `json:"refundedAmount"`
	FailureReason *string    `json:"failureReason,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func ToResponse(p *Payment) Response {
	return Response{
		ID:             p.ID,
		BookingID:      p.BookingID,
		BookingNumber:  p.BookingNumber,
		Amount:         FromCents(p.AmountCents),
		Currency:       p.Currency,
		Method:         p.Method,
		Gateway:        p.Gateway,
		Status:         p.Status,
		RefundedAmount: FromCents(p.RefundedCents),
		FailureReason:  p.FailureReason,
		PaidAt:         p.PaidAt,
		CreatedAt:      p.CreatedAt,
	}
}

type HistoryFilter struct {
	Page   int
	Limit  int
	Status string
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	if f.Status != "" && !validator.IsInSlice(f.Status, []string{
		StatusPending, StatusProcessing, StatusCompleted, StatusFailed,
		StatusRefunded, StatusPartiallyRefunded, StatusCancelled,
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "invalid status",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GatewayInfo struct {
	Name       string   `json:"name"`
	Enabled    bool     `json:"enabled"`
	Methods    []string `json:"methods"`
	Currencies []string `json:"currencies"`
}

type CashMovement struct {
	Method         string  `json:"paymentMethod"`
	Count          int64   `json:"count"`
	TotalAmount    float64 `json:"totalAmount"`
	RefundedAmount float64 `json:"refundedAmount"`
}

type CashMovementSummary struct {
	StartDate time.Time      `json:"startDate"`
	EndDate   time.Time      `json:"endDate"`
	Movements []CashMovement `json:"movements"`
	NetTotal  float64        `json:"netTotal"`
}
