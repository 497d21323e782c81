package giftcard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Muhammedsajid10/spaBackend/internal/pkg/validator"
)

// ========================================
// GIFT CARD DTOs
// ========================================

type CreateTemplateRequest struct {
	Name           string  `json:"name"`
	Description    *string `json:"description"`
	Value          float64 `json:"value"`
	Price          float64 `json:"price"`
	Currency       string  `json:"currency"`
	ValidityMonths int     `json:"validityMonths"`
}

func (r *CreateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) || len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required and cannot exceed 100 characters",
		})
	}

	if r.Value < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value must be at least 1",
		})
	}

	if r.Price < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price cannot be negative",
		})
	}

	if r.Currency != "" && !validator.IsValidCurrency(r.Currency) {
		errs = append(errs, validator.ValidationError{
			Field:   "currency",
			Message: "unsupported currency",
		})
	}

	if r.ValidityMonths < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "validityMonths",
			Message: "validityMonths must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTemplateRequest struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	Value          *float64 `json:"value"`
	Price          *float64 `json:"price"`
	ValidityMonths *int     `json:"validityMonths"`
	IsActive       *bool    `json:"isActive"`
}

func (r *UpdateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && (validator.IsEmpty(*r.Name) || len(*r.Name) > 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required and cannot exceed 100 characters",
		})
	}

	if r.Value != nil && *r.Value < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value must be at least 1",
		})
	}

	if r.Price != nil && *r.Price < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price cannot be negative",
		})
	}

	if r.ValidityMonths != nil && *r.ValidityMonths < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "validityMonths",
			Message: "validityMonths must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PurchaseRequest struct {
	TemplateID      string  `json:"templateId"`
	RecipientName   *string `json:"recipientName"`
	RecipientEmail  *string `json:"recipientEmail"`
	RecipientPhone  *string `json:"recipientPhone"`
	PersonalMessage *string `json:"personalMessage"`
}

func (r *PurchaseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TemplateID) {
		errs = append(errs, validator.ValidationError{
			Field:   "templateId",
			Message: "templateId is required",
		})
	}

	if r.RecipientEmail != nil && !validator.IsValidEmail(*r.RecipientEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "recipientEmail",
			Message: "invalid email format",
		})
	}

	if r.PersonalMessage != nil && len(*r.PersonalMessage) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "personalMessage",
			Message: "message cannot exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RedeemRequest struct {
	Code      string  `json:"code"`
	Amount    float64 `json:"amount"`
	BookingID *string `json:"bookingId"`
	Notes     *string `json:"notes"`
}

func (r *RedeemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}

	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	Value           decimal.Decimal `json:"value"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency"`
	Code            string          `json:"code,omitempty"`
	Status          string          `json:"status"`
	RemainingValue  decimal.Decimal `json:"remainingValue"`
	RecipientName   *string         `json:"recipientName,omitempty"`
	RecipientEmail  *string         `json:"recipientEmail,omitempty"`
	PersonalMessage *string         `json:"personalMessage,omitempty"`
	ValidityMonths  int             `json:"validityMonths,omitempty"`
	ExpiryDate      time.Time       `json:"expiryDate"`
	IsTemplate      bool            `json:"isTemplate"`
	PurchaseDate    *time.Time      `json:"purchaseDate,omitempty"`
	UsageHistory    []Usage         `json:"usageHistory,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func ToResponse(g *GiftCard) Response {
	return Response{
		ID:              g.ID,
		Name:            g.Name,
		Description:     g.Description,
		Value:           g.Value,
		Price:           g.Price,
		Currency:        g.Currency,
		Code:            g.Code,
		Status:          g.Status,
		RemainingValue:  g.RemainingValue,
		RecipientName:   g.RecipientName,
		RecipientEmail:  g.RecipientEmail,
		PersonalMessage: g.PersonalMessage,
		ValidityMonths:  g.ValidityMonths,
		ExpiryDate:      g.ExpiryDate,
		IsTemplate:      g.IsTemplate,
		PurchaseDate:    g.PurchaseDate,
		UsageHistory:    g.UsageHistory,
		CreatedAt:       g.CreatedAt,
	}
}

type ValidationResult struct {
	IsValid        bool            `json:"isValid"`
	Errors         []string        `json:"errors"`
	RemainingValue decimal.Decimal `json:"remainingValue"`
}

type StatsResponse struct {
	TotalSold       int64           `json:"totalSold"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	OutstandingValue decimal.Decimal `json:"outstandingValue"`
	ByStatus        map[string]int64 `json:"byStatus"`
}
