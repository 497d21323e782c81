package membership

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Muhammedsajid10/spaBackend/internal/pkg/validator"
)

// ========================================
// MEMBERSHIP DTOs
// ========================================

type CreatePlanRequest struct {
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	ServiceType      string            `json:"serviceType"`
	SelectedServices []SelectedService `json:"selectedServices"`
	NumberOfSessions int               `json:"numberOfSessions"`
	PaymentType      string            `json:"paymentType"`
	Price            float64           `json:"price"`
	Currency         string            `json:"currency"`
	ValidityPeriod   int               `json:"validityPeriod"`
	ValidityUnit     string            `json:"validityUnit"`
	Notes            *string           `json:"notes"`
}

func (r *CreatePlanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) || len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required and cannot exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.Description) || len(r.Description) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required and cannot exceed 500 characters",
		})
	}

	if r.ServiceType != TypeLimited && r.ServiceType != TypeUnlimited {
		errs = append(errs, validator.ValidationError{
			Field:   "serviceType",
			Message: "serviceType must be Limited or Unlimited",
		})
	}

	if r.ServiceType == TypeLimited && r.NumberOfSessions < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "numberOfSessions",
			Message: "numberOfSessions must be at least 1 for limited memberships",
		})
	}

	if r.PaymentType != PaymentOneTime && r.PaymentType != PaymentRecurring {
		errs = append(errs, validator.ValidationError{
			Field:   "paymentType",
			Message: "paymentType must be One-time or Recurring",
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

	if r.ValidityPeriod < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "validityPeriod",
			Message: "validityPeriod must be at least 1",
		})
	}

	if !validator.IsInSlice(r.ValidityUnit, ValidityUnits) {
		errs = append(errs, validator.ValidationError{
			Field:   "validityUnit",
			Message: "validityUnit must be days, months or years",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PurchaseRequest struct {
	PlanID string `json:"planId"`
}

func (r *PurchaseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PlanID) {
		errs = append(errs, validator.ValidationError{
			Field:   "planId",
			Message: "planId is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UseSessionRequest struct {
	MembershipID string  `json:"membershipId"`
	ServiceID    string  `json:"serviceId"`
	BookingID    *string `json:"bookingId"`
}

func (r *UseSessionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MembershipID) {
		errs = append(errs, validator.ValidationError{
			Field:   "membershipId",
			Message: "membershipId is required",
		})
	}

	if validator.IsEmpty(r.ServiceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "serviceId",
			Message: "serviceId is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	ServiceType       string            `json:"serviceType"`
	SelectedServices  []SelectedService `json:"selectedServices"`
	NumberOfSessions  int               `json:"numberOfSessions,omitempty"`
	PaymentType       string            `json:"paymentType"`
	Price             decimal.Decimal   `json:"price"`
	Currency          string            `json:"currency"`
	ValidityPeriod    int               `json:"validityPeriod"`
	ValidityUnit      string            `json:"validityUnit"`
	Status            string            `json:"status"`
	StartDate         time.Time         `json:"startDate"`
	EndDate           *time.Time        `json:"endDate,omitempty"`
	SessionsUsed      int               `json:"sessionsUsed"`
	RemainingSessions *int              `json:"remainingSessions,omitempty"`
	DaysRemaining     *int              `json:"daysRemaining,omitempty"`
	IsTemplate        bool              `json:"isTemplate"`
	CreatedAt         time.Time         `json:"createdAt"`
}

func ToResponse(m *Membership, now time.Time) Response {
	return Response{
		ID:                m.ID,
		Name:              m.Name,
		Description:       m.Description,
		ServiceType:       m.ServiceType,
		SelectedServices:  m.SelectedServices,
		NumberOfSessions:  m.NumberOfSessions,
		PaymentType:       m.PaymentType,
		Price:             m.Price,
		Currency:          m.Currency,
		ValidityPeriod:    m.ValidityPeriod,
		ValidityUnit:      m.ValidityUnit,
		Status:            m.Status,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		SessionsUsed:      m.SessionsUsed,
		RemainingSessions: m.RemainingSessions(),
		DaysRemaining:     m.DaysRemaining(now),
		IsTemplate:        m.IsTemplate,
		CreatedAt:         m.CreatedAt,
	}
}
