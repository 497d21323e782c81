package booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Muhammedsajid10/spaBackend/internal/pkg/validator"
)

// ========================================
// BOOKING DTOs
// ========================================

type CreateItemRequest struct {
	ServiceID  string `json:"serviceId"`
	EmployeeID string `json:"employeeId"`
	StartTime  string `json:"startTime"`
}

type CreateRequest struct {
	AppointmentDate string              `json:"appointmentDate"`
	Items           []CreateItemRequest `json:"services"`
	Notes           *string             `json:"notes"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.AppointmentDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "appointmentDate",
			Message: "appointmentDate is required in YYYY-MM-DD format",
		})
	}

	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "services",
			Message: "at least one service is required",
		})
	}

	for i, item := range r.Items {
		prefix := "services[" + validator.Itoa(i) + "]"
		if validator.IsEmpty(item.ServiceID) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".serviceId",
				Message: "serviceId is required",
			})
		}
		if validator.IsEmpty(item.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".employeeId",
				Message: "employeeId is required",
			})
		}
		if _, ok := validator.IsValidDateTime(item.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".startTime",
				Message: "startTime must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, Statuses) {
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

type ListFilter struct {
	Page       int
	Limit      int
	ClientID   string
	EmployeeID string
	Status     string
	StartDate  *time.Time
	EndDate    *time.Time
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	if f.Status != "" && !validator.IsInSlice(f.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "invalid status",
		})
	}

	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID              string          `json:"id"`
	BookingNumber   string          `json:"bookingNumber"`
	ClientID        string          `json:"clientId"`
	ClientName      string          `json:"clientName,omitempty"`
	AppointmentDate time.Time       `json:"appointmentDate"`
	Services        []Item          `json:"services"`
	TotalDuration   int             `json:"totalDuration"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func ToResponse(b *Booking) Response {
	return Response{
		ID:              b.ID,
		BookingNumber:   b.BookingNumber,
		ClientID:        b.ClientID,
		ClientName:      b.ClientName(),
		AppointmentDate: b.AppointmentDate,
		Services:        b.Items,
		TotalDuration:   b.TotalDuration,
		TotalAmount:     b.TotalAmount,
		Currency:        b.Currency,
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
	}
}
