package booking

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Booking statuses
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no-show"
)

var Statuses = []string{
	StatusPending, StatusConfirmed, StatusInProgress,
	StatusCompleted, StatusCancelled, StatusNoShow,
}

// ActiveStatuses are the states that occupy an employee's calendar.
var ActiveStatuses = []string{StatusPending, StatusConfirmed, StatusInProgress}

// Payment statuses tracked on the booking itself
const (
	PaymentUnpaid   = "unpaid"
	PaymentPartial  = "partial"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// Item is one service slot inside a booking.
type Item struct {
	ID              string          `json:"id"`
	ServiceID       string          `json:"serviceId"`
	EmployeeID      string          `json:"employeeId"`
	StartTime       time.Time       `json:"startTime"`
	EndTime         time.Time       `json:"endTime"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration"`
	Status          string          `json:"status"`

	// DTO / Join
	ServiceName  string `json:"serviceName,omitempty"`
	EmployeeName string `json:"employeeName,omitempty"`
}

type Booking struct {
	ID              string
	BookingNumber   string
	ClientID        string
	AppointmentDate time.Time
	Items           []Item
	TotalDuration   int
	TotalAmount     decimal.Decimal
	Currency        string
	Status          string
	PaymentStatus   string
	Notes           *string
	CancelReason    *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	ClientFirstName string
	ClientLastName  string
	ClientPhone     *string
}

// NumberFor builds a booking number from the appointment date and a daily
// sequence, e.g. BK20250302-0047.
func NumberFor(date time.Time, seq int64) string {
	return fmt.Sprintf("BK%s-%04d", date.UTC().Format("20060102"), seq)
}

// ClientName joins the joined client's first and last name.
func (b *Booking) ClientName() string {
	if b.ClientLastName == "" {
		return b.ClientFirstName
	}
	return b.ClientFirstName + " " + b.ClientLastName
}

// IsActive reports whether the booking still occupies calendar time.
func (b *Booking) IsActive() bool {
	for _, s := range ActiveStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// ItemStatusStat is a per-status rollup of one employee's booking items.
type ItemStatusStat struct {
	Status  string          `json:"status"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// Recompute refreshes the totals from the items.
func (b *Booking) Recompute() {
	total := decimal.Zero
	duration := 0
	for _, item := range b.Items {
		total = total.Add(item.Price)
		duration += item.DurationMinutes
	}
	b.TotalAmount = total
	b.TotalDuration = duration
}

// Cancel transitions the booking to cancelled. Completed bookings stay
// completed.
func (b *Booking) Cancel(reason string) error {
	if b.Status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	if b.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.Status = StatusCancelled
	b.CancelReason = &reason
	return nil
}
