package booking

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter ListFilter) ([]Booking, int64, error)
	Update(ctx context.Context, b *Booking) error
	UpdateStatus(ctx context.Context, id, status string, reason *string) error
	UpdatePaymentStatus(ctx context.Context, id, paymentStatus string) error

	// ListByEmployeeRange returns bookings with items assigned to the
	// employee inside [start, end], active statuses only.
	ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]Booking, error)

	// HasConflict checks whether the employee has an active item overlapping
	// [start, end).
	HasConflict(ctx context.Context, employeeID string, start, end time.Time) (bool, error)

	// CountActiveByEmployee guards employee deactivation.
	CountActiveByEmployee(ctx context.Context, employeeID string) (int64, error)

	// StatsByEmployee rolls up the employee's booking items by status.
	StatsByEmployee(ctx context.Context, employeeID string) ([]ItemStatusStat, error)

	// ListUpcomingByEmployee returns future active bookings, soonest first.
	ListUpcomingByEmployee(ctx context.Context, employeeID string, limit int) ([]Booking, error)

	// NextSequence returns the next daily booking-number sequence value.
	NextSequence(ctx context.Context, date time.Time) (int64, error)
}
