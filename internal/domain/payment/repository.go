package payment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) (*Payment, error)
	GetByID(ctx context.Context, id string) (*Payment, error)
	GetByIntentID(ctx context.Context, intentID string) (*Payment, error)
	ListByClient(ctx context.Context, clientID string, filter HistoryFilter) ([]Payment, int64, error)
	ListByBooking(ctx context.Context, bookingID string) ([]Payment, error)
	Update(ctx context.Context, p *Payment) error

	// CashMovements aggregates completed payments by method over [start, end].
	CashMovements(ctx context.Context, start, end time.Time) ([]CashMovement, error)
}
