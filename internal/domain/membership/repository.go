package membership

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, m *Membership) (*Membership, error)
	GetByID(ctx context.Context, id string) (*Membership, error)
	ListPlans(ctx context.Context) ([]Membership, error)
	ListByClient(ctx context.Context, clientID string) ([]Membership, error)
	Update(ctx context.Context, m *Membership) error

	// ExpireOlderThan marks active memberships past their end date as Expired
	// and returns how many rows changed.
	ExpireOlderThan(ctx context.Context, now time.Time) (int64, error)
}
