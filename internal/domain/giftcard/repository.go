package giftcard

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, card *GiftCard) (*GiftCard, error)
	GetByID(ctx context.Context, id string) (*GiftCard, error)
	GetByCode(ctx context.Context, code string) (*GiftCard, error)
	ListTemplates(ctx context.Context) ([]GiftCard, error)
	ListByPurchaser(ctx context.Context, userID string) ([]GiftCard, error)
	Update(ctx context.Context, card *GiftCard) error
	AddUsage(ctx context.Context, cardID string, usage Usage) error

	// ExpireOlderThan marks active cards past their expiry as Expired and
	// returns how many rows changed.
	ExpireOlderThan(ctx context.Context, now time.Time) (int64, error)

	Stats(ctx context.Context) (*StatsResponse, error)
}
