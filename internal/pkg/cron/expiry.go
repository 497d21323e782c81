package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/giftcard"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/membership"
)

type ExpiryJobs struct {
	giftCardRepo   giftcard.Repository
	membershipRepo membership.Repository
}

func NewExpiryJobs(giftCardRepo giftcard.Repository, membershipRepo membership.Repository) *ExpiryJobs {
	return &ExpiryJobs{
		giftCardRepo:   giftCardRepo,
		membershipRepo: membershipRepo,
	}
}

func (j *ExpiryJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("expire_gift_cards", 1*time.Hour, j.ExpireGiftCards)
	scheduler.AddJob("expire_memberships", 1*time.Hour, j.ExpireMemberships)
}

// ExpireGiftCards flips active cards past their expiry date to expired.
func (j *ExpiryJobs) ExpireGiftCards(ctx context.Context) error {
	count, err := j.giftCardRepo.ExpireOlderThan(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to expire gift cards: %w", err)
	}

	if count > 0 {
		slog.Info("Cron: Expired gift cards", "count", count)
	}
	return nil
}

// ExpireMemberships flips active memberships past their end date to expired.
func (j *ExpiryJobs) ExpireMemberships(ctx context.Context) error {
	count, err := j.membershipRepo.ExpireOlderThan(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to expire memberships: %w", err)
	}

	if count > 0 {
		slog.Info("Cron: Expired memberships", "count", count)
	}
	return nil
}
