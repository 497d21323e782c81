package giftcard

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Gift card statuses
const (
	StatusActive        = "Active"
	StatusPartiallyUsed = "Partially Used"
	StatusUsed          = "Used"
	StatusExpired       = "Expired"
	StatusCancelled     = "Cancelled"
)

var Statuses = []string{StatusActive, StatusPartiallyUsed, StatusUsed, StatusExpired, StatusCancelled}

// Usage is one redemption against a gift card.
type Usage struct {
	ID         string          `json:"id"`
	UsedDate   time.Time       `json:"usedDate"`
	AmountUsed decimal.Decimal `json:"amountUsed"`
	UsedBy     string          `json:"usedBy"`
	BookingID  *string         `json:"bookingId,omitempty"`
	Notes      *string         `json:"notes,omitempty"`
}

// GiftCard is either a purchasable template (IsTemplate) or a purchased card
// with a code and a running balance.
type GiftCard struct {
	ID              string
	Name            string
	Description     *string
	Value           decimal.Decimal
	Price           decimal.Decimal
	Currency        string
	Code            string
	Status          string
	RemainingValue  decimal.Decimal
	PurchasedBy     *string
	PurchaseDate    *time.Time
	PurchasePrice   decimal.Decimal
	RecipientName   *string
	RecipientEmail  *string
	RecipientPhone  *string
	PersonalMessage *string
	ValidityMonths  int
	ExpiryDate      time.Time
	IsActive        bool
	IsTemplate      bool
	CreatedBy       *string
	Notes           *string
	UsageHistory    []Usage
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// GenerateCode builds a card code: "GC", four random bytes as uppercase hex,
// then the last four digits of the millisecond timestamp.
func GenerateCode(now time.Time) string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	random := strings.ToUpper(hex.EncodeToString(buf))

	millis := strconv.FormatInt(now.UnixMilli(), 10)
	return "GC" + random + millis[len(millis)-4:]
}

// IsExpired reports whether the card is past its expiry date.
func (g *GiftCard) IsExpired(now time.Time) bool {
	return now.After(g.ExpiryDate)
}

// IsFullyUsed reports whether no balance remains.
func (g *GiftCard) IsFullyUsed() bool {
	return g.RemainingValue.LessThanOrEqual(decimal.Zero)
}

// Redeem deducts amount from the balance and appends a usage entry. The
// status moves to Partially Used or Used depending on what remains.
func (g *GiftCard) Redeem(amount decimal.Decimal, userID string, bookingID, notes *string, now time.Time) error {
	if g.IsExpired(now) {
		return ErrExpired
	}
	if g.RemainingValue.LessThan(amount) {
		return ErrInsufficientBalance
	}
	if g.Status == StatusUsed || g.Status == StatusCancelled {
		return ErrNotAvailable
	}

	g.UsageHistory = append(g.UsageHistory, Usage{
		UsedDate:   now,
		AmountUsed: amount,
		UsedBy:     userID,
		BookingID:  bookingID,
		Notes:      notes,
	})

	g.RemainingValue = g.RemainingValue.Sub(amount)
	if g.IsFullyUsed() {
		g.Status = StatusUsed
	} else {
		g.Status = StatusPartiallyUsed
	}
	return nil
}

// ValidateForUse lists every reason the card cannot currently be redeemed.
func (g *GiftCard) ValidateForUse(now time.Time) []string {
	var reasons []string

	if g.IsExpired(now) {
		reasons = append(reasons, "Gift card has expired")
	}
	if g.IsFullyUsed() {
		reasons = append(reasons, "Gift card has no remaining balance")
	}
	if !g.IsActive {
		reasons = append(reasons, "Gift card is not active")
	}
	if g.Status == StatusCancelled {
		reasons = append(reasons, "Gift card has been cancelled")
	}
	return reasons
}
