package giftcard

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeCard(value float64) *GiftCard {
	v := decimal.NewFromFloat(value)
	return &GiftCard{
		Name:           "Relax Package",
		Value:          v,
		Price:          v,
		Currency:       "USD",
		Code:           GenerateCode(time.Now()),
		Status:         StatusActive,
		RemainingValue: v,
		PurchasePrice:  v,
		ExpiryDate:     time.Now().AddDate(0, 6, 0),
		IsActive:       true,
	}
}

func TestGenerateCodeFormat(t *testing.T) {
	now := time.UnixMilli(1750000001234)
	code := GenerateCode(now)

	assert.Regexp(t, regexp.MustCompile(`^GC[0-9A-F]{8}1234$`), code)

	// Random segment makes consecutive codes distinct.
	assert.NotEqual(t, code, GenerateCode(now))
}

func TestRedeemPartialThenFull(t *testing.T) {
	card := activeCard(100)

	require.NoError(t, card.Redeem(decimal.NewFromInt(30), "user-1", nil, nil, time.Now()))
	assert.Equal(t, StatusPartiallyUsed, card.Status)
	assert.True(t, card.RemainingValue.Equal(decimal.NewFromInt(70)))
	assert.Len(t, card.UsageHistory, 1)

	require.NoError(t, card.Redeem(decimal.NewFromInt(70), "user-1", nil, nil, time.Now()))
	assert.Equal(t, StatusUsed, card.Status)
	assert.True(t, card.IsFullyUsed())

	err := card.Redeem(decimal.NewFromInt(1), "user-1", nil, nil, time.Now())
	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestRedeemInsufficientBalance(t *testing.T) {
	card := activeCard(20)

	err := card.Redeem(decimal.NewFromInt(50), "user-1", nil, nil, time.Now())
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, StatusActive, card.Status)
	assert.Empty(t, card.UsageHistory)
}

func TestRedeemExpired(t *testing.T) {
	card := activeCard(100)
	card.ExpiryDate = time.Now().AddDate(0, 0, -1)

	err := card.Redeem(decimal.NewFromInt(10), "user-1", nil, nil, time.Now())
	assert.ErrorIs(t, err, ErrExpired)
}

func TestValidateForUse(t *testing.T) {
	card := activeCard(100)
	assert.Empty(t, card.ValidateForUse(time.Now()))

	card.ExpiryDate = time.Now().AddDate(0, 0, -1)
	card.RemainingValue = decimal.Zero
	card.IsActive = false
	card.Status = StatusCancelled

	reasons := card.ValidateForUse(time.Now())
	assert.Len(t, reasons, 4)
	assert.Contains(t, reasons, "Gift card has expired")
	assert.Contains(t, reasons, "Gift card has been cancelled")
}
