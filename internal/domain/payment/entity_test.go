package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentsConversion(t *testing.T) {
	cases := []struct {
		amount float64
		cents  int64
	}{
		{10, 1000},
		{99.99, 9999},
		{0.1, 10},
		{123.455, 12346}, // rounds half up
	}
	for _, c := range cases {
		assert.Equal(t, c.cents, ToCents(c.amount))
	}
	assert.Equal(t, 99.99, FromCents(9999))
}

func TestMarkCompleted(t *testing.T) {
	p := &Payment{Status: StatusProcessing, AmountCents: 5000}
	now := time.Now()
	p.MarkCompleted("ch_123", now)

	assert.Equal(t, StatusCompleted, p.Status)
	assert.Equal(t, "ch_123", *p.GatewayChargeID)
	assert.Equal(t, now, *p.PaidAt)
}

func TestApplyRefundPartialThenFull(t *testing.T) {
	p := &Payment{Status: StatusCompleted, AmountCents: 10000}

	require.NoError(t, p.ApplyRefund(3000))
	assert.Equal(t, StatusPartiallyRefunded, p.Status)
	assert.Equal(t, int64(7000), p.RefundableCents())

	require.NoError(t, p.ApplyRefund(7000))
	assert.Equal(t, StatusRefunded, p.Status)
	assert.Zero(t, p.RefundableCents())

	assert.ErrorIs(t, p.ApplyRefund(1), ErrNotRefundable)
}

func TestApplyRefundValidation(t *testing.T) {
	p := &Payment{Status: StatusCompleted, AmountCents: 1000}

	assert.ErrorIs(t, p.ApplyRefund(0), ErrInvalidRefundAmount)
	assert.ErrorIs(t, p.ApplyRefund(2000), ErrInvalidRefundAmount)

	pending := &Payment{Status: StatusPending, AmountCents: 1000}
	assert.ErrorIs(t, pending.ApplyRefund(500), ErrNotRefundable)
}
