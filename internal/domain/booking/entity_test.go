package booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberFor(t *testing.T) {
	date := time.Date(2025, 3, 2, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "BK20250302-0047", NumberFor(date, 47))
	assert.Equal(t, "BK20250302-1200", NumberFor(date, 1200))
}

func TestRecompute(t *testing.T) {
	b := &Booking{
		Items: []Item{
			{Price: decimal.NewFromInt(80), DurationMinutes: 60},
			{Price: decimal.NewFromInt(45), DurationMinutes: 30},
		},
	}
	b.Recompute()

	assert.True(t, b.TotalAmount.Equal(decimal.NewFromInt(125)))
	assert.Equal(t, 90, b.TotalDuration)
}

func TestCancelTransitions(t *testing.T) {
	b := &Booking{Status: StatusConfirmed}
	require.NoError(t, b.Cancel("client request"))
	assert.Equal(t, StatusCancelled, b.Status)
	assert.Equal(t, "client request", *b.CancelReason)

	assert.ErrorIs(t, b.Cancel("again"), ErrAlreadyCancelled)

	done := &Booking{Status: StatusCompleted}
	assert.ErrorIs(t, done.Cancel("too late"), ErrAlreadyCompleted)
}

func TestIsActive(t *testing.T) {
	for _, s := range ActiveStatuses {
		assert.True(t, (&Booking{Status: s}).IsActive(), s)
	}
	for _, s := range []string{StatusCompleted, StatusCancelled, StatusNoShow} {
		assert.False(t, (&Booking{Status: s}).IsActive(), s)
	}
}
