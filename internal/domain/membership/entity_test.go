package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitedMembership(sessions int) *Membership {
	start := time.Now()
	end := ComputeEndDate(start, 3, UnitMonths)
	return &Membership{
		Name:             "Spa Saver",
		ServiceType:      TypeLimited,
		NumberOfSessions: sessions,
		Status:           StatusActive,
		StartDate:        start,
		EndDate:          &end,
		IsActive:         true,
	}
}

func TestComputeEndDate(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		period int
		unit   string
		want   time.Time
	}{
		{30, UnitDays, time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)},
		{3, UnitMonths, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)},
		{1, UnitYears, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got := ComputeEndDate(start, c.period, c.unit)
		assert.Equal(t, c.want, got, c.unit)
	}
}

func TestUseSessionLimited(t *testing.T) {
	m := limitedMembership(2)

	require.NoError(t, m.UseSession(time.Now()))
	assert.Equal(t, 1, m.SessionsUsed)
	assert.Equal(t, StatusActive, m.Status)
	require.NotNil(t, m.RemainingSessions())
	assert.Equal(t, 1, *m.RemainingSessions())

	require.NoError(t, m.UseSession(time.Now()))
	assert.Equal(t, StatusUsed, m.Status)
	assert.True(t, m.SessionsExhausted())

	err := m.UseSession(time.Now())
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestUseSessionUnlimited(t *testing.T) {
	end := time.Now().AddDate(1, 0, 0)
	m := &Membership{
		ServiceType: TypeUnlimited,
		Status:      StatusActive,
		StartDate:   time.Now(),
		EndDate:     &end,
	}

	for i := 0; i < 5; i++ {
		require.NoError(t, m.UseSession(time.Now()))
	}
	assert.Zero(t, m.SessionsUsed)
	assert.Nil(t, m.RemainingSessions())
	assert.NotNil(t, m.LastUsedDate)
}

func TestUseSessionExpired(t *testing.T) {
	m := limitedMembership(5)
	past := time.Now().AddDate(0, 0, -1)
	m.EndDate = &past

	err := m.UseSession(time.Now())
	assert.ErrorIs(t, err, ErrMembershipExpired)
	assert.Zero(t, m.SessionsUsed)
}

func TestDaysRemaining(t *testing.T) {
	m := limitedMembership(1)

	end := time.Now().Add(48 * time.Hour)
	m.EndDate = &end
	got := m.DaysRemaining(time.Now())
	require.NotNil(t, got)
	assert.Equal(t, 2, *got)

	past := time.Now().AddDate(0, 0, -3)
	m.EndDate = &past
	got = m.DaysRemaining(time.Now())
	require.NotNil(t, got)
	assert.Zero(t, *got)

	m.EndDate = nil
	assert.Nil(t, m.DaysRemaining(time.Now()))
}
