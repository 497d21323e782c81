package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInThenOut(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	att := NewForDate("emp-1", day)

	in := day.Add(9 * time.Hour)
	require.NoError(t, att.CheckIn(in, MethodMobileApp))
	require.NotNil(t, att.ClockIn)
	assert.Equal(t, in, att.ClockIn.Time)
	assert.Equal(t, MethodMobileApp, att.ClockIn.Method)
	assert.Equal(t, StatusPresent, att.Status)

	out := in.Add(90 * time.Minute)
	require.NoError(t, att.CheckOut(out, MethodMobileApp))
	require.NotNil(t, att.ActualHours)
	assert.Equal(t, 1.5, *att.ActualHours)
	assert.Equal(t, 1.5, att.HoursWorked())
}

func TestCheckInTwiceFails(t *testing.T) {
	att := NewForDate("emp-1", time.Now())
	require.NoError(t, att.CheckIn(time.Now(), MethodMobileApp))

	err := att.CheckIn(time.Now(), MethodMobileApp)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
	assert.EqualError(t, err, "already checked in today")
}

func TestCheckOutWithoutCheckInFails(t *testing.T) {
	att := NewForDate("emp-1", time.Now())

	err := att.CheckOut(time.Now(), MethodMobileApp)
	assert.ErrorIs(t, err, ErrNoCheckInRecord)
	assert.EqualError(t, err, "no check-in record found for today")
}

func TestCheckOutTwiceFails(t *testing.T) {
	att := NewForDate("emp-1", time.Now())
	require.NoError(t, att.CheckIn(time.Now(), MethodMobileApp))
	require.NoError(t, att.CheckOut(time.Now().Add(time.Hour), MethodMobileApp))

	err := att.CheckOut(time.Now().Add(2*time.Hour), MethodMobileApp)
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
	assert.EqualError(t, err, "already checked out today")
}

func TestMarkAbsentAfterCheckInFails(t *testing.T) {
	att := NewForDate("emp-1", time.Now())
	require.NoError(t, att.CheckIn(time.Now(), MethodMobileApp))

	err := att.MarkAbsent("sick", "sick")
	assert.ErrorIs(t, err, ErrAbsentAfterCheckIn)
	assert.EqualError(t, err, "cannot mark as absent after checking in")
	assert.Equal(t, StatusPresent, att.Status)
}

func TestMarkAbsentOverwrites(t *testing.T) {
	att := NewForDate("emp-1", time.Now())

	require.NoError(t, att.MarkAbsent("fever", "sick"))
	assert.Equal(t, StatusAbsent, att.Status)
	assert.Equal(t, "fever", *att.LeaveReason)
	assert.Equal(t, "sick", *att.LeaveType)

	// Repeating is allowed and replaces the reason.
	require.NoError(t, att.MarkAbsent("family emergency", "emergency"))
	assert.Equal(t, StatusAbsent, att.Status)
	assert.Equal(t, "family emergency", *att.LeaveReason)
	assert.Equal(t, "emergency", *att.LeaveType)
}

func TestMarkAbsentDefaults(t *testing.T) {
	att := NewForDate("emp-1", time.Now())

	require.NoError(t, att.MarkAbsent("", ""))
	assert.Equal(t, DefaultAbsentReason, *att.LeaveReason)
	assert.Equal(t, DefaultLeaveType, *att.LeaveType)
}

func TestCheckInAfterMarkAbsentFails(t *testing.T) {
	att := NewForDate("emp-1", time.Now())
	require.NoError(t, att.MarkAbsent("sick", "sick"))

	err := att.CheckIn(time.Now(), MethodMobileApp)
	assert.ErrorIs(t, err, ErrMarkedAbsent)
}

func TestApplyLateness(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	att := NewForDate("emp-1", day)
	require.NoError(t, att.CheckIn(day.Add(9*time.Hour+20*time.Minute), MethodMobileApp))
	att.ApplyLateness("09:00")
	assert.True(t, att.IsLate)
	assert.Equal(t, 20, att.LateMinutes)

	onTime := NewForDate("emp-1", day)
	require.NoError(t, onTime.CheckIn(day.Add(9*time.Hour), MethodMobileApp))
	onTime.ApplyLateness("09:00")
	assert.False(t, onTime.IsLate)
	assert.Zero(t, onTime.LateMinutes)
}

func TestToRecordFlattensClockEvents(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	att := NewForDate("emp-1", day)
	att.ID = "att-1"
	require.NoError(t, att.CheckIn(day.Add(9*time.Hour), MethodMobileApp))
	require.NoError(t, att.CheckOut(day.Add(17*time.Hour), MethodMobileApp))

	rec := ToRecord(att)
	require.NotNil(t, rec.CheckIn)
	require.NotNil(t, rec.CheckOut)
	assert.Equal(t, day.Add(9*time.Hour), *rec.CheckIn)
	assert.Equal(t, day.Add(17*time.Hour), *rec.CheckOut)
	assert.Equal(t, 8.0, rec.HoursWorked)
	assert.False(t, rec.IsAbsent)
	assert.Nil(t, rec.AbsentReason)
}

func TestToRecordAbsent(t *testing.T) {
	att := NewForDate("emp-1", time.Now())
	att.ID = "att-2"
	require.NoError(t, att.MarkAbsent("fever", "sick"))

	rec := ToRecord(att)
	assert.True(t, rec.IsAbsent)
	assert.Equal(t, "fever", *rec.AbsentReason)
	assert.Equal(t, "sick", *rec.LeaveType)
	assert.Nil(t, rec.CheckIn)
	assert.Zero(t, rec.HoursWorked)
}
