package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func workingDay(start, end string) DaySchedule {
	return DaySchedule{
		IsWorking: true,
		StartTime: strPtr(start),
		EndTime:   strPtr(end),
	}
}

func TestMergeWeekWritesConcreteDates(t *testing.T) {
	anchor := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC) // Sunday

	merged, written, err := MergeWeek(WorkSchedule{}, map[string]DaySchedule{
		"monday": workingDay("09:00", "17:00"),
	}, anchor)
	require.NoError(t, err)

	require.Equal(t, []string{"2025-03-03"}, written)
	day, ok := merged["2025-03-03"]
	require.True(t, ok)
	assert.True(t, day.IsWorking)
	assert.Equal(t, "09:00", *day.StartTime)
	assert.Equal(t, "17:00", *day.EndTime)
}

func TestMergeWeekDoesNotTouchOtherWeeks(t *testing.T) {
	week1 := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	week2 := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	merged, _, err := MergeWeek(WorkSchedule{}, map[string]DaySchedule{
		"monday": workingDay("09:00", "17:00"),
	}, week1)
	require.NoError(t, err)

	merged, _, err = MergeWeek(merged, map[string]DaySchedule{
		"monday": workingDay("10:00", "18:00"),
	}, week2)
	require.NoError(t, err)

	// Both mondays exist independently.
	assert.Equal(t, "09:00", *merged["2025-03-03"].StartTime)
	assert.Equal(t, "10:00", *merged["2025-03-10"].StartTime)

	// Re-reading week 1 still shows the original value.
	view := ProjectWeek(merged, nil, week1)
	assert.Equal(t, "09:00", *view.Monday.StartTime)
}

func TestMergeWeekNormalizesMidWeekAnchor(t *testing.T) {
	sunday := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	wednesday := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	bySunday, _, err := MergeWeek(WorkSchedule{}, map[string]DaySchedule{
		"friday": workingDay("08:00", "14:00"),
	}, sunday)
	require.NoError(t, err)

	byWednesday, _, err := MergeWeek(WorkSchedule{}, map[string]DaySchedule{
		"friday": workingDay("08:00", "14:00"),
	}, wednesday)
	require.NoError(t, err)

	assert.Equal(t, bySunday, byWednesday)
}

func TestMergeWeekAppliesDefaults(t *testing.T) {
	anchor := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	merged, _, err := MergeWeek(WorkSchedule{}, map[string]DaySchedule{
		"tuesday": {},
	}, anchor)
	require.NoError(t, err)

	day := merged["2025-03-04"]
	assert.False(t, day.IsWorking)
	assert.Nil(t, day.StartTime)
	assert.Nil(t, day.EndTime)
	assert.Nil(t, day.Shifts)
	assert.NotNil(t, day.ShiftsData)
	assert.Empty(t, day.ShiftsData)
	assert.Zero(t, day.ShiftCount)
}

func TestMergeWeekRejectsInvalidDayName(t *testing.T) {
	anchor := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	_, _, err := MergeWeek(WorkSchedule{}, map[string]DaySchedule{
		"2025-03-03": workingDay("09:00", "17:00"),
	}, anchor)
	assert.ErrorIs(t, err, ErrInvalidDayName)
}

func TestProjectWeekRoundTrip(t *testing.T) {
	anchor := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	edits := map[string]DaySchedule{
		"sunday":    workingDay("10:00", "16:00"),
		"monday":    workingDay("09:00", "17:00"),
		"tuesday":   workingDay("09:00", "17:00"),
		"wednesday": {},
		"thursday":  workingDay("12:00", "20:00"),
		"friday":    workingDay("09:00", "15:00"),
		"saturday":  {},
	}

	merged, written, err := MergeWeek(WorkSchedule{}, edits, anchor)
	require.NoError(t, err)
	require.Len(t, written, 7)

	view := ProjectWeek(merged, nil, anchor)
	for day, want := range edits {
		got := view.Day(day)
		assert.Equal(t, want.IsWorking, got.IsWorking, day)
		if want.StartTime != nil {
			assert.Equal(t, *want.StartTime, *got.StartTime, day)
		} else {
			assert.Nil(t, got.StartTime, day)
		}
	}
}

func TestProjectWeekUntouchedWeekIsAllDefaults(t *testing.T) {
	anchor := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	merged, _, err := MergeWeek(WorkSchedule{}, map[string]DaySchedule{
		"monday": workingDay("09:00", "17:00"),
	}, anchor)
	require.NoError(t, err)

	nextWeek := ProjectWeek(merged, nil, anchor.AddDate(0, 0, 7))
	for _, day := range []DaySchedule{
		nextWeek.Sunday, nextWeek.Monday, nextWeek.Tuesday, nextWeek.Wednesday,
		nextWeek.Thursday, nextWeek.Friday, nextWeek.Saturday,
	} {
		assert.False(t, day.IsWorking)
		assert.Nil(t, day.StartTime)
		assert.Nil(t, day.EndTime)
		assert.Nil(t, day.Shifts)
	}
}

func TestProjectWeekLegacyFallback(t *testing.T) {
	anchor := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	legacy := WeeklyTemplate{
		"monday": workingDay("08:00", "16:00"),
		"friday": workingDay("08:00", "12:00"),
	}
	stored := WorkSchedule{
		"2025-03-03": workingDay("10:00", "18:00"), // overrides legacy monday
	}

	view := ProjectWeek(stored, legacy, anchor)

	assert.Equal(t, "10:00", *view.Monday.StartTime)
	assert.Equal(t, "08:00", *view.Friday.StartTime)
	assert.False(t, view.Tuesday.IsWorking)
}

func TestProjectWeekPartialDayPreserved(t *testing.T) {
	anchor := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	shifts := "09:00 - 13:00, 14:00 - 18:00"
	stored := WorkSchedule{
		"2025-03-06": {
			IsWorking: true,
			StartTime: strPtr("09:00"),
			EndTime:   strPtr("18:00"),
			Shifts:    &shifts,
			ShiftsData: []Shift{
				{StartTime: "09:00", EndTime: "13:00"},
				{StartTime: "14:00", EndTime: "18:00"},
			},
			ShiftCount: 2,
		},
	}

	view := ProjectWeek(stored, nil, anchor)
	require.NotNil(t, view.Thursday.Shifts)
	assert.Equal(t, shifts, *view.Thursday.Shifts)
	assert.Len(t, view.Thursday.ShiftsData, 2)
	assert.Equal(t, 2, view.Thursday.ShiftCount)
}
