package schedule

import (
	"time"

	"github.com/Muhammedsajid10/spaBackend/internal/pkg/dateutil"
)

// Shift is a single working block within a day.
type Shift struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DaySchedule describes one concrete working day. StartTime and EndTime are
// "HH:MM" strings. Shifts is the display form for split days, for example
// "09:00 - 13:00, 14:00 - 18:00", with ShiftsData the structured equivalent.
type DaySchedule struct {
	IsWorking  bool    `json:"isWorking"`
	StartTime  *string `json:"startTime"`
	EndTime    *string `json:"endTime"`
	Shifts     *string `json:"shifts"`
	ShiftsData []Shift `json:"shiftsData,omitempty"`
	ShiftCount int     `json:"shiftCount,omitempty"`
}

// DefaultDay is the schedule for a day with no stored entry.
func DefaultDay() DaySchedule {
	return DaySchedule{IsWorking: false}
}

// WorkSchedule maps YYYY-MM-DD date keys to concrete day schedules.
type WorkSchedule map[string]DaySchedule

// WeeklyTemplate is the legacy day-name keyed schedule kept for employees
// that predate per-date entries. Read-only: writes always land on dates.
type WeeklyTemplate map[string]DaySchedule

// WeeklyView is a full week projection in fixed Sunday-first order.
type WeeklyView struct {
	Sunday    DaySchedule `json:"sunday"`
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
}

// Day returns the view entry for a lowercase day name.
func (v WeeklyView) Day(name string) DaySchedule {
	switch name {
	case "sunday":
		return v.Sunday
	case "monday":
		return v.Monday
	case "tuesday":
		return v.Tuesday
	case "wednesday":
		return v.Wednesday
	case "thursday":
		return v.Thursday
	case "friday":
		return v.Friday
	case "saturday":
		return v.Saturday
	}
	return DefaultDay()
}

func (v *WeeklyView) setDay(name string, d DaySchedule) {
	switch name {
	case "sunday":
		v.Sunday = d
	case "monday":
		v.Monday = d
	case "tuesday":
		v.Tuesday = d
	case "wednesday":
		v.Wednesday = d
	case "thursday":
		v.Thursday = d
	case "friday":
		v.Friday = d
	case "saturday":
		v.Saturday = d
	}
}

// normalizeDay applies storage defaults so partial edits never persist
// half-filled entries.
func normalizeDay(d DaySchedule) DaySchedule {
	out := DaySchedule{
		IsWorking:  d.IsWorking,
		StartTime:  d.StartTime,
		EndTime:    d.EndTime,
		Shifts:     d.Shifts,
		ShiftCount: d.ShiftCount,
	}
	if d.ShiftsData != nil {
		out.ShiftsData = d.ShiftsData
	} else {
		out.ShiftsData = []Shift{}
	}
	return out
}

// MergeWeek applies day-name keyed edits onto a date-keyed schedule. The
// anchor is normalized to the Sunday of its week, so every edit resolves to
// exactly one concrete date and other weeks are never touched. Returns the
// merged schedule and the date keys that were written.
func MergeWeek(current WorkSchedule, edits map[string]DaySchedule, weekAnchor time.Time) (WorkSchedule, []string, error) {
	merged := make(WorkSchedule, len(current)+len(edits))
	for k, v := range current {
		merged[k] = v
	}

	weekStart := dateutil.WeekStart(weekAnchor)

	written := make([]string, 0, len(edits))
	for dayName, day := range edits {
		date, err := dateutil.DateForDay(weekStart, dayName)
		if err != nil {
			return nil, nil, ErrInvalidDayName
		}
		key := dateutil.DateKey(date)
		merged[key] = normalizeDay(day)
		written = append(written, key)
	}

	return merged, written, nil
}

// ProjectWeek builds a seven-day view for the week containing anchor.
// Per day: a stored date entry wins, then the legacy weekly template,
// then the non-working default. All seven days are always present.
func ProjectWeek(stored WorkSchedule, legacy WeeklyTemplate, weekAnchor time.Time) WeeklyView {
	weekStart := dateutil.WeekStart(weekAnchor)

	var view WeeklyView
	for i, dayName := range dateutil.DayNames {
		key := dateutil.DateKey(weekStart.AddDate(0, 0, i))

		if day, ok := stored[key]; ok {
			view.setDay(dayName, day)
			continue
		}
		if day, ok := legacy[dayName]; ok {
			view.setDay(dayName, day)
			continue
		}
		view.setDay(dayName, DefaultDay())
	}
	return view
}
