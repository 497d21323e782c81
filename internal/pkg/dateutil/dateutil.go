package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// DateKeyLayout is the canonical key format for schedule and attendance maps.
const DateKeyLayout = "2006-01-02"

// DayNames lists week days in projection order, Sunday first.
var DayNames = []string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

var dayIndex = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}

// UTCDay truncates t to midnight UTC.
func UTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey formats t as a YYYY-MM-DD key using UTC day boundaries.
func DateKey(t time.Time) string {
	return UTCDay(t).Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key into a midnight-UTC time.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", key)
	}
	return t, nil
}

// WeekStart normalizes anchor to the Sunday that starts its week, midnight UTC.
// Any day of the week maps to the same Sunday, so edits addressed by day name
// land on one unambiguous set of concrete dates.
func WeekStart(anchor time.Time) time.Time {
	day := UTCDay(anchor)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// DateForDay resolves a lowercase day name to its concrete date within the
// week starting at weekStart.
func DateForDay(weekStart time.Time, dayName string) (time.Time, error) {
	idx, ok := dayIndex[strings.ToLower(dayName)]
	if !ok {
		return time.Time{}, fmt.Errorf("invalid day name %q", dayName)
	}
	return WeekStart(weekStart).AddDate(0, 0, idx), nil
}

// DayName returns the lowercase weekday name of t in UTC.
func DayName(t time.Time) string {
	return DayNames[int(UTCDay(t).Weekday())]
}

// IsValidDayName reports whether name is a lowercase weekday name.
func IsValidDayName(name string) bool {
	_, ok := dayIndex[strings.ToLower(name)]
	return ok
}

// RoundHours converts a duration to fractional hours rounded to two decimals.
func RoundHours(d time.Duration) float64 {
	hours := d.Seconds() / 3600
	return float64(int64(hours*100+0.5)) / 100
}
