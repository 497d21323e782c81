package dateutil

import (
	"testing"
	"time"
)

func TestWeekStart(t *testing.T) {
	cases := []struct {
		name   string
		anchor time.Time
		want   string
	}{
		{"sunday maps to itself", time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), "2025-03-02"},
		{"monday maps back one day", time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), "2025-03-02"},
		{"saturday maps back six days", time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), "2025-03-02"},
		{"time of day is ignored", time.Date(2025, 3, 5, 23, 59, 59, 0, time.UTC), "2025-03-02"},
		{"month boundary", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "2025-02-23"},
	}
	for _, c := range cases {
		got := DateKey(WeekStart(c.anchor))
		if got != c.want {
			t.Errorf("%s: WeekStart(%v) = %s, want %s", c.name, c.anchor, got, c.want)
		}
	}
}

func TestDateForDay(t *testing.T) {
	weekStart := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC) // a Sunday

	cases := []struct {
		day  string
		want string
	}{
		{"sunday", "2025-03-02"},
		{"monday", "2025-03-03"},
		{"wednesday", "2025-03-05"},
		{"saturday", "2025-03-08"},
	}
	for _, c := range cases {
		got, err := DateForDay(weekStart, c.day)
		if err != nil {
			t.Fatalf("DateForDay(%q): %v", c.day, err)
		}
		if DateKey(got) != c.want {
			t.Errorf("DateForDay(%q) = %s, want %s", c.day, DateKey(got), c.want)
		}
	}

	// Mid-week anchors normalize before resolving, so a Wednesday anchor
	// addresses the same concrete dates as its Sunday.
	midWeek := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	got, err := DateForDay(midWeek, "monday")
	if err != nil {
		t.Fatal(err)
	}
	if DateKey(got) != "2025-03-03" {
		t.Errorf("DateForDay(mid-week, monday) = %s, want 2025-03-03", DateKey(got))
	}

	if _, err := DateForDay(weekStart, "funday"); err == nil {
		t.Error("expected error for invalid day name")
	}
}

func TestDateKeyUsesUTCDayBoundary(t *testing.T) {
	// 23:30 UTC-5 is 04:30 UTC the next day.
	loc := time.FixedZone("UTC-5", -5*3600)
	local := time.Date(2025, 6, 10, 23, 30, 0, 0, loc)

	if got := DateKey(local); got != "2025-06-11" {
		t.Errorf("DateKey = %s, want 2025-06-11", got)
	}
}

func TestParseDateKey(t *testing.T) {
	got, err := ParseDateKey("2025-03-02")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDateKey = %v", got)
	}

	for _, bad := range []string{"03-02-2025", "2025/03/02", "", "2025-13-40"} {
		if _, err := ParseDateKey(bad); err == nil {
			t.Errorf("ParseDateKey(%q) succeeded, want error", bad)
		}
	}
}

func TestRoundHours(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want float64
	}{
		{90 * time.Minute, 1.5},
		{8 * time.Hour, 8},
		{7*time.Hour + 59*time.Minute, 7.98},
		{1 * time.Minute, 0.02},
		{0, 0},
	}
	for _, c := range cases {
		if got := RoundHours(c.d); got != c.want {
			t.Errorf("RoundHours(%v) = %v, want %v", c.d, got, c.want)
		}
	}
}

func TestDayName(t *testing.T) {
	if got := DayName(time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)); got != "sunday" {
		t.Errorf("DayName = %s, want sunday", got)
	}
	if got := DayName(time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)); got != "saturday" {
		t.Errorf("DayName = %s, want saturday", got)
	}
}
