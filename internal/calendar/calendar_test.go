package calendar

import (
	"testing"
	"time"
)

func date(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2024-01-01", "2024-01-01", 0},
		{"2024-01-01", "2024-01-08", 7},
		{"2024-01-08", "2024-01-01", -7},
		{"2024-02-28", "2024-03-01", 2},  // leap year
		{"2023-02-28", "2023-03-01", 1},  // non-leap
		{"2024-01-01", "2025-01-01", 366},
	}
	for _, c := range cases {
		if got := DaysBetween(date(t, c.a), date(t, c.b)); got != c.want {
			t.Fatalf("DaysBetween(%s, %s) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestKeyOrderMatchesChronology(t *testing.T) {
	a := date(t, "2024-09-30")
	b := date(t, "2024-10-01")
	if a.Key() >= b.Key() {
		t.Fatalf("key order broken: %q >= %q", a.Key(), b.Key())
	}
}

func TestAddMonthsClampsShortMonths(t *testing.T) {
	jan31 := date(t, "2024-01-31")
	if got := jan31.AddMonths(1).Key(); got != "2024-02-29" {
		t.Fatalf("Jan 31 + 1 month = %s, want 2024-02-29", got)
	}
	jan31 = date(t, "2023-01-31")
	if got := jan31.AddMonths(1).Key(); got != "2023-02-28" {
		t.Fatalf("Jan 31 + 1 month (non-leap) = %s, want 2023-02-28", got)
	}
	if got := date(t, "2024-10-31").AddMonths(2).Key(); got != "2024-12-31" {
		t.Fatalf("Oct 31 + 2 months = %s, want 2024-12-31", got)
	}
	if got := date(t, "2024-11-30").AddMonths(14).Key(); got != "2026-01-30" {
		t.Fatalf("Nov 30 + 14 months = %s, want 2026-01-30", got)
	}
}

func TestClampToMonth(t *testing.T) {
	if got := ClampToMonth(date(t, "2024-02-10"), 31).Key(); got != "2024-02-29" {
		t.Fatalf("clamp day 31 into leap Feb = %s, want 2024-02-29", got)
	}
	if got := ClampToMonth(date(t, "2023-02-10"), 31).Key(); got != "2023-02-28" {
		t.Fatalf("clamp day 31 into Feb = %s, want 2023-02-28", got)
	}
	if got := ClampToMonth(date(t, "2024-04-20"), 15).Key(); got != "2024-04-15" {
		t.Fatalf("clamp day 15 into April = %s, want 2024-04-15", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2024, time.February); got != 29 {
		t.Fatalf("Feb 2024 has %d days, want 29", got)
	}
	if got := DaysInMonth(2100, time.February); got != 28 {
		t.Fatalf("Feb 2100 has %d days, want 28 (century non-leap)", got)
	}
	if got := DaysInMonth(2024, time.December); got != 31 {
		t.Fatalf("Dec 2024 has %d days, want 31", got)
	}
}

func TestSnapToOccurrenceWeekly(t *testing.T) {
	start := date(t, "2024-01-01")

	// 19 days out: 19/7 = 2.71 rounds to 3 periods = Jan 22.
	if got := Weekly.SnapToOccurrence(start, date(t, "2024-01-20")).Key(); got != "2024-01-22" {
		t.Fatalf("weekly snap of 2024-01-20 = %s, want 2024-01-22", got)
	}
	// Exact occurrence stays put.
	if got := Weekly.SnapToOccurrence(start, date(t, "2024-01-15")).Key(); got != "2024-01-15" {
		t.Fatalf("weekly snap of exact occurrence = %s, want 2024-01-15", got)
	}
	// Candidate before start snaps to start.
	if got := Weekly.SnapToOccurrence(start, date(t, "2023-12-25")).Key(); got != "2024-01-01" {
		t.Fatalf("weekly snap before start = %s, want 2024-01-01", got)
	}
}

func TestSnapToOccurrenceBiweekly(t *testing.T) {
	start := date(t, "2024-01-01")
	// 10 days out: 10/14 rounds to 1 period = Jan 15.
	if got := Biweekly.SnapToOccurrence(start, date(t, "2024-01-11")).Key(); got != "2024-01-15" {
		t.Fatalf("biweekly snap of 2024-01-11 = %s, want 2024-01-15", got)
	}
	// 6 days out: 6/14 rounds to 0 periods = start.
	if got := Biweekly.SnapToOccurrence(start, date(t, "2024-01-07")).Key(); got != "2024-01-01" {
		t.Fatalf("biweekly snap of 2024-01-07 = %s, want 2024-01-01", got)
	}
	// Half a period (7/14) rounds away from zero, up to Jan 15.
	if got := Biweekly.SnapToOccurrence(start, date(t, "2024-01-08")).Key(); got != "2024-01-15" {
		t.Fatalf("biweekly snap at half period = %s, want 2024-01-15", got)
	}
}

func TestSnapToOccurrenceMonthly(t *testing.T) {
	start := date(t, "2024-01-31")
	// Day-of-month 31 snapped into leap February clamps to the 29th.
	if got := Monthly.SnapToOccurrence(start, date(t, "2024-02-10")).Key(); got != "2024-02-29" {
		t.Fatalf("monthly snap into Feb = %s, want 2024-02-29", got)
	}
	if got := Monthly.SnapToOccurrence(start, date(t, "2024-04-02")).Key(); got != "2024-04-30" {
		t.Fatalf("monthly snap into April = %s, want 2024-04-30", got)
	}
}

func TestCountOccurrences(t *testing.T) {
	start := date(t, "2024-01-01")

	if got := Weekly.CountOccurrences(start, Date{}); got != -1 {
		t.Fatalf("open-ended count = %d, want -1", got)
	}
	if got := Weekly.CountOccurrences(start, date(t, "2023-12-31")); got != 0 {
		t.Fatalf("end-before-start count = %d, want 0", got)
	}
	if got := Weekly.CountOccurrences(start, date(t, "2024-01-22")); got != 4 {
		t.Fatalf("weekly count to Jan 22 = %d, want 4", got)
	}
	if got := Biweekly.CountOccurrences(start, date(t, "2024-01-29")); got != 3 {
		t.Fatalf("biweekly count to Jan 29 = %d, want 3", got)
	}
	// Partial trailing period floors away.
	if got := Weekly.CountOccurrences(start, date(t, "2024-01-20")); got != 3 {
		t.Fatalf("weekly count to Jan 20 = %d, want 3", got)
	}
	if got := Monthly.CountOccurrences(start, date(t, "2024-06-01")); got != 6 {
		t.Fatalf("monthly count Jan..Jun = %d, want 6", got)
	}
}

func TestFrequencyNext(t *testing.T) {
	start := date(t, "2024-01-31")
	d := Monthly.Next(start, start)
	if d.Key() != "2024-02-29" {
		t.Fatalf("monthly next from Jan 31 = %s, want 2024-02-29", d.Key())
	}
	// Stepping from a clamped date recovers the anchor day in longer months.
	d = Monthly.Next(start, d)
	if d.Key() != "2024-03-31" {
		t.Fatalf("monthly next from Feb 29 = %s, want 2024-03-31", d.Key())
	}
	if got := Weekly.Next(start, start).Key(); got != "2024-02-07" {
		t.Fatalf("weekly next = %s, want 2024-02-07", got)
	}
}

func TestHorizonRange(t *testing.T) {
	r := HorizonRange(date(t, "2024-01-15"), 3)
	if r.Start.Key() != "2024-01-15" || r.End.Key() != "2024-04-15" {
		t.Fatalf("horizon range = %s..%s, want 2024-01-15..2024-04-15", r.Start.Key(), r.End.Key())
	}
	if !r.Contains(date(t, "2024-04-15")) {
		t.Fatal("range should include its end date")
	}
	if r.Contains(date(t, "2024-04-16")) {
		t.Fatal("range should exclude the day after its end")
	}
	if got := r.Days(); got != 92 {
		t.Fatalf("range days = %d, want 92", got)
	}
}

func TestNewRangePanicsOnInvertedRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for inverted range")
		}
	}()
	NewRange(date(t, "2024-02-01"), date(t, "2024-01-01"))
}
