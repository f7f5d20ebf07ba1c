package model

import (
	"math"
	"testing"

	"github.com/theirongolddev/runway/internal/calendar"
)

func TestMoneyFromFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want Money
	}{
		{0, 0},
		{12.34, 1234},
		{-12.34, -1234},
		{0.005, 1},   // half rounds away from zero
		{-0.005, -1},
		{19.999, 2000},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}
	for _, c := range cases {
		if got := MoneyFromFloat(c.in); got != c.want {
			t.Fatalf("MoneyFromFloat(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestMoneyString(t *testing.T) {
	if got := Money(-1205).String(); got != "-12.05" {
		t.Fatalf("Money(-1205) = %q, want \"-12.05\"", got)
	}
	if got := Money(50).String(); got != "0.50" {
		t.Fatalf("Money(50) = %q, want \"0.50\"", got)
	}
}

func TestPerOccurrence(t *testing.T) {
	base := RecurringIncome{HoursPerWeek: 20, HourlyRate: 15}

	base.Frequency = calendar.Weekly
	if got := base.PerOccurrence(); got != 30000 {
		t.Fatalf("weekly per-occurrence = %d cents, want 30000", got)
	}

	base.Frequency = calendar.Biweekly
	if got := base.PerOccurrence(); got != 60000 {
		t.Fatalf("biweekly per-occurrence = %d cents, want 60000", got)
	}

	// Monthly pay is the weekly amount times 52/12: 300 * 52/12 = 1300.
	base.Frequency = calendar.Monthly
	if got := base.PerOccurrence(); got != 130000 {
		t.Fatalf("monthly per-occurrence = %d cents, want 130000", got)
	}
}

func TestPerOccurrenceCoercesNaN(t *testing.T) {
	r := RecurringIncome{HoursPerWeek: math.NaN(), HourlyRate: 25, Frequency: calendar.Weekly}
	if got := r.PerOccurrence(); got != 0 {
		t.Fatalf("NaN hours per-occurrence = %d, want 0", got)
	}
}

func TestValidHorizon(t *testing.T) {
	for _, h := range []int{3, 6, 12, 18, 24} {
		if !ValidHorizon(h) {
			t.Fatalf("horizon %d should be valid", h)
		}
	}
	for _, h := range []int{0, 1, 4, 36, -3} {
		if ValidHorizon(h) {
			t.Fatalf("horizon %d should be invalid", h)
		}
	}
}

func TestProjectionInputRangePanicsOnBadHorizon(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unsupported horizon")
		}
	}()
	in := ProjectionInput{Today: calendar.MustParseDate("2024-01-01"), HorizonMonths: 5}
	in.Range()
}
