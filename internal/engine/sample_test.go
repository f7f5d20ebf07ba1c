package engine

import (
	"testing"

	"github.com/theirongolddev/runway/internal/calendar"
	"github.com/theirongolddev/runway/internal/model"
)

func makeSnapshots(t *testing.T, n int, eventDays map[int]string) []model.DailySnapshot {
	t.Helper()
	start := date(t, "2024-01-01")
	snaps := make([]model.DailySnapshot, n)
	for i := range snaps {
		snaps[i] = model.DailySnapshot{Date: start.AddDays(i), Balance: model.Money(i)}
		if label, ok := eventDays[i]; ok {
			snaps[i].Events = []string{label}
		}
	}
	return snaps
}

func TestSampleIdentityWhenSmall(t *testing.T) {
	snaps := makeSnapshots(t, 90, nil)
	out := Sample(snaps, 180)
	if len(out) != 90 {
		t.Fatalf("small series resampled to %d points", len(out))
	}
	for i := range out {
		if !out[i].Date.Equal(snaps[i].Date) {
			t.Fatalf("identity sampling reordered index %d", i)
		}
	}
}

func TestSampleKeepsEndpointsAndEventDays(t *testing.T) {
	eventDays := map[int]string{37: "Rent", 401: "Paycheck", 598: "Gift"}
	snaps := makeSnapshots(t, 731, eventDays) // 24-month horizon size
	out := Sample(snaps, 180)

	if len(out) > len(snaps) {
		t.Fatal("sampling grew the series")
	}
	if !out[0].Date.Equal(snaps[0].Date) {
		t.Fatal("first snapshot dropped")
	}
	if !out[len(out)-1].Date.Equal(snaps[730].Date) {
		t.Fatal("last snapshot dropped")
	}

	kept := make(map[string]bool)
	for _, s := range out {
		kept[s.Date.Key()] = true
	}
	for i := range eventDays {
		if !kept[snaps[i].Date.Key()] {
			t.Fatalf("event day index %d (%s) dropped by sampling", i, snaps[i].Date.Key())
		}
	}
}

func TestSampleMonotonicNoDuplicates(t *testing.T) {
	snaps := makeSnapshots(t, 500, map[int]string{0: "A", 4: "B", 499: "C"})
	out := Sample(snaps, 100)
	for i := 1; i < len(out); i++ {
		if calendar.DaysBetween(out[i-1].Date, out[i].Date) <= 0 {
			t.Fatalf("output not strictly ascending at %d: %s then %s",
				i, out[i-1].Date.Key(), out[i].Date.Key())
		}
	}
}

func TestSampleIdempotentOnSampledOutput(t *testing.T) {
	snaps := makeSnapshots(t, 731, map[int]string{100: "X"})
	once := Sample(snaps, 180)
	twice := Sample(once, 180)
	// A second pass over an already-bounded series must be a no-op as long
	// as the first pass landed within the budget.
	if len(once) <= 180 && len(twice) != len(once) {
		t.Fatalf("resampling changed size: %d -> %d", len(once), len(twice))
	}
}

func TestSampleEventDensityMayExceedBudget(t *testing.T) {
	eventDays := make(map[int]string, 300)
	for i := 0; i < 300; i++ {
		eventDays[i*2] = "Bill"
	}
	snaps := makeSnapshots(t, 731, eventDays)
	out := Sample(snaps, 180)
	if len(out) <= 180 {
		t.Fatalf("dense events should push output past the budget, got %d", len(out))
	}
}
