package engine

import "github.com/theirongolddev/runway/internal/model"

// Summary holds the derived statistics of one projection.
type Summary struct {
	TotalIncome   model.Money
	TotalExpenses model.Money
	LowestPoint   model.DailySnapshot
	DangerDate    *model.DailySnapshot
}

// Summarize computes totals from the scheduled events and the lowest point
// and first negative day from the snapshots, in a single pass over each.
// Ties for the minimum balance resolve to the earliest date.
func Summarize(snapshots []model.DailySnapshot, events map[string][]Event) Summary {
	var s Summary

	for _, dayEvents := range events {
		for _, ev := range dayEvents {
			if ev.Amount >= 0 {
				s.TotalIncome += ev.Amount
			} else {
				s.TotalExpenses += -ev.Amount
			}
		}
	}

	if len(snapshots) == 0 {
		return s
	}

	s.LowestPoint = snapshots[0]
	for i, snap := range snapshots {
		if snap.Balance < s.LowestPoint.Balance {
			s.LowestPoint = snap
		}
		if s.DangerDate == nil && snap.Balance < 0 {
			s.DangerDate = &snapshots[i]
		}
	}

	return s
}
