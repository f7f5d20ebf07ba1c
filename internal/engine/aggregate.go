package engine

import (
	"github.com/theirongolddev/runway/internal/calendar"
	"github.com/theirongolddev/runway/internal/model"
)

// Aggregate walks every calendar day in rng in order, applying that day's
// scheduled events to a running balance. It emits exactly rng.Days()
// snapshots — one per day, no gaps, balance measured after the day's events.
func Aggregate(initial model.Money, events map[string][]Event, rng calendar.Range) []model.DailySnapshot {
	snapshots := make([]model.DailySnapshot, 0, rng.Days())

	balance := initial
	for d := rng.Start; !d.After(rng.End); d = d.AddDays(1) {
		var labels []string
		for _, ev := range events[d.Key()] {
			balance += ev.Amount
			labels = append(labels, ev.Label)
		}
		snapshots = append(snapshots, model.DailySnapshot{
			Date:    d,
			Balance: balance,
			Events:  labels,
		})
	}

	return snapshots
}
