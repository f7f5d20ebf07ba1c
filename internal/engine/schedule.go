// Package engine implements the projection core: rule expansion into dated
// events, the daily balance walk, summary statistics, and chart sampling.
// Everything here is a pure function of its input — no clock, no I/O, no
// state carried between calls.
package engine

import (
	"fmt"

	"github.com/theirongolddev/runway/internal/calendar"
	"github.com/theirongolddev/runway/internal/model"
)

// Event is one scheduled money movement on a specific day. Amount is signed:
// income positive, expense negative.
type Event struct {
	Label  string
	Amount model.Money
}

// Schedule expands every enabled rule into concrete dated events within rng,
// keyed by date key. Events on the same day keep a stable order: recurring
// incomes, then recurring expenses, then one-time items, each in input order.
// The aggregator reports this order verbatim in snapshot labels.
func Schedule(in model.ProjectionInput, rng calendar.Range) map[string][]Event {
	events := make(map[string][]Event)
	add := func(d calendar.Date, label string, amount model.Money) {
		key := d.Key()
		events[key] = append(events[key], Event{Label: label, Amount: amount})
	}

	for _, inc := range in.Incomes {
		if !inc.Enabled {
			continue
		}
		// Zero-amount paychecks are scheduled, not skipped: the label stays
		// visible in the timeline even when hours or rate are zero.
		amount := inc.PerOccurrence()

		start := inc.Start
		if start.Before(rng.Start) {
			start = rng.Start
		}
		end := rng.End
		if !inc.End.IsZero() && inc.End.Before(end) {
			end = inc.End
		}
		for d := start; !d.After(end); d = inc.Frequency.Next(inc.Start, d) {
			add(d, inc.Label, amount)
		}
	}

	for _, exp := range in.Expenses {
		if !exp.Enabled {
			continue
		}
		if exp.DayOfMonth < 1 || exp.DayOfMonth > 28 {
			panic(fmt.Sprintf("engine: expense %q day-of-month %d outside 1..28", exp.Label, exp.DayOfMonth))
		}
		// One event per month touching the range, kept only when the due
		// date itself lands inside the range.
		month := calendar.NewDate(rng.Start.Year(), rng.Start.Month(), 1)
		for !month.After(rng.End) {
			due := calendar.ClampToMonth(month, exp.DayOfMonth)
			if rng.Contains(due) {
				add(due, exp.Label, -exp.Amount)
			}
			month = month.AddMonths(1)
		}
	}

	for _, ot := range in.OneTimeIncomes {
		if rng.Contains(ot.Date) {
			add(ot.Date, ot.Label, ot.Amount)
		}
	}
	for _, ot := range in.OneTimeExpenses {
		if rng.Contains(ot.Date) {
			add(ot.Date, ot.Label, -ot.Amount)
		}
	}

	return events
}
