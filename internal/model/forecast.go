package model

import (
	"fmt"

	"github.com/theirongolddev/runway/internal/calendar"
)

// HorizonChoices are the supported projection horizons in months.
var HorizonChoices = []int{3, 6, 12, 18, 24}

// ValidHorizon reports whether months is a supported horizon.
func ValidHorizon(months int) bool {
	for _, h := range HorizonChoices {
		if months == h {
			return true
		}
	}
	return false
}

// ProjectionInput is the immutable snapshot the engine projects from. Today
// is supplied by the caller, never read from the clock, so a projection is a
// deterministic function of its input.
type ProjectionInput struct {
	Today           calendar.Date
	InitialBalance  Money
	HorizonMonths   int
	Incomes         []RecurringIncome
	Expenses        []RecurringExpense
	OneTimeIncomes  []OneTimeEvent
	OneTimeExpenses []OneTimeEvent
}

// Range returns the closed projection window [today, today+horizon].
// Panics on an unsupported horizon: that is a broken caller contract.
func (in ProjectionInput) Range() calendar.Range {
	if !ValidHorizon(in.HorizonMonths) {
		panic(fmt.Sprintf("model: horizon %d months not in %v", in.HorizonMonths, HorizonChoices))
	}
	return calendar.HorizonRange(in.Today, in.HorizonMonths)
}

// DailySnapshot is the balance at the end of one calendar day, after that
// day's events settled, plus the labels of those events in scheduling order.
type DailySnapshot struct {
	Date    calendar.Date
	Balance Money
	Events  []string
}

// Forecast is the full projection output consumed by the renderers.
type Forecast struct {
	Snapshots     []DailySnapshot
	TotalIncome   Money
	TotalExpenses Money
	LowestPoint   DailySnapshot
	// DangerDate is the first day the balance goes negative, nil when the
	// projection stays solvent.
	DangerDate *DailySnapshot
}

// Net is projected income minus projected expenses over the horizon.
func (f Forecast) Net() Money {
	return f.TotalIncome - f.TotalExpenses
}

// FinalBalance is the balance on the last day of the horizon.
func (f Forecast) FinalBalance() Money {
	if len(f.Snapshots) == 0 {
		return 0
	}
	return f.Snapshots[len(f.Snapshots)-1].Balance
}
