package engine

import "github.com/theirongolddev/runway/internal/model"

// Project runs one full projection: expand rules to events, walk the daily
// timeline, and derive summary statistics. The input is read, never mutated;
// the returned forecast shares nothing with it, so concurrent calls with
// distinct inputs cannot interfere.
func Project(in model.ProjectionInput) model.Forecast {
	rng := in.Range()
	events := Schedule(in, rng)
	snapshots := Aggregate(in.InitialBalance, events, rng)
	s := Summarize(snapshots, events)

	return model.Forecast{
		Snapshots:     snapshots,
		TotalIncome:   s.TotalIncome,
		TotalExpenses: s.TotalExpenses,
		LowestPoint:   s.LowestPoint,
		DangerDate:    s.DangerDate,
	}
}
