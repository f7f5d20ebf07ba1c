package engine

import (
	"github.com/theirongolddev/runway/internal/calendar"
	"github.com/theirongolddev/runway/internal/model"
)

// OutOfRangeEntry flags a user entry whose dates fall outside the projection
// window. This is a display concern: the scheduler already excludes such
// dates silently, this pass just tells the UI which entries to highlight.
type OutOfRangeEntry struct {
	ID    string
	Label string
	Date  calendar.Date
}

// DetectOutOfRange scans the raw entries against the horizon and returns the
// ones that will not contribute to the projection where the user might
// expect them to. It never touches the snapshot pipeline.
func DetectOutOfRange(in model.ProjectionInput) []OutOfRangeEntry {
	rng := in.Range()
	var out []OutOfRangeEntry

	for _, inc := range in.Incomes {
		if inc.Start.After(rng.End) {
			out = append(out, OutOfRangeEntry{ID: inc.ID, Label: inc.Label, Date: inc.Start})
			continue
		}
		if !inc.End.IsZero() && inc.End.Before(rng.Start) {
			out = append(out, OutOfRangeEntry{ID: inc.ID, Label: inc.Label, Date: inc.End})
		}
	}
	for _, ot := range in.OneTimeIncomes {
		if !rng.Contains(ot.Date) {
			out = append(out, OutOfRangeEntry{ID: ot.ID, Label: ot.Label, Date: ot.Date})
		}
	}
	for _, ot := range in.OneTimeExpenses {
		if !rng.Contains(ot.Date) {
			out = append(out, OutOfRangeEntry{ID: ot.ID, Label: ot.Label, Date: ot.Date})
		}
	}

	return out
}
