package engine

import (
	"sort"

	"github.com/theirongolddev/runway/internal/model"
)

// DefaultMaxPoints is the chart sampling target used by the renderers.
const DefaultMaxPoints = 180

// Sample reduces a snapshot series to roughly maxPoints entries for
// charting. Every day carrying at least one event is retained, plus evenly
// spaced filler points and both endpoints, so the output can exceed
// maxPoints on event-dense ranges — event fidelity wins over a hard cap.
// Series already within the budget pass through unchanged.
func Sample(snapshots []model.DailySnapshot, maxPoints int) []model.DailySnapshot {
	if maxPoints <= 0 || len(snapshots) <= maxPoints {
		return snapshots
	}

	step := len(snapshots) / maxPoints
	if step < 2 {
		step = 2
	}

	keep := make(map[int]struct{})
	for i, s := range snapshots {
		if len(s.Events) > 0 {
			keep[i] = struct{}{}
		}
	}
	for i := 0; i < len(snapshots); i += step {
		keep[i] = struct{}{}
	}
	keep[0] = struct{}{}
	keep[len(snapshots)-1] = struct{}{}

	idx := make([]int, 0, len(keep))
	for i := range keep {
		idx = append(idx, i)
	}
	sort.Ints(idx)

	out := make([]model.DailySnapshot, 0, len(idx))
	for _, i := range idx {
		out = append(out, snapshots[i])
	}
	return out
}
