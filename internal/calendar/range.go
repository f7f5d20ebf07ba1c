package calendar

import "fmt"

// Range is a closed date range: both Start and End are inside it.
type Range struct {
	Start Date
	End   Date
}

// NewRange builds a range and panics when end precedes start — an inverted
// range is a broken caller contract, not a runtime condition.
func NewRange(start, end Date) Range {
	if end.Before(start) {
		panic(fmt.Sprintf("calendar: inverted range %s..%s", start.Key(), end.Key()))
	}
	return Range{Start: start, End: end}
}

// HorizonRange is the projection window [today, today+months] used by every
// component: inclusive on both ends, month-end clamped.
func HorizonRange(today Date, months int) Range {
	return NewRange(today, today.AddMonths(months))
}

// Contains reports whether d falls inside the range.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns the number of calendar days in the range, counting both ends.
func (r Range) Days() int {
	return DaysBetween(r.Start, r.End) + 1
}
