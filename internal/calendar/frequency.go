package calendar

import "fmt"

// Frequency is a pay recurrence cadence.
type Frequency string

const (
	Weekly   Frequency = "weekly"
	Biweekly Frequency = "biweekly"
	Monthly  Frequency = "monthly"
)

// ParseFrequency validates a frequency string.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case Weekly, Biweekly, Monthly:
		return Frequency(s), nil
	}
	return "", fmt.Errorf("invalid frequency %q (want weekly, biweekly, or monthly)", s)
}

// StepDays returns the fixed period length in days, or 0 for monthly
// (monthly steps by calendar month, not by a fixed day count).
func (f Frequency) StepDays() int {
	switch f {
	case Weekly:
		return 7
	case Biweekly:
		return 14
	}
	return 0
}

// Next returns the occurrence after d for a recurrence anchored at start.
// Monthly preserves start's day-of-month, clamped to short months.
func (f Frequency) Next(start, d Date) Date {
	if step := f.StepDays(); step > 0 {
		return d.AddDays(step)
	}
	return ClampToMonth(d.AddMonths(1), start.Day())
}

// SnapToOccurrence returns the valid occurrence of the recurrence anchored
// at start that is nearest to candidate. Weekly/biweekly round the elapsed
// period count half away from zero; monthly keeps start's day-of-month,
// clamped into short months. A candidate before start snaps to start.
func (f Frequency) SnapToOccurrence(start, candidate Date) Date {
	diff := DaysBetween(start, candidate)
	if diff < 0 {
		return start
	}
	if step := f.StepDays(); step > 0 {
		n := (diff + step/2) / step // round half away from zero; diff >= 0 here
		return start.AddDays(n * step)
	}
	return ClampToMonth(candidate, start.Day())
}

// CountOccurrences returns the number of occurrences between start and end
// inclusive, or -1 when end is the zero Date (open-ended). An end before
// start yields 0.
func (f Frequency) CountOccurrences(start, end Date) int {
	if end.IsZero() {
		return -1
	}
	diff := DaysBetween(start, end)
	if diff < 0 {
		return 0
	}
	if step := f.StepDays(); step > 0 {
		return diff/step + 1
	}
	return MonthsBetween(start, end) + 1
}
