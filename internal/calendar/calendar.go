// Package calendar provides pure date arithmetic for projection scheduling:
// day-keyed dates, month-clamped stepping, and pay-date snapping.
package calendar

import (
	"fmt"
	"time"
)

// Date is a calendar day with no time component. The zero value is "no date"
// (used for open-ended recurrence bounds). Keys sort lexicographically in
// chronological order.
type Date struct {
	t time.Time
}

// NewDate builds a Date from year, month, and day. Out-of-range values are
// normalized the same way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates a timestamp to its calendar day.
func FromTime(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// MustParseDate is ParseDate for compile-time constants; panics on bad input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Key returns the canonical YYYY-MM-DD form.
func (d Date) Key() string {
	return d.t.Format("2006-01-02")
}

func (d Date) IsZero() bool        { return d.t.IsZero() }
func (d Date) Year() int           { return d.t.Year() }
func (d Date) Month() time.Month   { return d.t.Month() }
func (d Date) Day() int            { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// Time returns the date as a UTC midnight timestamp.
func (d Date) Time() time.Time { return d.t }

// AddDays shifts the date by n days (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{d.t.AddDate(0, 0, n)}
}

// AddMonths shifts by whole calendar months, clamping the day to the target
// month's length (Jan 31 + 1 month = Feb 28/29, never Mar 2).
func (d Date) AddMonths(n int) Date {
	y, m, day := d.t.Year(), int(d.t.Month())+n, d.t.Day()
	first := time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	last := DaysInMonth(first.Year(), first.Month())
	if day > last {
		day = last
	}
	return NewDate(first.Year(), first.Month(), day)
}

// DaysBetween returns b - a in whole days; negative when b is before a.
func DaysBetween(a, b Date) int {
	return int(b.t.Sub(a.t).Hours() / 24)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampToMonth returns the date in d's month with day = min(targetDay,
// last day of that month).
func ClampToMonth(d Date, targetDay int) Date {
	last := DaysInMonth(d.Year(), d.Month())
	if targetDay > last {
		targetDay = last
	}
	return NewDate(d.Year(), d.Month(), targetDay)
}

// MonthsBetween counts whole calendar months from a's month to b's month,
// ignoring the day component. Negative when b's month precedes a's.
func MonthsBetween(a, b Date) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
