package model

import (
	"github.com/theirongolddev/runway/internal/calendar"
)

// RecurringIncome is an hourly-wage income paid on a fixed cadence.
// End is the zero Date for open-ended income. Disabled entries are kept in
// the store but excluded from scheduling.
type RecurringIncome struct {
	ID           string
	Label        string
	HoursPerWeek float64
	HourlyRate   float64
	Frequency    calendar.Frequency
	Start        calendar.Date
	End          calendar.Date
	Enabled      bool
}

// PerOccurrence returns the paycheck amount: hours x rate x the cadence
// multiplier (1 weekly, 2 biweekly, 52/12 for weekly-equivalent monthly pay).
func (r RecurringIncome) PerOccurrence() Money {
	mult := 1.0
	switch r.Frequency {
	case calendar.Biweekly:
		mult = 2
	case calendar.Monthly:
		mult = 52.0 / 12
	}
	return MoneyFromFloat(Sanitize(r.HoursPerWeek) * Sanitize(r.HourlyRate) * mult)
}

// Paychecks returns how many paychecks fall between Start and End inclusive,
// or -1 for open-ended income.
func (r RecurringIncome) Paychecks() int {
	return r.Frequency.CountOccurrences(r.Start, r.End)
}

// RecurringExpense is a fixed amount due every month on DayOfMonth.
// DayOfMonth is restricted to 1..28 so every month has that day.
type RecurringExpense struct {
	ID         string
	Label      string
	Amount     Money
	DayOfMonth int
	Enabled    bool
}

// OneTimeKind distinguishes one-time incomes from one-time expenses.
type OneTimeKind string

const (
	OneTimeIncome  OneTimeKind = "income"
	OneTimeExpense OneTimeKind = "expense"
)

// OneTimeEvent is a single dated amount, positive or negative depending on
// which input list it arrives in.
type OneTimeEvent struct {
	ID     string
	Label  string
	Amount Money
	Date   calendar.Date
}
