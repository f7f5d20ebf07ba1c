// Package plan reads and writes a whole budget plan as a YAML document, so
// plans can be shared, versioned, or edited by hand and re-imported.
package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/runway/internal/calendar"
	"github.com/theirongolddev/runway/internal/model"
)

// File is the on-disk YAML shape. Amounts are dollars, dates YYYY-MM-DD.
type File struct {
	InitialBalance  float64        `yaml:"initial_balance"`
	HorizonMonths   int            `yaml:"horizon_months"`
	Incomes         []incomeYAML   `yaml:"incomes,omitempty"`
	Expenses        []expenseYAML  `yaml:"expenses,omitempty"`
	OneTimeIncomes  []oneTimeYAML  `yaml:"one_time_incomes,omitempty"`
	OneTimeExpenses []oneTimeYAML  `yaml:"one_time_expenses,omitempty"`
}

type incomeYAML struct {
	Label        string  `yaml:"label"`
	HoursPerWeek float64 `yaml:"hours_per_week"`
	HourlyRate   float64 `yaml:"hourly_rate"`
	Frequency    string  `yaml:"frequency"`
	StartDate    string  `yaml:"start_date"`
	EndDate      string  `yaml:"end_date,omitempty"`
	Disabled     bool    `yaml:"disabled,omitempty"`
}

type expenseYAML struct {
	Label      string  `yaml:"label"`
	Amount     float64 `yaml:"amount"`
	DayOfMonth int     `yaml:"day_of_month"`
	Disabled   bool    `yaml:"disabled,omitempty"`
}

type oneTimeYAML struct {
	Label  string  `yaml:"label"`
	Amount float64 `yaml:"amount"`
	Date   string  `yaml:"date"`
}

// Load parses a plan file into a projection input. Today is left zero; the
// caller supplies the anchor date. Invalid dates and frequencies are caller
// errors and reported, never repaired.
func Load(path string) (model.ProjectionInput, error) {
	var in model.ProjectionInput

	data, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("reading plan: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return in, fmt.Errorf("parsing plan: %w", err)
	}
	return f.ToInput()
}

// ToInput converts the YAML shape to domain types.
func (f File) ToInput() (model.ProjectionInput, error) {
	in := model.ProjectionInput{
		InitialBalance: model.MoneyFromFloat(f.InitialBalance),
		HorizonMonths:  f.HorizonMonths,
	}
	if f.HorizonMonths != 0 && !model.ValidHorizon(f.HorizonMonths) {
		return in, fmt.Errorf("horizon_months %d not one of %v", f.HorizonMonths, model.HorizonChoices)
	}

	for i, y := range f.Incomes {
		freq, err := calendar.ParseFrequency(y.Frequency)
		if err != nil {
			return in, fmt.Errorf("income %d (%s): %w", i+1, y.Label, err)
		}
		start, err := calendar.ParseDate(y.StartDate)
		if err != nil {
			return in, fmt.Errorf("income %d (%s): %w", i+1, y.Label, err)
		}
		var end calendar.Date
		if y.EndDate != "" {
			if end, err = calendar.ParseDate(y.EndDate); err != nil {
				return in, fmt.Errorf("income %d (%s): %w", i+1, y.Label, err)
			}
			if end.Before(start) {
				return in, fmt.Errorf("income %d (%s): end_date precedes start_date", i+1, y.Label)
			}
		}
		in.Incomes = append(in.Incomes, model.RecurringIncome{
			Label:        y.Label,
			HoursPerWeek: model.Sanitize(y.HoursPerWeek),
			HourlyRate:   model.Sanitize(y.HourlyRate),
			Frequency:    freq,
			Start:        start,
			End:          end,
			Enabled:      !y.Disabled,
		})
	}

	for i, y := range f.Expenses {
		if y.DayOfMonth < 1 || y.DayOfMonth > 28 {
			return in, fmt.Errorf("expense %d (%s): day_of_month %d outside 1..28", i+1, y.Label, y.DayOfMonth)
		}
		in.Expenses = append(in.Expenses, model.RecurringExpense{
			Label:      y.Label,
			Amount:     model.MoneyFromFloat(y.Amount),
			DayOfMonth: y.DayOfMonth,
			Enabled:    !y.Disabled,
		})
	}

	parseOneTimes := func(items []oneTimeYAML, kind string) ([]model.OneTimeEvent, error) {
		var out []model.OneTimeEvent
		for i, y := range items {
			d, err := calendar.ParseDate(y.Date)
			if err != nil {
				return nil, fmt.Errorf("one-time %s %d (%s): %w", kind, i+1, y.Label, err)
			}
			out = append(out, model.OneTimeEvent{
				Label:  y.Label,
				Amount: model.MoneyFromFloat(y.Amount),
				Date:   d,
			})
		}
		return out, nil
	}

	var err error
	if in.OneTimeIncomes, err = parseOneTimes(f.OneTimeIncomes, "income"); err != nil {
		return in, err
	}
	if in.OneTimeExpenses, err = parseOneTimes(f.OneTimeExpenses, "expense"); err != nil {
		return in, err
	}

	return in, nil
}

// FromInput converts domain types to the YAML shape.
func FromInput(in model.ProjectionInput) File {
	f := File{
		InitialBalance: in.InitialBalance.Float64(),
		HorizonMonths:  in.HorizonMonths,
	}
	for _, inc := range in.Incomes {
		y := incomeYAML{
			Label:        inc.Label,
			HoursPerWeek: inc.HoursPerWeek,
			HourlyRate:   inc.HourlyRate,
			Frequency:    string(inc.Frequency),
			StartDate:    inc.Start.Key(),
			Disabled:     !inc.Enabled,
		}
		if !inc.End.IsZero() {
			y.EndDate = inc.End.Key()
		}
		f.Incomes = append(f.Incomes, y)
	}
	for _, exp := range in.Expenses {
		f.Expenses = append(f.Expenses, expenseYAML{
			Label:      exp.Label,
			Amount:     exp.Amount.Float64(),
			DayOfMonth: exp.DayOfMonth,
			Disabled:   !exp.Enabled,
		})
	}
	for _, ev := range in.OneTimeIncomes {
		f.OneTimeIncomes = append(f.OneTimeIncomes, oneTimeYAML{
			Label: ev.Label, Amount: ev.Amount.Float64(), Date: ev.Date.Key(),
		})
	}
	for _, ev := range in.OneTimeExpenses {
		f.OneTimeExpenses = append(f.OneTimeExpenses, oneTimeYAML{
			Label: ev.Label, Amount: ev.Amount.Float64(), Date: ev.Date.Key(),
		})
	}
	return f
}

// Save writes a plan file.
func Save(path string, in model.ProjectionInput) error {
	data, err := yaml.Marshal(FromInput(in))
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing plan: %w", err)
	}
	return nil
}
