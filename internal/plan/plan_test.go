package plan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/runway/internal/calendar"
	"github.com/theirongolddev/runway/internal/model"
)

const samplePlan = `
initial_balance: 2500.50
horizon_months: 6
incomes:
  - label: Day job
    hours_per_week: 32
    hourly_rate: 21.5
    frequency: biweekly
    start_date: 2024-03-01
    end_date: 2024-09-06
expenses:
  - label: Rent
    amount: 1450
    day_of_month: 1
  - label: Gym
    amount: 40
    day_of_month: 5
    disabled: true
one_time_incomes:
  - label: Tax refund
    amount: 310
    date: 2024-06-17
one_time_expenses:
  - label: Flight
    amount: 620
    date: 2024-08-02
`

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write plan: %v", err)
	}
	return path
}

func TestLoadPlan(t *testing.T) {
	in, err := Load(writePlan(t, samplePlan))
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}

	if in.InitialBalance != 250050 {
		t.Fatalf("balance = %d cents, want 250050", in.InitialBalance)
	}
	if in.HorizonMonths != 6 {
		t.Fatalf("horizon = %d, want 6", in.HorizonMonths)
	}
	if len(in.Incomes) != 1 || in.Incomes[0].Frequency != calendar.Biweekly {
		t.Fatalf("incomes = %+v", in.Incomes)
	}
	if in.Incomes[0].End.Key() != "2024-09-06" {
		t.Fatalf("income end = %s", in.Incomes[0].End.Key())
	}
	if len(in.Expenses) != 2 {
		t.Fatalf("expense count = %d, want 2", len(in.Expenses))
	}
	if in.Expenses[0].Amount != 145000 || !in.Expenses[0].Enabled {
		t.Fatalf("rent = %+v", in.Expenses[0])
	}
	if in.Expenses[1].Enabled {
		t.Fatal("disabled expense imported as enabled")
	}
	if len(in.OneTimeIncomes) != 1 || len(in.OneTimeExpenses) != 1 {
		t.Fatalf("one-time counts = %d/%d", len(in.OneTimeIncomes), len(in.OneTimeExpenses))
	}
}

func TestLoadRejectsBadFrequency(t *testing.T) {
	bad := strings.Replace(samplePlan, "biweekly", "fortnightly", 1)
	_, err := Load(writePlan(t, bad))
	if err == nil || !strings.Contains(err.Error(), "frequency") {
		t.Fatalf("expected frequency error, got %v", err)
	}
}

func TestLoadRejectsBadDate(t *testing.T) {
	bad := strings.Replace(samplePlan, "2024-06-17", "06/17/2024", 1)
	_, err := Load(writePlan(t, bad))
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestLoadRejectsEndBeforeStart(t *testing.T) {
	bad := strings.Replace(samplePlan, "end_date: 2024-09-06", "end_date: 2024-01-06", 1)
	_, err := Load(writePlan(t, bad))
	if err == nil || !strings.Contains(err.Error(), "end_date") {
		t.Fatalf("expected end-before-start error, got %v", err)
	}
}

func TestLoadRejectsBadDayOfMonth(t *testing.T) {
	bad := strings.Replace(samplePlan, "day_of_month: 5", "day_of_month: 29", 1)
	_, err := Load(writePlan(t, bad))
	if err == nil || !strings.Contains(err.Error(), "day_of_month") {
		t.Fatalf("expected day-of-month error, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	in := model.ProjectionInput{
		InitialBalance: 100000,
		HorizonMonths:  12,
		Incomes: []model.RecurringIncome{{
			Label: "Job", HoursPerWeek: 40, HourlyRate: 30,
			Frequency: calendar.Monthly,
			Start:     calendar.MustParseDate("2024-01-31"),
			Enabled:   true,
		}},
		Expenses: []model.RecurringExpense{{
			Label: "Rent", Amount: 160000, DayOfMonth: 1, Enabled: true,
		}},
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := Save(path, in); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("reload plan: %v", err)
	}

	if got.InitialBalance != in.InitialBalance || got.HorizonMonths != in.HorizonMonths {
		t.Fatalf("round trip header mismatch: %+v", got)
	}
	if len(got.Incomes) != 1 || got.Incomes[0].Start.Key() != "2024-01-31" || !got.Incomes[0].End.IsZero() {
		t.Fatalf("round trip income mismatch: %+v", got.Incomes)
	}
	if len(got.Expenses) != 1 || got.Expenses[0].Amount != 160000 {
		t.Fatalf("round trip expense mismatch: %+v", got.Expenses)
	}
}
