package engine

import (
	"reflect"
	"testing"

	"github.com/theirongolddev/runway/internal/calendar"
	"github.com/theirongolddev/runway/internal/model"
)

// The reference scenario: $1000 starting balance, one $500 expense due on
// the 1st, no income, 3 months. The balance steps 500 / 0 / -500 and the
// danger date is the first of the third month ahead.
func TestProjectRunsOutOfMoney(t *testing.T) {
	in := model.ProjectionInput{
		Today:          date(t, "2024-01-15"),
		InitialBalance: 100000,
		HorizonMonths:  3,
		Expenses: []model.RecurringExpense{
			{ID: "e1", Label: "Rent", Amount: 50000, DayOfMonth: 1, Enabled: true},
		},
	}
	f := Project(in)

	byKey := make(map[string]model.DailySnapshot)
	for _, s := range f.Snapshots {
		byKey[s.Date.Key()] = s
	}

	if got := byKey["2024-02-01"].Balance; got != 50000 {
		t.Fatalf("balance after month 1 = %d, want 50000", got)
	}
	if got := byKey["2024-03-01"].Balance; got != 0 {
		t.Fatalf("balance after month 2 = %d, want 0", got)
	}
	if got := byKey["2024-04-01"].Balance; got != -50000 {
		t.Fatalf("balance after month 3 = %d, want -50000", got)
	}
	if f.DangerDate == nil || f.DangerDate.Date.Key() != "2024-04-01" {
		t.Fatalf("danger date = %v, want 2024-04-01", f.DangerDate)
	}
	if f.LowestPoint.Balance != -50000 {
		t.Fatalf("lowest point = %d, want -50000", f.LowestPoint.Balance)
	}
	if f.TotalIncome != 0 || f.TotalExpenses != 150000 {
		t.Fatalf("totals = %d income / %d expenses, want 0 / 150000", f.TotalIncome, f.TotalExpenses)
	}
}

func TestProjectAccountingIdentity(t *testing.T) {
	in := model.ProjectionInput{
		Today:          date(t, "2024-02-29"),
		InitialBalance: 123456,
		HorizonMonths:  12,
		Incomes: []model.RecurringIncome{
			weeklyIncome("Day job", 32, 21.5, date(t, "2024-03-01")),
			{
				ID: "i2", Label: "Side gig",
				HoursPerWeek: 6, HourlyRate: 40,
				Frequency: calendar.Biweekly,
				Start:     date(t, "2024-03-08"),
				End:       date(t, "2024-08-09"),
				Enabled:   true,
			},
		},
		Expenses: []model.RecurringExpense{
			{ID: "e1", Label: "Rent", Amount: 145000, DayOfMonth: 1, Enabled: true},
			{ID: "e2", Label: "Insurance", Amount: 21000, DayOfMonth: 28, Enabled: true},
		},
		OneTimeIncomes: []model.OneTimeEvent{
			{ID: "o1", Label: "Refund", Amount: 31000, Date: date(t, "2024-06-17")},
		},
		OneTimeExpenses: []model.OneTimeEvent{
			{ID: "o2", Label: "Flight", Amount: 62000, Date: date(t, "2024-11-02")},
		},
	}
	f := Project(in)

	rng := in.Range()
	if len(f.Snapshots) != rng.Days() {
		t.Fatalf("snapshot count = %d, want %d", len(f.Snapshots), rng.Days())
	}
	// totalIncome - totalExpenses == finalBalance - initialBalance
	if f.Net() != f.FinalBalance()-in.InitialBalance {
		t.Fatalf("accounting identity broken: net %d vs balance delta %d",
			f.Net(), f.FinalBalance()-in.InitialBalance)
	}
	for _, s := range f.Snapshots {
		if s.Balance < f.LowestPoint.Balance {
			t.Fatalf("snapshot %s below reported lowest point", s.Date.Key())
		}
	}
}

func TestProjectDeterministic(t *testing.T) {
	in := model.ProjectionInput{
		Today:          date(t, "2024-05-01"),
		InitialBalance: 77700,
		HorizonMonths:  6,
		Incomes:        []model.RecurringIncome{weeklyIncome("Job", 15, 18, date(t, "2024-05-03"))},
		Expenses: []model.RecurringExpense{
			{ID: "e1", Label: "Phone", Amount: 4500, DayOfMonth: 12, Enabled: true},
		},
	}
	a := Project(in)
	b := Project(in)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs produced different forecasts")
	}
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	incomes := []model.RecurringIncome{weeklyIncome("Job", 10, 10, date(t, "2024-01-01"))}
	in := model.ProjectionInput{
		Today:          date(t, "2024-01-01"),
		InitialBalance: 1000,
		HorizonMonths:  3,
		Incomes:        incomes,
	}
	before := incomes[0]
	Project(in)
	if !reflect.DeepEqual(before, incomes[0]) {
		t.Fatal("projection mutated its input rules")
	}
}

func TestDetectOutOfRange(t *testing.T) {
	in := model.ProjectionInput{
		Today:         date(t, "2024-01-01"),
		HorizonMonths: 3,
		Incomes: []model.RecurringIncome{
			{ID: "i1", Label: "Starts too late", Frequency: calendar.Weekly,
				Start: date(t, "2024-06-01"), Enabled: true},
			{ID: "i2", Label: "Fine", Frequency: calendar.Weekly,
				Start: date(t, "2024-02-01"), Enabled: true},
		},
		OneTimeExpenses: []model.OneTimeEvent{
			{ID: "o1", Label: "Past bill", Amount: 100, Date: date(t, "2023-12-15")},
			{ID: "o2", Label: "Due soon", Amount: 100, Date: date(t, "2024-02-15")},
		},
	}
	flagged := DetectOutOfRange(in)
	if len(flagged) != 2 {
		t.Fatalf("flagged %d entries, want 2: %+v", len(flagged), flagged)
	}
	ids := map[string]bool{}
	for _, e := range flagged {
		ids[e.ID] = true
	}
	if !ids["i1"] || !ids["o1"] {
		t.Fatalf("wrong entries flagged: %+v", flagged)
	}
}

func BenchmarkProject24Months(b *testing.B) {
	in := model.ProjectionInput{
		Today:          calendar.MustParseDate("2024-01-01"),
		InitialBalance: 250000,
		HorizonMonths:  24,
		Incomes: []model.RecurringIncome{
			{ID: "i1", Label: "Job", HoursPerWeek: 40, HourlyRate: 28,
				Frequency: calendar.Biweekly, Start: calendar.MustParseDate("2024-01-05"), Enabled: true},
		},
		Expenses: []model.RecurringExpense{
			{ID: "e1", Label: "Rent", Amount: 160000, DayOfMonth: 1, Enabled: true},
			{ID: "e2", Label: "Utilities", Amount: 18000, DayOfMonth: 15, Enabled: true},
		},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Project(in)
	}
}
