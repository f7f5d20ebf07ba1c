package store

import (
	"path/filepath"
	"testing"

	"github.com/theirongolddev/runway/internal/calendar"
	"github.com/theirongolddev/runway/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "entries.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestIncomeRoundTrip(t *testing.T) {
	s := openTestStore(t)

	inc := model.RecurringIncome{
		Label:        "Day job",
		HoursPerWeek: 32,
		HourlyRate:   21.5,
		Frequency:    calendar.Biweekly,
		Start:        calendar.MustParseDate("2024-03-01"),
		End:          calendar.MustParseDate("2024-09-06"),
		Enabled:      true,
	}
	id, err := s.AddIncome(inc)
	if err != nil {
		t.Fatalf("add income: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated ID")
	}

	got, err := s.Incomes()
	if err != nil {
		t.Fatalf("list incomes: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("income count = %d, want 1", len(got))
	}
	if got[0].Label != "Day job" || got[0].Frequency != calendar.Biweekly {
		t.Fatalf("round-tripped income = %+v", got[0])
	}
	if got[0].Start.Key() != "2024-03-01" || got[0].End.Key() != "2024-09-06" {
		t.Fatalf("round-tripped dates = %s..%s", got[0].Start.Key(), got[0].End.Key())
	}
	if !got[0].Enabled {
		t.Fatal("enabled flag lost")
	}
}

func TestOpenEndedIncomeKeepsZeroEnd(t *testing.T) {
	s := openTestStore(t)
	_, err := s.AddIncome(model.RecurringIncome{
		Label: "Forever job", Frequency: calendar.Weekly,
		Start: calendar.MustParseDate("2024-01-01"), Enabled: true,
	})
	if err != nil {
		t.Fatalf("add income: %v", err)
	}
	got, err := s.Incomes()
	if err != nil {
		t.Fatalf("list incomes: %v", err)
	}
	if !got[0].End.IsZero() {
		t.Fatalf("open-ended income came back with end %s", got[0].End.Key())
	}
}

func TestExpenseDayOfMonthConstraint(t *testing.T) {
	s := openTestStore(t)
	_, err := s.AddExpense(model.RecurringExpense{
		Label: "Bad rent", Amount: 100000, DayOfMonth: 31, Enabled: true,
	})
	if err == nil {
		t.Fatal("day_of_month 31 should violate the schema check")
	}
}

func TestDeleteAcrossTables(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.AddOneTime(model.OneTimeEvent{
		Label: "Refund", Amount: 5000, Date: calendar.MustParseDate("2024-05-01"),
	}, model.OneTimeIncome)

	ok, err := s.Delete(id)
	if err != nil || !ok {
		t.Fatalf("delete = %v, %v; want true, nil", ok, err)
	}
	ok, err = s.Delete("no-such-id")
	if err != nil || ok {
		t.Fatalf("deleting unknown id = %v, %v; want false, nil", ok, err)
	}
}

func TestSetEnabled(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.AddExpense(model.RecurringExpense{
		Label: "Gym", Amount: 4000, DayOfMonth: 5, Enabled: true,
	})

	ok, err := s.SetEnabled(id, false)
	if err != nil || !ok {
		t.Fatalf("toggle = %v, %v; want true, nil", ok, err)
	}
	expenses, _ := s.Expenses()
	if expenses[0].Enabled {
		t.Fatal("expense still enabled after toggle")
	}
}

func TestResolveIDPrefix(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.AddExpense(model.RecurringExpense{
		Label: "Rent", Amount: 145000, DayOfMonth: 1, Enabled: true, ID: "aabbccdd-1",
	})
	_, _ = s.AddOneTime(model.OneTimeEvent{
		ID: "aaff0011-2", Label: "Gift", Amount: 5000, Date: calendar.MustParseDate("2024-06-01"),
	}, model.OneTimeIncome)

	got, err := s.ResolveID("aabb")
	if err != nil || got != id {
		t.Fatalf("ResolveID(aabb) = %q, %v; want %q", got, err, id)
	}
	if _, err := s.ResolveID("aa"); err == nil {
		t.Fatal("ambiguous prefix should error")
	}
	if _, err := s.ResolveID("zz"); err == nil {
		t.Fatal("unknown prefix should error")
	}
}

func TestEnabledLookup(t *testing.T) {
	s := openTestStore(t)
	id, _ := s.AddExpense(model.RecurringExpense{
		Label: "Gym", Amount: 4000, DayOfMonth: 5, Enabled: false,
	})

	enabled, err := s.Enabled(id)
	if err != nil {
		t.Fatalf("enabled: %v", err)
	}
	if enabled {
		t.Fatal("expected disabled")
	}
	if _, err := s.Enabled("no-such-id"); err == nil {
		t.Fatal("unknown id should error")
	}
}

func TestBalanceDefaultsToZero(t *testing.T) {
	s := openTestStore(t)
	b, err := s.Balance()
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if b != 0 {
		t.Fatalf("fresh balance = %d, want 0", b)
	}
	if err := s.SetBalance(123456); err != nil {
		t.Fatalf("set balance: %v", err)
	}
	if b, _ = s.Balance(); b != 123456 {
		t.Fatalf("balance = %d, want 123456", b)
	}
}

func TestSnapshotAssemblesFullInput(t *testing.T) {
	s := openTestStore(t)
	_ = s.SetBalance(250000)
	_, _ = s.AddIncome(model.RecurringIncome{
		Label: "Job", HoursPerWeek: 40, HourlyRate: 25,
		Frequency: calendar.Weekly, Start: calendar.MustParseDate("2024-01-05"), Enabled: true,
	})
	_, _ = s.AddExpense(model.RecurringExpense{Label: "Rent", Amount: 150000, DayOfMonth: 1, Enabled: true})
	_, _ = s.AddOneTime(model.OneTimeEvent{Label: "Bonus", Amount: 80000,
		Date: calendar.MustParseDate("2024-02-15")}, model.OneTimeIncome)
	_, _ = s.AddOneTime(model.OneTimeEvent{Label: "Car", Amount: 60000,
		Date: calendar.MustParseDate("2024-03-15")}, model.OneTimeExpense)

	in, err := s.Snapshot(calendar.MustParseDate("2024-01-01"), 6)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if in.InitialBalance != 250000 {
		t.Fatalf("snapshot balance = %d", in.InitialBalance)
	}
	if len(in.Incomes) != 1 || len(in.Expenses) != 1 ||
		len(in.OneTimeIncomes) != 1 || len(in.OneTimeExpenses) != 1 {
		t.Fatalf("snapshot entry counts = %d/%d/%d/%d",
			len(in.Incomes), len(in.Expenses), len(in.OneTimeIncomes), len(in.OneTimeExpenses))
	}
	if in.HorizonMonths != 6 || in.Today.Key() != "2024-01-01" {
		t.Fatalf("snapshot anchor = %s / %d months", in.Today.Key(), in.HorizonMonths)
	}
}

func TestReplaceAll(t *testing.T) {
	s := openTestStore(t)
	_, _ = s.AddExpense(model.RecurringExpense{Label: "Old", Amount: 100, DayOfMonth: 1, Enabled: true})

	err := s.ReplaceAll(model.ProjectionInput{
		InitialBalance: 9900,
		Expenses: []model.RecurringExpense{
			{Label: "New rent", Amount: 120000, DayOfMonth: 3, Enabled: true},
		},
	})
	if err != nil {
		t.Fatalf("replace all: %v", err)
	}

	expenses, _ := s.Expenses()
	if len(expenses) != 1 || expenses[0].Label != "New rent" {
		t.Fatalf("after import expenses = %+v", expenses)
	}
	if b, _ := s.Balance(); b != 9900 {
		t.Fatalf("after import balance = %d", b)
	}
}

func TestReplaceAllFailureKeepsOldEntries(t *testing.T) {
	s := openTestStore(t)
	_ = s.SetBalance(50000)
	_, _ = s.AddExpense(model.RecurringExpense{Label: "Rent", Amount: 145000, DayOfMonth: 1, Enabled: true})

	// Two incomes sharing an ID: the second insert violates the primary key
	// and the whole import must roll back.
	err := s.ReplaceAll(model.ProjectionInput{
		InitialBalance: 100,
		Incomes: []model.RecurringIncome{
			{ID: "dup", Label: "A", Frequency: calendar.Weekly,
				Start: calendar.MustParseDate("2024-01-01"), Enabled: true},
			{ID: "dup", Label: "B", Frequency: calendar.Weekly,
				Start: calendar.MustParseDate("2024-02-01"), Enabled: true},
		},
	})
	if err == nil {
		t.Fatal("duplicate ID import should fail")
	}

	expenses, _ := s.Expenses()
	if len(expenses) != 1 || expenses[0].Label != "Rent" {
		t.Fatalf("failed import wiped expenses: %+v", expenses)
	}
	incomes, _ := s.Incomes()
	if len(incomes) != 0 {
		t.Fatalf("failed import left partial incomes: %+v", incomes)
	}
	if b, _ := s.Balance(); b != 50000 {
		t.Fatalf("failed import changed balance: %d", b)
	}
}
