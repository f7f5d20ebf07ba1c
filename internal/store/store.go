// Package store provides SQLite-backed persistence for the user's budget
// entries. The engine never touches this package: commands read a full
// immutable snapshot out of the store and hand it to the engine.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/theirongolddev/runway/internal/calendar"
	"github.com/theirongolddev/runway/internal/model"
)

const balanceKey = "initial_balance_cents"

// Store wraps the entry database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the entry database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening entry db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// NewID returns a fresh entry ID.
func NewID() string {
	return uuid.NewString()
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// execer is satisfied by both *sql.DB and *sql.Tx, so the insert helpers
// serve single writes and the import transaction alike.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// AddIncome inserts a recurring income. A missing ID is generated.
func (s *Store) AddIncome(inc model.RecurringIncome) (string, error) {
	return insertIncome(s.db, inc)
}

func insertIncome(e execer, inc model.RecurringIncome) (string, error) {
	if inc.ID == "" {
		inc.ID = NewID()
	}
	end := ""
	if !inc.End.IsZero() {
		end = inc.End.Key()
	}
	enabled := 0
	if inc.Enabled {
		enabled = 1
	}
	_, err := e.Exec(`INSERT INTO incomes
		(id, label, hours_per_week, hourly_rate, frequency, start_date, end_date, enabled, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inc.ID, inc.Label, inc.HoursPerWeek, inc.HourlyRate, string(inc.Frequency),
		inc.Start.Key(), end, enabled, now(),
	)
	if err != nil {
		return "", fmt.Errorf("inserting income: %w", err)
	}
	return inc.ID, nil
}

// Incomes returns all recurring incomes in insertion order.
func (s *Store) Incomes() ([]model.RecurringIncome, error) {
	rows, err := s.db.Query(`SELECT id, label, hours_per_week, hourly_rate,
		frequency, start_date, end_date, enabled FROM incomes ORDER BY created_at, rowid`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var incomes []model.RecurringIncome
	for rows.Next() {
		var inc model.RecurringIncome
		var freq, start string
		var end sql.NullString
		var enabled int
		if err := rows.Scan(&inc.ID, &inc.Label, &inc.HoursPerWeek, &inc.HourlyRate,
			&freq, &start, &end, &enabled); err != nil {
			return nil, err
		}
		inc.Frequency = calendar.Frequency(freq)
		if inc.Start, err = calendar.ParseDate(start); err != nil {
			return nil, fmt.Errorf("income %s: %w", inc.ID, err)
		}
		if end.Valid && end.String != "" {
			if inc.End, err = calendar.ParseDate(end.String); err != nil {
				return nil, fmt.Errorf("income %s: %w", inc.ID, err)
			}
		}
		inc.Enabled = enabled != 0
		incomes = append(incomes, inc)
	}
	return incomes, rows.Err()
}

// AddExpense inserts a recurring expense. Day-of-month outside 1..28 is a
// caller bug; the schema CHECK rejects it and the error surfaces here.
func (s *Store) AddExpense(exp model.RecurringExpense) (string, error) {
	return insertExpense(s.db, exp)
}

func insertExpense(e execer, exp model.RecurringExpense) (string, error) {
	if exp.ID == "" {
		exp.ID = NewID()
	}
	enabled := 0
	if exp.Enabled {
		enabled = 1
	}
	_, err := e.Exec(`INSERT INTO expenses
		(id, label, amount_cents, day_of_month, enabled, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		exp.ID, exp.Label, int64(exp.Amount), exp.DayOfMonth, enabled, now(),
	)
	if err != nil {
		return "", fmt.Errorf("inserting expense: %w", err)
	}
	return exp.ID, nil
}

// Expenses returns all recurring expenses in insertion order.
func (s *Store) Expenses() ([]model.RecurringExpense, error) {
	rows, err := s.db.Query(`SELECT id, label, amount_cents, day_of_month, enabled
		FROM expenses ORDER BY created_at, rowid`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.RecurringExpense
	for rows.Next() {
		var exp model.RecurringExpense
		var cents int64
		var enabled int
		if err := rows.Scan(&exp.ID, &exp.Label, &cents, &exp.DayOfMonth, &enabled); err != nil {
			return nil, err
		}
		exp.Amount = model.Money(cents)
		exp.Enabled = enabled != 0
		expenses = append(expenses, exp)
	}
	return expenses, rows.Err()
}

// AddOneTime inserts a one-time income or expense.
func (s *Store) AddOneTime(ev model.OneTimeEvent, kind model.OneTimeKind) (string, error) {
	return insertOneTime(s.db, ev, kind)
}

func insertOneTime(e execer, ev model.OneTimeEvent, kind model.OneTimeKind) (string, error) {
	if ev.ID == "" {
		ev.ID = NewID()
	}
	_, err := e.Exec(`INSERT INTO onetime
		(id, label, amount_cents, due_date, kind, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Label, int64(ev.Amount), ev.Date.Key(), string(kind), now(),
	)
	if err != nil {
		return "", fmt.Errorf("inserting one-time event: %w", err)
	}
	return ev.ID, nil
}

// OneTimes returns all one-time events of the given kind in insertion order.
func (s *Store) OneTimes(kind model.OneTimeKind) ([]model.OneTimeEvent, error) {
	rows, err := s.db.Query(`SELECT id, label, amount_cents, due_date
		FROM onetime WHERE kind = ? ORDER BY created_at, rowid`, string(kind))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []model.OneTimeEvent
	for rows.Next() {
		var ev model.OneTimeEvent
		var cents int64
		var due string
		if err := rows.Scan(&ev.ID, &ev.Label, &cents, &due); err != nil {
			return nil, err
		}
		ev.Amount = model.Money(cents)
		if ev.Date, err = calendar.ParseDate(due); err != nil {
			return nil, fmt.Errorf("one-time %s: %w", ev.ID, err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Delete removes an entry by ID from whichever table holds it. Returns
// false when no entry matched.
func (s *Store) Delete(id string) (bool, error) {
	for _, table := range []string{"incomes", "expenses", "onetime"} {
		res, err := s.db.Exec("DELETE FROM "+table+" WHERE id = ?", id)
		if err != nil {
			return false, err
		}
		if n, _ := res.RowsAffected(); n > 0 {
			return true, nil
		}
	}
	return false, nil
}

// SetEnabled toggles a recurring entry without deleting it. Returns false
// when no recurring entry matched.
func (s *Store) SetEnabled(id string, enabled bool) (bool, error) {
	v := 0
	if enabled {
		v = 1
	}
	for _, table := range []string{"incomes", "expenses"} {
		res, err := s.db.Exec("UPDATE "+table+" SET enabled = ? WHERE id = ?", v, id)
		if err != nil {
			return false, err
		}
		if n, _ := res.RowsAffected(); n > 0 {
			return true, nil
		}
	}
	return false, nil
}

// ResolveID expands an ID prefix to the full entry ID. Errors when the
// prefix matches nothing or is ambiguous.
func (s *Store) ResolveID(prefix string) (string, error) {
	var matches []string
	for _, table := range []string{"incomes", "expenses", "onetime"} {
		rows, err := s.db.Query("SELECT id FROM "+table+" WHERE id LIKE ?", prefix+"%")
		if err != nil {
			return "", err
		}
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				_ = rows.Close()
				return "", err
			}
			matches = append(matches, id)
		}
		if err := rows.Err(); err != nil {
			_ = rows.Close()
			return "", err
		}
		_ = rows.Close()
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no entry matches ID %q", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ID %q is ambiguous (%d matches)", prefix, len(matches))
	}
}

// Enabled reports whether a recurring entry is enabled.
func (s *Store) Enabled(id string) (bool, error) {
	for _, table := range []string{"incomes", "expenses"} {
		var v int
		err := s.db.QueryRow("SELECT enabled FROM "+table+" WHERE id = ?", id).Scan(&v)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return false, err
		}
		return v != 0, nil
	}
	return false, fmt.Errorf("no recurring entry with ID %q", id)
}

// Balance returns the stored starting balance, zero when never set.
func (s *Store) Balance() (model.Money, error) {
	var v string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", balanceKey).Scan(&v)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	cents, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt balance setting %q: %w", v, err)
	}
	return model.Money(cents), nil
}

// SetBalance stores the starting balance.
func (s *Store) SetBalance(m model.Money) error {
	return setBalance(s.db, m)
}

func setBalance(e execer, m model.Money) error {
	_, err := e.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`,
		balanceKey, strconv.FormatInt(int64(m), 10))
	return err
}

// Snapshot assembles the full immutable projection input: stored balance
// and entries plus the caller-supplied anchor date and horizon.
func (s *Store) Snapshot(today calendar.Date, horizonMonths int) (model.ProjectionInput, error) {
	var in model.ProjectionInput
	var err error

	if in.InitialBalance, err = s.Balance(); err != nil {
		return in, err
	}
	if in.Incomes, err = s.Incomes(); err != nil {
		return in, err
	}
	if in.Expenses, err = s.Expenses(); err != nil {
		return in, err
	}
	if in.OneTimeIncomes, err = s.OneTimes(model.OneTimeIncome); err != nil {
		return in, err
	}
	if in.OneTimeExpenses, err = s.OneTimes(model.OneTimeExpense); err != nil {
		return in, err
	}

	in.Today = today
	in.HorizonMonths = horizonMonths
	return in, nil
}

// ReplaceAll wipes every entry and the balance, then inserts the given
// input's entries. Used by plan import. The wipe and all inserts share one
// transaction, so a failed insert leaves the previous entries untouched.
func (s *Store) ReplaceAll(in model.ProjectionInput) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"incomes", "expenses", "onetime"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}
	if err := setBalance(tx, in.InitialBalance); err != nil {
		return err
	}
	for _, inc := range in.Incomes {
		if _, err := insertIncome(tx, inc); err != nil {
			return err
		}
	}
	for _, exp := range in.Expenses {
		if _, err := insertExpense(tx, exp); err != nil {
			return err
		}
	}
	for _, ev := range in.OneTimeIncomes {
		if _, err := insertOneTime(tx, ev, model.OneTimeIncome); err != nil {
			return err
		}
	}
	for _, ev := range in.OneTimeExpenses {
		if _, err := insertOneTime(tx, ev, model.OneTimeExpense); err != nil {
			return err
		}
	}
	return tx.Commit()
}
