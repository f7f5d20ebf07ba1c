package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS incomes (
    id              TEXT PRIMARY KEY,
    label           TEXT NOT NULL,
    hours_per_week  REAL NOT NULL,
    hourly_rate     REAL NOT NULL,
    frequency       TEXT NOT NULL,
    start_date      TEXT NOT NULL,
    end_date        TEXT,
    enabled         INTEGER NOT NULL DEFAULT 1,
    created_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
    id              TEXT PRIMARY KEY,
    label           TEXT NOT NULL,
    amount_cents    INTEGER NOT NULL,
    day_of_month    INTEGER NOT NULL CHECK (day_of_month BETWEEN 1 AND 28),
    enabled         INTEGER NOT NULL DEFAULT 1,
    created_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS onetime (
    id              TEXT PRIMARY KEY,
    label           TEXT NOT NULL,
    amount_cents    INTEGER NOT NULL,
    due_date        TEXT NOT NULL,
    kind            TEXT NOT NULL CHECK (kind IN ('income', 'expense')),
    created_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    key             TEXT PRIMARY KEY,
    value           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_onetime_date ON onetime(due_date);
`
