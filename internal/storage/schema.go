package storage

const schemaSQL = `
CREATE TABLE IF NOT EXISTS categories (
    id          INTEGER PRIMARY KEY,
    description TEXT NOT NULL,
    type        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
    id          INTEGER PRIMARY KEY,
    date        TEXT NOT NULL,
    category_id INTEGER NOT NULL,
    amount      REAL NOT NULL,
    description TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);
CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category_id);
`
