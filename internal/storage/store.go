// Package storage persists budget collections in a local SQLite file.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hbudget/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const dateFormat = "2006-01-02T15:04:05"

// Store is a SQLite-backed budget file. It guarantees the read contract
// the aggregation engine relies on: ids unique per collection, rows
// returned in stable order.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the budget database at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating budget dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening budget db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// LoadCategories reads all categories in id order. Ids are assigned
// max+1 on add, so id order equals insertion order.
func (s *Store) LoadCategories() ([]model.Category, error) {
	rows, err := s.db.Query("SELECT id, description, type FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cats []model.Category
	for rows.Next() {
		var c model.Category
		var typ string
		if err := rows.Scan(&c.ID, &c.Description, &typ); err != nil {
			return nil, err
		}
		// Legacy files may carry unknown type names; fall back to Expense.
		c.Type, _ = model.ParseCategoryType(typ)
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// LoadExpenses reads all expenses in id order.
func (s *Store) LoadExpenses() ([]model.Expense, error) {
	rows, err := s.db.Query("SELECT id, date, category_id, amount, description FROM expenses ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("loading expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var exps []model.Expense
	for rows.Next() {
		var e model.Expense
		var date string
		if err := rows.Scan(&e.ID, &date, &e.CategoryID, &e.Amount, &e.Description); err != nil {
			return nil, err
		}
		e.Date, err = time.Parse(dateFormat, date)
		if err != nil {
			return nil, fmt.Errorf("expense %d: parsing date %q: %w", e.ID, date, err)
		}
		exps = append(exps, e)
	}
	return exps, rows.Err()
}

// Save rewrites both collections transactionally. The in-file state
// always reflects the last successful save.
func (s *Store) Save(cats []model.Category, exps []model.Expense) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM categories"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM expenses"); err != nil {
		return err
	}

	for _, c := range cats {
		_, err := tx.Exec("INSERT INTO categories (id, description, type) VALUES (?, ?, ?)",
			c.ID, c.Description, c.Type.String())
		if err != nil {
			return fmt.Errorf("saving category %d: %w", c.ID, err)
		}
	}
	for _, e := range exps {
		_, err := tx.Exec("INSERT INTO expenses (id, date, category_id, amount, description) VALUES (?, ?, ?, ?, ?)",
			e.ID, e.Date.Format(dateFormat), e.CategoryID, e.Amount, e.Description)
		if err != nil {
			return fmt.Errorf("saving expense %d: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

// CategoryCount returns the number of stored categories.
func (s *Store) CategoryCount() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&n)
	return n, err
}

// ExpenseCount returns the number of stored expenses.
func (s *Store) ExpenseCount() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM expenses").Scan(&n)
	return n, err
}
