package budget

import (
	"fmt"
	"time"

	"hbudget/internal/model"
)

// Expenses is an in-memory, insertion-ordered expense collection. Same
// id policy and copy semantics as Categories.
type Expenses struct {
	exps []model.Expense
}

// NewExpenses returns an empty expense collection.
func NewExpenses() *Expenses {
	return &Expenses{}
}

// Add appends a new expense and returns its id (max existing id + 1, or 1
// when empty). The category id is not checked against the category
// collection; a dangling reference silently drops out of reports.
func (e *Expenses) Add(date time.Time, categoryID int, amount float64, description string) int {
	id := 1
	for _, exp := range e.exps {
		if exp.ID >= id {
			id = exp.ID + 1
		}
	}
	e.exps = append(e.exps, model.Expense{
		ID:          id,
		Date:        date,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: description,
	})
	return id
}

// GetByID returns the expense with the given id, or an error wrapping
// ErrNotFound.
func (e *Expenses) GetByID(id int) (model.Expense, error) {
	for _, exp := range e.exps {
		if exp.ID == id {
			return exp, nil
		}
	}
	return model.Expense{}, fmt.Errorf("expense %d: %w", id, ErrNotFound)
}

// Delete removes the expense with the given id; no-op when absent.
func (e *Expenses) Delete(id int) {
	for i, exp := range e.exps {
		if exp.ID == id {
			e.exps = append(e.exps[:i], e.exps[i+1:]...)
			return
		}
	}
}

// List returns a copy of the collection in insertion order.
func (e *Expenses) List() []model.Expense {
	out := make([]model.Expense, len(e.exps))
	copy(out, e.exps)
	return out
}

// Replace swaps in a bulk-loaded collection, preserving the given order.
func (e *Expenses) Replace(exps []model.Expense) {
	e.exps = make([]model.Expense, len(exps))
	copy(e.exps, exps)
}
