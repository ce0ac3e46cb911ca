// Package budget holds the category and expense collections and the
// aggregation engine that joins them into reports.
package budget

import (
	"errors"
	"fmt"

	"hbudget/internal/model"
)

// ErrNotFound is returned by direct id lookups when no record matches.
var ErrNotFound = errors.New("not found")

// defaultCategories is the canonical bootstrap set for a new budget.
var defaultCategories = []struct {
	desc string
	typ  model.CategoryType
}{
	{"Utilities", model.ExpenseType},
	{"Rent", model.ExpenseType},
	{"Food", model.ExpenseType},
	{"Entertainment", model.ExpenseType},
	{"Education", model.ExpenseType},
	{"Miscellaneous", model.ExpenseType},
	{"Medical Expenses", model.ExpenseType},
	{"Vacation", model.ExpenseType},
	{"Credit Card", model.Credit},
	{"Clothes", model.ExpenseType},
	{"Gifts", model.ExpenseType},
	{"Insurance", model.ExpenseType},
	{"Transportation", model.ExpenseType},
	{"Eating Out", model.ExpenseType},
	{"Savings", model.Savings},
	{"Income", model.Income},
}

// Categories is an in-memory, insertion-ordered category collection.
// Not safe for concurrent mutation; callers needing that must add their
// own locking.
type Categories struct {
	cats []model.Category
}

// NewCategories returns a collection pre-populated with the default
// category set.
func NewCategories() *Categories {
	c := &Categories{}
	c.SetToDefaults()
	return c
}

// SetToDefaults clears the collection and repopulates it with the
// canonical 16 default categories.
func (c *Categories) SetToDefaults() {
	c.cats = c.cats[:0]
	for _, d := range defaultCategories {
		c.Add(d.desc, d.typ)
	}
}

// Add appends a new category and returns its id. Ids are assigned as
// max existing id + 1 (1 for an empty collection), so an id can be
// reused after the current max is deleted.
func (c *Categories) Add(description string, typ model.CategoryType) int {
	id := 1
	for _, cat := range c.cats {
		if cat.ID >= id {
			id = cat.ID + 1
		}
	}
	c.cats = append(c.cats, model.Category{ID: id, Description: description, Type: typ})
	return id
}

// GetByID returns the category with the given id, or an error wrapping
// ErrNotFound.
func (c *Categories) GetByID(id int) (model.Category, error) {
	for _, cat := range c.cats {
		if cat.ID == id {
			return cat, nil
		}
	}
	return model.Category{}, fmt.Errorf("category %d: %w", id, ErrNotFound)
}

// Delete removes the category with the given id. Deleting an absent id
// is a no-op.
func (c *Categories) Delete(id int) {
	for i, cat := range c.cats {
		if cat.ID == id {
			c.cats = append(c.cats[:i], c.cats[i+1:]...)
			return
		}
	}
}

// List returns a copy of the collection in insertion order. Mutating the
// returned slice or its elements does not affect the collection.
func (c *Categories) List() []model.Category {
	out := make([]model.Category, len(c.cats))
	copy(out, c.cats)
	return out
}

// Replace swaps in a bulk-loaded collection, preserving the given order.
// The caller (normally the storage layer) guarantees id uniqueness.
func (c *Categories) Replace(cats []model.Category) {
	c.cats = make([]model.Category, len(cats))
	copy(c.cats, cats)
}
