package budget

import (
	"errors"
	"testing"

	"hbudget/internal/model"
)

func TestNewCategoriesHasDefaults(t *testing.T) {
	c := NewCategories()
	cats := c.List()

	if len(cats) != 16 {
		t.Fatalf("default category count = %d, want 16", len(cats))
	}
	for i, cat := range cats {
		if cat.ID != i+1 {
			t.Fatalf("category %d has id %d, want %d", i, cat.ID, i+1)
		}
	}

	types := make(map[model.CategoryType]int)
	for _, cat := range cats {
		types[cat.Type]++
	}
	for _, typ := range []model.CategoryType{model.Income, model.ExpenseType, model.Credit, model.Savings} {
		if types[typ] == 0 {
			t.Fatalf("defaults contain no %s category", typ)
		}
	}
}

func TestCategoriesAddAssignsMaxPlusOne(t *testing.T) {
	c := &Categories{}

	if id := c.Add("First", model.ExpenseType); id != 1 {
		t.Fatalf("first id = %d, want 1", id)
	}
	if id := c.Add("Second", model.ExpenseType); id != 2 {
		t.Fatalf("second id = %d, want 2", id)
	}

	// Deleting the current max frees its id for reuse.
	c.Delete(2)
	if id := c.Add("Third", model.ExpenseType); id != 2 {
		t.Fatalf("id after deleting max = %d, want 2", id)
	}

	// Deleting a middle id does not.
	c.Delete(1)
	if id := c.Add("Fourth", model.ExpenseType); id != 3 {
		t.Fatalf("id after deleting non-max = %d, want 3", id)
	}
}

func TestCategoriesGetByID(t *testing.T) {
	c := &Categories{}
	id := c.Add("Food", model.ExpenseType)

	got, err := c.GetByID(id)
	if err != nil {
		t.Fatalf("GetByID(%d): %v", id, err)
	}
	if got.Description != "Food" || got.Type != model.ExpenseType {
		t.Fatalf("GetByID(%d) = %+v", id, got)
	}

	_, err = c.GetByID(99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID(99) error = %v, want ErrNotFound", err)
	}
}

func TestCategoriesDeleteAbsentIsNoOp(t *testing.T) {
	c := &Categories{}
	c.Add("Food", model.ExpenseType)

	c.Delete(42)
	if n := len(c.List()); n != 1 {
		t.Fatalf("category count after deleting absent id = %d, want 1", n)
	}
}

func TestCategoriesListReturnsCopies(t *testing.T) {
	c := &Categories{}
	c.Add("Food", model.ExpenseType)

	list := c.List()
	list[0].Description = "mutated"

	again := c.List()
	if again[0].Description != "Food" {
		t.Fatalf("stored description = %q after mutating a returned copy, want %q", again[0].Description, "Food")
	}
}

func TestSetToDefaultsResets(t *testing.T) {
	c := &Categories{}
	c.Add("Custom", model.Credit)
	c.Add("Another", model.Savings)

	c.SetToDefaults()

	cats := c.List()
	if len(cats) != 16 {
		t.Fatalf("count after SetToDefaults = %d, want 16", len(cats))
	}
	if cats[0].Description != "Utilities" || cats[15].Description != "Income" {
		t.Fatalf("defaults start %q end %q, want Utilities..Income", cats[0].Description, cats[15].Description)
	}
}

func TestCategoriesReplacePreservesOrder(t *testing.T) {
	c := NewCategories()
	c.Replace([]model.Category{
		{ID: 5, Description: "Zebra", Type: model.ExpenseType},
		{ID: 2, Description: "Apple", Type: model.Income},
	})

	cats := c.List()
	if len(cats) != 2 || cats[0].ID != 5 || cats[1].ID != 2 {
		t.Fatalf("replaced list = %+v, want ids [5 2] in given order", cats)
	}

	// max+1 still applies to the replaced contents
	if id := c.Add("New", model.ExpenseType); id != 6 {
		t.Fatalf("id after Replace = %d, want 6", id)
	}
}
