package storage

import (
	"path/filepath"
	"testing"
	"time"

	"hbudget/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	cats := []model.Category{
		{ID: 1, Description: "Clothes", Type: model.ExpenseType},
		{ID: 2, Description: "Income", Type: model.Income},
		{ID: 3, Description: "Credit Card", Type: model.Credit},
	}
	exps := []model.Expense{
		{ID: 1, Date: time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC), CategoryID: 1, Amount: 10, Description: "hat"},
		{ID: 2, Date: time.Date(2020, 2, 5, 0, 0, 0, 0, time.UTC), CategoryID: 2, Amount: -100, Description: "salary"},
	}

	if err := s.Save(cats, exps); err != nil {
		t.Fatalf("saving: %v", err)
	}

	gotCats, err := s.LoadCategories()
	if err != nil {
		t.Fatalf("loading categories: %v", err)
	}
	if len(gotCats) != len(cats) {
		t.Fatalf("loaded %d categories, want %d", len(gotCats), len(cats))
	}
	for i, want := range cats {
		if gotCats[i] != want {
			t.Fatalf("category[%d] = %+v, want %+v", i, gotCats[i], want)
		}
	}

	gotExps, err := s.LoadExpenses()
	if err != nil {
		t.Fatalf("loading expenses: %v", err)
	}
	if len(gotExps) != len(exps) {
		t.Fatalf("loaded %d expenses, want %d", len(gotExps), len(exps))
	}
	for i, want := range exps {
		got := gotExps[i]
		if got.ID != want.ID || !got.Date.Equal(want.Date) || got.CategoryID != want.CategoryID ||
			got.Amount != want.Amount || got.Description != want.Description {
			t.Fatalf("expense[%d] = %+v, want %+v", i, got, want)
		}
	}
}

func TestSaveRewritesCompletely(t *testing.T) {
	s := openTestStore(t)

	first := []model.Category{
		{ID: 1, Description: "Old", Type: model.ExpenseType},
		{ID: 2, Description: "Stale", Type: model.ExpenseType},
	}
	if err := s.Save(first, nil); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := []model.Category{{ID: 7, Description: "Fresh", Type: model.Income}}
	if err := s.Save(second, nil); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := s.LoadCategories()
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if len(got) != 1 || got[0].ID != 7 || got[0].Description != "Fresh" {
		t.Fatalf("loaded = %+v, want only the second save's category", got)
	}
}

func TestEmptyStoreLoads(t *testing.T) {
	s := openTestStore(t)

	cats, err := s.LoadCategories()
	if err != nil {
		t.Fatalf("loading categories: %v", err)
	}
	if len(cats) != 0 {
		t.Fatalf("empty store returned %d categories", len(cats))
	}

	exps, err := s.LoadExpenses()
	if err != nil {
		t.Fatalf("loading expenses: %v", err)
	}
	if len(exps) != 0 {
		t.Fatalf("empty store returned %d expenses", len(exps))
	}
}

func TestCounts(t *testing.T) {
	s := openTestStore(t)

	cats := []model.Category{{ID: 1, Description: "Food", Type: model.ExpenseType}}
	exps := []model.Expense{
		{ID: 1, Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), CategoryID: 1, Amount: 5, Description: "a"},
		{ID: 2, Date: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), CategoryID: 1, Amount: 6, Description: "b"},
	}
	if err := s.Save(cats, exps); err != nil {
		t.Fatalf("saving: %v", err)
	}

	nc, err := s.CategoryCount()
	if err != nil || nc != 1 {
		t.Fatalf("CategoryCount = %d, %v; want 1", nc, err)
	}
	ne, err := s.ExpenseCount()
	if err != nil || ne != 2 {
		t.Fatalf("ExpenseCount = %d, %v; want 2", ne, err)
	}
}
