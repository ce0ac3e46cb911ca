package budget

import (
	"testing"

	"hbudget/internal/model"
)

// crossTabFixture spreads three categories over two months:
//
//	2020/01: Clothes -10, Credit Card +10
//	2020/02: Clothes -15, Eating Out -45
//
// "Savings" exists in the category collection but has no activity.
func crossTabFixture() *Budget {
	cats := &Categories{}
	cats.Add("Credit Card", model.Credit)  // id 1
	cats.Add("Clothes", model.ExpenseType) // id 2
	cats.Add("Eating Out", model.ExpenseType)
	cats.Add("Savings", model.Savings)

	exps := NewExpenses()
	exps.Add(day(2020, 1, 10), 2, 10, "hat")
	exps.Add(day(2020, 1, 11), 1, -10, "hat refund")
	exps.Add(day(2020, 2, 5), 2, 15, "scarf")
	exps.Add(day(2020, 2, 7), 3, 45, "McDonalds")

	return New(cats, exps)
}

func TestSummaryByCategoryAndMonth(t *testing.T) {
	b := crossTabFixture()

	records := b.GetBudgetSummaryByCategoryAndMonth(nil, nil, false, 0)
	if len(records) != 3 {
		t.Fatalf("record count = %d, want 3 (two months + TOTALS)", len(records))
	}

	jan := records[0]
	if jan.Month != "2020/01" || !nearly(jan.Total, 0) {
		t.Fatalf("records[0] = %s total %v, want 2020/01 total 0", jan.Month, jan.Total)
	}
	// Per-month groups are alphabetical.
	if len(jan.Categories) != 2 || jan.Categories[0].Category != "Clothes" || jan.Categories[1].Category != "Credit Card" {
		t.Fatalf("2020/01 groups = %+v, want [Clothes, Credit Card]", jan.Categories)
	}
	if !nearly(jan.Categories[0].Subtotal, -10) || !nearly(jan.Categories[1].Subtotal, 10) {
		t.Fatalf("2020/01 subtotals = %v/%v, want -10/10", jan.Categories[0].Subtotal, jan.Categories[1].Subtotal)
	}
	if len(jan.Categories[0].Details) != 1 {
		t.Fatalf("2020/01 Clothes details = %d items, want 1", len(jan.Categories[0].Details))
	}

	feb := records[1]
	if feb.Month != "2020/02" || !nearly(feb.Total, -60) {
		t.Fatalf("records[1] = %s total %v, want 2020/02 total -60", feb.Month, feb.Total)
	}
}

func TestSummaryTotalsRecord(t *testing.T) {
	b := crossTabFixture()

	records := b.GetBudgetSummaryByCategoryAndMonth(nil, nil, false, 0)
	totals := records[len(records)-1]

	if !totals.IsTotals || totals.Month != model.TotalsMonth {
		t.Fatalf("last record = %+v, want the TOTALS record", totals)
	}

	// Category-collection order, not alphabetical; Savings omitted (no
	// activity in any month).
	want := []struct {
		cat string
		sum float64
	}{
		{"Credit Card", 10},
		{"Clothes", -25},
		{"Eating Out", -45},
	}
	if len(totals.Categories) != len(want) {
		t.Fatalf("TOTALS group count = %d, want %d", len(totals.Categories), len(want))
	}
	for i, w := range want {
		g := totals.Categories[i]
		if g.Category != w.cat || !nearly(g.Subtotal, w.sum) {
			t.Fatalf("TOTALS[%d] = %s %v, want %s %v", i, g.Category, g.Subtotal, w.cat, w.sum)
		}
	}

	// Grand totals match the sum of subtotals across month records.
	perCat := make(map[string]float64)
	for _, rec := range records[:len(records)-1] {
		for _, g := range rec.Categories {
			perCat[g.Category] += g.Subtotal
		}
	}
	for _, g := range totals.Categories {
		if !nearly(perCat[g.Category], g.Subtotal) {
			t.Fatalf("grand total for %s = %v, month subtotals sum to %v", g.Category, g.Subtotal, perCat[g.Category])
		}
	}
}

func TestSummaryZeroSumActivityStaysInTotals(t *testing.T) {
	cats := &Categories{}
	cats.Add("Clothes", model.ExpenseType)

	exps := NewExpenses()
	exps.Add(day(2020, 1, 10), 1, 10, "hat")
	exps.Add(day(2020, 2, 10), 1, -10, "hat refund")

	records := New(cats, exps).GetBudgetSummaryByCategoryAndMonth(nil, nil, false, 0)
	totals := records[len(records)-1]

	// The grand total sums to zero but the category did have activity,
	// so it stays in the TOTALS record.
	if len(totals.Categories) != 1 || totals.Categories[0].Category != "Clothes" {
		t.Fatalf("TOTALS = %+v, want Clothes with a zero grand total", totals.Categories)
	}
	if !nearly(totals.Categories[0].Subtotal, 0) {
		t.Fatalf("Clothes grand total = %v, want 0", totals.Categories[0].Subtotal)
	}
}

func TestSummaryEmptyBudgetIsJustTotals(t *testing.T) {
	b := New(NewCategories(), NewExpenses())

	records := b.GetBudgetSummaryByCategoryAndMonth(nil, nil, false, 0)
	if len(records) != 1 {
		t.Fatalf("record count = %d, want 1 (TOTALS only)", len(records))
	}
	if !records[0].IsTotals || len(records[0].Categories) != 0 {
		t.Fatalf("empty-budget summary = %+v, want empty TOTALS record", records[0])
	}
}
