package model

import "time"

// BudgetItem is one row of the joined category/expense ledger. Amount is
// the display amount (-1 × the stored expense amount: an expense of $15 is
// -$15 from your account). Balance is the running total of display amounts
// in date order. Derived on every query, never persisted.
type BudgetItem struct {
	CategoryID       int
	ExpenseID        int
	Date             time.Time
	Category         string
	ShortDescription string
	Amount           float64
	Balance          float64
}

// BudgetItemsByMonth groups ledger rows for one "YYYY/MM" month.
type BudgetItemsByMonth struct {
	Month   string
	Details []BudgetItem
	Total   float64
}

// BudgetItemsByCategory groups ledger rows for one category.
type BudgetItemsByCategory struct {
	Category string
	Details  []BudgetItem
	Total    float64
}

// CategoryMonthGroup is one category's slice of a month in the
// category-and-month cross-tab.
type CategoryMonthGroup struct {
	Category string
	Subtotal float64
	Details  []BudgetItem
}

// CategoryMonthSummary is one record of the category-and-month report:
// a month with its total and per-category breakdown, or the terminal
// grand-total record (IsTotals set, Month == TotalsMonth, no Details).
type CategoryMonthSummary struct {
	Month      string
	Total      float64
	Categories []CategoryMonthGroup
	IsTotals   bool
}

// TotalsMonth is the Month value of the trailing grand-total record.
const TotalsMonth = "TOTALS"

// MonthKey formats a date as the "YYYY/MM" grouping key used by the
// monthly reports.
func MonthKey(t time.Time) string {
	return t.Format("2006/01")
}
