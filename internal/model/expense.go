package model

import "time"

// Expense is a single dated transaction. Amount carries the stored sign:
// money spent is positive, money received is negative. Reports flip the
// sign (see BudgetItem).
//
// CategoryID is not validated against the category collection; an expense
// referencing an unknown category is simply invisible to reports.
type Expense struct {
	ID          int
	Date        time.Time
	CategoryID  int
	Amount      float64
	Description string
}
