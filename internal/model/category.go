// Package model defines domain types for hbudget categories, expenses, and reports.
package model

import "fmt"

// CategoryType classifies a category for reporting purposes.
type CategoryType int

const (
	Income CategoryType = iota
	ExpenseType
	Credit
	Savings
)

// String returns the display name of the category type.
func (t CategoryType) String() string {
	switch t {
	case Income:
		return "Income"
	case ExpenseType:
		return "Expense"
	case Credit:
		return "Credit"
	case Savings:
		return "Savings"
	default:
		return "Unknown"
	}
}

// ParseCategoryType converts a display name back into a CategoryType.
// Unrecognized names default to Expense, matching how legacy budget
// files were read.
func ParseCategoryType(s string) (CategoryType, error) {
	switch s {
	case "Income":
		return Income, nil
	case "Expense":
		return ExpenseType, nil
	case "Credit":
		return Credit, nil
	case "Savings":
		return Savings, nil
	default:
		return ExpenseType, fmt.Errorf("unknown category type %q", s)
	}
}

// Category is a budget classification bucket.
type Category struct {
	ID          int
	Description string
	Type        CategoryType
}
