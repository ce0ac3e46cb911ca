package budget

import (
	"sort"
	"time"

	"hbudget/internal/model"
)

// Default query bounds when no explicit range is given.
var (
	minDate = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	maxDate = time.Date(2500, 1, 1, 0, 0, 0, 0, time.UTC)
)

// CategoryProvider supplies the current category collection as copies, in
// stable insertion order, with unique ids.
type CategoryProvider interface {
	List() []model.Category
}

// ExpenseProvider supplies the current expense collection under the same
// contract.
type ExpenseProvider interface {
	List() []model.Expense
}

// Budget joins a category and an expense collection into report views.
// All query methods are pure reads: they never mutate the collections and
// never fail, returning empty results when nothing matches.
type Budget struct {
	categories CategoryProvider
	expenses   ExpenseProvider
}

// New returns a Budget reading from the given collections.
func New(categories CategoryProvider, expenses ExpenseProvider) *Budget {
	return &Budget{categories: categories, expenses: expenses}
}

// GetBudgetItems returns the joined ledger: every expense whose category
// exists and whose date falls within [start, end], sorted by date
// ascending (stable), with display amounts (-1 × stored amount) and a
// running balance. Nil bounds default to 1900-01-01 and 2500-01-01.
// When filter is set, only the given category's expenses survive — but
// note the balance is then a balance over that category alone.
//
// Expenses referencing a category id with no match are dropped silently;
// reporting stays robust against partially-invalid data by design.
func (b *Budget) GetBudgetItems(start, end *time.Time, filter bool, categoryID int) []model.BudgetItem {
	from := minDate
	if start != nil {
		from = *start
	}
	to := maxDate
	if end != nil {
		to = *end
	}

	// Inner join, categories outer so join order follows the category
	// collection. The date sort below is stable, so equal dates keep
	// this order.
	type joined struct {
		catID    int
		expID    int
		date     time.Time
		category string
		desc     string
		amount   float64
	}
	exps := b.expenses.List()
	var rows []joined
	for _, c := range b.categories.List() {
		for _, e := range exps {
			if e.CategoryID != c.ID {
				continue
			}
			if e.Date.Before(from) || e.Date.After(to) {
				continue
			}
			rows = append(rows, joined{
				catID:    c.ID,
				expID:    e.ID,
				date:     e.Date,
				category: c.Description,
				desc:     e.Description,
				amount:   e.Amount,
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].date.Before(rows[j].date)
	})

	items := make([]model.BudgetItem, 0, len(rows))
	balance := 0.0
	for _, r := range rows {
		if filter && categoryID != r.catID {
			continue
		}
		balance -= r.amount
		items = append(items, model.BudgetItem{
			CategoryID:       r.catID,
			ExpenseID:        r.expID,
			Date:             r.date,
			Category:         r.category,
			ShortDescription: r.desc,
			Amount:           -r.amount,
			Balance:          balance,
		})
	}
	return items
}

// GetBudgetItemsByMonth groups the ledger by "YYYY/MM" month. Groups
// appear in first-seen order, which is chronological because the source
// is date-sorted. Each total sums the group's display amounts.
func (b *Budget) GetBudgetItemsByMonth(start, end *time.Time, filter bool, categoryID int) []model.BudgetItemsByMonth {
	items := b.GetBudgetItems(start, end, filter, categoryID)

	var months []model.BudgetItemsByMonth
	index := make(map[string]int)
	for _, item := range items {
		key := model.MonthKey(item.Date)
		i, ok := index[key]
		if !ok {
			i = len(months)
			index[key] = i
			months = append(months, model.BudgetItemsByMonth{Month: key})
		}
		months[i].Details = append(months[i].Details, item)
		months[i].Total += item.Amount
	}
	return months
}

// GetBudgetItemsByCategory groups the ledger by category description,
// with groups ordered alphabetically — unlike the monthly view, which is
// chronological.
func (b *Budget) GetBudgetItemsByCategory(start, end *time.Time, filter bool, categoryID int) []model.BudgetItemsByCategory {
	items := b.GetBudgetItems(start, end, filter, categoryID)

	var groups []model.BudgetItemsByCategory
	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, model.BudgetItemsByCategory{Category: item.Category})
		}
		groups[i].Details = append(groups[i].Details, item)
		groups[i].Total += item.Amount
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Category < groups[j].Category
	})
	return groups
}

// GetBudgetSummaryByCategoryAndMonth builds the category-and-month
// cross-tab: one record per month holding the month total and an
// alphabetical per-category breakdown, then a terminal TOTALS record with
// the grand total per category across all months. The TOTALS record lists
// categories in category-collection order and includes exactly those that
// contributed in at least one month; a category with no activity at all
// is omitted even though it exists in the collection.
func (b *Budget) GetBudgetSummaryByCategoryAndMonth(start, end *time.Time, filter bool, categoryID int) []model.CategoryMonthSummary {
	months := b.GetBudgetItemsByMonth(start, end, filter, categoryID)

	var summary []model.CategoryMonthSummary
	grandTotals := make(map[string]float64)
	seen := make(map[string]bool)

	for _, m := range months {
		record := model.CategoryMonthSummary{Month: m.Month, Total: m.Total}

		var groups []model.CategoryMonthGroup
		index := make(map[string]int)
		for _, item := range m.Details {
			i, ok := index[item.Category]
			if !ok {
				i = len(groups)
				index[item.Category] = i
				groups = append(groups, model.CategoryMonthGroup{Category: item.Category})
			}
			groups[i].Details = append(groups[i].Details, item)
			groups[i].Subtotal += item.Amount
		}
		sort.Slice(groups, func(i, j int) bool {
			return groups[i].Category < groups[j].Category
		})

		for _, g := range groups {
			grandTotals[g.Category] += g.Subtotal
			seen[g.Category] = true
		}

		record.Categories = groups
		summary = append(summary, record)
	}

	// Terminal grand-total record, categories in collection order. A
	// grand total can legitimately be zero when activity cancels out,
	// so presence is keyed on activity, not on the summed value.
	totals := model.CategoryMonthSummary{Month: model.TotalsMonth, IsTotals: true}
	for _, c := range b.categories.List() {
		if !seen[c.Description] {
			continue
		}
		totals.Categories = append(totals.Categories, model.CategoryMonthGroup{
			Category: c.Description,
			Subtotal: grandTotals[c.Description],
		})
	}
	summary = append(summary, totals)

	return summary
}
