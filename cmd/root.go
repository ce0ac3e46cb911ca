package cmd

import (
	"fmt"
	"os"
	"time"

	"hbudget/internal/budget"
	"hbudget/internal/config"
	"hbudget/internal/storage"

	"github.com/spf13/cobra"
)

var (
	flagFile     string
	flagFrom     string
	flagTo       string
	flagCategory int
)

var rootCmd = &cobra.Command{
	Use:   "hbudget",
	Short: "Personal budget tracker",
	Long:  "Track categories and expenses, and report spending by month and category.",
	RunE:  runItems,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cfg, _ := config.Load()

	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", config.DefaultBudgetPath(cfg), "Budget database file")
	rootCmd.PersistentFlags().StringVar(&flagFrom, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	rootCmd.PersistentFlags().StringVar(&flagTo, "to", "", "End date (YYYY-MM-DD, inclusive)")
	rootCmd.PersistentFlags().IntVarP(&flagCategory, "category", "c", 0, "Restrict reports to one category id")
}

// session bundles the open budget file with the in-memory collections
// loaded from it.
type session struct {
	store      *storage.Store
	categories *budget.Categories
	expenses   *budget.Expenses
	budget     *budget.Budget
}

// openBudget opens the budget file and loads both collections. A missing
// file is an error for report commands; `hbudget init` creates one.
func openBudget() (*session, error) {
	if _, err := os.Stat(flagFile); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no budget file at %s (run `hbudget init` first)", flagFile)
		}
		return nil, err
	}

	store, err := storage.Open(flagFile)
	if err != nil {
		return nil, err
	}

	cats, err := store.LoadCategories()
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	exps, err := store.LoadExpenses()
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	categories := budget.NewCategories()
	categories.Replace(cats)
	expenses := budget.NewExpenses()
	expenses.Replace(exps)

	return &session{
		store:      store,
		categories: categories,
		expenses:   expenses,
		budget:     budget.New(categories, expenses),
	}, nil
}

func (s *session) close() {
	_ = s.store.Close()
}

// save writes the in-memory collections back to the budget file.
func (s *session) save() error {
	return s.store.Save(s.categories.List(), s.expenses.List())
}

// queryRange parses --from/--to into the aggregator's optional bounds.
// The end date covers the whole day.
func queryRange() (start, end *time.Time, err error) {
	if flagFrom != "" {
		t, err := time.Parse("2006-01-02", flagFrom)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --from date %q: %w", flagFrom, err)
		}
		start = &t
	}
	if flagTo != "" {
		t, err := time.Parse("2006-01-02", flagTo)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --to date %q: %w", flagTo, err)
		}
		t = t.Add(24*time.Hour - time.Second)
		end = &t
	}
	return start, end, nil
}

// categoryFilter translates the --category flag into the aggregator's
// filter pair. 0 means no filter.
func categoryFilter() (bool, int) {
	return flagCategory != 0, flagCategory
}
