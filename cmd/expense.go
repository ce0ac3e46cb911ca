package cmd

import (
	"fmt"
	"strconv"
	"time"

	"hbudget/internal/cli"
	"hbudget/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Manage expenses",
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an expense (interactive form when flags are omitted)",
	RunE:  runExpenseAdd,
}

var expenseRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an expense by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseRm,
}

var (
	flagExpenseDate   string
	flagExpenseCat    int
	flagExpenseAmount float64
	flagExpenseDesc   string
)

func init() {
	expenseAddCmd.Flags().StringVar(&flagExpenseDate, "date", "", "Expense date (YYYY-MM-DD, default today)")
	expenseAddCmd.Flags().IntVar(&flagExpenseCat, "cat", 0, "Category id")
	expenseAddCmd.Flags().Float64Var(&flagExpenseAmount, "amount", 0, "Amount (positive = spent, negative = received)")
	expenseAddCmd.Flags().StringVar(&flagExpenseDesc, "desc", "", "Description")

	expenseCmd.AddCommand(expenseAddCmd, expenseRmCmd)
	rootCmd.AddCommand(expenseCmd)
}

func runExpenseAdd(cmd *cobra.Command, _ []string) error {
	s, err := openBudget()
	if err != nil {
		return err
	}
	defer s.close()

	date := time.Now()
	if flagExpenseDate != "" {
		date, err = time.Parse("2006-01-02", flagExpenseDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", flagExpenseDate, err)
		}
	}

	catID := flagExpenseCat
	amount := flagExpenseAmount
	desc := flagExpenseDesc

	// No flags: collect the expense through a form instead.
	if !cmd.Flags().Changed("cat") && !cmd.Flags().Changed("amount") {
		catID, amount, desc, date, err = expenseForm(s.categories.List())
		if err != nil {
			return err
		}
	}

	if catID == 0 {
		return fmt.Errorf("a category id is required (--cat)")
	}
	// Warn on dangling references: the expense is stored but will not
	// show up in any report until the category exists.
	if _, err := s.categories.GetByID(catID); err != nil {
		fmt.Printf("  Warning: no category with id %d; this expense will be excluded from reports.\n", catID)
	}

	id := s.expenses.Add(date, catID, amount, desc)
	if err := s.save(); err != nil {
		return err
	}

	fmt.Printf("  Added expense %d: %s %s\n", id, desc, cli.FormatMoney(-amount))
	return nil
}

// expenseForm gathers a new expense interactively.
func expenseForm(cats []model.Category) (catID int, amount float64, desc string, date time.Time, err error) {
	opts := make([]huh.Option[int], 0, len(cats))
	for _, c := range cats {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", c.Description, c.Type), c.ID))
	}

	var amountStr, dateStr string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Category").
				Options(opts...).
				Value(&catID),
			huh.NewInput().
				Title("Description").
				Value(&desc),
			huh.NewInput().
				Title("Amount (positive = spent)").
				Validate(func(s string) error {
					_, err := strconv.ParseFloat(s, 64)
					return err
				}).
				Value(&amountStr),
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD, empty = today").
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					_, err := time.Parse("2006-01-02", s)
					return err
				}).
				Value(&dateStr),
		),
	)

	if err = form.Run(); err != nil {
		return 0, 0, "", time.Time{}, err
	}

	amount, err = strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return 0, 0, "", time.Time{}, fmt.Errorf("invalid amount %q: %w", amountStr, err)
	}

	date = time.Now()
	if dateStr != "" {
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			return 0, 0, "", time.Time{}, err
		}
	}
	return catID, amount, desc, date, nil
}

func runExpenseRm(_ *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid expense id %q", args[0])
	}

	s, err := openBudget()
	if err != nil {
		return err
	}
	defer s.close()

	s.expenses.Delete(id)
	if err := s.save(); err != nil {
		return err
	}

	fmt.Printf("  Removed expense %d\n", id)
	return nil
}
