package cmd

import (
	"fmt"

	"hbudget/internal/cli"

	"github.com/spf13/cobra"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Ledger of budget items with running balance",
	RunE:  runItems,
}

func init() {
	rootCmd.AddCommand(itemsCmd)
}

func runItems(_ *cobra.Command, _ []string) error {
	s, err := openBudget()
	if err != nil {
		return err
	}
	defer s.close()

	start, end, err := queryRange()
	if err != nil {
		return err
	}
	filter, catID := categoryFilter()

	items := s.budget.GetBudgetItems(start, end, filter, catID)
	if len(items) == 0 {
		fmt.Println("\n  No budget items for the selected range.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET ITEMS"))
	fmt.Println()

	rows := make([][]cli.Cell, 0, len(items))
	for _, item := range items {
		rows = append(rows, []cli.Cell{
			cli.TextCell(cli.FormatDate(item.Date)),
			cli.TextCell(item.Category),
			cli.TextCell(cli.Truncate(item.ShortDescription, 30)),
			cli.MoneyCell(item.Amount),
			cli.MoneyCell(item.Balance),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Category", "Description", "Amount", "Balance"},
		Rows:    rows,
	}))

	return nil
}
