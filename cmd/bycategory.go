package cmd

import (
	"fmt"

	"hbudget/internal/cli"

	"github.com/spf13/cobra"
)

var byCategoryCmd = &cobra.Command{
	Use:   "bycategory",
	Short: "Budget items grouped by category",
	RunE:  runByCategory,
}

func init() {
	rootCmd.AddCommand(byCategoryCmd)
}

func runByCategory(_ *cobra.Command, _ []string) error {
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

	groups := s.budget.GetBudgetItemsByCategory(start, end, filter, catID)
	if len(groups) == 0 {
		fmt.Println("\n  No budget items for the selected range.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET BY CATEGORY"))
	fmt.Println()

	for _, g := range groups {
		rows := make([][]cli.Cell, 0, len(g.Details)+2)
		for _, item := range g.Details {
			rows = append(rows, []cli.Cell{
				cli.TextCell(cli.FormatDate(item.Date)),
				cli.TextCell(cli.Truncate(item.ShortDescription, 30)),
				cli.MoneyCell(item.Amount),
			})
		}
		rows = append(rows, cli.Separator())
		rows = append(rows, []cli.Cell{
			cli.TextCell("Category Total"),
			cli.TextCell(""),
			cli.MoneyCell(g.Total),
		})

		fmt.Print(cli.RenderTable(cli.Table{
			Title:   g.Category,
			Headers: []string{"Date", "Description", "Amount"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	return nil
}
