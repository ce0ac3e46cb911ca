package cmd

import (
	"fmt"

	"hbudget/internal/cli"

	"github.com/spf13/cobra"
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Budget items grouped by month",
	RunE:  runMonthly,
}

func init() {
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(_ *cobra.Command, _ []string) error {
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

	months := s.budget.GetBudgetItemsByMonth(start, end, filter, catID)
	if len(months) == 0 {
		fmt.Println("\n  No budget items for the selected range.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET BY MONTH"))
	fmt.Println()

	for _, m := range months {
		rows := make([][]cli.Cell, 0, len(m.Details)+2)
		for _, item := range m.Details {
			rows = append(rows, []cli.Cell{
				cli.TextCell(cli.FormatDate(item.Date)),
				cli.TextCell(cli.Truncate(item.ShortDescription, 30)),
				cli.MoneyCell(item.Amount),
			})
		}
		rows = append(rows, cli.Separator())
		rows = append(rows, []cli.Cell{
			cli.TextCell("Month Total"),
			cli.TextCell(""),
			cli.MoneyCell(m.Total),
		})

		fmt.Print(cli.RenderTable(cli.Table{
			Title:   m.Month,
			Headers: []string{"Date", "Description", "Amount"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	return nil
}
