package cmd

import (
	"fmt"

	"hbudget/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Category-by-month cross-tab with grand totals",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
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

	records := s.budget.GetBudgetSummaryByCategoryAndMonth(start, end, filter, catID)
	// The trailing TOTALS record is always present; only months carry data.
	if len(records) <= 1 {
		fmt.Println("\n  No budget items for the selected range.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET BY CATEGORY AND MONTH"))
	fmt.Println()

	for _, rec := range records {
		if rec.IsTotals {
			rows := make([][]cli.Cell, 0, len(rec.Categories))
			for _, g := range rec.Categories {
				rows = append(rows, []cli.Cell{
					cli.TextCell(g.Category),
					cli.MoneyCell(g.Subtotal),
				})
			}
			fmt.Print(cli.RenderTable(cli.Table{
				Title:   "TOTALS",
				Headers: []string{"Category", "Total"},
				Rows:    rows,
			}))
			fmt.Println()
			continue
		}

		rows := make([][]cli.Cell, 0, len(rec.Categories)*3)
		for _, g := range rec.Categories {
			for _, item := range g.Details {
				rows = append(rows, []cli.Cell{
					cli.TextCell(g.Category),
					cli.TextCell(cli.FormatDate(item.Date)),
					cli.TextCell(cli.Truncate(item.ShortDescription, 25)),
					cli.MoneyCell(item.Amount),
				})
			}
			rows = append(rows, []cli.Cell{
				cli.TextCell(g.Category + " Total"),
				cli.TextCell(""),
				cli.TextCell(""),
				cli.MoneyCell(g.Subtotal),
			})
			rows = append(rows, cli.Separator())
		}
		rows = append(rows, []cli.Cell{
			cli.TextCell("Month Total"),
			cli.TextCell(""),
			cli.TextCell(""),
			cli.MoneyCell(rec.Total),
		})

		fmt.Print(cli.RenderTable(cli.Table{
			Title:   rec.Month,
			Headers: []string{"Category", "Date", "Description", "Amount"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	return nil
}
