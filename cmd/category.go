package cmd

import (
	"fmt"
	"strconv"

	"hbudget/internal/cli"
	"hbudget/internal/model"

	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage budget categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	RunE:  runCategoryList,
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryAdd,
}

var categoryRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a category by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryRm,
}

var categoryResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset categories to the default set",
	RunE:  runCategoryReset,
}

var flagCategoryType string

func init() {
	categoryAddCmd.Flags().StringVarP(&flagCategoryType, "type", "t", "Expense",
		"Category type: Income, Expense, Credit, or Savings")

	categoryCmd.AddCommand(categoryListCmd, categoryAddCmd, categoryRmCmd, categoryResetCmd)
	rootCmd.AddCommand(categoryCmd)
}

func runCategoryList(_ *cobra.Command, _ []string) error {
	s, err := openBudget()
	if err != nil {
		return err
	}
	defer s.close()

	cats := s.categories.List()
	if len(cats) == 0 {
		fmt.Println("\n  No categories defined.")
		return nil
	}

	rows := make([][]cli.Cell, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []cli.Cell{
			cli.TextCell(strconv.Itoa(c.ID)),
			cli.TextCell(c.Description),
			cli.TextCell(c.Type.String()),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Description", "Type"},
		Rows:    rows,
	}))

	return nil
}

func runCategoryAdd(_ *cobra.Command, args []string) error {
	typ, err := model.ParseCategoryType(flagCategoryType)
	if err != nil {
		return err
	}

	s, err := openBudget()
	if err != nil {
		return err
	}
	defer s.close()

	id := s.categories.Add(args[0], typ)
	if err := s.save(); err != nil {
		return err
	}

	fmt.Printf("  Added category %d: %s (%s)\n", id, args[0], typ)
	return nil
}

func runCategoryRm(_ *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid category id %q", args[0])
	}

	s, err := openBudget()
	if err != nil {
		return err
	}
	defer s.close()

	s.categories.Delete(id)
	if err := s.save(); err != nil {
		return err
	}

	fmt.Printf("  Removed category %d\n", id)
	return nil
}

func runCategoryReset(_ *cobra.Command, _ []string) error {
	s, err := openBudget()
	if err != nil {
		return err
	}
	defer s.close()

	s.categories.SetToDefaults()
	if err := s.save(); err != nil {
		return err
	}

	fmt.Println("  Categories reset to defaults.")
	return nil
}
