package cmd

import (
	"fmt"
	"os"

	"hbudget/internal/budget"
	"hbudget/internal/storage"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new budget file seeded with the default categories",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	if _, err := os.Stat(flagFile); err == nil {
		var overwrite bool
		confirm := huh.NewConfirm().
			Title(fmt.Sprintf("Budget file %s already exists. Overwrite it?", flagFile)).
			Value(&overwrite)
		if err := confirm.Run(); err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("  Keeping the existing budget file.")
			return nil
		}
		if err := os.Remove(flagFile); err != nil {
			return fmt.Errorf("removing old budget file: %w", err)
		}
	}

	store, err := storage.Open(flagFile)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	cats := budget.NewCategories()
	exps := budget.NewExpenses()
	if err := store.Save(cats.List(), exps.List()); err != nil {
		return err
	}

	fmt.Printf("  Created %s with %d default categories.\n", flagFile, len(cats.List()))
	return nil
}
