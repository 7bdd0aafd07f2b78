package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/budgetwise-dev/budgetwise/internal/categories"
	"github.com/budgetwise-dev/budgetwise/internal/model"
	"github.com/budgetwise-dev/budgetwise/internal/normalize"
)

func newAddCommand() *cobra.Command {
	var projectDir string
	var desc string
	var amountStr string
	var dateStr string
	var categoryStr string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction manually",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(projectDir, desc, amountStr, dateStr, categoryStr)
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")
	cmd.Flags().StringVar(&desc, "desc", "", "transaction description (required)")
	_ = cmd.MarkFlagRequired("desc")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount; positive = expense (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&dateStr, "date", "", "transaction date (defaults to today)")
	cmd.Flags().StringVar(&categoryStr, "category", "", "category (defaults to auto-classification)")

	return cmd
}

func runAdd(projectDir, desc, amountStr, dateStr, categoryStr string) error {
	proj, err := openProject(projectDir)
	if err != nil {
		return err
	}

	amount, err := normalize.ParseAmount(amountStr)
	if err != nil {
		return err
	}

	// Manual entries go through the same pipeline rules as imports.
	amount = normalize.ApplySign(desc, amount)

	date := time.Now().UTC()
	if dateStr != "" {
		dates := normalize.NewDateParser(proj.cfg.Import.TwoDigitYearPivot)
		parsed, ok := dates.ParseStrict(dateStr)
		if !ok {
			return fmt.Errorf("unrecognized date %q", dateStr)
		}
		date = parsed
	}

	cat := categories.Classify(desc)
	if categoryStr != "" {
		parsed, ok := model.ParseCategory(categoryStr)
		if !ok {
			return fmt.Errorf("unknown category %q", categoryStr)
		}
		cat = parsed
	}

	txn, err := proj.store.Add(model.Transaction{
		Date:        date,
		Description: desc,
		Amount:      amount,
		Category:    cat,
	})
	if err != nil {
		return fmt.Errorf("adding transaction: %w", err)
	}

	fmt.Printf("Added %s  %s  %s (%s)\n",
		txn.Date.Format("2006-01-02"), txn.Description, txn.Amount.StringFixed(2), proj.cats.DisplayName(txn.Category))
	return nil
}
