package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/budgetwise-dev/budgetwise/internal/summary"
)

func newSummaryCommand() *cobra.Command {
	var projectDir string
	var monthStr string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show spending totals and category breakdown for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(projectDir, monthStr)
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")
	cmd.Flags().StringVar(&monthStr, "month", "", "month to summarize (YYYY-MM, defaults to current)")

	return cmd
}

func runSummary(projectDir, monthStr string) error {
	proj, err := openProject(projectDir)
	if err != nil {
		return err
	}

	year, month, err := resolveMonth(monthStr)
	if err != nil {
		return err
	}

	txns, err := proj.store.List()
	if err != nil {
		return err
	}

	overview := summary.ForMonth(txns, year, month)

	fmt.Printf("%s %d\n", month, year)
	fmt.Printf("  Expenses: %s\n", overview.Expenses.StringFixed(2))
	fmt.Printf("  Income:   %s\n", overview.Income.StringFixed(2))
	fmt.Printf("  Net:      %s\n", overview.Net.StringFixed(2))

	if len(overview.ByCategory) == 0 {
		return nil
	}

	fmt.Println("  By category:")
	for _, ca := range overview.ByCategory {
		fmt.Printf("    %-16s %10s  (%.0f%%)\n",
			proj.cats.DisplayName(ca.Category), ca.Amount.StringFixed(2), ca.Percentage)
	}
	return nil
}

func resolveMonth(monthStr string) (int, time.Month, error) {
	if monthStr == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", monthStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (want YYYY-MM)", monthStr)
	}
	return t.Year(), t.Month(), nil
}
