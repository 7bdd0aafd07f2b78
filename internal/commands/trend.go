package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/budgetwise-dev/budgetwise/internal/summary"
)

func newTrendCommand() *cobra.Command {
	var projectDir string
	var months int

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show monthly spending over recent months",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrend(projectDir, months)
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")
	cmd.Flags().IntVar(&months, "months", 6, "number of months to show")

	return cmd
}

func runTrend(projectDir string, months int) error {
	if months < 1 {
		return fmt.Errorf("invalid --months %d (want at least 1)", months)
	}

	proj, err := openProject(projectDir)
	if err != nil {
		return err
	}

	txns, err := proj.store.List()
	if err != nil {
		return err
	}

	totals := summary.Trend(txns, time.Now(), months)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tEXPENSES")
	for _, total := range totals {
		fmt.Fprintf(w, "%s %d\t%s\n", total.Month, total.Year, total.Expenses.StringFixed(2))
	}
	return w.Flush()
}
