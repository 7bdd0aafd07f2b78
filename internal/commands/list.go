package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/budgetwise-dev/budgetwise/internal/model"
)

func newListCommand() *cobra.Command {
	var projectDir string
	var monthStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored transactions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(projectDir, monthStr)
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")
	cmd.Flags().StringVar(&monthStr, "month", "", "only show one month (YYYY-MM)")

	return cmd
}

func runList(projectDir, monthStr string) error {
	proj, err := openProject(projectDir)
	if err != nil {
		return err
	}

	txns, err := proj.store.List()
	if err != nil {
		return err
	}

	if monthStr != "" {
		filter, err := time.Parse("2006-01", monthStr)
		if err != nil {
			return fmt.Errorf("invalid month %q (want YYYY-MM)", monthStr)
		}
		filtered := txns[:0:0]
		for _, txn := range txns {
			if txn.Date.Year() == filter.Year() && txn.Date.Month() == filter.Month() {
				filtered = append(filtered, txn)
			}
		}
		txns = filtered
	}

	if len(txns) == 0 {
		fmt.Println("No transactions.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDESCRIPTION\tAMOUNT\tCATEGORY")
	for _, txn := range txns {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			txn.Date.Format("2006-01-02"),
			txn.Description,
			formatAmount(txn),
			proj.cats.DisplayName(txn.Category))
	}
	return w.Flush()
}

// formatAmount renders income with a leading + so the sign convention
// (positive = spent) doesn't read backwards in a listing.
func formatAmount(txn model.Transaction) string {
	if txn.IsIncome() {
		return "+" + txn.Amount.Abs().StringFixed(2)
	}
	return txn.Amount.StringFixed(2)
}
