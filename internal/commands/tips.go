package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budgetwise-dev/budgetwise/internal/summary"
)

func newTipsCommand() *cobra.Command {
	var projectDir string
	var monthStr string

	cmd := &cobra.Command{
		Use:   "tips",
		Short: "Suggest savings based on spending vs budgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTips(projectDir, monthStr)
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")
	cmd.Flags().StringVar(&monthStr, "month", "", "month to analyze (YYYY-MM, defaults to current)")

	return cmd
}

func runTips(projectDir, monthStr string) error {
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
	tips := summary.Tips(overview, proj.cfg.Budgets)

	if len(tips) == 0 {
		fmt.Printf("No suggestions for %s %d. Nice work.\n", month, year)
		return nil
	}

	for _, tip := range tips {
		fmt.Printf("%s [%s, save ~%s]\n  %s\n",
			tip.Title, tip.Difficulty, tip.PotentialSavings.StringFixed(2), tip.Description)
	}
	return nil
}
