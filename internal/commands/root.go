// Package commands wires the CLI surface: project setup, statement
// import, manual entry, and reporting.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/budgetwise-dev/budgetwise/internal/buildinfo"
	"github.com/budgetwise-dev/budgetwise/internal/categories"
	"github.com/budgetwise-dev/budgetwise/internal/config"
	"github.com/budgetwise-dev/budgetwise/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "budgetwise",
		Short:   "Local-first personal budgeting",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newTrendCommand())
	rootCmd.AddCommand(newTipsCommand())

	return rootCmd
}

// project bundles everything a command needs from a project directory.
type project struct {
	root  string
	cfg   *config.Config
	store *store.Service
	cats  *categories.Service
}

// openProject loads config, category metadata, and the profile store from
// a project directory.
func openProject(dir string) (*project, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("not a budgetwise project (run 'budgetwise init'): %w", err)
	}

	cats, err := categories.Load(root)
	if err != nil {
		return nil, err
	}

	return &project{
		root:  root,
		cfg:   cfg,
		store: store.NewService(root, cfg.Profile),
		cats:  cats,
	}, nil
}

// newLogger builds the logger commands hand to the import pipeline.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "budgetwise",
	})
}
