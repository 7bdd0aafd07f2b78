package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/budgetwise-dev/budgetwise/internal/categories"
	"github.com/budgetwise-dev/budgetwise/internal/config"
	"github.com/budgetwise-dev/budgetwise/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var profile string
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new budgetwise project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, profile, useGit)
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "default", "profile name")
	cmd.Flags().BoolVar(&useGit, "git", false, "track the project directory with git snapshots")

	return cmd
}

func runInit(dir, profile string, useGit bool) error {
	// Create directory structure.
	dirs := []string{
		"logs",
		filepath.Join("profiles", profile),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write budgetwise.yaml.
	cfg := config.Default(profile)
	cfg.Git.AutoCommit = useGit
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write category display metadata.
	cats := categories.NewService(categories.DefaultDetails())
	if err := cats.Save(dir); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}

	if useGit {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		hash, err := gitops.Snapshot(dir, "init: new budgetwise project", cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		fmt.Printf("Initialized budgetwise project at %s (%s)\n", dir, hash)
		return nil
	}

	fmt.Printf("Initialized budgetwise project at %s\n", dir)
	return nil
}
