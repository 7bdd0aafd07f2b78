package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/budgetwise-dev/budgetwise/internal/gitops"
	"github.com/budgetwise-dev/budgetwise/internal/importer"
	"github.com/budgetwise-dev/budgetwise/internal/importlog"
	"github.com/budgetwise-dev/budgetwise/internal/normalize"
)

func newImportCommand() *cobra.Command {
	var projectDir string

	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Import bank statement files (CSV, QFX, OFX, PDF)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(projectDir, args)
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")

	return cmd
}

func runImport(projectDir string, files []string) error {
	proj, err := openProject(projectDir)
	if err != nil {
		return err
	}

	logger := newLogger()
	dates := normalize.NewDateParser(proj.cfg.Import.TwoDigitYearPivot)
	registry := importer.DefaultRegistry(dates, logger)
	svc := importer.NewService(registry, proj.store, logger)

	var entries []importlog.Entry
	flushLog := func() {
		if len(entries) == 0 {
			return
		}
		if err := importlog.Append(proj.root, entries); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write import log: %v\n", err)
		}
		entries = nil
	}

	for _, file := range files {
		result, err := svc.ImportFile(file)
		switch {
		case errors.Is(err, importer.ErrUnsupportedFormat):
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			continue
		case errors.Is(err, importer.ErrNoTransactions):
			fmt.Printf("%s: no valid transactions found\n", file)
		case err != nil:
			// Keep the audit trail for the files already processed.
			flushLog()
			return err
		default:
			fmt.Printf("%s: imported %d transaction(s)", file, result.Imported)
			if result.Failed > 0 {
				fmt.Printf(", %d rejected", result.Failed)
			}
			fmt.Println()
		}

		entries = append(entries, importlog.Entry{
			Timestamp: time.Now().UTC(),
			Profile:   proj.cfg.Profile,
			File:      filepath.Base(file),
			Format:    result.Format,
			Imported:  result.Imported,
			Failed:    result.Failed,
		})
	}

	flushLog()

	if proj.cfg.Git.AutoCommit && gitops.IsRepo(proj.root) {
		if changed, err := gitops.HasChanges(proj.root); err == nil && changed {
			if _, err := gitops.Snapshot(proj.root, "import: statement files", proj.cfg.Git.AuthorName, proj.cfg.Git.AuthorEmail); err != nil {
				fmt.Fprintf(os.Stderr, "warning: git snapshot failed: %v\n", err)
			}
		}
	}

	return nil
}
