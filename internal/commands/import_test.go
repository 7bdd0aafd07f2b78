package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwise-dev/budgetwise/internal/importlog"
	"github.com/budgetwise-dev/budgetwise/internal/model"
)

const statementCSV = `Date,Description,Amount
2025-04-01,Starbucks Coffee,5.75
2025-04-02,Salary Deposit,2500.00
2025-04-03,Grocery Store,85.42
`

func initProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "default", false))
	return dir
}

func TestRunImport_CSV(t *testing.T) {
	dir := initProject(t)
	statement := filepath.Join(dir, "statement.csv")
	require.NoError(t, os.WriteFile(statement, []byte(statementCSV), 0o644))

	require.NoError(t, runImport(dir, []string{statement}))

	proj, err := openProject(dir)
	require.NoError(t, err)
	txns, err := proj.store.List()
	require.NoError(t, err)
	require.Len(t, txns, 3)

	byDesc := make(map[string]model.Transaction)
	for _, txn := range txns {
		byDesc[txn.Description] = txn
	}
	assert.True(t, byDesc["Salary Deposit"].IsIncome())
	assert.True(t, byDesc["Grocery Store"].IsExpense())
	assert.Equal(t, model.CategoryGroceries, byDesc["Grocery Store"].Category)
	assert.Equal(t, model.CategoryFood, byDesc["Starbucks Coffee"].Category)
}

func TestRunImport_WritesLog(t *testing.T) {
	dir := initProject(t)
	statement := filepath.Join(dir, "statement.csv")
	require.NoError(t, os.WriteFile(statement, []byte(statementCSV), 0o644))

	require.NoError(t, runImport(dir, []string{statement}))

	entries, err := importlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "statement.csv", entries[0].File)
	assert.Equal(t, "csv", entries[0].Format)
	assert.Equal(t, 3, entries[0].Imported)
	assert.Equal(t, 0, entries[0].Failed)
}

func TestRunImport_UnsupportedExtension(t *testing.T) {
	dir := initProject(t)
	statement := filepath.Join(dir, "statement.xlsx")
	require.NoError(t, os.WriteFile(statement, []byte("not a statement"), 0o644))

	// Unsupported files are reported and skipped, not fatal.
	require.NoError(t, runImport(dir, []string{statement}))

	proj, err := openProject(dir)
	require.NoError(t, err)
	txns, err := proj.store.List()
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestRunImport_EmptyStatement(t *testing.T) {
	dir := initProject(t)
	statement := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(statement, []byte("Date,Description,Amount\n"), 0o644))

	require.NoError(t, runImport(dir, []string{statement}))

	entries, err := importlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].Imported)
}

func TestRunImport_MidBatchErrorKeepsLog(t *testing.T) {
	dir := initProject(t)
	statement := filepath.Join(dir, "statement.csv")
	require.NoError(t, os.WriteFile(statement, []byte(statementCSV), 0o644))

	// Second file has a supported extension but doesn't exist, so the
	// batch aborts after the first file was already imported.
	missing := filepath.Join(dir, "missing.csv")
	require.Error(t, runImport(dir, []string{statement, missing}))

	entries, err := importlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "statement.csv", entries[0].File)
	assert.Equal(t, 3, entries[0].Imported)
}

func TestRunImport_NotAProject(t *testing.T) {
	err := runImport(t.TempDir(), []string{"statement.csv"})
	assert.Error(t, err)
}
