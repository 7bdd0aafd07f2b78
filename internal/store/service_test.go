package store

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwise-dev/budgetwise/internal/id"
	"github.com/budgetwise-dev/budgetwise/internal/model"
)

func testTxn(desc string, amount float64, date time.Time) model.Transaction {
	return model.Transaction{
		Date:        date,
		Description: desc,
		Amount:      decimal.NewFromFloat(amount),
		Category:    model.CategoryFood,
	}
}

func TestService_AddAssignsID(t *testing.T) {
	svc := NewService(t.TempDir(), "alice")

	stored, err := svc.Add(testTxn("Coffee", 4.75, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	require.NoError(t, id.Validate(stored.ID))

	// A parser-assigned ID is discarded.
	txn := testTxn("Lunch", 12.00, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC))
	txn.ID = "throwaway"
	stored2, err := svc.Add(txn)
	require.NoError(t, err)
	assert.NotEqual(t, "throwaway", stored2.ID)
	assert.NotEqual(t, stored.ID, stored2.ID)
}

func TestService_AddAndList(t *testing.T) {
	svc := NewService(t.TempDir(), "alice")

	_, err := svc.Add(testTxn("Older", 1, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	_, err = svc.Add(testTxn("Newer", 2, time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	txns, err := svc.List()
	require.NoError(t, err)
	require.Len(t, txns, 2)

	// Newest first.
	assert.Equal(t, "Newer", txns[0].Description)
	assert.Equal(t, "Older", txns[1].Description)
}

func TestService_FileLayout(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, "alice")

	_, err := svc.Add(testTxn("Coffee", 4.75, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "profiles", "alice", "transactions.csv"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Header, lines[0])
	assert.Contains(t, lines[1], "Coffee")
}

func TestService_ProfilesAreIsolated(t *testing.T) {
	dir := t.TempDir()
	alice := NewService(dir, "alice")
	bob := NewService(dir, "bob")

	_, err := alice.Add(testTxn("Coffee", 4.75, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	txns, err := bob.List()
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestService_RejectsInvalid(t *testing.T) {
	svc := NewService(t.TempDir(), "alice")

	// Empty description.
	_, err := svc.Add(testTxn("   ", 5, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.Error(t, err)

	// Zero date.
	_, err = svc.Add(testTxn("Coffee", 5, time.Time{}))
	assert.Error(t, err)

	// Unknown category.
	bad := testTxn("Coffee", 5, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	bad.Category = model.Category("snacks")
	_, err = svc.Add(bad)
	assert.Error(t, err)

	txns, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestService_Clear(t *testing.T) {
	svc := NewService(t.TempDir(), "alice")

	_, err := svc.Add(testTxn("Coffee", 4.75, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	require.NoError(t, svc.Clear())

	txns, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, txns)

	// Clearing an already-empty profile is fine.
	require.NoError(t, svc.Clear())
}

func TestService_ListEmptyProfile(t *testing.T) {
	svc := NewService(t.TempDir(), "nobody")
	txns, err := svc.List()
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestWriteTransactionsIncludesHeader(t *testing.T) {
	txn := testTxn("Coffee", 4.75, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	txn.ID = id.New()

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, []model.Transaction{txn}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Header, lines[0])

	txns, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "Coffee", txns[0].Description)
}

func TestService_RoundTripPreservesFields(t *testing.T) {
	svc := NewService(t.TempDir(), "alice")

	original := model.Transaction{
		Date:        time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		Description: "Salary Deposit",
		Amount:      decimal.RequireFromString("-2500.00"),
		Category:    model.CategoryOther,
	}
	stored, err := svc.Add(original)
	require.NoError(t, err)

	txns, err := svc.List()
	require.NoError(t, err)
	require.Len(t, txns, 1)

	assert.Equal(t, stored.ID, txns[0].ID)
	assert.True(t, txns[0].Date.Equal(original.Date))
	assert.Equal(t, original.Description, txns[0].Description)
	assert.True(t, txns[0].Amount.Equal(original.Amount))
	assert.Equal(t, original.Category, txns[0].Category)
	assert.True(t, txns[0].IsIncome())
}
