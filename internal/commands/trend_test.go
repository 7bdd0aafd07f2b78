package commands

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwise-dev/budgetwise/internal/model"
)

func TestRunTrend(t *testing.T) {
	dir := initProject(t)

	proj, err := openProject(dir)
	require.NoError(t, err)
	_, err = proj.store.Add(model.Transaction{
		Date:        time.Now().UTC(),
		Description: "Grocery Store",
		Amount:      decimal.NewFromFloat(85.42),
		Category:    model.CategoryGroceries,
	})
	require.NoError(t, err)

	assert.NoError(t, runTrend(dir, 3))
}

func TestRunTrend_EmptyProfile(t *testing.T) {
	assert.NoError(t, runTrend(initProject(t), 6))
}

func TestRunTrend_InvalidMonths(t *testing.T) {
	assert.Error(t, runTrend(initProject(t), 0))
}

func TestRunTrend_NotAProject(t *testing.T) {
	assert.Error(t, runTrend(t.TempDir(), 6))
}
