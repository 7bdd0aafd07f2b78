package summary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwise-dev/budgetwise/internal/model"
)

func txn(desc string, amount float64, cat model.Category, date time.Time) model.Transaction {
	return model.Transaction{
		Date:        date,
		Description: desc,
		Amount:      decimal.NewFromFloat(amount),
		Category:    cat,
	}
}

func april(day int) time.Time {
	return time.Date(2025, 4, day, 0, 0, 0, 0, time.UTC)
}

func sampleTxns() []model.Transaction {
	return []model.Transaction{
		txn("Grocery Store", 300, model.CategoryGroceries, april(1)),
		txn("Rent Payment", 600, model.CategoryHousing, april(2)),
		txn("Coffee", 100, model.CategoryFood, april(3)),
		txn("Salary Deposit", -2500, model.CategoryOther, april(5)),
		// Different month, must be excluded.
		txn("March Groceries", 999, model.CategoryGroceries, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)),
	}
}

func TestForMonth_Totals(t *testing.T) {
	overview := ForMonth(sampleTxns(), 2025, time.April)

	assert.Equal(t, "1000.00", overview.Expenses.StringFixed(2))
	assert.Equal(t, "2500.00", overview.Income.StringFixed(2))
	assert.Equal(t, "1500.00", overview.Net.StringFixed(2))
}

func TestForMonth_CategoryBreakdown(t *testing.T) {
	overview := ForMonth(sampleTxns(), 2025, time.April)

	require.Len(t, overview.ByCategory, 3)

	// Sorted by amount, largest first.
	assert.Equal(t, model.CategoryHousing, overview.ByCategory[0].Category)
	assert.Equal(t, "600.00", overview.ByCategory[0].Amount.StringFixed(2))
	assert.InDelta(t, 60.0, overview.ByCategory[0].Percentage, 0.01)

	assert.Equal(t, model.CategoryGroceries, overview.ByCategory[1].Category)
	assert.InDelta(t, 30.0, overview.ByCategory[1].Percentage, 0.01)

	assert.Equal(t, model.CategoryFood, overview.ByCategory[2].Category)
	assert.InDelta(t, 10.0, overview.ByCategory[2].Percentage, 0.01)
}

func TestForMonth_EmptyMonth(t *testing.T) {
	overview := ForMonth(sampleTxns(), 2024, time.January)

	assert.True(t, overview.Expenses.IsZero())
	assert.True(t, overview.Income.IsZero())
	assert.Empty(t, overview.ByCategory)
}

func TestTrend(t *testing.T) {
	totals := Trend(sampleTxns(), time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC), 3)

	require.Len(t, totals, 3)
	assert.Equal(t, time.February, totals[0].Month)
	assert.True(t, totals[0].Expenses.IsZero())
	assert.Equal(t, time.March, totals[1].Month)
	assert.Equal(t, "999.00", totals[1].Expenses.StringFixed(2))
	assert.Equal(t, time.April, totals[2].Month)
	assert.Equal(t, "1000.00", totals[2].Expenses.StringFixed(2))
}

func TestTips_OverBudget(t *testing.T) {
	overview := ForMonth(sampleTxns(), 2025, time.April)
	budgets := map[string]float64{
		"groceries": 250, // spent 300: over by 50
		"housing":   800, // under budget
	}

	tips := Tips(overview, budgets)
	require.NotEmpty(t, tips)

	assert.Equal(t, "Grocery Shopping Strategy", tips[0].Title)
	assert.Equal(t, "50.00", tips[0].PotentialSavings.StringFixed(2))
	assert.Equal(t, DifficultyMedium, tips[0].Difficulty)
}

func TestTips_TopCategorySuggestion(t *testing.T) {
	overview := ForMonth(sampleTxns(), 2025, time.April)

	// No budgets: only the top-category trim suggestion fires.
	tips := Tips(overview, nil)
	require.Len(t, tips, 1)
	assert.Contains(t, tips[0].Title, "housing")
	assert.Equal(t, "60.00", tips[0].PotentialSavings.StringFixed(2))
}

func TestTips_NothingToSuggest(t *testing.T) {
	overview := ForMonth(nil, 2025, time.April)
	assert.Empty(t, Tips(overview, map[string]float64{"food": 100}))
}
