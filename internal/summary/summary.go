// Package summary aggregates stored transactions into spending overviews
// and rule-based savings suggestions.
package summary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise-dev/budgetwise/internal/model"
)

// CategoryAmount is expense spending aggregated by category.
type CategoryAmount struct {
	Category   model.Category
	Amount     decimal.Decimal
	Percentage float64 // share of the period's total expenses, 0-100
}

// MonthOverview is a compact summary for a specific year+month.
// Expenses and Income are both reported as positive magnitudes; Net is
// income minus expenses (positive means money left over).
type MonthOverview struct {
	Year       int
	Month      time.Month
	Expenses   decimal.Decimal
	Income     decimal.Decimal
	Net        decimal.Decimal
	ByCategory []CategoryAmount
}

// MonthTotal is one point on a spending trend line.
type MonthTotal struct {
	Year     int
	Month    time.Month
	Expenses decimal.Decimal
}

// ForMonth summarizes the transactions falling in the given month.
func ForMonth(txns []model.Transaction, year int, month time.Month) MonthOverview {
	overview := MonthOverview{
		Year:     year,
		Month:    month,
		Expenses: decimal.Zero,
		Income:   decimal.Zero,
	}

	byCategory := make(map[model.Category]decimal.Decimal)
	for _, txn := range txns {
		if txn.Date.Year() != year || txn.Date.Month() != month {
			continue
		}
		if txn.IsIncome() {
			overview.Income = overview.Income.Add(txn.Amount.Abs())
			continue
		}
		overview.Expenses = overview.Expenses.Add(txn.Amount)
		byCategory[txn.Category] = byCategory[txn.Category].Add(txn.Amount)
	}
	overview.Net = overview.Income.Sub(overview.Expenses)

	for cat, amount := range byCategory {
		ca := CategoryAmount{Category: cat, Amount: amount}
		if overview.Expenses.IsPositive() {
			pct, _ := amount.Div(overview.Expenses).Mul(decimal.NewFromInt(100)).Float64()
			ca.Percentage = pct
		}
		overview.ByCategory = append(overview.ByCategory, ca)
	}
	sort.Slice(overview.ByCategory, func(i, j int) bool {
		if !overview.ByCategory[i].Amount.Equal(overview.ByCategory[j].Amount) {
			return overview.ByCategory[i].Amount.GreaterThan(overview.ByCategory[j].Amount)
		}
		return overview.ByCategory[i].Category < overview.ByCategory[j].Category
	})

	return overview
}

// Trend returns expense totals for the n months ending at ref's month,
// oldest first.
func Trend(txns []model.Transaction, ref time.Time, n int) []MonthTotal {
	totals := make([]MonthTotal, 0, n)
	for i := n - 1; i >= 0; i-- {
		m := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		total := MonthTotal{Year: m.Year(), Month: m.Month(), Expenses: decimal.Zero}
		for _, txn := range txns {
			if txn.Date.Year() == m.Year() && txn.Date.Month() == m.Month() && txn.IsExpense() {
				total.Expenses = total.Expenses.Add(txn.Amount)
			}
		}
		totals = append(totals, total)
	}
	return totals
}
