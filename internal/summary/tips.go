package summary

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/budgetwise-dev/budgetwise/internal/model"
)

// Difficulty grades how hard a savings tip is to act on.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Tip is one savings suggestion. Tips are advisory; the amounts are rough
// estimates, not commitments.
type Tip struct {
	Title            string
	Description      string
	PotentialSavings decimal.Decimal
	Difficulty       Difficulty
}

// categoryAdvice holds per-category tip copy.
var categoryAdvice = map[model.Category]struct {
	title      string
	advice     string
	difficulty Difficulty
}{
	model.CategoryFood:          {"Reduce Dining Out", "Try cooking at home more often.", DifficultyMedium},
	model.CategoryEntertainment: {"Review Subscriptions", "Cancel entertainment subscriptions you rarely use.", DifficultyEasy},
	model.CategoryUtilities:     {"Utility Savings", "Turn off lights and electronics when not in use.", DifficultyEasy},
	model.CategoryGroceries:     {"Grocery Shopping Strategy", "Shop with a list to avoid impulse buys.", DifficultyMedium},
	model.CategoryTransport:     {"Transportation Alternatives", "Consider public transport or carpooling.", DifficultyHard},
}

// Tips derives savings suggestions from a month's spending against the
// configured budget limits. Over-budget categories come first, then a
// generic suggestion for the heaviest spending category.
func Tips(overview MonthOverview, budgets map[string]float64) []Tip {
	var tips []Tip

	for _, ca := range overview.ByCategory {
		limit, ok := budgets[string(ca.Category)]
		if !ok || limit <= 0 {
			continue
		}
		limitDec := decimal.NewFromFloat(limit)
		if ca.Amount.LessThanOrEqual(limitDec) {
			continue
		}

		overage := ca.Amount.Sub(limitDec)
		advice, ok := categoryAdvice[ca.Category]
		if !ok {
			advice.title = fmt.Sprintf("Trim %s spending", ca.Category)
			advice.advice = "Look for recurring charges you can cut."
			advice.difficulty = DifficultyMedium
		}
		tips = append(tips, Tip{
			Title: advice.title,
			Description: fmt.Sprintf("You spent %s on %s this month, %s over your budget. %s",
				ca.Amount.StringFixed(2), ca.Category, overage.StringFixed(2), advice.advice),
			PotentialSavings: overage,
			Difficulty:       advice.difficulty,
		})
	}

	// Heaviest category gets a generic 10% trim suggestion even when it
	// is under budget.
	if len(overview.ByCategory) > 0 {
		top := overview.ByCategory[0]
		if _, alreadyTipped := budgets[string(top.Category)]; !alreadyTipped || !overBudget(top, budgets) {
			savings := top.Amount.Div(decimal.NewFromInt(10)).Round(2)
			if savings.IsPositive() {
				tips = append(tips, Tip{
					Title: fmt.Sprintf("Top spending: %s", top.Category),
					Description: fmt.Sprintf("%s is your largest expense category at %s. Trimming 10%% would save %s.",
						top.Category, top.Amount.StringFixed(2), savings.StringFixed(2)),
					PotentialSavings: savings,
					Difficulty:       DifficultyMedium,
				})
			}
		}
	}

	return tips
}

func overBudget(ca CategoryAmount, budgets map[string]float64) bool {
	limit, ok := budgets[string(ca.Category)]
	if !ok || limit <= 0 {
		return false
	}
	return ca.Amount.GreaterThan(decimal.NewFromFloat(limit))
}
