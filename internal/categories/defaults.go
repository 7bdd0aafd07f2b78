package categories

import "github.com/budgetwise-dev/budgetwise/internal/model"

// DefaultDetails returns the built-in display metadata, one entry per
// member of the category set.
func DefaultDetails() []Details {
	return []Details{
		{model.CategoryGroceries, "Groceries", "#4ade80", "shopping-cart"},
		{model.CategoryUtilities, "Utilities", "#facc15", "zap"},
		{model.CategoryEntertainment, "Entertainment", "#a78bfa", "film"},
		{model.CategoryTransport, "Transport", "#60a5fa", "car"},
		{model.CategoryHousing, "Housing", "#f87171", "home"},
		{model.CategoryFood, "Food & Dining", "#fb923c", "utensils"},
		{model.CategoryHealth, "Healthcare", "#34d399", "activity"},
		{model.CategoryPersonal, "Personal", "#f472b6", "user"},
		{model.CategoryEducation, "Education", "#38bdf8", "book-open"},
		{model.CategoryOther, "Other", "#9ca3af", "coffee"},
	}
}
