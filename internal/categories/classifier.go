// Package categories maps free-text transaction descriptions onto the
// closed category set and owns the display metadata for each category.
package categories

import (
	"strings"

	"github.com/budgetwise-dev/budgetwise/internal/model"
)

// rule maps any of its keywords to a category. Rules are evaluated in
// order and the first keyword hit wins, so specific keywords ("gas
// station") must precede generic ones ("gas").
type rule struct {
	category model.Category
	keywords []string
}

var rules = []rule{
	{model.CategoryGroceries, []string{"grocery", "supermarket"}},
	{model.CategoryEntertainment, []string{"netflix", "cinema", "movie"}},
	{model.CategoryTransport, []string{"gas station", "uber", "lyft"}},
	{model.CategoryUtilities, []string{"electric", "water", "gas", "bill"}},
	{model.CategoryHousing, []string{"rent", "mortgage"}},
	{model.CategoryFood, []string{"restaurant", "cafe", "coffee"}},
	{model.CategoryHealth, []string{"pharmacy", "doctor", "hospital"}},
	{model.CategoryPersonal, []string{"clothing", "salon"}},
	{model.CategoryEducation, []string{"course", "book", "school"}},
}

// Classify returns the category for a description. It is a pure function:
// the same description always yields the same category, and the result is
// always a member of the closed set (model.CategoryDefault when no rule
// matches).
func Classify(description string) model.Category {
	lower := strings.ToLower(description)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return model.CategoryDefault
}
