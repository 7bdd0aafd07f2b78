package model

import "strings"

// Category classifies a transaction. The set is closed: every stored
// transaction carries exactly one of these values.
type Category string

const (
	CategoryGroceries     Category = "groceries"
	CategoryUtilities     Category = "utilities"
	CategoryEntertainment Category = "entertainment"
	CategoryTransport     Category = "transport"
	CategoryHousing       Category = "housing"
	CategoryFood          Category = "food"
	CategoryHealth        Category = "health"
	CategoryPersonal      Category = "personal"
	CategoryEducation     Category = "education"
	CategoryOther         Category = "other"
)

// CategoryDefault is the fallback when classification finds no match.
const CategoryDefault = CategoryOther

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryGroceries,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryTransport,
		CategoryHousing,
		CategoryFood,
		CategoryHealth,
		CategoryPersonal,
		CategoryEducation,
		CategoryOther,
	}
}

// ParseCategory returns the category matching s (case-insensitive) and
// whether s named a valid member of the set.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Categories() {
		if c == valid {
			return c, true
		}
	}
	return CategoryDefault, false
}
