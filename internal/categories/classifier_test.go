package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/budgetwise-dev/budgetwise/internal/model"
)

func TestClassify(t *testing.T) {
	cases := map[string]model.Category{
		"Grocery Store":        model.CategoryGroceries,
		"LOCAL SUPERMARKET 42": model.CategoryGroceries,
		"Netflix Subscription": model.CategoryEntertainment,
		"Electric Bill":        model.CategoryUtilities,
		"Gas Bill":             model.CategoryUtilities,
		"Uber Trip":            model.CategoryTransport,
		"Rent Payment":         model.CategoryHousing,
		"Starbucks Coffee":     model.CategoryFood,
		"Dinner at Restaurant": model.CategoryFood,
		"Pharmacy":             model.CategoryHealth,
		"Clothing Store":       model.CategoryPersonal,
		"Online Course":        model.CategoryEducation,
		"Salary Deposit":       model.CategoryOther,
		"":                     model.CategoryOther,
		"zzzz nonsense":        model.CategoryOther,
	}

	for desc, want := range cases {
		assert.Equal(t, want, Classify(desc), "Classify(%q)", desc)
	}
}

func TestClassify_SpecificBeforeGeneric(t *testing.T) {
	// "gas station" is transport; the generic "gas" keyword must not
	// shadow it.
	assert.Equal(t, model.CategoryTransport, Classify("Gas Station Fill-Up"))
	assert.Equal(t, model.CategoryUtilities, Classify("Gas supply monthly"))
}

func TestClassify_Totality(t *testing.T) {
	// Every description resolves to a member of the closed set.
	for _, desc := range []string{"", " ", "123", "ünïcode", "coffee rent uber"} {
		got := Classify(desc)
		_, ok := model.ParseCategory(string(got))
		assert.True(t, ok, "Classify(%q) returned %q, not in the closed set", desc, got)
	}
}

func TestClassify_Pure(t *testing.T) {
	for _, desc := range []string{"Grocery Store", "whatever", ""} {
		assert.Equal(t, Classify(desc), Classify(desc))
	}
}
