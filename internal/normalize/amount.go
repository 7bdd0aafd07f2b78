package normalize

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// incomeKeywords mark a description as money received. Matching is
// case-insensitive substring.
var incomeKeywords = []string{"deposit", "salary", "payroll", "payment from"}

// ParseAmount strips currency symbols and thousands separators from a raw
// amount token and parses the remainder. An empty or non-numeric token is
// an error; callers drop the owning record rather than coerce to zero.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, raw)

	if cleaned == "" || cleaned == "-" {
		return decimal.Zero, fmt.Errorf("no digits in amount %q", raw)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	return amount, nil
}

// IsIncomeDescription reports whether desc contains an income keyword.
func IsIncomeDescription(desc string) bool {
	lower := strings.ToLower(desc)
	for _, kw := range incomeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ApplySign enforces the project-wide sign convention: expenses positive,
// income negative. The description wins over whatever sign the source
// format encoded; amounts already carrying the correct sign pass through
// unchanged, so the correction is idempotent.
func ApplySign(desc string, amount decimal.Decimal) decimal.Decimal {
	if IsIncomeDescription(desc) {
		if amount.IsPositive() {
			return amount.Neg()
		}
		return amount
	}
	if amount.IsNegative() {
		return amount.Abs()
	}
	return amount
}
