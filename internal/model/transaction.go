package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the canonical record every statement parser converges on.
// Sign convention: positive amount = money spent, negative amount = money
// received. Parsers and the store both enforce this.
type Transaction struct {
	ID          string // assigned by the store; parsers leave it empty
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    Category // always a member of the closed set
}

// IsIncome reports whether the transaction is money received.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsNegative()
}

// IsExpense reports whether the transaction is money spent.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsPositive()
}
