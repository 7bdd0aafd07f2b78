package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/budgetwise-dev/budgetwise/internal/model"
)

var (
	errEmptyDescription = errors.New("empty description")
	errZeroDate         = errors.New("zero date")
)

// Validate checks a transaction before it is persisted. The store rejects
// individual records rather than whole batches, so every error here is
// per-record.
func Validate(txn model.Transaction) error {
	if strings.TrimSpace(txn.Description) == "" {
		return errEmptyDescription
	}
	if txn.Date.IsZero() {
		return errZeroDate
	}
	if _, ok := model.ParseCategory(string(txn.Category)); !ok {
		return fmt.Errorf("unknown category %q", txn.Category)
	}
	return nil
}
