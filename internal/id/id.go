package id

import (
	"fmt"

	"github.com/google/uuid"
)

// New returns a fresh transaction ID.
func New() string {
	return uuid.NewString()
}

// Validate checks that s is a well-formed transaction ID.
func Validate(s string) error {
	if _, err := uuid.Parse(s); err != nil {
		return fmt.Errorf("invalid transaction ID %q: %w", s, err)
	}
	return nil
}
