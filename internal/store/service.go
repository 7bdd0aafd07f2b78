package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/budgetwise-dev/budgetwise/internal/id"
	"github.com/budgetwise-dev/budgetwise/internal/model"
)

const profilesDir = "profiles"

// Service provides transaction persistence for one profile.
type Service struct {
	root    string
	profile string
}

// NewService creates a store Service rooted at a project directory.
func NewService(root, profile string) *Service {
	return &Service{root: root, profile: profile}
}

// Add validates a transaction, assigns it a fresh ID, and appends it to
// the profile's transactions.csv. The stored transaction is returned.
func (s *Service) Add(txn model.Transaction) (model.Transaction, error) {
	txn.Description = strings.TrimSpace(txn.Description)
	if err := Validate(txn); err != nil {
		return model.Transaction{}, err
	}

	txn.ID = id.New()

	path := s.filePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return model.Transaction{}, fmt.Errorf("creating profile dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("opening transactions file: %w", err)
	}
	defer f.Close()

	// A fresh file gets the header row along with the first record.
	write := AppendTransactions
	if isNew {
		write = WriteTransactions
	}
	if err := write(f, []model.Transaction{txn}); err != nil {
		return model.Transaction{}, fmt.Errorf("writing transaction: %w", err)
	}
	return txn, nil
}

// List returns all stored transactions, newest first. A missing file is
// an empty profile, not an error.
func (s *Service) List() ([]model.Transaction, error) {
	txns, err := s.readAll()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
	return txns, nil
}

// Clear removes every transaction for the profile.
func (s *Service) Clear() error {
	err := os.Remove(s.filePath())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clearing transactions: %w", err)
	}
	return nil
}

func (s *Service) readAll() ([]model.Transaction, error) {
	f, err := os.Open(s.filePath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening transactions file: %w", err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading transactions: %w", err)
	}
	return txns, nil
}

func (s *Service) filePath() string {
	return filepath.Join(s.root, profilesDir, s.profile, "transactions.csv")
}
