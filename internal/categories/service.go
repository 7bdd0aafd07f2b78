package categories

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/budgetwise-dev/budgetwise/internal/model"
)

const detailsFile = "categories.csv"

// Service provides in-memory lookup over category display metadata. The
// table is immutable after construction; components that render category
// names receive a Service rather than reaching into a global.
type Service struct {
	details    []Details
	byCategory map[model.Category]Details
}

// NewService creates a Service from a metadata slice. Categories missing
// from the slice fall back to their bare enum name on lookup.
func NewService(details []Details) *Service {
	byCategory := make(map[model.Category]Details, len(details))
	for _, d := range details {
		byCategory[d.Category] = d
	}
	return &Service{details: details, byCategory: byCategory}
}

// Load reads categories.csv from a project root and returns a Service.
// A missing file yields the built-in defaults.
func Load(root string) (*Service, error) {
	f, err := os.Open(filepath.Join(root, detailsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return NewService(DefaultDetails()), nil
		}
		return nil, fmt.Errorf("opening categories file: %w", err)
	}
	defer f.Close()

	details, err := ReadDetails(f)
	if err != nil {
		return nil, fmt.Errorf("reading categories file: %w", err)
	}
	return NewService(details), nil
}

// All returns every metadata entry.
func (s *Service) All() []Details {
	return s.details
}

// Get returns the metadata for a category.
func (s *Service) Get(cat model.Category) (Details, bool) {
	d, ok := s.byCategory[cat]
	return d, ok
}

// DisplayName returns the display name for a category, falling back to
// the enum value itself.
func (s *Service) DisplayName(cat model.Category) string {
	if d, ok := s.byCategory[cat]; ok {
		return d.DisplayName
	}
	return string(cat)
}

// Save writes the metadata table to <root>/categories.csv.
func (s *Service) Save(root string) error {
	f, err := os.Create(filepath.Join(root, detailsFile))
	if err != nil {
		return fmt.Errorf("creating categories file: %w", err)
	}
	defer f.Close()

	if err := WriteDetails(f, s.details); err != nil {
		return fmt.Errorf("writing categories file: %w", err)
	}
	return nil
}
