// Package importer turns bank statement files into stored transactions.
// Format-specific parsers normalize each record (date, amount sign,
// category); the Service dispatches by file extension and writes results
// to the store one record at a time.
package importer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/budgetwise-dev/budgetwise/internal/model"
	"github.com/budgetwise-dev/budgetwise/internal/normalize"
)

// Parser converts raw statement file content into normalized transactions.
// Parsers never fail on expected malformed input: bad records are skipped
// and structurally broken files yield an empty slice.
type Parser interface {
	Parse(data []byte) ([]model.Transaction, error)
	Format() string
}

// Store accepts one transaction at a time, assigning its ID.
type Store interface {
	Add(txn model.Transaction) (model.Transaction, error)
}

var (
	// ErrUnsupportedFormat is returned before any parsing when the file
	// extension is outside the supported set.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrNoTransactions is returned when parsing succeeded but produced
	// nothing, distinct from a successful non-empty import.
	ErrNoTransactions = errors.New("no valid transactions found")
)

// Registry holds parsers keyed by format.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.parsers))
	for f := range r.parsers {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// DefaultRegistry returns a registry with all built-in parsers. QFX files
// are OFX-compatible and share the same parser logic.
func DefaultRegistry(dates *normalize.DateParser, logger *log.Logger) *Registry {
	r := NewRegistry()
	r.Register(&CSVParser{dates: dates, logger: logger})
	r.Register(&OFXParser{format: "ofx", dates: dates, logger: logger})
	r.Register(&OFXParser{format: "qfx", dates: dates, logger: logger})
	r.Register(NewPDFParser(dates, logger))
	return r
}

// Result summarizes one import run.
type Result struct {
	Format   string
	Imported int // records accepted by the store
	Failed   int // records the store rejected
}

// Service orchestrates imports: extension dispatch, parsing, and the
// store write loop. Imports are serialized; two back-to-back calls never
// interleave store writes.
type Service struct {
	registry *Registry
	store    Store
	logger   *log.Logger

	mu sync.Mutex
}

// NewService creates an import Service.
func NewService(registry *Registry, store Store, logger *log.Logger) *Service {
	return &Service{registry: registry, store: store, logger: logger}
}

// ImportFile reads a file from disk and imports it.
func (s *Service) ImportFile(path string) (Result, error) {
	// Reject unsupported formats before touching the file.
	ext := extension(path)
	if s.registry.Get(ext) == nil {
		return Result{}, s.unsupported(ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return s.Import(filepath.Base(path), data)
}

// Import parses file content and hands each resulting transaction to the
// store. One rejected record never aborts the batch; failures are counted
// in the result.
func (s *Service) Import(name string, data []byte) (Result, error) {
	ext := extension(name)
	p := s.registry.Get(ext)
	if p == nil {
		return Result{}, s.unsupported(ext)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txns, err := p.Parse(data)
	if err != nil {
		return Result{Format: p.Format()}, fmt.Errorf("parsing %s: %w", name, err)
	}

	if len(txns) == 0 {
		return Result{Format: p.Format()}, ErrNoTransactions
	}

	result := Result{Format: p.Format()}
	for _, txn := range txns {
		if _, err := s.store.Add(txn); err != nil {
			s.logger.Warn("store rejected transaction",
				"description", txn.Description, "err", err)
			result.Failed++
			continue
		}
		result.Imported++
	}
	return result, nil
}

func (s *Service) unsupported(ext string) error {
	return fmt.Errorf("%w: %q (supported: %s)",
		ErrUnsupportedFormat, ext, strings.Join(s.registry.Formats(), ", "))
}

func extension(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}
