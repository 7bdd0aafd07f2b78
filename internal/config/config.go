package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/budgetwise-dev/budgetwise/internal/normalize"
)

// FileName is the config file at the project root.
const FileName = "budgetwise.yaml"

// Config represents the top-level budgetwise.yaml configuration.
type Config struct {
	Profile string             `yaml:"profile"`
	Import  ImportConfig       `yaml:"import"`
	Budgets map[string]float64 `yaml:"budgets,omitempty"` // category -> monthly limit
	Git     GitConfig          `yaml:"git"`
}

// ImportConfig controls statement parsing policy.
type ImportConfig struct {
	// TwoDigitYearPivot resolves two-digit years in statement dates:
	// yy < pivot is 20yy, otherwise 19yy.
	TwoDigitYearPivot int `yaml:"two_digit_year_pivot"`
}

// GitConfig controls optional git snapshots of the project directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a budgetwise.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Import.TwoDigitYearPivot == 0 {
		cfg.Import.TwoDigitYearPivot = normalize.DefaultYearPivot
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(profile string) *Config {
	return &Config{
		Profile: profile,
		Import: ImportConfig{
			TwoDigitYearPivot: normalize.DefaultYearPivot,
		},
		Budgets: map[string]float64{
			"groceries":     500,
			"utilities":     350,
			"entertainment": 200,
			"transport":     300,
			"food":          150,
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Budgetwise",
			AuthorEmail: "snapshots@budgetwise.dev",
		},
	}
}
