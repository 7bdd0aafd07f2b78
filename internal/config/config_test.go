package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwise-dev/budgetwise/internal/normalize"
)

func TestDefault(t *testing.T) {
	cfg := Default("personal")

	assert.Equal(t, "personal", cfg.Profile)
	assert.Equal(t, normalize.DefaultYearPivot, cfg.Import.TwoDigitYearPivot)
	assert.Equal(t, 500.0, cfg.Budgets["groceries"])
	assert.False(t, cfg.Git.AutoCommit)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default("default")
	cfg.Budgets["housing"] = 1200
	cfg.Git.AutoCommit = true
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("profile: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_PivotDefaultsWhenUnset(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("profile: default\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, normalize.DefaultYearPivot, cfg.Import.TwoDigitYearPivot)
}

func TestLoad_PivotRespectedWhenSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	data := "profile: default\nimport:\n  two_digit_year_pivot: 80\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.Import.TwoDigitYearPivot)
}
