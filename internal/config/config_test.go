package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWithOptions(LoadOptions{
		ProjectConfigPath: filepath.Join(t.TempDir(), "nonexistent.yml"),
		SkipWarnings:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, "survey", cfg.Sheet)
	assert.Equal(t, 2, cfg.HeaderOffset)
	assert.True(t, cfg.AncestorEdges)
	assert.False(t, cfg.ScanAllColumns)
	assert.Contains(t, cfg.ExpressionColumns, "calculation")
	assert.Contains(t, cfg.ExpressionColumns, "relevant")
}

func TestLoad_ProjectConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
sheet: questionnaire
header_offset: 3
ancestor_edges: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true})
	require.NoError(t, err)

	assert.Equal(t, "questionnaire", cfg.Sheet)
	assert.Equal(t, 3, cfg.HeaderOffset)
	assert.False(t, cfg.AncestorEdges)
	// Untouched keys keep their defaults.
	assert.Contains(t, cfg.ExpressionColumns, "constraint")
}

func TestLoad_EnvironmentOverridesProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("sheet: questionnaire\n"), 0o644))

	t.Setenv("FORMGRAPH_SHEET", "enquete")
	t.Setenv("FORMGRAPH_HEADER_OFFSET", "5")

	cfg, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true})
	require.NoError(t, err)

	assert.Equal(t, "enquete", cfg.Sheet)
	assert.Equal(t, 5, cfg.HeaderOffset)
}

func TestLoad_InvalidYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("sheet: [unclosed\n"), 0o644))

	_, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true})
	assert.Error(t, err)
}

func TestLoad_InvalidHeaderOffsetFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("header_offset: 0\n"), 0o644))

	_, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true})
	assert.Error(t, err)
}

func TestScanColumns(t *testing.T) {
	cfg := &Configuration{ExpressionColumns: []string{"calculation"}}
	assert.Equal(t, []string{"calculation"}, cfg.ScanColumns())

	cfg.ScanAllColumns = true
	assert.Nil(t, cfg.ScanColumns())
}

func TestValidateConfigValues_RequiresColumnsOrScanAll(t *testing.T) {
	cfg := &Configuration{Sheet: "survey", HeaderOffset: 2}
	err := ValidateConfigValues(cfg)
	require.Error(t, err)

	cfg.ScanAllColumns = true
	assert.NoError(t, ValidateConfigValues(cfg))
}

func TestValidateYAMLSyntax(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, ValidateYAMLSyntax(filepath.Join(dir, "missing.yml")))

	empty := filepath.Join(dir, "empty.yml")
	require.NoError(t, os.WriteFile(empty, []byte("  \n"), 0o644))
	assert.NoError(t, ValidateYAMLSyntax(empty))

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("a: [1,\n"), 0o644))
	assert.Error(t, ValidateYAMLSyntax(bad))
}
