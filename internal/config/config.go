// Package config provides hierarchical configuration management for
// formgraph using koanf. Configuration is loaded with priority: environment
// variables > project config (.formgraph/config.yml) > user config
// (~/.config/formgraph/config.yml) > defaults. YAML is the primary format;
// legacy JSON project files are still read with a deprecation warning.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds the survey-analysis settings formgraph runs with.
type Configuration struct {
	// Sheet is the worksheet holding the survey definition in an XLSX
	// workbook. Ignored for CSV and YAML inputs.
	Sheet string `koanf:"sheet" validate:"required"`

	// HeaderOffset is the 1-based sheet row of the first data row, used to
	// resolve original-row-number lookups. 2 means one header row.
	HeaderOffset int `koanf:"header_offset" validate:"min=1"`

	// ExpressionColumns lists the columns scanned for ${...} references, in
	// scan order. Ignored when ScanAllColumns is set.
	ExpressionColumns []string `koanf:"expression_columns"`

	// ScanAllColumns scans every column of every row, matching the
	// permissive behavior of classic XLSForm analyzers.
	ScanAllColumns bool `koanf:"scan_all_columns"`

	// AncestorEdges adds an implicit dependency edge from each row's
	// immediate enclosing group or repeat.
	AncestorEdges bool `koanf:"ancestor_edges"`
}

// ScanColumns returns the columns the graph builder should scan: nil in
// scan-everything mode, the configured list otherwise.
func (c *Configuration) ScanColumns() []string {
	if c.ScanAllColumns {
		return nil
	}
	return c.ExpressionColumns
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path
	// (default: .formgraph/config.yml).
	ProjectConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr).
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings.
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: environment variables > project config > user config > defaults.
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := opts.WarningWriter
	if warningWriter == nil {
		warningWriter = os.Stderr
	}

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(k, opts.ProjectConfigPath, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}
	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := ValidateConfigValues(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadUserConfig loads the user-level YAML config when present.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil || !fileExists(path) {
		return nil
	}
	return loadYAMLConfig(k, path, "user")
}

// loadProjectConfig loads the project-level config. YAML is preferred; a
// legacy JSON file is read with a deprecation warning when no YAML exists.
func loadProjectConfig(k *koanf.Koanf, customPath string, warningWriter io.Writer, skipWarnings bool) error {
	yamlPath := ProjectConfigPath()
	if customPath != "" {
		yamlPath = customPath
	}
	legacyPath := LegacyProjectConfigPath()

	if fileExists(yamlPath) {
		return loadYAMLConfig(k, yamlPath, "project")
	}
	if customPath == "" && fileExists(legacyPath) {
		if err := k.Load(file.Provider(legacyPath), json.Parser()); err != nil {
			return fmt.Errorf("failed to load legacy project config %s: %w", legacyPath, err)
		}
		if !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s\n", legacyPath)
			fmt.Fprintf(warningWriter, "  Rewrite it as %s to silence this warning.\n\n", ProjectConfigPath())
		}
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file.
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads FORMGRAPH_* environment overrides, e.g.
// FORMGRAPH_SHEET or FORMGRAPH_HEADER_OFFSET.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("FORMGRAPH_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// envTransform maps FORMGRAPH_HEADER_OFFSET to header_offset.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "FORMGRAPH_"))
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
