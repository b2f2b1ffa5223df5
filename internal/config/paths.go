package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the XDG-compliant user config path,
// ~/.config/formgraph/config.yml (or $XDG_CONFIG_HOME when set).
func UserConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "formgraph", "config.yml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "formgraph", "config.yml"), nil
}

// ProjectConfigPath returns the project config path relative to the working
// directory.
func ProjectConfigPath() string {
	return filepath.Join(".formgraph", "config.yml")
}

// LegacyProjectConfigPath returns the deprecated JSON project config path.
func LegacyProjectConfigPath() string {
	return filepath.Join(".formgraph", "config.json")
}
