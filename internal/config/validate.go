package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	FilePath string
	Field    string
	Message  string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// ValidateYAMLSyntax checks that a YAML config file parses. A missing or
// empty file is valid (defaults apply).
func ValidateYAMLSyntax(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}
	return nil
}

// ValidateConfigValues checks the loaded configuration against its
// struct-level constraints.
func ValidateConfigValues(cfg *Configuration) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			first := errs[0]
			return &ValidationError{
				FilePath: "config",
				Field:    strings.ToLower(first.Field()),
				Message:  fmt.Sprintf("failed %q constraint", first.Tag()),
			}
		}
		return err
	}
	if !cfg.ScanAllColumns && len(cfg.ExpressionColumns) == 0 {
		return &ValidationError{
			FilePath: "config",
			Field:    "expression_columns",
			Message:  "must list at least one column unless scan_all_columns is set",
		}
	}
	return nil
}
