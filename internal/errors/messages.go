package errors

import "fmt"

// Common error constructors for the formgraph CLI. These templates keep
// messages consistent and actionable across commands.

// MissingFormArgument creates an error for a missing survey file argument.
func MissingFormArgument(command string) *CLIError {
	return NewArgumentErrorWithUsage(
		"survey file is required",
		fmt.Sprintf("formgraph %s <form.xlsx>", command),
		"Pass the path to an XLSForm workbook, CSV sheet export, or YAML survey",
	)
}

// FormNotFound creates an error for an unreadable survey file.
func FormNotFound(path string) *CLIError {
	return NewInputError(
		fmt.Sprintf("survey file not found: %s", path),
		"Check the path for typos",
		"Supported formats: .xlsx, .xlsm, .csv, .yaml",
	)
}

// UnknownElement creates an error for a query naming an element that is not
// in the form.
func UnknownElement(name string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("no element named %q in this form", name),
		"Run 'formgraph show <form>' without arguments to list element names",
	)
}

// DuplicateElement creates an error for duplicate element names in the form.
func DuplicateElement(name string) *CLIError {
	return NewInputError(
		fmt.Sprintf("the form declares the name %q more than once", name),
		"Element names must be unique within the survey sheet",
		"Rename one of the duplicate rows and re-run",
	)
}
