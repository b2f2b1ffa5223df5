// Package output provides terminal output formatting utilities for the
// formgraph CLI. It is kept dependency-light to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// PrintSectionHeader prints a bold section title with an underline sized to
// the title.
func PrintSectionHeader(out io.Writer, title string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s\n%s\n", bold(title), strings.Repeat("-", len(title)))
}

// PrintOK prints a green check line.
func PrintOK(out io.Writer, format string, args ...interface{}) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), fmt.Sprintf(format, args...))
}

// PrintWarning prints a yellow warning line.
func PrintWarning(out io.Writer, format string, args ...interface{}) {
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", yellow("!"), fmt.Sprintf(format, args...))
}

// PrintFail prints a red failure line.
func PrintFail(out io.Writer, format string, args ...interface{}) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", red("✗"), fmt.Sprintf(format, args...))
}

// PrintKeyValue prints an aligned "key: value" line with a cyan key.
func PrintKeyValue(out io.Writer, key string, value interface{}) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(out, "  %s %v\n", cyan(key+":"), value)
}
