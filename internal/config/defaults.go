package config

// DefaultExpressionColumns are the XLSForm columns that commonly embed
// ${...} references. Column order is scan order.
var DefaultExpressionColumns = []string{
	"calculation",
	"relevant",
	"relevance",
	"constraint",
	"choice_filter",
	"repeat_count",
	"default",
	"trigger",
	"label",
	"hint",
	"constraint_message",
	"required_message",
	"required",
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		// sheet: worksheet holding the survey definition in an XLSX workbook.
		"sheet": "survey",
		// header_offset: 1-based sheet row of the first data row.
		// 2 means a single header row, the normal XLSForm layout.
		"header_offset": 2,
		// expression_columns: columns scanned for ${...} references.
		"expression_columns": append([]string(nil), DefaultExpressionColumns...),
		// scan_all_columns: scan every column instead (classic analyzer mode).
		"scan_all_columns": false,
		// ancestor_edges: treat the enclosing group/repeat as a dependency.
		"ancestor_edges": true,
	}
}

// GetDefaultConfigTemplate returns a commented config template for
// 'formgraph init' style bootstrapping and documentation.
func GetDefaultConfigTemplate() string {
	return `# formgraph configuration
# Project file: .formgraph/config.yml
# User file:    ~/.config/formgraph/config.yml
# Environment:  FORMGRAPH_* (e.g. FORMGRAPH_SHEET, FORMGRAPH_HEADER_OFFSET)

sheet: survey                 # Worksheet holding the survey definition
header_offset: 2              # 1-based sheet row of the first data row
scan_all_columns: false       # Scan every column for ${...} references
ancestor_edges: true          # Treat enclosing groups/repeats as dependencies

# Columns scanned for ${...} references (ignored with scan_all_columns: true)
expression_columns:
  - calculation
  - relevant
  - relevance
  - constraint
  - choice_filter
  - repeat_count
  - default
  - trigger
  - label
  - hint
  - constraint_message
  - required_message
  - required
`
}
