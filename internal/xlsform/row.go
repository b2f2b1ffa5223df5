// Package xlsform models rows of an XLSForm-style survey definition and
// extracts the ${...} variable references embedded in their expression
// fields (calculations, relevance conditions, constraints, labels).
package xlsform

// Row is one data row of a survey definition sheet: a single question,
// calculate, group, or other element.
type Row struct {
	// Name is the element name from the "name" column. Names are the
	// identity of graph nodes and must be unique within one form.
	Name string
	// Type is the value of the "type" column (e.g., "integer", "calculate",
	// "select_one yes_no", "begin group").
	Type string
	// Fields maps column headers to raw cell values for the whole row,
	// including the name and type columns.
	Fields map[string]string
	// Ancestors lists the names of the groups and repeats enclosing this
	// row, outermost first. Empty for top-level rows.
	Ancestors []string
}

// Field returns the raw value of the named column, or "" when the column is
// absent from the row.
func (r *Row) Field(column string) string {
	return r.Fields[column]
}

// ImmediateAncestor returns the name of the closest enclosing group or
// repeat, or "" when the row is at the top level.
func (r *Row) ImmediateAncestor() string {
	if len(r.Ancestors) == 0 {
		return ""
	}
	return r.Ancestors[len(r.Ancestors)-1]
}
