package graph

import "fmt"

// DuplicateNameError reports two rows declaring the same element name.
// Duplicate names are fatal to graph construction: no graph is returned.
type DuplicateNameError struct {
	// Name is the duplicated element name.
	Name string
	// FirstPosition is the 0-based position of the first declaration.
	FirstPosition int
	// SecondPosition is the 0-based position of the duplicate.
	SecondPosition int
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate element name %q (positions %d and %d)",
		e.Name, e.FirstPosition, e.SecondPosition)
}

// NotFoundError reports a lookup for an element name that is not part of
// the graph.
type NotFoundError struct {
	// Name is the element name that was looked up.
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no element named %q in graph", e.Name)
}

// IndexError reports an out-of-range positional or sheet-row lookup.
type IndexError struct {
	// Kind identifies the lookup space: "position" or "row".
	Kind string
	// Index is the requested index.
	Index int
	// Count is the number of elements in the graph.
	Count int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s %d out of range for graph with %d elements",
		e.Kind, e.Index, e.Count)
}
