// Package graph builds and queries the dependency graph of a survey
// definition. Nodes are the form's rows; a directed edge (S, T) records
// that T's definition textually references S, so edges point from a
// dependency to the elements that use it.
//
// A Graph is built once from the ordered row sequence and is immutable
// afterwards: every query is a pure read, safe for concurrent use.
package graph

import (
	"sort"

	"github.com/surveytools/formgraph/internal/xlsform"
)

// DefaultHeaderOffset is the 1-based sheet row of the first data row when
// the source document has a single header row.
const DefaultHeaderOffset = 2

// Element is one node of the dependency graph: a survey row plus its fixed
// position in the input sequence. Identity is the Name; Position reflects
// original document order.
type Element struct {
	// Name is the unique element name.
	Name string
	// Type is the element's type discriminator.
	Type string
	// Position is the 0-based index of the row in the input sequence,
	// fixed at construction.
	Position int
	// Fields maps column headers to raw cell values.
	Fields map[string]string
	// Ancestors lists enclosing group/repeat names, outermost first.
	Ancestors []string
}

// Edge is a directed dependency: Target's definition references Source.
type Edge struct {
	Source string
	Target string
}

// Options control how a Graph is built.
type Options struct {
	// ExpressionColumns are the columns scanned for ${...} references, in
	// scan order. When empty, every column of every row is scanned, which
	// matches the permissive behavior of classic XLSForm analyzers.
	ExpressionColumns []string
	// HeaderOffset is the 1-based sheet row of the first data row, used by
	// AtRow lookups. Zero means DefaultHeaderOffset.
	HeaderOffset int
	// AncestorEdges adds an implicit dependency edge from each row's
	// immediate enclosing group or repeat.
	AncestorEdges bool
}

// Graph is the immutable dependency graph of one survey definition.
// Elements are stored by dense id equal to their input position, with
// incoming and outgoing adjacency lists kept sorted by position.
type Graph struct {
	elements     []*Element
	byName       map[string]int
	in           [][]int // in[t] = ids whose definitions t references
	out          [][]int // out[s] = ids whose definitions reference s
	edgeCount    int
	headerOffset int
}

// Build constructs the dependency graph from an ordered row sequence in a
// single pass. For each row T it scans the configured expression columns
// and adds an edge S -> T for every known name S referenced in them.
// Self-references are kept as real self-loop edges; duplicate references
// between the same pair collapse to one edge.
//
// Build fails with a *DuplicateNameError if two rows share a name; it
// cannot fail otherwise.
func Build(rows []xlsform.Row, opts Options) (*Graph, error) {
	headerOffset := opts.HeaderOffset
	if headerOffset == 0 {
		headerOffset = DefaultHeaderOffset
	}

	g := &Graph{
		elements:     make([]*Element, 0, len(rows)),
		byName:       make(map[string]int, len(rows)),
		in:           make([][]int, len(rows)),
		out:          make([][]int, len(rows)),
		headerOffset: headerOffset,
	}

	known := make(map[string]bool, len(rows))
	for i := range rows {
		row := &rows[i]
		if prev, exists := g.byName[row.Name]; exists {
			return nil, &DuplicateNameError{Name: row.Name, FirstPosition: prev, SecondPosition: i}
		}
		g.byName[row.Name] = i
		known[row.Name] = true
		g.elements = append(g.elements, &Element{
			Name:      row.Name,
			Type:      row.Type,
			Position:  i,
			Fields:    row.Fields,
			Ancestors: row.Ancestors,
		})
	}

	seen := make(map[[2]int]bool)
	addEdge := func(source, target int) {
		key := [2]int{source, target}
		if seen[key] {
			return
		}
		seen[key] = true
		g.out[source] = append(g.out[source], target)
		g.in[target] = append(g.in[target], source)
		g.edgeCount++
	}

	for t := range rows {
		row := &rows[t]
		for _, name := range extractRowRefs(row, opts.ExpressionColumns, known) {
			addEdge(g.byName[name], t)
		}
		if opts.AncestorEdges {
			if ancestor := row.ImmediateAncestor(); ancestor != "" {
				if s, ok := g.byName[ancestor]; ok {
					addEdge(s, t)
				}
			}
		}
	}

	for id := range g.elements {
		sort.Ints(g.in[id])
		sort.Ints(g.out[id])
	}

	return g, nil
}

// extractRowRefs collects the known names referenced by one row's
// expression-bearing fields. With no configured columns, all fields are
// scanned in sorted column order so results are deterministic.
func extractRowRefs(row *xlsform.Row, columns []string, known map[string]bool) []string {
	if len(columns) == 0 {
		columns = make([]string, 0, len(row.Fields))
		for column := range row.Fields {
			columns = append(columns, column)
		}
		sort.Strings(columns)
	}

	var refs []string
	for _, column := range columns {
		refs = append(refs, xlsform.ExtractRefs(row.Field(column), known)...)
	}
	return refs
}
