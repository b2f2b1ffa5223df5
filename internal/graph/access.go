package graph

// Len returns the number of elements in the graph.
func (g *Graph) Len() int {
	return len(g.elements)
}

// Elements returns all elements in input order. The returned slice is a
// copy; the elements themselves are shared and must not be mutated.
func (g *Graph) Elements() []*Element {
	out := make([]*Element, len(g.elements))
	copy(out, g.elements)
	return out
}

// ByName returns the element with the given name, or a *NotFoundError.
func (g *Graph) ByName(name string) (*Element, error) {
	id, ok := g.byName[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return g.elements[id], nil
}

// At returns the element at a 0-based position, or an *IndexError when the
// position is outside [0, Len).
func (g *Graph) At(position int) (*Element, error) {
	if position < 0 || position >= len(g.elements) {
		return nil, &IndexError{Kind: "position", Index: position, Count: len(g.elements)}
	}
	return g.elements[position], nil
}

// AtRow returns the element at a 1-based sheet row number, accounting for
// the header offset the graph was built with. Rows before the first data
// row or past the last element return an *IndexError.
func (g *Graph) AtRow(row int) (*Element, error) {
	position := row - g.headerOffset
	if position < 0 || position >= len(g.elements) {
		return nil, &IndexError{Kind: "row", Index: row, Count: len(g.elements)}
	}
	return g.elements[position], nil
}

// Slice returns the elements in the half-open range [start, stop).
// Negative indices count from the end and out-of-range bounds clamp
// rather than error. An empty range returns nil.
func (g *Graph) Slice(start, stop int) []*Element {
	n := len(g.elements)
	start = clampIndex(start, n)
	stop = clampIndex(stop, n)
	if start >= stop {
		return nil
	}
	out := make([]*Element, stop-start)
	copy(out, g.elements[start:stop])
	return out
}

// clampIndex resolves a possibly negative slice index against length n and
// clamps it into [0, n].
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			i = 0
		}
	}
	if i > n {
		i = n
	}
	return i
}
