package graph

import "sort"

// NodeCount returns the number of nodes in the graph, which always equals
// the number of input rows.
func (g *Graph) NodeCount() int {
	return len(g.elements)
}

// EdgeCount returns the number of distinct dependency edges.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Isolates returns the elements with no dependencies and no dependents,
// ordered by position. A self-looped element is not an isolate.
func (g *Graph) Isolates() []*Element {
	var out []*Element
	for id, el := range g.elements {
		if len(g.in[id]) == 0 && len(g.out[id]) == 0 {
			out = append(out, el)
		}
	}
	return out
}

// TerminalNodes returns the elements that depend on at least one other
// element while nothing depends on them (in-degree > 0, out-degree == 0),
// ordered by position.
func (g *Graph) TerminalNodes() []*Element {
	var out []*Element
	for id, el := range g.elements {
		if len(g.in[id]) > 0 && len(g.out[id]) == 0 {
			out = append(out, el)
		}
	}
	return out
}

// ForwardDependencies returns the edges whose source is defined later in
// the document than the element referencing it. XLSForm authors normally
// define a field before using it, so each returned edge is an out-of-order
// reference worth review. Edges are ordered by target position, ties broken
// by source position.
func (g *Graph) ForwardDependencies() []Edge {
	var out []Edge
	for t := range g.elements {
		for _, s := range g.in[t] {
			if s > t {
				out = append(out, Edge{Source: g.elements[s].Name, Target: g.elements[t].Name})
			}
		}
	}
	return out
}

// Edges returns every dependency edge, ordered by source position then
// target position.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for s := range g.elements {
		for _, t := range g.out[s] {
			out = append(out, Edge{Source: g.elements[s].Name, Target: g.elements[t].Name})
		}
	}
	return out
}

// Predecessors returns the direct dependencies of the named element (the
// elements its definition references), ordered by position.
func (g *Graph) Predecessors(name string) ([]*Element, error) {
	id, ok := g.byName[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return g.elementsAt(g.in[id]), nil
}

// Successors returns the direct dependents of the named element (the
// elements whose definitions reference it), ordered by position.
func (g *Graph) Successors(name string) ([]*Element, error) {
	id, ok := g.byName[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return g.elementsAt(g.out[id]), nil
}

// AllDependenciesOf returns every element reachable by walking dependency
// edges backward from the seeds: the full upstream closure. Seeds are
// excluded unless a cycle leads back to them. The result is the union over
// all seeds, ordered by position.
func (g *Graph) AllDependenciesOf(names ...string) ([]*Element, error) {
	return g.closure(names, g.in)
}

// AllNodesDependentOn returns every element that transitively depends on
// any of the seeds: the full downstream closure. Seeds are excluded unless
// a cycle leads back to them. The result is the union over all seeds,
// ordered by position.
func (g *Graph) AllNodesDependentOn(names ...string) ([]*Element, error) {
	return g.closure(names, g.out)
}

// closure walks adj from the seeds' neighbors outward with a visited set,
// so cyclic graphs terminate. A seed appears in the result only when the
// walk re-reaches it through at least one edge.
func (g *Graph) closure(names []string, adj [][]int) ([]*Element, error) {
	seeds := make([]int, 0, len(names))
	for _, name := range names {
		id, ok := g.byName[name]
		if !ok {
			return nil, &NotFoundError{Name: name}
		}
		seeds = append(seeds, id)
	}

	reached := make(map[int]bool)
	var stack []int
	push := func(ids []int) {
		for _, id := range ids {
			if !reached[id] {
				reached[id] = true
				stack = append(stack, id)
			}
		}
	}

	for _, s := range seeds {
		push(adj[s])
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		push(adj[id])
	}

	ids := make([]int, 0, len(reached))
	for id := range reached {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return g.elementsAt(ids), nil
}

// elementsAt maps sorted ids to their elements.
func (g *Graph) elementsAt(ids []int) []*Element {
	out := make([]*Element, len(ids))
	for i, id := range ids {
		out[i] = g.elements[id]
	}
	return out
}
