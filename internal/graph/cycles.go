package graph

// Cycles enumerates every elementary directed cycle in the graph using
// Johnson's algorithm: for each start vertex s in position order, circuits
// through s are enumerated inside the strongly connected component of s
// within the subgraph of vertices >= s, so each cycle is reported exactly
// once, rooted at its lowest-position member. Self-loops are cycles of
// length one. Enumeration can be exponential in densely cyclic graphs,
// which is inherent to the problem.
//
// Each cycle is returned as element names in traversal order.
func (g *Graph) Cycles() [][]string {
	n := len(g.elements)
	j := &circuitFinder{
		g:         g,
		blocked:   make([]bool, n),
		blockedBy: make([][]int, n),
		allowed:   make([]bool, n),
	}

	for s := 0; s < n; s++ {
		comp := g.componentOf(s)
		if len(comp) == 1 && !g.hasEdge(s, s) {
			continue
		}
		for i := range j.allowed {
			j.allowed[i] = false
		}
		for _, v := range comp {
			j.allowed[v] = true
			j.blocked[v] = false
			j.blockedBy[v] = j.blockedBy[v][:0]
		}
		j.start = s
		j.circuit(s)
	}

	return j.cycles
}

// IsAcyclic reports whether the graph contains no directed cycles,
// self-loops included.
func (g *Graph) IsAcyclic() bool {
	n := len(g.elements)
	// 0 = unvisited, 1 = on stack, 2 = done
	state := make([]int, n)
	var visit func(int) bool
	visit = func(v int) bool {
		state[v] = 1
		for _, w := range g.out[v] {
			switch state[w] {
			case 1:
				return false
			case 0:
				if !visit(w) {
					return false
				}
			}
		}
		state[v] = 2
		return true
	}
	for v := 0; v < n; v++ {
		if state[v] == 0 && !visit(v) {
			return false
		}
	}
	return true
}

// circuitFinder holds the mutable state of one Johnson enumeration.
type circuitFinder struct {
	g         *Graph
	start     int
	allowed   []bool
	blocked   []bool
	blockedBy [][]int
	stack     []int
	cycles    [][]string
}

// circuit explores elementary paths from v back to the start vertex,
// reporting each completed cycle. Returns whether any cycle was found at or
// below v, which drives the unblocking discipline.
func (j *circuitFinder) circuit(v int) bool {
	found := false
	j.stack = append(j.stack, v)
	j.blocked[v] = true

	for _, w := range j.g.out[v] {
		if !j.allowed[w] {
			continue
		}
		if w == j.start {
			j.emit()
			found = true
		} else if !j.blocked[w] {
			if j.circuit(w) {
				found = true
			}
		}
	}

	if found {
		j.unblock(v)
	} else {
		for _, w := range j.g.out[v] {
			if j.allowed[w] {
				j.blockedBy[w] = appendMissing(j.blockedBy[w], v)
			}
		}
	}

	j.stack = j.stack[:len(j.stack)-1]
	return found
}

// emit records the current stack as one cycle.
func (j *circuitFinder) emit() {
	cycle := make([]string, len(j.stack))
	for i, id := range j.stack {
		cycle[i] = j.g.elements[id].Name
	}
	j.cycles = append(j.cycles, cycle)
}

// unblock releases v and cascades through the vertices blocked on it.
func (j *circuitFinder) unblock(v int) {
	j.blocked[v] = false
	for len(j.blockedBy[v]) > 0 {
		w := j.blockedBy[v][len(j.blockedBy[v])-1]
		j.blockedBy[v] = j.blockedBy[v][:len(j.blockedBy[v])-1]
		if j.blocked[w] {
			j.unblock(w)
		}
	}
}

// componentOf returns the strongly connected component containing s within
// the subgraph induced on vertices >= s, via Tarjan's algorithm.
func (g *Graph) componentOf(s int) []int {
	n := len(g.elements)
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}
	var stack []int
	next := 0
	var result []int

	var strongConnect func(int)
	strongConnect = func(v int) {
		index[v] = next
		low[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range g.out[v] {
			if w < s {
				continue
			}
			if index[w] == -1 {
				strongConnect(w)
				if low[w] < low[v] {
					low[v] = low[w]
				}
			} else if onStack[w] && index[w] < low[v] {
				low[v] = index[w]
			}
		}

		if low[v] == index[v] {
			var comp []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			for _, w := range comp {
				if w == s {
					result = comp
					return
				}
			}
		}
	}

	strongConnect(s)
	return result
}

// hasEdge reports whether the edge (s, t) exists. Adjacency lists are
// sorted, but a linear scan is fine at survey scale.
func (g *Graph) hasEdge(s, t int) bool {
	for _, w := range g.out[s] {
		if w == t {
			return true
		}
	}
	return false
}

// appendMissing appends v to ids unless already present.
func appendMissing(ids []int, v int) []int {
	for _, id := range ids {
		if id == v {
			return ids
		}
	}
	return append(ids, v)
}
