package core

import (
	"fmt"
	"sort"
)

// AddVertex registers v with no outgoing edges. Adding a known vertex is a
// no-op.
//
// Complexity: O(1).
func (g *Graph) AddVertex(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeVertex, v)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(v)

	return nil
}

// AddEdge validates from→to(weight) through NewEdge and appends it to the
// outgoing list of from. Both endpoints become known vertices.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	e, err := NewEdge(from, to, weight)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(to)
	g.adjacency[from] = append(g.adjacency[from], e)
	g.edgeCount++

	return nil
}

// Edges returns a copy of the outgoing edges of v in insertion order.
// An unknown vertex has no outgoing edges.
//
// Complexity: O(deg(v)).
func (g *Graph) Edges(v int) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.adjacency[v]
	if len(out) == 0 {
		return nil
	}

	return append([]Edge(nil), out...)
}

// HasVertex reports whether v has been added as an origin or destination.
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[v]

	return ok
}

// Vertices returns every known vertex, sorted ascending.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// VertexCount returns the number of known vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of edges added.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// ensureVertex creates an empty adjacency entry for v. Caller holds mu.
func (g *Graph) ensureVertex(v int) {
	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = nil
	}
}
