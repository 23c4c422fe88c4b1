package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for edge construction.
var (
	// ErrNegativeVertex indicates a vertex identifier below zero.
	ErrNegativeVertex = errors.New("core: vertex identifier is negative")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: edge weight is negative")
)

// Edge is a directed, weighted connection From→To.
//
// Fields are unexported so a constructed Edge cannot be altered; use
// NewEdge to build one.
type Edge struct {
	from   int
	to     int
	weight int64
}

// NewEdge validates and returns the edge from→to with the given weight.
//
// Errors:
//   - ErrNegativeVertex if from or to is negative.
//   - ErrNegativeWeight if weight is negative.
func NewEdge(from, to int, weight int64) (Edge, error) {
	if from < 0 || to < 0 {
		return Edge{}, fmt.Errorf("%w: %d→%d", ErrNegativeVertex, from, to)
	}
	if weight < 0 {
		return Edge{}, fmt.Errorf("%w: %d→%d weight=%d", ErrNegativeWeight, from, to, weight)
	}

	return Edge{from: from, to: to, weight: weight}, nil
}

// From returns the origin vertex.
func (e Edge) From() int { return e.from }

// To returns the destination vertex.
func (e Edge) To() int { return e.to }

// Weight returns the edge weight.
func (e Edge) Weight() int64 { return e.weight }

// String formats the edge as "from→to(weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d→%d(%d)", e.from, e.to, e.weight)
}

// Graph maps each vertex to its outgoing edges in insertion order.
//
// mu guards adjacency and edgeCount.
type Graph struct {
	mu sync.RWMutex

	// adjacency[v] lists the edges leaving v. Every known vertex has an
	// entry, possibly empty.
	adjacency map[int][]Edge
	edgeCount int
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[int][]Edge)}
}
