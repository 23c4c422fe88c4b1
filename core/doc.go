// Package core defines the directed, weighted graph consumed by the
// shortest-path solver: an immutable Edge and a Graph mapping each vertex
// to its ordered list of outgoing edges.
//
// Vertices are non-negative integers and weights are non-negative int64
// values. Both constraints are checked when an Edge is constructed, so an
// invalid edge never exists:
//
//	e, err := core.NewEdge(1, 2, 7) // 1→2 with weight 7
//	_, err = core.NewEdge(1, 2, -7) // ErrNegativeWeight
//
// Graph semantics:
//
//   - AddEdge appends to the origin's list; insertion order is preserved and
//     parallel edges and self-loops are kept as given.
//   - Both endpoints of an edge become known vertices.
//   - Edges(v) of a vertex the graph has never seen is empty, not an error.
//   - Vertices() is sorted ascending for deterministic iteration.
//
// Errors:
//
//	ErrNegativeVertex - vertex identifier below zero.
//	ErrNegativeWeight - edge weight below zero.
//
// Concurrency:
//
//	Graph methods take a sync.RWMutex, so a graph may be assembled from
//	several goroutines. Algorithms treat a built graph as read-only.
package core
