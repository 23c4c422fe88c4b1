// Package dijkstra computes single-source shortest path lengths on a
// directed graph with non-negative edge weights.
//
// Overview:
//
//   - The frontier is an ixheap.Heap keyed by candidate distance and
//     identified by vertex, so a vertex's candidate can be revised in place
//     instead of pushing stale duplicates.
//   - For each discovered but unfinalized vertex the solver keeps its crossing
//     edges: edges into it from already finalized vertices. Whenever a new
//     crossing edge appears, the candidate is recomputed as the minimum over
//     all of them of (origin distance + weight), and the vertex is removed
//     from and reinserted into the heap with that key.
//   - A vertex is finalized the first time it is extracted. Because weights
//     are non-negative, its key at that moment is its true shortest distance,
//     and finalized distances never change afterwards.
//
// Key features:
//
//   - Source(v): the vertex distances are measured from (default 1).
//   - WithMaxDistance(d): stop once the closest frontier vertex is beyond d.
//   - WithOnFinalize(fn): observe vertices as they are finalized, in
//     non-decreasing distance order.
//
// Results:
//
//	DistanceTo(v) returns (dist, true) for a reached vertex and (0, false)
//	when there is no path, never a sentinel distance. A vertex the graph has
//	no adjacency entry for simply has no outgoing edges.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrOptionViolation: negative Source or MaxDistance.
//
// Negative weights cannot reach the solver: core.NewEdge rejects them.
//
// Complexity:
//
//   - Time:  O((V + E) log V) heap operations; each new crossing edge also
//     rescans the crossing edges of its destination.
//   - Space: O(V + E).
//
// Thread safety:
//
//   - A Solver is single-threaded. The graph must not be mutated while Solve
//     runs.
package dijkstra
