// Package frontier computes single-source shortest paths over directed,
// non-negatively weighted graphs, built around an indexed binary min-heap.
//
// The heap keeps an identity → slot index next to its arrays, so a vertex
// already waiting in the queue can be re-keyed or removed in O(log n)
// instead of being pushed again as a stale duplicate.
//
// Layout:
//
//	ixheap/        generic indexed min-heap: Upsert, ExtractMin, Remove by identity
//	core/          immutable Edge and a thread-safe integer-vertex Graph
//	dijkstra/      Solver using ixheap as its frontier, with options and hooks
//	bfs/           hop-count traversal (reachability, unweighted paths)
//	adjlist/       reader for "vertex dest,weight ..." adjacency-list files
//	cmd/dijkstra/  command-line front end with structured logging
//
// Quick start:
//
//	g, err := adjlist.ParseFile("graph.txt")
//	if err != nil { ... }
//	s, err := dijkstra.NewSolver(g, dijkstra.Source(1))
//	if err != nil { ... }
//	if err := s.Solve(); err != nil { ... }
//	if d, ok := s.DistanceTo(7); ok {
//		fmt.Println("distance:", d)
//	}
//
// Negative weights are rejected when an edge is built, and only distances
// (not paths) are reported. Neither the heap nor the solver is safe for
// concurrent use; the Graph is.
package frontier
