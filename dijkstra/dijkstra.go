package dijkstra

import (
	"fmt"
	"maps"
	"math"

	"github.com/katalvlaran/frontier/core"
	"github.com/katalvlaran/frontier/ixheap"
)

// Solver computes single-source shortest distances over a *core.Graph.
//
// A run has three phases:
//
//   - seed:      the source is finalized at 0 and its outgoing edges are
//     relaxed like those of any other finalized vertex.
//   - expand:    while the frontier is non-empty, the closest vertex is
//     extracted, finalized at its key, and its outgoing edges relaxed.
//   - terminal:  the frontier is empty (or the MaxDistance cap was hit);
//     every reached vertex has a final distance, unreached ones have none.
//
// The frontier holds, for every discovered but unfinalized vertex, the
// smallest (origin distance + weight) over all crossing edges into it.
//
// A Solver is not safe for concurrent use.
type Solver struct {
	g       *core.Graph
	options Options

	finalized map[int]int64            // write-once distances
	crossing  map[int][]core.Edge      // unfinalized vertex → edges from finalized origins
	frontier  *ixheap.Heap[int64, int] // candidate distance → vertex
}

// NewSolver validates the options and returns a Solver for g.
//
// Errors:
//   - ErrOptionViolation (wrapped) for the first invalid option.
//   - ErrNilGraph if g is nil.
func NewSolver(g *core.Graph, opts ...Option) (*Solver, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	s := &Solver{g: g, options: cfg}
	s.reset()

	return s, nil
}

// Dijkstra runs a Solver over g and returns the finalized distances of all
// reached vertices, the source included.
//
// Complexity:
//   - Time:  O((V + E) log V) heap work, plus a scan of the crossing edges
//     into a vertex each time one of them is added.
//   - Space: O(V + E).
func Dijkstra(g *core.Graph, opts ...Option) (map[int]int64, error) {
	s, err := NewSolver(g, opts...)
	if err != nil {
		return nil, err
	}
	if err = s.Solve(); err != nil {
		return nil, err
	}

	return s.Distances(), nil
}

// Solve computes distances from the configured source. Calling it again
// discards the previous results and recomputes them.
func (s *Solver) Solve() error {
	s.reset()

	src := s.options.Source
	s.finalize(src, 0)
	if err := s.relax(src); err != nil {
		return err
	}

	for s.frontier.Len() > 0 {
		d, v, err := s.frontier.ExtractMin()
		if err != nil {
			return fmt.Errorf("dijkstra: extract frontier: %w", err)
		}
		// Every key still queued is at least d, so nothing else qualifies.
		if d > s.options.MaxDistance {
			break
		}
		s.finalize(v, d)
		if err = s.relax(v); err != nil {
			return err
		}
	}

	return nil
}

// DistanceTo returns the shortest distance from the source to v. The
// boolean is false when v was not reached (or Solve has not run).
func (s *Solver) DistanceTo(v int) (int64, bool) {
	d, ok := s.finalized[v]
	return d, ok
}

// Distances returns a copy of every finalized distance.
func (s *Solver) Distances() map[int]int64 {
	return maps.Clone(s.finalized)
}

// Source returns the vertex distances are measured from.
func (s *Solver) Source() int { return s.options.Source }

func (s *Solver) reset() {
	s.finalized = make(map[int]int64, s.g.VertexCount())
	s.crossing = make(map[int][]core.Edge)
	s.frontier = ixheap.New[int64, int]()
}

// finalize fixes the distance of v. Its crossing edges are no longer needed.
func (s *Solver) finalize(v int, d int64) {
	s.finalized[v] = d
	delete(s.crossing, v)
	s.options.OnFinalize(v, d)
}

// relax records every edge out of the freshly finalized u as a crossing
// edge and refreshes the candidate distance of its destination.
func (s *Solver) relax(u int) error {
	for _, e := range s.g.Edges(u) {
		v := e.To()
		if _, done := s.finalized[v]; done {
			continue
		}
		s.crossing[v] = append(s.crossing[v], e)
		if err := s.recompute(v); err != nil {
			return err
		}
	}

	return nil
}

// recompute sets v's frontier key to the minimum over all its crossing
// edges of (finalized origin distance + weight).
func (s *Solver) recompute(v int) error {
	best := int64(math.MaxInt64)
	for _, e := range s.crossing[v] {
		if d := addSat(s.finalized[e.From()], e.Weight()); d < best {
			best = d
		}
	}

	s.frontier.Remove(v)
	if err := s.frontier.Upsert(best, v); err != nil {
		return fmt.Errorf("dijkstra: queue vertex %d: %w", v, err)
	}

	return nil
}

// addSat adds two non-negative distances, clamping at math.MaxInt64.
func addSat(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}

	return a + b
}
