// Package dijkstra defines sentinel errors and functional options for the
// shortest-path solver.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to the solver.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// DefaultSource is the source vertex used when no Source option is given.
const DefaultSource = 1

// Options configures a Solver.
//
//   - Source: vertex whose distances are computed (>= 0, default 1).
//   - MaxDistance: frontier entries with a larger key are never finalized
//     (>= 0, default math.MaxInt64, i.e. no cap).
//   - OnFinalize: called once per vertex, in non-decreasing distance order,
//     when its distance becomes final.
type Options struct {
	Source      int
	MaxDistance int64
	OnFinalize  func(v int, dist int64)

	// first invalid option, surfaced by NewSolver
	err error
}

// Option represents a functional option for NewSolver and Dijkstra.
// An invalid Option is recorded and reported as ErrOptionViolation.
type Option func(*Options)

// Source sets the source vertex.
func Source(v int) Option {
	return func(o *Options) {
		if v < 0 {
			o.recordErr(fmt.Errorf("%w: source cannot be negative (%d)", ErrOptionViolation, v))
			return
		}
		o.Source = v
	}
}

// WithMaxDistance stops the search once the closest frontier vertex is
// farther than d. Vertices beyond d report no path.
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.recordErr(fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, d))
			return
		}
		o.MaxDistance = d
	}
}

// WithOnFinalize registers a callback run when a vertex's distance is fixed.
// A nil fn is ignored.
func WithOnFinalize(fn func(v int, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// DefaultOptions returns Options with:
//   - Source: DefaultSource
//   - MaxDistance: math.MaxInt64
//   - OnFinalize: no-op
func DefaultOptions() Options {
	return Options{
		Source:      DefaultSource,
		MaxDistance: math.MaxInt64,
		OnFinalize:  func(int, int64) {},
	}
}

func (o *Options) recordErr(err error) {
	if o.err == nil {
		o.err = err
	}
}
