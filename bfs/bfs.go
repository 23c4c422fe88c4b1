// Package bfs walks a core.Graph breadth-first, ignoring edge weights.
//
// It answers the unweighted questions next to the weighted solver: which
// vertices are reachable at all, and in how few hops. Traversal honors a
// context, a depth limit, an edge filter and a visit hook.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/frontier/core"
)

type queueItem struct {
	v     int
	depth int
}

// BFS traverses g from start and returns visit order, hop depths and
// parents. Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// context errors, or the error returned by OnVisit.
//
// Complexity: O(V + E).
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make(map[int]int, n),
		Parent: make(map[int]int, n),
	}
	queue := make([]queueItem, 0, n)
	res.Depth[start] = 0
	queue = append(queue, queueItem{v: start})

	for len(queue) > 0 {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}
		item := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, item.v)
		if err := o.OnVisit(item.v, item.depth); err != nil {
			return res, fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		next := item.depth + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		for _, e := range g.Edges(item.v) {
			if !o.FilterEdge(e.From(), e.To(), e.Weight()) {
				continue
			}
			if _, seen := res.Depth[e.To()]; seen {
				continue
			}
			res.Depth[e.To()] = next
			res.Parent[e.To()] = item.v
			queue = append(queue, queueItem{v: e.To(), depth: next})
		}
	}

	return res, nil
}
