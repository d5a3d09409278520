// Package bfs provides breadth-first search over a topology.Digraph,
// returning hop-count distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sproute/topology"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *topology.Digraph
	opts  Options
	ctx   context.Context
	queue []topology.SwitchID
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// A start switch with no outgoing links is valid and yields a one-element Order.
// Returns ErrGraphNil, ErrOptionViolation for bad options,
// a context error on cancellation, or any OnVisit error.
func BFS(g *topology.Digraph, start topology.SwitchID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order() + 1
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]topology.SwitchID, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]topology.SwitchID, 0, n),
			Depth:  make(map[topology.SwitchID]int, n),
			Parent: make(map[topology.SwitchID]topology.SwitchID, n),
		},
	}

	// Seed queue with start switch (no parent)
	w.res.Depth[start] = 0
	w.queue = append(w.queue, start)

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[id]

		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", uint64(id), err)
		}
		w.enqueueNeighbors(id, depth)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// destination of a link leaving id.
func (w *walker) enqueueNeighbors(id topology.SwitchID, depth int) {
	next := depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, l := range w.graph.Adj(id) {
		if !w.opts.FilterNeighbor(l) {
			continue
		}
		if _, seen := w.res.Depth[l.Dst]; seen {
			continue
		}
		w.res.Depth[l.Dst] = next
		w.res.Parent[l.Dst] = id
		w.queue = append(w.queue, l.Dst)
	}
}
