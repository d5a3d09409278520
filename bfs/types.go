// Package bfs provides tunable options and error definitions
// for breadth-first search over a topology.Digraph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/sproute/topology"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for switches that were not reached.
	ErrNoPath = errors.New("bfs: no path to switch")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a switch. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id topology.SwitchID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip links by returning false.
	FilterNeighbor func(link topology.Link) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all links followed)
//   - no-op OnVisit hook
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(topology.SwitchID, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(topology.Link) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id topology.SwitchID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips links when fn returns false.
func WithFilterNeighbor(fn func(link topology.Link) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Start: the switch the search began at.
//   - Order: switches visited, in visit sequence.
//   - Depth: map from switch to its distance (in links) from the start.
//   - Parent: map from switch to its predecessor in the BFS tree.
type Result struct {
	Start  topology.SwitchID
	Order  []topology.SwitchID
	Depth  map[topology.SwitchID]int
	Parent map[topology.SwitchID]topology.SwitchID
}

// PathTo reconstructs the switch sequence from the start switch to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest topology.SwitchID) ([]topology.SwitchID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, uint64(dest))
	}
	// build reversed path
	path := []topology.SwitchID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
