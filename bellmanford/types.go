package bellmanford

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/sproute/topology"
)

// Unreachable is the distance reported for a vertex with no path from the source.
const Unreachable = -1

// Sentinel errors returned by Compute and Tree queries.
var (
	// ErrSourceNotFound indicates the source is absent from the supplied vertex set.
	ErrSourceNotFound = errors.New("bellmanford: source vertex not in vertex set")

	// ErrUnknownVertex indicates a query for a vertex that is neither in the
	// vertex set nor was discovered through a link.
	ErrUnknownVertex = errors.New("bellmanford: unknown vertex")

	// ErrNoPath indicates the destination is known but unreachable from the source.
	ErrNoPath = errors.New("bellmanford: no path to vertex")

	// ErrMalformedTree indicates the predecessor or distance tables violate the
	// shortest-path tree invariants.
	ErrMalformedTree = errors.New("bellmanford: malformed shortest-path tree")

	// ErrOptionViolation indicates an Option was given an invalid argument.
	ErrOptionViolation = errors.New("bellmanford: invalid option supplied")

	// ErrRelaxationLimit indicates the search performed more relaxations than
	// allowed by WithMaxRelaxations.
	ErrRelaxationLimit = errors.New("bellmanford: relaxation limit exceeded")
)

// Options configures a single Compute call.
type Options struct {
	// Logger receives a DEBUG record per relaxed vertex and a summary per
	// computation. Nil disables tracing.
	Logger *slog.Logger

	// OnRelax is called after each successful relaxation with the improving
	// link and the new distance of its destination.
	OnRelax func(link topology.Link, dist int)

	// MaxRelaxations caps successful relaxations; zero means no cap.
	MaxRelaxations int

	// err records the first invalid option; surfaced by Compute.
	err error
}

// Option is a functional option for Compute.
type Option func(*Options)

// DefaultOptions returns Options with no logger, a no-op OnRelax hook and no
// relaxation cap.
func DefaultOptions() Options {
	return Options{
		Logger:         nil,
		OnRelax:        func(topology.Link, int) {},
		MaxRelaxations: 0,
	}
}

// WithLogger enables structured relaxation tracing at DEBUG level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnRelax registers a callback invoked for every improving relaxation.
func WithOnRelax(fn func(link topology.Link, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithMaxRelaxations aborts the search with ErrRelaxationLimit after n
// improving relaxations. n must be positive.
func WithMaxRelaxations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			if o.err == nil {
				o.err = fmt.Errorf("%w: MaxRelaxations must be positive (%d)", ErrOptionViolation, n)
			}
			return
		}
		o.MaxRelaxations = n
	}
}

// Stats counts the work done by one computation.
type Stats struct {
	Pops        int // vertices taken off the work queue
	Relaxations int // improving relaxations
	Requeues    int // pushes of a vertex that had already been popped once
}
