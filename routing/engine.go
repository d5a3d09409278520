package routing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/sproute/bellmanford"
	"github.com/katalvlaran/sproute/topology"
)

const tracerName = "github.com/katalvlaran/sproute/routing"

// Engine computes and publishes shortest-path trees. The zero value is not
// usable; construct with NewEngine.
type Engine struct {
	mu         sync.Mutex // serializes Recompute
	current    atomic.Pointer[bellmanford.Tree]
	generation atomic.Uint64

	log        *slog.Logger
	reg        prometheus.Registerer
	tracer     trace.Tracer
	metrics    *metrics
	traceRelax bool
	verify     bool
}

// NewEngine returns an Engine with no published tree.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.metrics = newMetrics(e.reg)

	return e
}

// Recompute builds the tree rooted at source over snap and publishes it.
// On error nothing is published and the previous tree keeps serving queries.
// ctx carries the trace span; the computation itself is not cancellable.
func (e *Engine) Recompute(ctx context.Context, snap topology.Snapshot, source topology.SwitchID) (*bellmanford.Tree, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, span := e.tracer.Start(ctx, "routing.Engine.Recompute",
		trace.WithAttributes(
			attribute.String("sproute.source", source.String()),
			attribute.Int("sproute.switches", len(snap.Switches)),
			attribute.Int("sproute.links", len(snap.Links)),
		),
	)
	defer span.End()

	start := time.Now()
	tree, err := e.compute(snap, source)
	took := time.Since(start)
	e.metrics.computed(took, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.log.LogAttrs(ctx, slog.LevelWarn, "shortest-path computation failed, keeping previous tree",
			slog.Uint64("source", uint64(source)),
			slog.Uint64("generation", e.generation.Load()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("routing: recompute from %d: %w", uint64(source), err)
	}

	e.current.Store(tree)
	gen := e.generation.Add(1)
	reachable := len(tree.Reachable())
	e.metrics.published(gen, reachable)
	span.SetAttributes(
		attribute.Int64("sproute.generation", int64(gen)),
		attribute.Int("sproute.reachable", reachable),
	)
	e.log.LogAttrs(ctx, slog.LevelInfo, "shortest-path tree published",
		slog.Uint64("source", uint64(source)),
		slog.Uint64("generation", gen),
		slog.Int("reachable", reachable),
		slog.Int("vertices", len(tree.Vertices())),
		slog.Duration("took", took),
	)

	return tree, nil
}

func (e *Engine) compute(snap topology.Snapshot, source topology.SwitchID) (*bellmanford.Tree, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	var opts []bellmanford.Option
	if e.traceRelax {
		opts = append(opts, bellmanford.WithLogger(e.log))
	}
	tree, err := bellmanford.ComputeSnapshot(snap, source, opts...)
	if err != nil {
		return nil, err
	}
	if e.verify {
		if err := tree.Check(); err != nil {
			return nil, err
		}
	}

	return tree, nil
}

// Tree returns the currently published tree, or nil before the first
// successful Recompute.
func (e *Engine) Tree() *bellmanford.Tree {
	return e.current.Load()
}

// Generation returns the number of trees published so far.
func (e *Engine) Generation() uint64 {
	return e.generation.Load()
}

// PathTo returns the links from the source to dst in the published tree.
func (e *Engine) PathTo(dst topology.SwitchID) ([]topology.Link, error) {
	tree := e.current.Load()
	if tree == nil {
		e.metrics.queried("no_tree")
		return nil, ErrNoTree
	}
	path, err := tree.PathTo(dst)
	e.metrics.queried(queryResult(err))

	return path, err
}

// DistanceTo returns the hop count to dst in the published tree.
func (e *Engine) DistanceTo(dst topology.SwitchID) (int, error) {
	tree := e.current.Load()
	if tree == nil {
		e.metrics.queried("no_tree")
		return bellmanford.Unreachable, ErrNoTree
	}
	d, err := tree.DistanceTo(dst)
	if err == nil && d == bellmanford.Unreachable {
		e.metrics.queried("no_path")
	} else {
		e.metrics.queried(queryResult(err))
	}

	return d, err
}

// NextHop returns the first link towards dst in the published tree.
// The source itself has no next hop and yields bellmanford.ErrNoPath.
func (e *Engine) NextHop(dst topology.SwitchID) (topology.Link, error) {
	path, err := e.PathTo(dst)
	if err != nil {
		return topology.Link{}, err
	}
	if len(path) == 0 {
		return topology.Link{}, fmt.Errorf("%w: %d is the source", bellmanford.ErrNoPath, uint64(dst))
	}

	return path[0], nil
}

// Routes returns one Route per tracked switch other than the source, sorted
// by destination, all read from the same published tree.
func (e *Engine) Routes() ([]Route, error) {
	tree := e.current.Load()
	if tree == nil {
		return nil, ErrNoTree
	}

	return RoutesOf(tree)
}

// RoutesOf lists the routes of tree; see Engine.Routes.
func RoutesOf(tree *bellmanford.Tree) ([]Route, error) {
	vs := tree.Vertices()
	out := make([]Route, 0, len(vs))
	for _, v := range vs {
		if v == tree.Source() {
			continue
		}
		r := Route{Dst: v, Distance: bellmanford.Unreachable}
		path, err := tree.PathTo(v)
		switch {
		case errors.Is(err, bellmanford.ErrNoPath):
		case err != nil:
			return nil, err
		default:
			r.Reachable = true
			r.Distance = len(path)
			r.Path = path
			r.NextHop = path[0]
		}
		out = append(out, r)
	}

	return out, nil
}

func queryResult(err error) string {
	switch {
	case err == nil:
		return "found"
	case errors.Is(err, bellmanford.ErrNoPath):
		return "no_path"
	case errors.Is(err, bellmanford.ErrUnknownVertex):
		return "unknown"
	default:
		return "error"
	}
}
