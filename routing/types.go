package routing

import (
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/sproute/topology"
)

// ErrNoTree is returned by queries issued before the first successful Recompute.
var ErrNoTree = errors.New("routing: no shortest-path tree published")

// Route is the forwarding decision for one destination switch.
type Route struct {
	// Dst is the destination switch.
	Dst topology.SwitchID

	// Reachable is false when no path exists; Path and NextHop are then zero.
	Reachable bool

	// Distance is the hop count, or bellmanford.Unreachable.
	Distance int

	// Path lists the links from the source to Dst.
	Path []topology.Link

	// NextHop is Path[0], the link a rule at the source forwards on.
	NextHop topology.Link
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for publication, failure and (optionally)
// relaxation records.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRegisterer registers the Engine's Prometheus collectors on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(e *Engine) { e.reg = reg }
}

// WithTracer sets the tracer used for Recompute spans.
func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) {
		if t != nil {
			e.tracer = t
		}
	}
}

// WithRelaxationTrace forwards the Engine's logger to each computation so
// that every relaxed vertex is logged at DEBUG level.
func WithRelaxationTrace(on bool) Option {
	return func(e *Engine) { e.traceRelax = on }
}

// WithVerify runs Tree.Check on every new tree and refuses to publish one
// that fails.
func WithVerify(on bool) Option {
	return func(e *Engine) { e.verify = on }
}
