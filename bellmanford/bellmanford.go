package bellmanford

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/sproute/topology"
)

// Compute builds the shortest-path tree rooted at source over the given
// vertex set and directed links.
//
// Preconditions and validation (in order):
//  1. Every option must be valid (ErrOptionViolation).
//  2. source must appear in vertices (ErrSourceNotFound).
//
// Links may reference ids outside vertices; such ids become tracked vertices
// the first time a relaxation reaches them.
//
// Complexity:
//
//   - Time:  O(V + E) with unit weights (see package doc)
//   - Space: O(V + E)
func Compute(vertices []topology.SwitchID, links []topology.Link, source topology.SwitchID, opts ...Option) (*Tree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	known := make(map[topology.SwitchID]struct{}, len(vertices))
	for _, v := range vertices {
		known[v] = struct{}{}
	}
	if _, ok := known[source]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, uint64(source))
	}

	r := &runner{
		g:      topology.NewDigraph(links),
		opts:   cfg,
		source: source,
		dist:   make(map[topology.SwitchID]int, len(known)),
		pred:   make(map[topology.SwitchID]topology.Link, len(known)),
		queued: make(map[topology.SwitchID]bool, len(known)),
		popped: make(map[topology.SwitchID]bool, len(known)),
		queue:  make([]topology.SwitchID, 0, len(known)),
	}
	r.init(known)
	if err := r.process(); err != nil {
		return nil, err
	}

	t := &Tree{
		source: source,
		g:      r.g,
		known:  known,
		dist:   r.dist,
		pred:   r.pred,
		stats:  r.stats,
	}
	if l := cfg.Logger; l != nil {
		l.Debug("shortest-path tree computed",
			slog.Uint64("source", uint64(source)),
			slog.Int("vertices", len(r.dist)),
			slog.Int("links", r.g.Size()),
			slog.Int("reachable", len(r.pred)+1),
			slog.Int("relaxations", r.stats.Relaxations),
		)
	}

	return t, nil
}

// ComputeSnapshot is Compute over s.Switches and s.Links.
func ComputeSnapshot(s topology.Snapshot, source topology.SwitchID, opts ...Option) (*Tree, error) {
	return Compute(s.Switches, s.Links, source, opts...)
}

// runner holds the mutable state of one computation.
type runner struct {
	g      *topology.Digraph
	opts   Options
	source topology.SwitchID
	dist   map[topology.SwitchID]int           // Unreachable until relaxed
	pred   map[topology.SwitchID]topology.Link // absent for source and unreached
	queued map[topology.SwitchID]bool          // currently pending in queue
	popped map[topology.SwitchID]bool          // popped at least once
	queue  []topology.SwitchID
	stats  Stats
}

// init seeds the distance table and the work queue.
func (r *runner) init(known map[topology.SwitchID]struct{}) {
	for v := range known {
		r.dist[v] = Unreachable
	}
	r.dist[r.source] = 0
	r.push(r.source)
}

// process drains the work queue.
func (r *runner) process() error {
	for len(r.queue) > 0 {
		v := r.queue[0]
		r.queue = r.queue[1:]
		r.queued[v] = false
		r.popped[v] = true
		r.stats.Pops++

		if err := r.relax(v); err != nil {
			return err
		}
	}

	return nil
}

// relax tries every link leaving v and enqueues destinations whose distance improved.
func (r *runner) relax(v topology.SwitchID) error {
	dv := r.dist[v]
	if l := r.opts.Logger; l != nil && l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("relaxing vertex",
			slog.Uint64("switch", uint64(v)),
			slog.Int("dist", dv),
			slog.Int("out_degree", r.g.OutDegree(v)),
		)
	}

	for _, e := range r.g.Adj(v) {
		w := e.Dst
		cand := dv + 1
		if dw, ok := r.dist[w]; ok && dw != Unreachable && dw <= cand {
			continue
		}

		r.dist[w] = cand
		r.pred[w] = e
		r.stats.Relaxations++
		if r.opts.MaxRelaxations > 0 && r.stats.Relaxations > r.opts.MaxRelaxations {
			return fmt.Errorf("%w: %d", ErrRelaxationLimit, r.opts.MaxRelaxations)
		}
		r.opts.OnRelax(e, cand)

		if !r.queued[w] {
			if r.popped[w] {
				r.stats.Requeues++
			}
			r.push(w)
		}
	}

	return nil
}

func (r *runner) push(v topology.SwitchID) {
	r.queued[v] = true
	r.queue = append(r.queue, v)
}
