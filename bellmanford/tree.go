package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/sproute/topology"
)

// Tree is the result of one Compute call: hop distances and predecessor links
// from a single source. A Tree is never modified after Compute returns and is
// safe for concurrent use.
type Tree struct {
	source topology.SwitchID
	g      *topology.Digraph
	known  map[topology.SwitchID]struct{}      // supplied vertex set
	dist   map[topology.SwitchID]int           // every tracked vertex
	pred   map[topology.SwitchID]topology.Link // reached vertices except source
	stats  Stats
}

// Source returns the root of the tree.
func (t *Tree) Source() topology.SwitchID { return t.source }

// Stats returns the work counters recorded while building the tree.
func (t *Tree) Stats() Stats { return t.stats }

// DistanceTo returns the hop count from the source to v, or Unreachable.
// ErrUnknownVertex is returned if v was never tracked.
func (t *Tree) DistanceTo(v topology.SwitchID) (int, error) {
	d, ok := t.dist[v]
	if !ok {
		return Unreachable, fmt.Errorf("%w: %d", ErrUnknownVertex, uint64(v))
	}

	return d, nil
}

// HasPathTo reports whether v is reachable from the source.
// Unknown vertices are reported as unreachable.
func (t *Tree) HasPathTo(v topology.SwitchID) bool {
	d, ok := t.dist[v]

	return ok && d != Unreachable
}

// EdgeTo returns the last link on the shortest path to v.
// ok is false for the source and for unreached or unknown vertices.
func (t *Tree) EdgeTo(v topology.SwitchID) (topology.Link, bool) {
	e, ok := t.pred[v]

	return e, ok
}

// PathTo returns the links of one shortest path from the source to v,
// in source-to-destination order. The path to the source itself is empty.
//
// Errors:
//   - ErrUnknownVertex if v was never tracked.
//   - ErrNoPath if v is unreachable.
//   - ErrMalformedTree if the predecessor chain breaks or exceeds the number
//     of tracked vertices.
//
// Complexity: O(path length)
func (t *Tree) PathTo(v topology.SwitchID) ([]topology.Link, error) {
	d, ok := t.dist[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, uint64(v))
	}
	if d == Unreachable {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, uint64(v))
	}

	limit := len(t.dist)
	path := make([]topology.Link, 0, d)
	for cur := v; cur != t.source; {
		if len(path) >= limit {
			return nil, fmt.Errorf("%w: predecessor chain from %d exceeds %d links", ErrMalformedTree, uint64(v), limit)
		}
		e, ok := t.pred[cur]
		if !ok {
			return nil, fmt.Errorf("%w: vertex %d is reached but has no predecessor", ErrMalformedTree, uint64(cur))
		}
		path = append(path, e)
		cur = e.Src
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// NextHop returns the first link on the shortest path to v, i.e. the link a
// forwarding rule at the source should use. ok is false for the source and
// for unreachable or unknown vertices.
func (t *Tree) NextHop(v topology.SwitchID) (topology.Link, bool) {
	path, err := t.PathTo(v)
	if err != nil || len(path) == 0 {
		return topology.Link{}, false
	}

	return path[0], true
}

// Vertices returns every tracked vertex, sorted ascending.
func (t *Tree) Vertices() []topology.SwitchID {
	out := make([]topology.SwitchID, 0, len(t.dist))
	for v := range t.dist {
		out = append(out, v)
	}

	return topology.SortIDs(out)
}

// Reachable returns the vertices with a finite distance, sorted ascending.
// The source is always included.
func (t *Tree) Reachable() []topology.SwitchID {
	out := make([]topology.SwitchID, 0, len(t.pred)+1)
	for v, d := range t.dist {
		if d != Unreachable {
			out = append(out, v)
		}
	}

	return topology.SortIDs(out)
}

// Discovered returns the vertices reached through links that were not part
// of the supplied vertex set, sorted ascending.
func (t *Tree) Discovered() []topology.SwitchID {
	var out []topology.SwitchID
	for v := range t.dist {
		if _, ok := t.known[v]; !ok {
			out = append(out, v)
		}
	}

	return topology.SortIDs(out)
}

// Distances returns a copy of the distance table.
func (t *Tree) Distances() map[topology.SwitchID]int {
	out := make(map[topology.SwitchID]int, len(t.dist))
	for v, d := range t.dist {
		out[v] = d
	}

	return out
}

// Predecessors returns a copy of the predecessor table.
func (t *Tree) Predecessors() map[topology.SwitchID]topology.Link {
	out := make(map[topology.SwitchID]topology.Link, len(t.pred))
	for v, e := range t.pred {
		out[v] = e
	}

	return out
}

// Check verifies the optimality conditions of the tree:
//
//  1. dist[source] == 0 and the source has no predecessor;
//  2. every reached vertex other than the source has a predecessor link e
//     with e.Dst == v and dist[e.Src] + 1 == dist[v];
//  3. no link u→w with u reached leaves w unreached or with dist[w] > dist[u] + 1.
//
// Any violation is reported as ErrMalformedTree.
//
// Complexity: O(V + E)
func (t *Tree) Check() error {
	if d := t.dist[t.source]; d != 0 {
		return fmt.Errorf("%w: source distance is %d", ErrMalformedTree, d)
	}
	if _, ok := t.pred[t.source]; ok {
		return fmt.Errorf("%w: source has a predecessor", ErrMalformedTree)
	}

	for v, d := range t.dist {
		if d == Unreachable || v == t.source {
			continue
		}
		e, ok := t.pred[v]
		if !ok {
			return fmt.Errorf("%w: vertex %d is reached but has no predecessor", ErrMalformedTree, uint64(v))
		}
		if e.Dst != v {
			return fmt.Errorf("%w: predecessor %s does not end at %d", ErrMalformedTree, e, uint64(v))
		}
		du, ok := t.dist[e.Src]
		if !ok || du == Unreachable || du+1 != d {
			return fmt.Errorf("%w: predecessor %s inconsistent with distance %d", ErrMalformedTree, e, d)
		}
	}

	for _, u := range t.g.Vertices() {
		du, ok := t.dist[u]
		if !ok || du == Unreachable {
			continue
		}
		for _, e := range t.g.Adj(u) {
			dw, ok := t.dist[e.Dst]
			if !ok || dw == Unreachable || dw > du+1 {
				return fmt.Errorf("%w: link %s is not relaxed", ErrMalformedTree, e)
			}
		}
	}

	return nil
}
