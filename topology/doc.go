// Package topology defines the switch-level view of a network that the
// shortest-path engine consumes: opaque 64-bit switch identifiers, directed
// unit-weight links between them, and a point-in-time Snapshot of both.
//
// The surrounding controller owns discovery. It hands a Snapshot to the
// engine whenever the set of active switches or links changes; nothing in
// this package mutates a Snapshot after construction.
//
// Digraph is the adjacency index built once per computation:
//
//	adj[src] = []Link{src→a, src→b, …}   // supply order preserved
//
// Building is O(E); Adj(v) is an O(1) map lookup followed by O(out-degree)
// iteration. Links are not validated against the switch set, so a link may
// reference a switch that is absent from Snapshot.Switches.
//
// Errors:
//
//	ErrEmptySnapshot - the snapshot carries no switches at all.
package topology
