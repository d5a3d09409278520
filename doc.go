// Package sproute computes hop-count shortest-path trees over switch
// topologies and publishes them to a forwarding layer.
//
// What is sproute?
//
//	A small, dependency-light toolkit for SDN controllers that need to answer
//	"which link does switch S forward on to reach switch D?" after every
//	topology change:
//		• topology/    — SwitchID, Link, Snapshot and the Digraph adjacency index
//		• bellmanford/ — label-correcting search producing an immutable Tree
//		• bfs/         — plain breadth-first search, used as an independent oracle
//		• routing/     — Engine: atomic publication, route table, metrics, tracing
//		• config/      — TOML configuration
//		• logging/     — slog logger with optional rotating file
//		• cmd/sproute  — one-shot CLI over a static topology
//
// Quick ASCII example:
//
//	    1 → 2 → 3
//	    ↓       ↑
//	    4 ──────┘
//
//	From 1: dist(2)=1, dist(4)=1, dist(3)=2. Of the two 2-hop paths to 3 the
//	tree keeps the one found first.
//
// Every link costs one hop. Weighted routing, topology discovery and rule
// installation are left to the surrounding controller.
package sproute
