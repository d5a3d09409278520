// Package bfs provides breadth-first search over a topology.Digraph,
// returning hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore switches in non-decreasing hop count from a start switch.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from switch → hops from start
//   - Parent: map from switch → its predecessor in the BFS tree
//   - Supports an OnVisit hook that may abort the search with an error.
//   - Allows filtering of individual links via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Reachability and hop counts in O(V + E) without building a full
//     shortest-path tree.
//   - Independent reference for the label-correcting search in package
//     bellmanford: on unit-weight graphs both must agree on every distance.
//
// Determinism
//
//	Links are followed in Digraph.Adj order (supply order), so the visit
//	sequence is reproducible for a given link slice.
//
// Complexity (V = |switches|, E = |links|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(topology.NewDigraph(links), 1)
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation, context errors, or OnVisit errors
//	}
//	hops, ok := res.Depth[7]
package bfs
