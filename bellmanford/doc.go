// Package bellmanford computes single-source hop-count shortest-path trees
// over a topology snapshot and answers distance and path queries against them.
//
// Overview:
//
//   - Every link costs exactly one hop, so no negative cycle can exist and the
//     search always terminates.
//   - The search is label-correcting: a FIFO work queue is seeded with the
//     source; popping v relaxes every link v→w, and w is enqueued only when its
//     distance strictly improves and it is not already pending.
//   - Compute returns a fresh, immutable *Tree. Nothing is shared between two
//     calls, so a Tree may be read from many goroutines while another Compute
//     runs.
//
// Algorithm:
//
//	dist[source] = 0; dist[v] = Unreachable for every other known v
//	queue = [source]
//	while queue not empty:
//	    v = pop(queue)
//	    for each link v→w:
//	        if dist[w] > dist[v] + 1:      // Unreachable compares as +∞
//	            dist[w] = dist[v] + 1
//	            pred[w] = v→w
//	            if w not queued: push(queue, w)
//
// Vertices reached through a link whose endpoint is missing from the supplied
// vertex set are tracked like any other vertex and listed by Tree.Discovered.
//
// Complexity:
//
//   - Time:  O(V·E) worst case for label correcting; with unit weights and a
//     FIFO queue every vertex settles on its first visit, so O(V + E) in practice.
//   - Space: O(V + E) for the adjacency index, distance and predecessor tables.
//
// Errors (sentinel):
//
//   - ErrSourceNotFound:  the source is not in the supplied vertex set.
//   - ErrUnknownVertex:   a query named a vertex the tree never tracked.
//   - ErrNoPath:          the destination is tracked but unreachable.
//   - ErrMalformedTree:   predecessor chain or distance table is inconsistent.
//   - ErrOptionViolation: an Option received an invalid argument.
//   - ErrRelaxationLimit: WithMaxRelaxations cap exceeded.
//
// Example:
//
//	tree, err := bellmanford.Compute(
//	    []topology.SwitchID{1, 2, 3},
//	    []topology.Link{{Src: 1, Dst: 2}, {Src: 2, Dst: 3}},
//	    1,
//	)
//	if err != nil {
//	    return err
//	}
//	path, err := tree.PathTo(3) // [1→2 2→3]
package bellmanford
