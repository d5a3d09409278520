// Package routing publishes shortest-path trees to the forwarding layer.
//
// An Engine owns at most one current *bellmanford.Tree. Recompute builds a
// fresh tree from a topology snapshot and swaps it in with a single atomic
// store; path queries load the pointer once and answer from that tree, so a
// reader never sees a half-built table and never waits on a computation in
// flight. Recompute calls on one Engine are serialized.
//
// When a computation fails the previously published tree stays in place and
// keeps answering queries.
//
// Instrumentation:
//
//   - Prometheus collectors are registered on the Registerer passed with
//     WithRegisterer; without one the Engine records nothing.
//   - Every Recompute runs in an OpenTelemetry span (WithTracer, default the
//     global provider).
//   - Publication and failures are logged through the slog.Logger passed with
//     WithLogger; WithRelaxationTrace forwards the same logger to the search
//     for per-vertex DEBUG records.
package routing
