// Package astar implements A* search over graphs of planar nodes.
//
// Overview:
//
//   - A Node carries a position (orb.Point), a Traversable flag, a
//     TraversalCostMultiplier and an ordered ConnectedNodes list.
//   - Entering node n from node m costs dist(m, n) * n.TraversalCostMultiplier.
//   - The frontier is a min-priority queue ordered by each node's estimated cost;
//     the default heuristic is the straight-line distance to the goal.
//   - Compute returns the route start→goal (both included), or nil when the goal
//     cannot be reached.
//
// When to use:
//
//   - Grid or waypoint navigation where every node has a location and the
//     straight-line distance is a useful estimate of the remaining cost.
//   - Repeated queries over one long-lived graph: every search restores the
//     nodes it touched, so no rebuild is needed between calls.
//
// Node state machine (per search):
//
//	Unexplored ──discovered by an explored neighbour──▶ Open ──dequeued──▶ Explored
//
// Explored is terminal; explored nodes are never re-queued or revisited.
// The start node is the implicit root: it is never queued, never written and
// never re-entered.
//
// Cost models:
//
//   - CostModelCompat (default) keeps the historical arithmetic: neighbours of
//     the start node are estimated from the start's own cost, and an Open node
//     reached again compares a candidate total against its stored one without
//     refreshing its estimate. Routes can differ from textbook A*.
//   - CostModelStandard is textbook A*: f = g + h on every update, with lazy
//     decrease-key in the frontier.
//
// Switching models changes returned routes on some graphs; do it deliberately.
// Neither model guarantees an optimal route when a multiplier below 1 makes the
// heuristic overestimate.
//
// Scratch state and concurrency:
//
//   - Compute stores its bookkeeping inside the nodes and resets every node it
//     discovered before returning, on success, on "no path" and on error alike.
//     Two Compute calls must not run over shared nodes at the same time.
//   - ComputeShared keeps the bookkeeping in a search-local table; the graph is
//     only read, so concurrent calls over one graph are safe.
//   - ComputeAll fans a batch of queries out over ComputeShared with a bounded
//     number of workers.
//
// Error handling (sentinel errors):
//
//   - ErrNilNode:  start or goal is nil.
//   - ErrSelfLoop: an expanded node lists itself in ConnectedNodes. The search is
//     aborted; touched nodes are still reset.
//   - ErrNilHeuristic, ErrNilLogger, ErrNilObserver, ErrBadWorkers: raised (via
//     panic) by the matching option constructors.
//
// Observability:
//
//   - WithLogger: one Debug record per finished search, one Error record per fault.
//   - WithObserver: SearchStats and duration for each search; see package metrics.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V) (O(V + E) frontier entries under CostModelStandard)
package astar
