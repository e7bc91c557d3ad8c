// Package pathsearch is an in-memory A* toolkit for graphs of planar nodes,
// from hand-wired waypoint maps to whole game grids.
//
// What is in the box?
//
//	• astar: the search itself. Nodes carry a position, a traversable flag
//	  and a cost multiplier; Compute returns the route start→goal and leaves
//	  the graph exactly as it found it.
//	• gridgraph: turns a 2D []int terrain map into an astar lattice and
//	  labels connected regions so hopeless queries are skipped.
//	• metrics: astar.Observer implementations, in-memory and Prometheus.
//	• pqueue: the generic min-priority queue behind the frontier.
//
// Why pathsearch?
//
//   - Long-lived graphs: every search restores the nodes it touched.
//   - Concurrency when you need it: ComputeShared never writes to the graph,
//     ComputeAll runs a batch on a bounded worker pool.
//   - Observable: log/slog records and a pluggable Observer per search.
//
// Layout:
//
//	astar/:     Node, Compute, ComputeShared, ComputeAll, options & errors
//	gridgraph/: GridGraph, Lattice, connected components (roaring bitmaps)
//	metrics/:   Basic and Prometheus observers
//	pqueue/:    generic binary-heap priority queue
//	examples/:  runnable programs
//
// Quick ASCII example:
//
//	         B
//	       ╱   ╲
//	     A ─ S ─ C      S is a swamp (multiplier 10)
//
//	Compute(A, C) returns A→B→C: entering S costs ten times its distance,
//	so the detour through B is cheaper than the straight line.
//
//	go get github.com/katalvlaran/pathsearch
package pathsearch
