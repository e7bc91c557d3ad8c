// Package metrics provides astar.Observer implementations.
//
//   - Basic keeps lock-free in-memory counters; read them with Snapshot.
//   - Prometheus exports search counts, durations, expansion effort and
//     route lengths to a prometheus.Registerer.
//
// Both are safe for concurrent use and can be shared by every search of a
// ComputeAll batch:
//
//	m := metrics.NewPrometheus(prometheus.DefaultRegisterer, "pathsearch")
//	paths, err := astar.ComputeAll(ctx, queries, astar.WithObserver(m))
package metrics
