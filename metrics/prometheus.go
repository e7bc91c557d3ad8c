package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pathsearch/astar"
)

var _ astar.Observer = (*Prometheus)(nil)

// Result label values of the searches counter.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Prometheus exports search metrics.
//
// Metrics (prefixed with the namespace):
//
//   - astar_searches_total{result}: searches by outcome (found, not_found, error).
//   - astar_search_duration_seconds: wall time per search.
//   - astar_expanded_nodes: nodes dequeued and expanded per search.
//   - astar_path_nodes: nodes in each returned route.
type Prometheus struct {
	searches   *prometheus.CounterVec
	duration   prometheus.Histogram
	expanded   prometheus.Histogram
	pathLength prometheus.Histogram
}

// NewPrometheus creates the collectors and registers them with reg.
// A nil reg leaves them unregistered. Registering twice under the same
// namespace panics, as with prometheus.MustRegister.
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	factory := promauto.With(reg)

	return &Prometheus{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "astar",
			Name:      "searches_total",
			Help:      "Total A* searches by result",
		}, []string{"result"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "astar",
			Name:      "search_duration_seconds",
			Help:      "A* search duration",
			Buckets:   []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
		expanded: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "astar",
			Name:      "expanded_nodes",
			Help:      "Nodes expanded per A* search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		pathLength: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "astar",
			Name:      "path_nodes",
			Help:      "Nodes in each route found",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}

// OnSearch implements astar.Observer.
func (p *Prometheus) OnSearch(stats astar.SearchStats, elapsed time.Duration, err error) {
	result := ResultNotFound
	switch {
	case err != nil:
		result = ResultError
	case stats.Found:
		result = ResultFound
	}
	p.searches.WithLabelValues(result).Inc()
	p.duration.Observe(elapsed.Seconds())
	p.expanded.Observe(float64(stats.Expanded))
	if stats.Found {
		p.pathLength.Observe(float64(stats.PathLength))
	}
}
