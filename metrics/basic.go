package metrics

import (
	"sync/atomic"
	"time"

	"github.com/katalvlaran/pathsearch/astar"
)

var _ astar.Observer = (*Basic)(nil)

// Basic provides simple in-memory search metrics.
type Basic struct {
	Searches      atomic.Int64
	Found         atomic.Int64
	NotFound      atomic.Int64
	Errors        atomic.Int64
	Expanded      atomic.Int64
	Touched       atomic.Int64
	TotalNanos    atomic.Int64
	SharedLedgers atomic.Int64
}

// NewBasic returns a zeroed Basic collector.
func NewBasic() *Basic {
	return &Basic{}
}

// OnSearch implements astar.Observer.
func (b *Basic) OnSearch(stats astar.SearchStats, elapsed time.Duration, err error) {
	b.Searches.Add(1)
	b.TotalNanos.Add(elapsed.Nanoseconds())
	b.Expanded.Add(int64(stats.Expanded))
	b.Touched.Add(int64(stats.Touched))
	if stats.Shared {
		b.SharedLedgers.Add(1)
	}

	switch {
	case err != nil:
		b.Errors.Add(1)
	case stats.Found:
		b.Found.Add(1)
	default:
		b.NotFound.Add(1)
	}
}

// Snapshot returns a point-in-time copy of the counters.
func (b *Basic) Snapshot() BasicStats {
	searches := b.Searches.Load()
	s := BasicStats{
		Searches: searches,
		Found:    b.Found.Load(),
		NotFound: b.NotFound.Load(),
		Errors:   b.Errors.Load(),
		Expanded: b.Expanded.Load(),
		Touched:  b.Touched.Load(),
		Shared:   b.SharedLedgers.Load(),
	}
	if searches > 0 {
		s.AvgNanos = b.TotalNanos.Load() / searches
	}

	return s
}

// BasicStats is a snapshot of Basic.
type BasicStats struct {
	Searches int64
	Found    int64
	NotFound int64
	Errors   int64
	Expanded int64
	Touched  int64
	Shared   int64 // searches run by ComputeShared or ComputeAll
	AvgNanos int64
}
