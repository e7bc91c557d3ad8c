package astar

import (
	"errors"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilNode indicates that a nil start or goal node was passed to a search.
	ErrNilNode = errors.New("astar: start and goal nodes must be non-nil")

	// ErrSelfLoop indicates that a node lists itself in ConnectedNodes.
	// It signals a malformed graph and aborts the search.
	ErrSelfLoop = errors.New("astar: node is connected to itself")

	// ErrNilHeuristic indicates that WithHeuristic was given a nil function.
	ErrNilHeuristic = errors.New("astar: heuristic must be non-nil")

	// ErrNilLogger indicates that WithLogger was given a nil logger.
	ErrNilLogger = errors.New("astar: logger must be non-nil")

	// ErrNilObserver indicates that WithObserver was given a nil observer.
	ErrNilObserver = errors.New("astar: observer must be non-nil")

	// ErrBadWorkers indicates that WithWorkers was given a value below one.
	ErrBadWorkers = errors.New("astar: worker count must be at least 1")
)

// NodeState is the per-search exploration state of a Node.
//
// Within one search a node only moves forward:
//
//	Unexplored ──discovered──▶ Open ──dequeued──▶ Explored
type NodeState int

const (
	// Unexplored nodes have not been discovered by the running search.
	Unexplored NodeState = iota

	// Open nodes sit in the frontier waiting to be expanded.
	Open

	// Explored nodes have been dequeued and expanded; they are never revisited.
	Explored
)

// String returns the state name.
func (s NodeState) String() string {
	switch s {
	case Unexplored:
		return "unexplored"
	case Open:
		return "open"
	case Explored:
		return "explored"
	default:
		return "unknown"
	}
}

// CostModel selects the cost arithmetic used while discovering and relaxing nodes.
type CostModel int

const (
	// CostModelCompat reproduces the historical arithmetic of this search:
	//   - a neighbour of the start node gets estimatedCost = start.currentCost + h(n, goal);
	//   - any other newly discovered node gets estimatedCost = n.currentCost + h(n, goal);
	//   - an Open node reached again compares
	//     current.currentCost + dist(current, n) + current.estimatedCost against n.TotalCost(),
	//     ignores n's multiplier, and keeps the old estimatedCost when it adopts the new parent.
	//
	// The frontier order can disagree with the true path cost under this model.
	// It is the default so that existing callers observe unchanged routes.
	CostModelCompat CostModel = iota

	// CostModelStandard uses textbook A*: estimatedCost = currentCost + h(n, goal)
	// on every discovery and relaxation, relaxation uses the multiplier-weighted
	// edge cost, and an improved node is re-queued with its new priority.
	// Routes may differ from CostModelCompat on the same graph.
	CostModelStandard
)

// String returns the model name.
func (m CostModel) String() string {
	switch m {
	case CostModelCompat:
		return "compat"
	case CostModelStandard:
		return "standard"
	default:
		return "unknown"
	}
}

// Heuristic estimates the remaining cost from a node to the goal.
type Heuristic func(from, goal *Node) float64

// Euclidean is the straight-line distance between the two node positions.
// It is admissible as long as no multiplier on the route is below 1.
func Euclidean(from, goal *Node) float64 { return from.DistanceTo(goal) }

// Zero always estimates 0, which turns the search into Dijkstra's algorithm.
func Zero(_, _ *Node) float64 { return 0 }

// SearchStats summarises one finished search.
type SearchStats struct {
	Expanded   int  // nodes dequeued and expanded
	Touched    int  // distinct nodes discovered (frontier or done)
	PathLength int  // len of the returned path, 0 if none
	Found      bool // whether a path was returned
	Shared     bool // true for side-table searches (ComputeShared / ComputeAll)
}

// Observer receives one callback per finished search.
// Implementations must be safe for concurrent use when passed to ComputeAll.
type Observer interface {
	OnSearch(stats SearchStats, duration time.Duration, err error)
}

// NoopObserver discards every callback.
type NoopObserver struct{}

// OnSearch implements Observer.
func (NoopObserver) OnSearch(SearchStats, time.Duration, error) {}

// Options configures a search.
//
// CostModel – arithmetic used for costs (default CostModelCompat).
// Heuristic – remaining-cost estimate (default Euclidean).
// Logger    – structured logger for search summaries (default discards).
// Observer  – metrics hook invoked after each search (default NoopObserver).
// Workers   – concurrency limit for ComputeAll (default runtime.NumCPU()).
type Options struct {
	CostModel CostModel
	Heuristic Heuristic
	Logger    *slog.Logger
	Observer  Observer
	Workers   int
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithCostModel selects the cost arithmetic.
func WithCostModel(m CostModel) Option {
	return func(o *Options) {
		o.CostModel = m
	}
}

// WithHeuristic replaces the remaining-cost estimate.
// Panics with ErrNilHeuristic if h is nil.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			panic(ErrNilHeuristic.Error())
		}
		o.Heuristic = h
	}
}

// WithLogger sets the logger receiving search summaries at Debug level
// and faults at Error level.
// Panics with ErrNilLogger if l is nil.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			panic(ErrNilLogger.Error())
		}
		o.Logger = l
	}
}

// WithObserver registers a metrics hook.
// Panics with ErrNilObserver if obs is nil.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs == nil {
			panic(ErrNilObserver.Error())
		}
		o.Observer = obs
	}
}

// WithWorkers bounds how many searches ComputeAll runs at once.
// Panics with ErrBadWorkers if n < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - CostModel: CostModelCompat.
//   - Heuristic: Euclidean.
//   - Logger:    a logger writing to io.Discard.
//   - Observer:  NoopObserver.
//   - Workers:   runtime.NumCPU().
func DefaultOptions() Options {
	return Options{
		CostModel: CostModelCompat,
		Heuristic: Euclidean,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Observer:  NoopObserver{},
		Workers:   runtime.NumCPU(),
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
