package astar

import (
	"fmt"
	"time"

	"github.com/katalvlaran/pathsearch/pqueue"
)

// Compute finds a route from start to goal and returns it in start→goal
// order, both ends included. A nil path with a nil error means goal is not
// reachable from start.
//
// Compute keeps its scratch state inside the nodes and restores every node it
// discovered to neutral before returning, whatever the outcome, so the same
// graph can be searched again. The start node is never written.
//
// Errors:
//
//   - ErrNilNode:  start or goal is nil.
//   - ErrSelfLoop: an expanded node lists itself as a neighbour.
//
// Compute is not safe for concurrent use over nodes shared with another
// running Compute; see ComputeShared.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for the V nodes and E adjacency entries reachable from start.
//   - Space: O(V) for the frontier and the done list.
func Compute(start, goal *Node, opts ...Option) ([]*Node, error) {
	return search(start, goal, inPlace{}, buildOptions(opts))
}

// ComputeShared behaves like Compute but keeps its scratch state in a
// search-local table instead of the nodes. The graph is only read, so any
// number of ComputeShared calls may run concurrently over the same graph as
// long as nobody mutates it meanwhile.
func ComputeShared(start, goal *Node, opts ...Option) ([]*Node, error) {
	return search(start, goal, make(sideTable), buildOptions(opts))
}

// search validates input, runs one search and reports it.
func search(start, goal *Node, book ledger, cfg Options) ([]*Node, error) {
	if start == nil || goal == nil {
		cfg.Observer.OnSearch(SearchStats{Shared: book.shared()}, 0, ErrNilNode)
		cfg.Logger.Error("astar search aborted", "start", start, "goal", goal, "error", ErrNilNode)
		return nil, ErrNilNode
	}

	began := time.Now()
	r := newRunner(start, goal, book, cfg)
	path, err := r.run()
	r.cleanup()

	stats := SearchStats{
		Expanded:   r.expanded,
		Touched:    r.touched,
		PathLength: len(path),
		Found:      path != nil,
		Shared:     book.shared(),
	}
	elapsed := time.Since(began)
	cfg.Observer.OnSearch(stats, elapsed, err)

	mode := "in_place"
	if stats.Shared {
		mode = "shared"
	}
	if err != nil {
		cfg.Logger.Error("astar search aborted",
			"start", start,
			"goal", goal,
			"mode", mode,
			"expanded", stats.Expanded,
			"error", err,
		)
		return nil, err
	}
	cfg.Logger.Debug("astar search completed",
		"start", start,
		"goal", goal,
		"mode", mode,
		"cost_model", cfg.CostModel,
		"expanded", stats.Expanded,
		"touched", stats.Touched,
		"path_len", stats.PathLength,
		"found", stats.Found,
		"elapsed", elapsed,
	)

	return path, nil
}

// frontierItem is a queued node with the priority it was queued under.
// Capturing the priority keeps the heap consistent when a node's
// estimatedCost changes after it was pushed.
type frontierItem struct {
	node     *Node
	priority float64
}

func byPriority(a, b frontierItem) bool { return a.priority < b.priority }

// runner holds the mutable state for a single search.
type runner struct {
	start, goal *Node
	book        ledger
	cfg         Options
	frontier    *pqueue.Queue[frontierItem]
	done        []*Node // dequeued nodes, in dequeue order
	expanded    int
	touched     int
}

func newRunner(start, goal *Node, book ledger, cfg Options) *runner {
	return &runner{
		start:    start,
		goal:     goal,
		book:     book,
		cfg:      cfg,
		frontier: pqueue.New(byPriority),
	}
}

// run seeds the frontier and drives the main loop until the goal is dequeued
// or the frontier drains.
func (r *runner) run() ([]*Node, error) {
	// 1) A route to oneself is the node alone; nothing is discovered.
	if r.start == r.goal {
		return []*Node{r.start}, nil
	}

	// 2) Seed the frontier with the traversable neighbours of start.
	if err := r.seed(); err != nil {
		return nil, err
	}

	// 3) Expand the cheapest frontier node until the goal is reached.
	for r.frontier.Len() > 0 {
		item, _ := r.frontier.Pop()
		current := item.node
		cs := r.book.entry(current)

		// Stale duplicate left behind by a CostModelStandard relaxation.
		if cs.state == Explored {
			continue
		}
		cs.state = Explored
		r.done = append(r.done, current)
		r.expanded++

		if current == r.goal {
			return r.path(), nil
		}
		if err := r.expand(current, cs); err != nil {
			return nil, err
		}
	}

	// 4) Frontier drained: goal unreachable.
	return nil, nil
}

// seed discovers every traversable neighbour of start.
func (r *runner) seed() error {
	root := r.book.entry(r.start)
	for _, n := range r.start.ConnectedNodes {
		if n == nil {
			continue
		}
		if n == r.start {
			return fmt.Errorf("%w: %s", ErrSelfLoop, r.start)
		}
		if !n.Traversable {
			continue
		}
		// Repeated adjacency entries are discovered once.
		if s := r.book.entry(n); s.state != Unexplored {
			continue
		}
		r.discover(n, r.start, root, true)
	}

	return nil
}

// expand visits the neighbours of the freshly explored node current.
func (r *runner) expand(current *Node, cs *scratch) error {
	for _, n := range current.ConnectedNodes {
		if n == nil {
			continue
		}
		// A node listing itself is a malformed graph, not a neighbour to skip.
		if n == current {
			return fmt.Errorf("%w: %s", ErrSelfLoop, current)
		}
		// The start node is the root of the parent tree and is never re-entered.
		if !n.Traversable || n == r.start {
			continue
		}

		s := r.book.entry(n)
		switch s.state {
		case Explored:
			continue
		case Unexplored:
			r.discover(n, current, cs, false)
		case Open:
			r.relax(n, s, current, cs)
		}
	}

	return nil
}

// discover moves n from Unexplored to Open with parent from.
// Under CostModelCompat a neighbour of start is estimated from start's own
// cost rather than its freshly computed one.
func (r *runner) discover(n, from *Node, fs *scratch, seeding bool) {
	s := r.book.entry(n)
	s.parent = from
	s.currentCost = fs.currentCost + from.DistanceTo(n)*n.TraversalCostMultiplier

	base := s.currentCost
	if seeding && r.cfg.CostModel == CostModelCompat {
		base = fs.currentCost
	}
	s.estimatedCost = base + r.cfg.Heuristic(n, r.goal)
	s.state = Open
	r.touched++

	r.frontier.Push(frontierItem{node: n, priority: s.estimatedCost})
}

// relax reconsiders the Open node n through current.
func (r *runner) relax(n *Node, s *scratch, current *Node, cs *scratch) {
	if r.cfg.CostModel == CostModelStandard {
		newCurrent := cs.currentCost + current.DistanceTo(n)*n.TraversalCostMultiplier
		if newCurrent >= s.currentCost {
			return
		}
		s.parent = current
		s.currentCost = newCurrent
		s.estimatedCost = newCurrent + r.cfg.Heuristic(n, r.goal)
		// Lazy decrease-key: the old entry is dropped when it surfaces.
		r.frontier.Push(frontierItem{node: n, priority: s.estimatedCost})
		return
	}

	// CostModelCompat: estimatedCost stays as queued.
	newCurrent := cs.currentCost + current.DistanceTo(n)
	newTotal := newCurrent + cs.estimatedCost
	if newTotal < s.currentCost+s.estimatedCost {
		s.parent = current
		s.currentCost = newCurrent
	}
}

// path walks parent links from the goal back to start and returns them in
// start→goal order.
func (r *runner) path() []*Node {
	var out []*Node
	for n := r.goal; n != nil; {
		out = append(out, n)
		if n == r.start {
			break
		}
		n = r.book.entry(n).parent
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// cleanup returns every node the search discovered to neutral.
// The start node is not touched.
func (r *runner) cleanup() {
	for _, n := range r.done {
		r.book.release(n)
	}
	for _, item := range r.frontier.Items() {
		r.book.release(item.node)
	}
	r.frontier.Reset()
}
