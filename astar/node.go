package astar

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Node is one vertex of a search graph embedded in the plane.
//
// Position, Traversable, TraversalCostMultiplier and ConnectedNodes are owned by
// the caller and are only read by a search. The scratch fields behind
// CurrentCost, EstimatedCost, Parent and State belong to whichever Compute call
// is running; they are neutral (zero, nil, Unexplored) whenever no Compute is
// in flight. Two Compute calls must never share a node at the same time; use
// ComputeShared for concurrent searches.
type Node struct {
	// ID is an optional label used in String, logs and error messages.
	ID string

	// Position is the node location used for distances and the heuristic.
	Position orb.Point

	// Traversable reports whether a search may enter this node.
	// A blocked node may still be listed by its neighbours; it is skipped.
	Traversable bool

	// TraversalCostMultiplier scales the cost of entering this node.
	TraversalCostMultiplier float64

	// ConnectedNodes lists the neighbours reachable from this node.
	// Edges are directed as stored; use Connect for an undirected edge.
	ConnectedNodes []*Node

	scratch scratch
}

// scratch is the per-search state of a node.
type scratch struct {
	currentCost   float64
	estimatedCost float64
	parent        *Node // non-owning back-reference toward the start node
	state         NodeState
}

// NewNode returns a node with no neighbours.
func NewNode(pos orb.Point, traversable bool, multiplier float64) *Node {
	return &Node{
		Position:                pos,
		Traversable:             traversable,
		TraversalCostMultiplier: multiplier,
	}
}

// DistanceTo returns the Euclidean distance between n and other.
func (n *Node) DistanceTo(other *Node) float64 {
	return planar.Distance(n.Position, other.Position)
}

// CurrentCost is the accumulated cost from the start node along the best path found so far.
func (n *Node) CurrentCost() float64 { return n.scratch.currentCost }

// EstimatedCost is the frontier priority of the node.
func (n *Node) EstimatedCost() float64 { return n.scratch.estimatedCost }

// TotalCost is CurrentCost plus EstimatedCost.
func (n *Node) TotalCost() float64 { return n.scratch.currentCost + n.scratch.estimatedCost }

// Parent is the predecessor on the best path found so far, or nil.
func (n *Node) Parent() *Node { return n.scratch.parent }

// State is the exploration state of the node within the running search.
func (n *Node) State() NodeState { return n.scratch.state }

// String returns the ID, or the position if the node has no ID.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.ID != "" {
		return n.ID
	}

	return fmt.Sprintf("(%g,%g)", n.Position.X(), n.Position.Y())
}

// Link appends to to from's neighbours (one-way edge).
func Link(from, to *Node) {
	from.ConnectedNodes = append(from.ConnectedNodes, to)
}

// Connect links a and b both ways.
func Connect(a, b *Node) {
	Link(a, b)
	Link(b, a)
}

// ResetNodes restores the scratch fields of every given node to neutral.
// Compute does this itself; ResetNodes is meant for callers repairing a graph by hand.
func ResetNodes(nodes ...*Node) {
	for _, n := range nodes {
		if n != nil {
			n.scratch = scratch{}
		}
	}
}

// PathCost sums the entering cost of every step of path:
// dist(path[i-1], path[i]) * path[i].TraversalCostMultiplier.
// Paths shorter than two nodes cost 0.
func PathCost(path []*Node) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += path[i-1].DistanceTo(path[i]) * path[i].TraversalCostMultiplier
	}

	return total
}
