package gridgraph

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/pathsearch/astar"
)

// Lattice is the astar node graph built from a GridGraph: one node per cell,
// row-major. Node IDs are "x,y".
//
// Route uses astar.Compute, so a Lattice must not be routed from two
// goroutines at once; RouteShared has no such restriction.
type Lattice struct {
	Width, Height int
	nodes         []*astar.Node
	cells         map[*astar.Node]Cell
}

// Nodes builds a fresh Lattice for the grid.
//
// Each cell (x,y) becomes a node at (x*CellSize, y*CellSize), traversable iff
// its value ≥ LandThreshold, with TraversalCostMultiplier = value. Every node
// lists all in-bounds neighbours per gg.Conn, blocked ones included; the search
// skips those.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) Nodes() *Lattice {
	l := &Lattice{
		Width:  gg.Width,
		Height: gg.Height,
		nodes:  make([]*astar.Node, gg.Width*gg.Height),
		cells:  make(map[*astar.Node]Cell, gg.Width*gg.Height),
	}

	// 1) One node per cell.
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			v := gg.CellValues[y][x]
			n := astar.NewNode(
				orb.Point{float64(x) * gg.CellSize, float64(y) * gg.CellSize},
				v >= gg.LandThreshold,
				float64(v),
			)
			n.ID = vertexID(x, y)
			l.nodes[gg.index(x, y)] = n
			l.cells[n] = Cell{X: x, Y: y, Value: v}
		}
	}

	// 2) Wire neighbours in offset order.
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := l.nodes[gg.index(x, y)]
			u.ConnectedNodes = make([]*astar.Node, 0, len(gg.neighborOffsets))
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				astar.Link(u, l.nodes[gg.index(nx, ny)])
			}
		}
	}

	return l
}

// At returns the node for cell (x,y), or ErrOutOfBounds.
func (l *Lattice) At(x, y int) (*astar.Node, error) {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}

	return l.nodes[y*l.Width+x], nil
}

// CellOf returns the grid cell a lattice node was built from.
func (l *Lattice) CellOf(n *astar.Node) (Cell, bool) {
	c, ok := l.cells[n]
	return c, ok
}

// Route searches from cell (x0,y0) to cell (x1,y1) with astar.Compute and
// returns the visited cells in order. A nil slice with a nil error means the
// goal cell cannot be reached.
func (l *Lattice) Route(x0, y0, x1, y1 int, opts ...astar.Option) ([]Cell, error) {
	return l.route(astar.Compute, x0, y0, x1, y1, opts)
}

// RouteShared is Route on top of astar.ComputeShared; it is safe to call
// concurrently on one Lattice.
func (l *Lattice) RouteShared(x0, y0, x1, y1 int, opts ...astar.Option) ([]Cell, error) {
	return l.route(astar.ComputeShared, x0, y0, x1, y1, opts)
}

type computeFunc func(start, goal *astar.Node, opts ...astar.Option) ([]*astar.Node, error)

func (l *Lattice) route(compute computeFunc, x0, y0, x1, y1 int, opts []astar.Option) ([]Cell, error) {
	start, err := l.At(x0, y0)
	if err != nil {
		return nil, err
	}
	goal, err := l.At(x1, y1)
	if err != nil {
		return nil, err
	}

	path, err := compute(start, goal, opts...)
	if err != nil || path == nil {
		return nil, err
	}
	cells := make([]Cell, len(path))
	for i, n := range path {
		cells[i] = l.cells[n]
	}

	return cells, nil
}
