package astar_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathsearch/astar"
)

// buildLattice returns a w×h 4-connected lattice with unit spacing and a
// vertical wall at column w/2 that is open only on the last row.
func buildLattice(w, h int) [][]*astar.Node {
	grid := make([][]*astar.Node, h)
	for y := 0; y < h; y++ {
		grid[y] = make([]*astar.Node, w)
		for x := 0; x < w; x++ {
			n := astar.NewNode(orb.Point{float64(x), float64(y)}, true, 1)
			n.ID = fmt.Sprintf("%d,%d", x, y)
			if x == w/2 && y != h-1 {
				n.Traversable = false
			}
			grid[y][x] = n
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x+1 < w {
				astar.Connect(grid[y][x], grid[y][x+1])
			}
			if y+1 < h {
				astar.Connect(grid[y][x], grid[y+1][x])
			}
		}
	}
	return grid
}

// SharedSuite exercises the side-table searches.
type SharedSuite struct {
	suite.Suite
	grid [][]*astar.Node
}

func (s *SharedSuite) SetupTest() {
	s.grid = buildLattice(9, 6)
}

func (s *SharedSuite) corner(x, y int) *astar.Node { return s.grid[y][x] }

func (s *SharedSuite) requireGridNeutral() {
	for _, row := range s.grid {
		for _, n := range row {
			require.Zero(s.T(), n.CurrentCost())
			require.Zero(s.T(), n.EstimatedCost())
			require.Nil(s.T(), n.Parent())
			require.Equal(s.T(), astar.Unexplored, n.State())
		}
	}
}

// TestMatchesInPlace verifies ComputeShared returns the same route as Compute.
func (s *SharedSuite) TestMatchesInPlace() {
	for _, model := range []astar.CostModel{astar.CostModelCompat, astar.CostModelStandard} {
		start, goal := s.corner(0, 0), s.corner(8, 0)

		inPlace, err := astar.Compute(start, goal, astar.WithCostModel(model))
		require.NoError(s.T(), err)
		shared, err := astar.ComputeShared(start, goal, astar.WithCostModel(model))
		require.NoError(s.T(), err)

		require.Equal(s.T(), ids(inPlace), ids(shared), "model %s", model)
		require.NotEmpty(s.T(), shared)
	}
	s.requireGridNeutral()
}

// TestDetourUnderWall checks the only gap in the wall is used.
func (s *SharedSuite) TestDetourUnderWall() {
	path, err := astar.ComputeShared(s.corner(0, 0), s.corner(8, 0),
		astar.WithCostModel(astar.CostModelStandard))
	require.NoError(s.T(), err)
	require.Len(s.T(), path, 19) // 8 across + 5 down + 5 up, plus the start
	require.Contains(s.T(), ids(path), "4,5")
	require.InDelta(s.T(), 18.0, astar.PathCost(path), 1e-9)
}

// TestNeverWritesNodes verifies the graph stays neutral even on failure.
func (s *SharedSuite) TestNeverWritesNodes() {
	astar.Link(s.corner(1, 0), s.corner(1, 0))

	_, err := astar.ComputeShared(s.corner(0, 0), s.corner(8, 0))
	require.ErrorIs(s.T(), err, astar.ErrSelfLoop)
	s.requireGridNeutral()
}

// TestConcurrentSearches runs many ComputeShared calls over one graph.
func (s *SharedSuite) TestConcurrentSearches() {
	want, err := astar.ComputeShared(s.corner(0, 0), s.corner(8, 5))
	require.NoError(s.T(), err)

	var wg sync.WaitGroup
	results := make([][]*astar.Node, 32)
	errs := make([]error, len(results))
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = astar.ComputeShared(s.corner(0, 0), s.corner(8, 5))
		}()
	}
	wg.Wait()

	for i := range results {
		require.NoError(s.T(), errs[i])
		require.Equal(s.T(), ids(want), ids(results[i]))
	}
	s.requireGridNeutral()
}

// TestComputeAll checks ordering, unreachable entries and worker limits.
func (s *SharedSuite) TestComputeAll() {
	island := astar.NewNode(orb.Point{100, 100}, true, 1)
	queries := []astar.Query{
		{Start: s.corner(0, 0), Goal: s.corner(8, 0)},
		{Start: s.corner(0, 0), Goal: island},
		{Start: s.corner(2, 2), Goal: s.corner(2, 2)},
		{Start: s.corner(8, 5), Goal: s.corner(0, 5)},
	}
	rec := &recorder{}

	paths, err := astar.ComputeAll(context.Background(), queries,
		astar.WithWorkers(2),
		astar.WithObserver(rec),
	)
	require.NoError(s.T(), err)
	require.Len(s.T(), paths, len(queries))

	require.Equal(s.T(), "0,0", paths[0][0].ID)
	require.Equal(s.T(), "8,0", paths[0][len(paths[0])-1].ID)
	require.Nil(s.T(), paths[1])
	require.Equal(s.T(), []string{"2,2"}, ids(paths[2]))
	require.Len(s.T(), paths[3], 9)
	require.Len(s.T(), rec.stats, len(queries))
	s.requireGridNeutral()
}

// TestComputeAllPropagatesError verifies the failing index is reported.
func (s *SharedSuite) TestComputeAllPropagatesError() {
	queries := []astar.Query{
		{Start: s.corner(0, 0), Goal: s.corner(1, 0)},
		{Start: nil, Goal: s.corner(1, 0)},
	}

	_, err := astar.ComputeAll(context.Background(), queries, astar.WithWorkers(1))
	require.ErrorIs(s.T(), err, astar.ErrNilNode)
	require.Contains(s.T(), err.Error(), "query 1")
}

// TestComputeAllCancelled verifies a cancelled context stops the batch.
func (s *SharedSuite) TestComputeAllCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := astar.ComputeAll(ctx, []astar.Query{{Start: s.corner(0, 0), Goal: s.corner(8, 0)}})
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestSharedSuite(t *testing.T) {
	suite.Run(t, new(SharedSuite))
}
