// Package gridgraph treats a 2D grid of cells as a search graph for package
// astar, with component analysis to rule out hopeless queries up front.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Cells with value ≥ LandThreshold are passable; their value doubles as the
//     traversal cost multiplier (1 = open ground, 3 = swamp, …).
//   - Nodes builds an astar.Node per cell, wired by Conn4 or Conn8 adjacency.
//   - ConnectedComponents labels contiguous passable regions as roaring bitmaps
//     of row-major cell indices; Connected answers same-region queries.
//
// Why:
//
//   - Game maps and floor plans: route units around walls and rough terrain.
//   - Batch planners: skip searches between cells in different regions.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H) time and memory.
//   - Nodes:               O(W×H×d), Memory: O(W×H×d)  (d = 4 or 8).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H); computed once and cached.
//   - Lattice.Route:       one astar search, O((V + E) log V).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered passable.
//   - GridOptions.Conn: Conn4 (4-neighbours) or Conn8 (8-neighbours).
//   - GridOptions.CellSize: spacing between neighbouring cell centres.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCellSize: CellSize is not positive.
//   - ErrOutOfBounds: requested coordinates fall outside the grid.
//   - ErrComponentIndex: requested component index out of range.
package gridgraph
