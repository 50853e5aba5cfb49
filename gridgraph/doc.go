// Package gridgraph treats a 2D character map as a graph, enabling
// step-distance searches and component analysis around walls.
//
// What:
//
//   - GridGraph wraps rectangular rows of symbols with a tunable Wall symbol.
//   - Find lists the cells holding a symbol (cars, parking slots, ...).
//   - Distances computes breadth-first step counts from one cell.
//   - ConnectedComponents groups passable cells into regions.
//
// Why:
//
//   - Parking maps: how far each car is from each free slot.
//   - Reachability pre-checks: a region with more cars than slots is hopeless.
//
// Complexity:
//
//   - Distances:           O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Wall: symbol that blocks movement.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellIndex: a start index outside the grid.
package gridgraph
