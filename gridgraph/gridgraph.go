// Package gridgraph provides utilities to treat a 2D character map as a
// graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Symbol lookup in row-major order
//   - Breadth-first step distances around walls
//   - Connected components of passable cells
//
// Cells equal to GridOptions.Wall block movement; every other symbol is passable.
package gridgraph

// NewGridGraph constructs a GridGraph from non-empty rows of equal length.
// It copies the input to ensure immutability.
// Returns ErrEmptyGrid if there are no rows or the rows are empty,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(rows []string, opts GridOptions) (*GridGraph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]byte, h)
	for y := 0; y < h; y++ {
		cells[y] = []byte(rows[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		Cells:           cells,
		Conn:            opts.Conn,
		Wall:            opts.Wall,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Size returns the number of cells.
func (gg *GridGraph) Size() int {
	return gg.Width * gg.Height
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Cell returns the symbol stored at a row-major index.
func (gg *GridGraph) Cell(idx int) byte {
	x, y := gg.Coordinate(idx)
	return gg.Cells[y][x]
}

// Passable reports whether the cell at idx is not a wall.
func (gg *GridGraph) Passable(idx int) bool {
	return gg.Cell(idx) != gg.Wall
}

// Find returns the row-major indices of every cell holding symbol,
// in increasing order.
func (gg *GridGraph) Find(symbol byte) []int {
	var out []int
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Cells[y][x] == symbol {
				out = append(out, gg.Index(x, y))
			}
		}
	}

	return out
}

// Distances runs a breadth-first search from start through passable cells
// and returns, per row-major index, the number of steps from start, or
// Unreachable. A wall start reaches nothing but itself.
// Returns ErrCellIndex if start is outside the grid.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func (gg *GridGraph) Distances(start int) ([]int, error) {
	if start < 0 || start >= gg.Size() {
		return nil, ErrCellIndex
	}
	dist := make([]int, gg.Size())
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[start] = 0

	queue := []int{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if !gg.Passable(u) {
			continue
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.NeighborOffsets() {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.Index(vx, vy)
			if dist[v] == Unreachable && gg.Passable(v) {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return dist, nil
}
