// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/judgeflow.
package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Unreachable is the distance reported for cells a search cannot reach.
const Unreachable = -1

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Wall is the cell symbol that blocks movement.
	Wall byte
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// Wall='X', Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Wall: 'X',
		Conn: Conn4,
	}
}

// GridGraph treats a rectangular character map as a graph. It is immutable once built.
// Cells[y][x] holds the input symbol; every symbol except Wall is passable.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	Cells           [][]byte
	Conn            Connectivity
	Wall            byte
	neighborOffsets [][2]int
}
