package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/judgeflow/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"EmptyRows", []string{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", []string{""}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", []string{"..", "."}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.rows, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([]string{".X.", "X.X"}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

// TestIndexCoordinate round-trips row-major indices.
func TestIndexCoordinate(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph([]string{"abcd", "efgh", "ijkl"}, gridgraph.DefaultGridOptions())
	for idx := 0; idx < gg.Size(); idx++ {
		x, y := gg.Coordinate(idx)
		if got := gg.Index(x, y); got != idx {
			t.Errorf("Index(Coordinate(%d)) = %d", idx, got)
		}
	}
	if c := gg.Cell(gg.Index(2, 1)); c != 'g' {
		t.Errorf("Cell(2,1) = %q; want 'g'", c)
	}
}

// TestInputIsCopied: mutating the source rows cannot reach the grid.
func TestInputIsCopied(t *testing.T) {
	rows := []string{"C.P"}
	gg, _ := gridgraph.NewGridGraph(rows, gridgraph.DefaultGridOptions())
	gg.Cells[0][1] = 'X'
	if rows[0] != "C.P" {
		t.Fatalf("input rows changed: %q", rows[0])
	}
}

//----------------------------------------------------------------------------//
// Find / Distances Tests
//----------------------------------------------------------------------------//

// TestFind lists symbols in row-major order.
func TestFind(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph([]string{
		"C.P",
		"XPC",
	}, gridgraph.DefaultGridOptions())
	if got, want := gg.Find('C'), []int{0, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("Find('C') = %v; want %v", got, want)
	}
	if got, want := gg.Find('P'), []int{2, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("Find('P') = %v; want %v", got, want)
	}
	if got := gg.Find('#'); got != nil {
		t.Errorf("Find('#') = %v; want nil", got)
	}
}

// TestDistances_AroundWall checks a detour around a wall column.
func TestDistances_AroundWall(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph([]string{
		".X.",
		".X.",
		"...",
	}, gridgraph.DefaultGridOptions())
	dist, err := gg.Distances(0)
	if err != nil {
		t.Fatalf("Distances error: %v", err)
	}
	want := []int{
		0, -1, 6,
		1, -1, 5,
		2, 3, 4,
	}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("Distances(0) = %v; want %v", dist, want)
	}
}

// TestDistances_Conn8 uses diagonal moves.
func TestDistances_Conn8(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, _ := gridgraph.NewGridGraph([]string{"...", "...", "..."}, opts)
	dist, _ := gg.Distances(0)
	if d := dist[gg.Index(2, 2)]; d != 2 {
		t.Errorf("diagonal distance = %d; want 2", d)
	}
}

// TestDistances_Unreachable covers enclosed cells and a bad start.
func TestDistances_Unreachable(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph([]string{"C.X.P"}, gridgraph.DefaultGridOptions())
	dist, _ := gg.Distances(0)
	if dist[4] != gridgraph.Unreachable {
		t.Errorf("dist to walled-off cell = %d; want Unreachable", dist[4])
	}
	if _, err := gg.Distances(5); !errors.Is(err, gridgraph.ErrCellIndex) {
		t.Errorf("Distances(5) error = %v; want ErrCellIndex", err)
	}
	if _, err := gg.Distances(-1); !errors.Is(err, gridgraph.ErrCellIndex) {
		t.Errorf("Distances(-1) error = %v; want ErrCellIndex", err)
	}
}

// TestNeighborOffsets checks the move set of each connectivity.
func TestNeighborOffsets(t *testing.T) {
	cases := []struct {
		conn gridgraph.Connectivity
		want int
	}{
		{gridgraph.Conn4, 4},
		{gridgraph.Conn8, 8},
	}
	for _, tc := range cases {
		offsets := mustGrid(t, []string{"..."}, tc.conn).NeighborOffsets()
		if len(offsets) != tc.want {
			t.Fatalf("conn %v: %d offsets; want %d", tc.conn, len(offsets), tc.want)
		}
		seen := make(map[[2]int]bool, len(offsets))
		for _, d := range offsets {
			if d == [2]int{0, 0} || d[0] < -1 || d[0] > 1 || d[1] < -1 || d[1] > 1 {
				t.Errorf("conn %v: bad offset %v", tc.conn, d)
			}
			if seen[d] {
				t.Errorf("conn %v: duplicate offset %v", tc.conn, d)
			}
			seen[d] = true
		}
		if tc.conn == gridgraph.Conn4 {
			for _, d := range offsets {
				if d[0] != 0 && d[1] != 0 {
					t.Errorf("Conn4 has diagonal offset %v", d)
				}
			}
		}
	}
}
