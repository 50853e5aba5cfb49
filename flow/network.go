package flow

import (
	"fmt"
	"math"
)

// MatrixNetwork is the dense Network used by every builder in this module:
// an n×n capacity matrix, one mark per node and fixed source/sink ids.
//
// A MatrixNetwork is built once per trial, handed to MaxFlow, and dropped;
// after the run its matrix holds residual capacities.
type MatrixNetwork struct {
	capacity     [][]int64
	marks        []int
	source, sink int
}

// NewMatrixNetwork allocates an all-zero network of n nodes.
// Returns ErrEmptyNetwork for n < 2, ErrSourceOutOfRange / ErrSinkOutOfRange
// for ids outside [0,n) and ErrSourceIsSink when they coincide.
func NewMatrixNetwork(n, source, sink int) (*MatrixNetwork, error) {
	if n < 2 {
		return nil, ErrEmptyNetwork
	}
	if source < 0 || source >= n {
		return nil, ErrSourceOutOfRange
	}
	if sink < 0 || sink >= n {
		return nil, ErrSinkOutOfRange
	}
	if source == sink {
		return nil, ErrSourceIsSink
	}

	// one backing array keeps the rows contiguous
	cells := make([]int64, n*n)
	capacity := make([][]int64, n)
	for u := range capacity {
		capacity[u] = cells[u*n : (u+1)*n : (u+1)*n]
	}

	return &MatrixNetwork{
		capacity: capacity,
		marks:    make([]int, n),
		source:   source,
		sink:     sink,
	}, nil
}

// SetCapacity overwrites the capacity of u→v.
// A negative capacity is a builder bug and panics with EdgeError.
func (m *MatrixNetwork) SetCapacity(u, v int, c int64) {
	if c < 0 {
		panic(EdgeError{From: u, To: v, Cap: c})
	}
	m.capacity[u][v] = c
}

// AddCapacity adds c to the capacity of u→v, so parallel edges accumulate.
// A sum past math.MaxInt64 panics with ErrCapacityOverflow.
func (m *MatrixNetwork) AddCapacity(u, v int, c int64) {
	cur := m.capacity[u][v]
	if c > 0 && cur > math.MaxInt64-c {
		panic(fmt.Errorf("%w: edge %d→%d: %d + %d", ErrCapacityOverflow, u, v, cur, c))
	}
	m.SetCapacity(u, v, cur+c)
}

// CapacityOf returns the current (residual) capacity of u→v.
func (m *MatrixNetwork) CapacityOf(u, v int) int64 {
	return m.capacity[u][v]
}

// Snapshot returns a deep copy of the capacity matrix.
func (m *MatrixNetwork) Snapshot() [][]int64 {
	n := len(m.capacity)
	out := make([][]int64, n)
	for u := range m.capacity {
		out[u] = make([]int64, n)
		copy(out[u], m.capacity[u])
	}

	return out
}

func (m *MatrixNetwork) Capacity() [][]int64 { return m.capacity }
func (m *MatrixNetwork) NodeCount() int      { return len(m.capacity) }
func (m *MatrixNetwork) Mark(node, mark int) { m.marks[node] = mark }
func (m *MatrixNetwork) MarkOf(node int) int { return m.marks[node] }
func (m *MatrixNetwork) Source() int         { return m.source }
func (m *MatrixNetwork) Sink() int           { return m.sink }

// ClearMarks resets every mark to Unvisited.
func (m *MatrixNetwork) ClearMarks() {
	for i := range m.marks {
		m.marks[i] = Unvisited
	}
}
