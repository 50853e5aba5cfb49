package flow

import (
	"fmt"
	"math"
)

// Validate checks the structural contract of net:
// at least two nodes, a NodeCount×NodeCount matrix, distinct in-range
// source and sink, no negative capacity (EdgeError), and capacities within
// the int64 bound described on Network (ErrCapacityOverflow).
//
// Complexity: O(V²).
func Validate(net Network) error {
	n := net.NodeCount()
	if n < 2 {
		return ErrEmptyNetwork
	}
	capacity := net.Capacity()
	if len(capacity) != n {
		return fmt.Errorf("%w: %d rows for %d nodes", ErrMatrixShape, len(capacity), n)
	}
	for u, row := range capacity {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d columns", ErrMatrixShape, u, len(row))
		}
		for v, c := range row {
			if c < 0 {
				return EdgeError{From: u, To: v, Cap: c}
			}
		}
	}

	source, sink := net.Source(), net.Sink()
	if source < 0 || source >= n {
		return ErrSourceOutOfRange
	}
	if sink < 0 || sink >= n {
		return ErrSinkOutOfRange
	}
	if source == sink {
		return ErrSourceIsSink
	}

	return checkCapacityRange(capacity, source)
}

// checkCapacityRange expects non-negative capacities.
func checkCapacityRange(capacity [][]int64, source int) error {
	for u, row := range capacity {
		for v := u + 1; v < len(row); v++ {
			if row[v] > math.MaxInt64-capacity[v][u] {
				return fmt.Errorf("%w: pair %d↔%d", ErrCapacityOverflow, u, v)
			}
		}
	}

	var out int64
	for _, c := range capacity[source] {
		if c > math.MaxInt64-out {
			return fmt.Errorf("%w: source out-capacity", ErrCapacityOverflow)
		}
		out += c
	}

	return nil
}

// SourceSide reports, per node, whether it is reachable from the source over
// positive residual capacities. Run after MaxFlow it yields the source side
// of a minimum cut. Marks are cleared before and left dirty after.
func SourceSide(net Network) []bool {
	capacity := net.Capacity()
	seen := make([]bool, net.NodeCount())

	net.ClearMarks()
	net.Mark(net.Source(), RootMark)
	seen[net.Source()] = true
	queue := []int{net.Source()}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for v, c := range capacity[u] {
			if c > 0 && !seen[v] {
				seen[v] = true
				net.Mark(v, ParentMark(u))
				queue = append(queue, v)
			}
		}
	}

	return seen
}

// CutCapacity sums capacity[u][v] over all u on the source side and v off it.
// Pass a clean (pre-flow) matrix, e.g. a MatrixNetwork.Snapshot.
func CutCapacity(capacity [][]int64, sourceSide []bool) int64 {
	var total int64
	for u, row := range capacity {
		if !sourceSide[u] {
			continue
		}
		for v, c := range row {
			if !sourceSide[v] {
				total += c
			}
		}
	}

	return total
}
