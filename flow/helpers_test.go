package flow_test

import (
	"github.com/stretchr/testify/require"
)

// sliceNetwork is a bare Network used to exercise the engine and Validate
// against shapes MatrixNetwork refuses to build.
type sliceNetwork struct {
	cap          [][]int64
	marks        []int
	source, sink int
	clears       int
}

func (n *sliceNetwork) Capacity() [][]int64 { return n.cap }
func (n *sliceNetwork) NodeCount() int      { return len(n.cap) }
func (n *sliceNetwork) Mark(node, mark int) { n.marks[node] = mark }
func (n *sliceNetwork) MarkOf(node int) int { return n.marks[node] }
func (n *sliceNetwork) Source() int         { return n.source }
func (n *sliceNetwork) Sink() int           { return n.sink }

func (n *sliceNetwork) ClearMarks() {
	n.clears++
	n.marks = make([]int, len(n.cap))
}

// assertConserved checks that every pair keeps its capacity sum.
func assertConserved(t require.TestingT, before, after [][]int64) {
	for u := range before {
		for v := u + 1; v < len(before); v++ {
			require.Equal(t, before[u][v]+before[v][u], after[u][v]+after[v][u],
				"pair (%d,%d) lost capacity", u, v)
		}
	}
}

// assertNonNegative checks the residual matrix never goes below zero.
func assertNonNegative(t require.TestingT, capacity [][]int64) {
	for u, row := range capacity {
		for v, c := range row {
			require.GreaterOrEqual(t, c, int64(0), "capacity %d→%d", u, v)
		}
	}
}

// bruteForceMinCut enumerates every partition with source on one side and
// sink on the other and returns the cheapest forward cut.
func bruteForceMinCut(capacity [][]int64, source, sink int) int64 {
	n := len(capacity)
	best := int64(-1)
	for mask := 0; mask < 1<<n; mask++ {
		if mask&(1<<source) == 0 || mask&(1<<sink) != 0 {
			continue
		}
		var cut int64
		for u := 0; u < n; u++ {
			if mask&(1<<u) == 0 {
				continue
			}
			for v := 0; v < n; v++ {
				if mask&(1<<v) == 0 {
					cut += capacity[u][v]
				}
			}
		}
		if best < 0 || cut < best {
			best = cut
		}
	}

	return best
}
