// Package flow implements the maximum-flow engine shared by every judge
// problem in this module: Edmonds–Karp over a dense capacity matrix, written
// once against the small Network capability interface.
//
// # Network
//
// Any type that exposes a mutable N×N capacity matrix, per-node visit marks
// and a source/sink pair can be solved:
//
//	type Network interface {
//	    Capacity() [][]int64
//	    NodeCount() int
//	    Mark(node, mark int)
//	    MarkOf(node int) int
//	    ClearMarks()
//	    Source() int
//	    Sink() int
//	}
//
// MatrixNetwork is the ready-made implementation used by the builders.
//
// Marks double as BFS parent pointers: Unvisited (0), RootMark (-1) for the
// source, and ParentMark(u) == u+1 for a node reached from u. ParentOf
// decodes a mark back into an optional parent.
//
// # Algorithm
//
//   - Method: breadth-first search for the shortest (fewest-edge) augmenting
//     path, early exit once the sink is marked, bottleneck push along the
//     parent chain.
//   - Time:   O(V · E²) augmentations in the worst case.
//   - Memory: O(V) besides the matrix.
//
// The matrix is consumed. After MaxFlow it is the residual graph: for every
// pair the sum capacity[u][v]+capacity[v][u] is unchanged, and a second run
// returns 0. Build a fresh network per computation.
//
// # Cuts
//
// SourceSide returns the residual reachability set (the source side of a
// minimum cut after MaxFlow); CutCapacity prices it against a clean
// Snapshot, which equals the max-flow value.
//
// # Errors
//
//	ErrEmptyNetwork     - fewer than two nodes.
//	ErrSourceOutOfRange - source id outside [0,N).
//	ErrSinkOutOfRange   - sink id outside [0,N).
//	ErrSourceIsSink     - source == sink.
//	ErrMatrixShape      - matrix is not N×N.
//	ErrCapacityOverflow - a pair sum or the source out-capacity exceeds MaxInt64.
//	EdgeError           - negative capacity.
//
// EdmondsKarp returns these; MaxFlow and MatrixNetwork.SetCapacity panic
// with them, since a malformed network is a builder bug.
package flow
