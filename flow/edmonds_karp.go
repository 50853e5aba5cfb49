package flow

import (
	"go.uber.org/zap"
)

// MaxFlow computes the maximum flow from net.Source() to net.Sink() with the
// Edmonds–Karp algorithm and returns its value.
//
// The capacity matrix is consumed: on return it holds residual capacities.
// A malformed network (see Validate) is a builder bug and panics with the
// validation error; this includes capacities past the int64 bound on Network.
func MaxFlow(net Network, opts ...Option) int64 {
	total, err := EdmondsKarp(net, opts...)
	if err != nil {
		panic(err)
	}

	return total
}

// EdmondsKarp is MaxFlow with the validation error returned instead of panicking.
//
// Steps:
//  1. Validate the network shape and capacities (O(V²)).
//  2. Clear marks and BFS from the source for a shortest augmenting path,
//     stopping as soon as the sink is marked.
//  3. If the sink was not reached, return the accumulated flow.
//  4. Walk the parent chain sink→source to find the bottleneck.
//  5. Walk it again, pushing the bottleneck: forward -= f, reverse += f.
//  6. Add the bottleneck to the total and go to 2.
//
// Complexity: O(V · E²) augmentations bound, O(V²) per BFS on the dense matrix.
// Memory:     O(V) beyond the matrix (queue and path).
func EdmondsKarp(net Network, opts ...Option) (int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := Validate(net); err != nil {
		return 0, err
	}

	var (
		total int64
		round int
		queue = make([]int, 0, net.NodeCount())
	)
	for {
		net.ClearMarks()
		if !augmentingPath(net, queue) {
			return total, nil
		}

		bottleneck := pathBottleneck(net)
		path := pushAlongPath(net, bottleneck)
		total += bottleneck
		round++

		o.Logger.Debug("augmented",
			zap.Int("round", round),
			zap.Int("path_len", len(path)),
			zap.Int64("bottleneck", bottleneck),
			zap.Int64("total", total),
		)
		o.OnAugment(path, bottleneck)
	}
}

// augmentingPath runs one BFS over positive residual edges and reports
// whether the sink was marked. queue is scratch space reused across rounds.
func augmentingPath(net Network, queue []int) bool {
	capacity := net.Capacity()
	source, sink := net.Source(), net.Sink()

	net.Mark(source, RootMark)
	queue = append(queue[:0], source)
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for v, c := range capacity[u] {
			if c <= 0 || net.MarkOf(v) != Unvisited {
				continue
			}
			net.Mark(v, ParentMark(u))
			if v == sink {
				return true
			}
			queue = append(queue, v)
		}
	}

	return false
}

// pathBottleneck returns the smallest residual capacity on the marked
// sink→source chain.
func pathBottleneck(net Network) int64 {
	capacity := net.Capacity()
	v := net.Sink()
	u, _ := ParentOf(net.MarkOf(v))
	bottleneck := capacity[u][v]
	for {
		v = u
		parent, ok := ParentOf(net.MarkOf(v))
		if !ok {
			return bottleneck
		}
		u = parent
		if capacity[u][v] < bottleneck {
			bottleneck = capacity[u][v]
		}
	}
}

// pushAlongPath moves f units along the marked chain and returns the path
// in source→sink order.
func pushAlongPath(net Network, f int64) []int {
	capacity := net.Capacity()
	path := []int{net.Sink()}
	for v := net.Sink(); ; {
		u, ok := ParentOf(net.MarkOf(v))
		if !ok {
			break
		}
		capacity[u][v] -= f
		capacity[v][u] += f
		path = append(path, u)
		v = u
	}

	// reverse to source→sink
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
