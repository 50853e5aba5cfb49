package judge

import (
	"fmt"
	"io"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/judgeflow/flow"
)

// MaxFlowProblem answers a raw max-flow instance:
//
//	n m s t
//	m lines "u v c"   (0-based nodes, parallel edges accumulate)
//
// and prints the flow value.
type MaxFlowProblem struct {
	log *zap.Logger
}

// NewMaxFlowProblem returns the raw max-flow problem.
func NewMaxFlowProblem(log *zap.Logger) *MaxFlowProblem {
	if log == nil {
		log = zap.NewNop()
	}
	return &MaxFlowProblem{log: log.Named("maxflow")}
}

// Name implements Problem.
func (*MaxFlowProblem) Name() string { return "maxflow" }

// Solve implements Problem.
func (p *MaxFlowProblem) Solve(in io.Reader, out io.Writer) error {
	net, err := ReadNetwork(NewScanner(in))
	if err != nil {
		return err
	}

	value := flow.MaxFlow(net, flow.WithLogger(p.log))
	p.log.Info("solved", zap.Int("nodes", net.NodeCount()), zap.Int64("flow", value))
	_, err = fmt.Fprintln(out, value)
	return err
}

// MaxNetworkNodes bounds n in a raw instance; the matrix is n×n int64.
const MaxNetworkNodes = 2048

// ReadNetwork parses a raw network. Out-of-range nodes, negative
// capacities, more than MaxNetworkNodes nodes and capacities past the int64
// bound (see flow.Network) are input errors here, not builder bugs.
func ReadNetwork(sc *Scanner) (*flow.MatrixNetwork, error) {
	var head [4]int
	for i := range head {
		v, err := sc.Int()
		if err != nil {
			return nil, fmt.Errorf("maxflow: header: %w", err)
		}
		head[i] = v
	}
	n, m, s, t := head[0], head[1], head[2], head[3]
	if n > MaxNetworkNodes {
		return nil, fmt.Errorf("%w: %d nodes, at most %d", ErrMalformedInput, n, MaxNetworkNodes)
	}
	if m < 0 {
		return nil, fmt.Errorf("%w: %d edges", ErrMalformedInput, m)
	}

	net, err := flow.NewMatrixNetwork(n, s, t)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	for i := 0; i < m; i++ {
		var uv [2]int
		for j := range uv {
			if uv[j], err = sc.Int(); err != nil {
				return nil, fmt.Errorf("maxflow: edge %d: %w", i, err)
			}
		}
		c, err := sc.Int64()
		if err != nil {
			return nil, fmt.Errorf("maxflow: edge %d: %w", i, err)
		}
		u, v := uv[0], uv[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%w: edge %d: node out of range [0,%d)", ErrMalformedInput, i, n)
		}
		if c < 0 {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrMalformedInput, i, flow.EdgeError{From: u, To: v, Cap: c})
		}
		if c > math.MaxInt64-net.CapacityOf(u, v) {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrMalformedInput, i, flow.ErrCapacityOverflow)
		}
		net.AddCapacity(u, v, c)
	}
	if err := flow.Validate(net); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return net, nil
}
