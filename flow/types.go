package flow

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for network construction and validation.
var (
	// ErrEmptyNetwork is returned when a network has fewer than two nodes.
	ErrEmptyNetwork = errors.New("flow: network needs at least a source and a sink")

	// ErrSourceOutOfRange is returned when the source id is not a node of the network.
	ErrSourceOutOfRange = errors.New("flow: source node out of range")

	// ErrSinkOutOfRange is returned when the sink id is not a node of the network.
	ErrSinkOutOfRange = errors.New("flow: sink node out of range")

	// ErrSourceIsSink is returned when source and sink are the same node.
	ErrSourceIsSink = errors.New("flow: source and sink must differ")

	// ErrMatrixShape is returned when the capacity matrix is not NodeCount×NodeCount.
	ErrMatrixShape = errors.New("flow: capacity matrix must be square with side NodeCount")

	// ErrCapacityOverflow is returned when capacities could overflow int64:
	// a pair c[u][v]+c[v][u] or the source out-capacity exceeds math.MaxInt64.
	ErrCapacityOverflow = errors.New("flow: capacity exceeds int64 range")
)

// EdgeError is returned (or panicked with) when an edge has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}

// Mark values stored in a Network's visit marks.
//
// A mark is an optional parent pointer: Unvisited means "not reached in this
// search", RootMark means "reached, no parent" and any positive value m means
// "reached from node m-1". Use ParentMark and ParentOf instead of doing the
// arithmetic by hand.
const (
	Unvisited = 0
	RootMark  = -1
)

// ParentMark encodes "reached from parent" as a mark value.
func ParentMark(parent int) int {
	return parent + 1
}

// ParentOf decodes a mark. ok is false for Unvisited and RootMark.
func ParentOf(mark int) (parent int, ok bool) {
	if mark <= 0 {
		return -1, false
	}

	return mark - 1, true
}

// Network is the capability set the max-flow engine needs from a flow network.
//
// Capacity returns the live residual matrix: the engine decreases forward
// entries and increases the paired reverse entries in place, so after a
// max-flow run the matrix is a residual graph and must not be treated as a
// clean network again. Out-of-range node ids are a caller bug.
//
// Capacities must keep every pair sum c[u][v]+c[v][u] and the total
// out-capacity of the source within math.MaxInt64. Pushes conserve pair
// sums and the flow value never exceeds the source out-capacity, so no
// residual entry or total can overflow.
type Network interface {
	Capacity() [][]int64
	NodeCount() int

	Mark(node, mark int)
	MarkOf(node int) int
	ClearMarks()

	Source() int
	Sink() int
}

// Option configures a max-flow run.
type Option func(*Options)

// Options holds the knobs of a max-flow run.
//   - Logger: receives one debug entry per augmentation (default no-op).
//   - OnAugment: called after each push with the source→sink path and its bottleneck.
type Options struct {
	Logger    *zap.Logger
	OnAugment func(path []int, bottleneck int64)
}

// DefaultOptions returns Options with a no-op logger and no hook.
func DefaultOptions() Options {
	return Options{
		Logger:    zap.NewNop(),
		OnAugment: func([]int, int64) {},
	}
}

// WithLogger routes augmentation traces to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnAugment registers a hook called after every augmentation.
func WithOnAugment(fn func(path []int, bottleneck int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}
