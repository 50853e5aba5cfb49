package threshold

import (
	"github.com/katalvlaran/judgeflow/flow"
)

// Builder materializes the flow network of a problem instance for one
// trial parameter. Every call must return a freshly allocated network and
// must not mutate the instance.
type Builder interface {
	Network(param int) flow.Network
}

// BuilderFunc adapts a plain function to Builder.
type BuilderFunc func(param int) flow.Network

// Network calls f(param).
func (f BuilderFunc) Network(param int) flow.Network { return f(param) }

// Probe builds the network for param and returns its maximum flow.
func Probe(b Builder, param int, opts ...flow.Option) int64 {
	return flow.MaxFlow(b.Network(param), opts...)
}

// Saturates returns the predicate "the max flow of the network built for
// param reaches target(param)". Each evaluation builds a new network.
func Saturates(b Builder, target func(param int) int64, opts ...flow.Option) func(int) bool {
	return func(param int) bool {
		return Probe(b, param, opts...) >= target(param)
	}
}
