package threshold

import (
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// NoThreshold is what judge problems print when a search has no answer.
const NoThreshold = -1

// Option configures a search.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger logs every predicate evaluation at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// FirstTrue returns the least x in [low, high] with pred(x) true.
// pred must be monotone over the range (false…false true…true).
// ok is false when no value qualifies, including when low > high.
//
// Steps:
//  1. Halve [lo, hi] on the floor midpoint, computed without forming lo+hi
//     or hi-lo so any range of T is safe: true moves hi down, false moves
//     lo past the midpoint.
//  2. When the span collapses, lo is the answer if some evaluation proved
//     hi true; otherwise high itself was never tested and is checked once.
//
// Evaluations: at most ⌈log2(high-low+1)⌉+1.
func FirstTrue[T constraints.Integer](low, high T, pred func(T) bool, opts ...Option) (T, bool) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if low > high {
		return low, false
	}

	eval := func(x T) bool {
		ok := pred(x)
		o.logger.Debug("threshold probe", zap.Int64("param", int64(x)), zap.Bool("result", ok))
		return ok
	}

	lo, hi := low, high
	verified := false // hi proven true by an evaluation
	for lo < hi {
		mid := midpoint(lo, hi)
		if eval(mid) {
			hi = mid
			verified = true
		} else {
			lo = mid + 1
		}
	}
	if !verified && !eval(hi) {
		return high, false
	}

	return lo, true
}

// midpoint returns ⌊(lo+hi)/2⌋ without overflow; for lo < hi it lies in
// [lo, hi-1].
func midpoint[T constraints.Integer](lo, hi T) T {
	return (lo & hi) + (lo^hi)>>1
}

// FindThreshold returns the greatest x in [low, high] for which
// infeasible(x) is false. infeasible must be false below some cutoff k and
// true from k on; the result is k-1, or high when nothing in range is
// infeasible. ok is false when infeasible(low) holds (no feasible value).
func FindThreshold[T constraints.Integer](low, high T, infeasible func(T) bool, opts ...Option) (T, bool) {
	if low > high {
		return low, false
	}
	k, found := FirstTrue(low, high, infeasible, opts...)
	switch {
	case !found:
		return high, true
	case k == low:
		return low, false
	default:
		return k - 1, true
	}
}

// LeastFeasible returns the least x in [low, high] with feasible(x) true,
// where feasible is false below a cutoff and true from it on.
func LeastFeasible[T constraints.Integer](low, high T, feasible func(T) bool, opts ...Option) (T, bool) {
	return FirstTrue(low, high, feasible, opts...)
}
