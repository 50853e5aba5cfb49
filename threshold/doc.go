// Package threshold finds the boundary of a monotone integer predicate with
// binary search, and glues that search to flow networks rebuilt per trial.
//
// # Boundary convention
//
// Every search is phrased through FirstTrue: given low ≤ high and a predicate
// that is false…false true…true over [low, high], it returns the least value
// whose predicate is true, with ok == false when no value in range is true.
// The two problem-facing forms are thin wrappers:
//
//   - FindThreshold(low, high, infeasible): greatest value that is not
//     infeasible; ok == false when even low is infeasible.
//   - LeastFeasible(low, high, feasible): least feasible value; ok == false
//     when even high is infeasible.
//
// A returned value is always one the predicate was actually evaluated on, or
// is implied by such an evaluation; an unverified boundary is never returned.
// Problems print NoThreshold (-1) when ok is false.
//
// # Cost
//
// The predicate is expected to be expensive (a full max-flow run), so it is
// evaluated at most ⌈log2(high-low+1)⌉+1 times.
//
// # Networks
//
// Builder produces a fresh flow.Network for a trial parameter. Probe runs
// one max-flow on it and Saturates turns "flow reaches target(param)" into a
// predicate. Each evaluation builds a new network; residual matrices are
// never reused between trials.
package threshold
