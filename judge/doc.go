// Package judge is the I/O boundary of the judge problems: a whitespace
// token Scanner, the Problem interface every solution implements, a
// Registry the CLI dispatches through, and the raw max-flow problem.
//
// Malformed input is fatal: Scanner errors wrap ErrMalformedInput and are
// never retried.
package judge
