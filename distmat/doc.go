// Package distmat provides the immutable distance matrix consumed by the
// tourbound solvers.
//
// A Matrix is a dense, row-major n×n array of float64 distances validated
// once at construction:
//
//   - square shape, n ≥ 1,
//   - zero diagonal,
//   - no negative, NaN or ±Inf entries,
//   - symmetric within SymTol (the solvers assume symmetric instances).
//
// After New returns, the matrix never changes: there is no Set, and the
// constructor deep-copies its input so later mutation of the caller's slices
// cannot leak in. This makes a single Matrix safe to share across concurrent
// solver calls without locking.
//
// All failure modes are package-level sentinel errors matched via errors.Is;
// no function panics on user input.
package distmat
