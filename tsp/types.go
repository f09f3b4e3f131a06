// Package tsp - result shape, algorithm selector, and sentinel errors.
// All solver failures surface as the sentinels below (or as distmat
// sentinels forwarded unchanged); tests match them via errors.Is.
package tsp

import "errors"

var (
	// ErrNilMatrix indicates that a nil *distmat.Matrix was passed to a solver.
	ErrNilMatrix = errors.New("tsp: nil distance matrix")

	// ErrStartOutOfRange signals that Options.StartVertex is outside [0..n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrNoTourFound is returned by the exact solver when the search ends
	// without a single complete tour. On a complete instance with n ≥ 1 this
	// can only happen when a soft time budget expires before the first leaf.
	ErrNoTourFound = errors.New("tsp: no tour found")

	// ErrBadOptions signals an internally inconsistent Options value
	// (negative time limit, unknown algorithm).
	ErrBadOptions = errors.New("tsp: invalid options")

	// ErrUnsupportedAlgorithm is returned by Solve for an Algorithm value
	// outside the known set.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrDimensionMismatch signals an inconsistent tour/permutation shape
	// in the tour utilities (wrong length, duplicate or out-of-range vertex).
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")
)

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	// Greedy is the nearest-neighbor heuristic (TSPGreedy).
	Greedy Algorithm = iota

	// BranchAndBound is the exact depth-first search (TSPBranchAndBound).
	BranchAndBound
)

// String implements fmt.Stringer for flags, logs and test output.
func (a Algorithm) String() string {
	switch a {
	case Greedy:
		return "greedy"
	case BranchAndBound:
		return "branch-and-bound"
	default:
		return "unknown"
	}
}

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the sequence of vertex indices, starting and ending at
	// Options.StartVertex. For n vertices, len(Tour) == n+1 and
	// Tour[0] == Tour[n] == start.
	Tour []int

	// Cost is the total distance of the cycle, stabilized to 1e-9.
	// It always equals the literal edge-sum recomputation over Tour.
	Cost float64

	// Nodes counts search-tree nodes expanded by the exact solver
	// (0 for TSPGreedy). Exposed so callers and tests can observe how much
	// of the permutation tree the pruning rule skipped.
	Nodes int64
}

// Comparison holds both solver outcomes for one instance and start vertex,
// produced by Compare. The two runs share no state; Exact.Cost ≤ Greedy.Cost
// always holds (the exact solver is optimal).
type Comparison struct {
	Greedy TSResult
	Exact  TSResult
}
