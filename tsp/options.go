// Package tsp - solver configuration.
package tsp

import "time"

// Options configures a single solver call. The zero value is valid and
// equals DefaultOptions().
//
// Numeric policy: cost comparisons in both solvers are exact (`<`, `>=`)
// with no epsilon. With integral distances this removes floating tie
// ambiguity entirely; with real-valued distances the usual float64
// comparison semantics apply and tie-breaks follow the bit-exact sums.
type Options struct {
	// Algo selects the solver used by Solve. Ignored by the direct
	// entrypoints TSPGreedy / TSPBranchAndBound.
	Algo Algorithm

	// StartVertex is the tour's fixed start (and end) vertex, in [0..n).
	StartVertex int

	// TimeLimit is a soft wall-clock budget for the exact search; 0 means
	// unlimited. When positive, the search checks the deadline at branch
	// nodes and, once exceeded, stops descending and returns the best tour
	// found so far as a best-effort result (no error). If the budget expires
	// before any complete tour was reached, ErrNoTourFound is returned.
	// TSPGreedy ignores the budget (it is already O(n²)).
	TimeLimit time.Duration

	// DisablePrune turns off the lower-bound prune in the exact search so
	// the full permutation tree is enumerated. Testing and benchmarking
	// only: the result is identical, just slower.
	DisablePrune bool
}

// DefaultOptions returns the canonical configuration: exact solver,
// start vertex 0, no time budget, pruning enabled.
func DefaultOptions() Options {
	return Options{
		Algo:        BranchAndBound,
		StartVertex: 0,
	}
}
