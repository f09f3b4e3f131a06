// Package tsp - unified dispatcher and side-by-side comparison.
//
// Solve routes one instance to the solver selected by Options.Algo.
// Compare runs both solvers independently on the same instance and start
// vertex: two separate calls, each with its own search state, sharing only
// the immutable matrix.
//
// Design principles:
//   - Deterministic: no randomness anywhere in the pipeline.
//   - Strict sentinels: only errors from types.go / distmat; no fmt.Errorf
//     where a sentinel suffices.
//   - No logging: pruned branches are normal search progress, not failures.
package tsp

import "github.com/katalvlaran/tourbound/distmat"

// Solve validates opts.Algo and dispatches to the matching solver.
//
// Errors: ErrUnsupportedAlgorithm for an unknown selector, otherwise
// whatever the chosen solver returns.
//
// Complexity: per chosen algorithm (greedy O(n²), exact exponential).
func Solve(m *distmat.Matrix, opts Options) (TSResult, error) {
	switch opts.Algo {
	case Greedy:
		return TSPGreedy(m, opts)
	case BranchAndBound:
		return TSPBranchAndBound(m, opts)
	default:
		return TSResult{}, ErrUnsupportedAlgorithm
	}
}

// Compare runs the greedy heuristic and the exact solver independently and
// reports both tours side by side. The first error aborts the comparison.
//
// Post-condition: Exact.Cost ≤ Greedy.Cost (the exact tour is optimal and
// the greedy tour is one of the candidates it dominates).
//
// Complexity: O(n²) + exponential (dominated by the exact search).
func Compare(m *distmat.Matrix, opts Options) (Comparison, error) {
	greedy, err := TSPGreedy(m, opts)
	if err != nil {
		return Comparison{}, err
	}
	exact, err := TSPBranchAndBound(m, opts)
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{Greedy: greedy, Exact: exact}, nil
}
