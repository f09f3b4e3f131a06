// Package tsp - validation helpers shared by both solvers.
//
// The heavy per-entry matrix validation happens once in distmat.New; here we
// only re-check the cheap per-call contracts (nil matrix, start range,
// option sanity). Deterministic, side-effect free, sentinel errors only.
package tsp

import "github.com/katalvlaran/tourbound/distmat"

// validateOptions checks internal consistency of Options without touching
// the matrix.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// Negative durations are undefined; 0 means "unlimited".
	if opts.TimeLimit < 0 {
		return ErrBadOptions
	}

	return nil
}

// validateStartVertex verifies that start ∈ [0..n).
//
// Complexity: O(1).
func validateStartVertex(n, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}

// validateInstance performs the shared per-call guard for both solvers and
// returns n on success. emptyErr parameterizes the degenerate-input sentinel:
// the greedy builder reports distmat.ErrEmptyMatrix, the exact solver
// reports ErrNoTourFound (a missing matrix admits no tour).
//
// Complexity: O(1).
func validateInstance(m *distmat.Matrix, opts Options, emptyErr error) (int, error) {
	if err := validateOptions(opts); err != nil {
		return 0, err
	}
	if m == nil {
		return 0, emptyErr
	}
	var n = m.Size()
	if n == 0 {
		// Unreachable via distmat.New, guarded anyway.
		return 0, emptyErr
	}
	if err := validateStartVertex(n, opts.StartVertex); err != nil {
		return 0, err
	}

	return n, nil
}
