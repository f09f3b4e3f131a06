// Package distmat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// distmat package. All constructors and accessors MUST return these
// sentinels and tests MUST check them via errors.Is. No function panics on
// user-triggered error conditions.

package distmat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "distmat: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap at the outer boundary — callers
// will still use errors.Is to match.

var (
	// ErrEmptyMatrix is returned when a matrix with zero locations is supplied.
	// A degenerate single-location instance (n == 1) is legal; n == 0 is not.
	ErrEmptyMatrix = errors.New("distmat: empty matrix")

	// ErrNonSquare signals that the input rows do not form an n×n array.
	ErrNonSquare = errors.New("distmat: matrix is not square")

	// ErrNonZeroDiagonal signals a self-distance entry that is not exactly 0.
	ErrNonZeroDiagonal = errors.New("distmat: diagonal entry is not zero")

	// ErrNegativeWeight signals a negative distance entry.
	ErrNegativeWeight = errors.New("distmat: negative distance")

	// ErrNaNInf signals a NaN or ±Inf entry; only finite distances are valid
	// (the instances are complete graphs, so "missing edge" has no encoding).
	ErrNaNInf = errors.New("distmat: NaN or Inf distance")

	// ErrAsymmetry signals that |d[i][j] − d[j][i]| exceeds SymTol for some
	// pair; the solvers are specified for symmetric instances only.
	ErrAsymmetry = errors.New("distmat: matrix is not symmetric within tolerance")

	// ErrIndexOutOfBounds indicates that a row or column index is outside
	// [0..n). Public indexers MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("distmat: index out of bounds")
)
