// Package tsp - cost utilities shared by both solvers.
//
// TourCost recomputes the total distance of a closed tour from first
// principles. Solvers accumulate the same edges in the same order, so the
// equality res.Cost == TourCost(m, res.Tour) is bit-exact after the shared
// 1e-9 stabilization.
package tsp

import (
	"math"

	"github.com/katalvlaran/tourbound/distmat"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drift across platforms without affecting optimality.
const roundScale = 1e9

// TourCost sums the edge distances tour[i]→tour[i+1] along a closed tour.
//
// Contract:
//   - m is non-nil and tour has len ≥ 2 with indices in [0..n);
//     otherwise ErrNilMatrix / ErrDimensionMismatch.
//
// Complexity: O(n) time, O(1) extra space.
func TourCost(m *distmat.Matrix, tour []int) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		sum float64
		i   int
		w   float64
		err error
		L   = len(tour) - 1 // last index is the closing vertex
	)
	for i = 0; i < L; i++ {
		w, err = m.At(tour[i], tour[i+1])
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
