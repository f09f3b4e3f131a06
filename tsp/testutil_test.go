// Package tsp_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating production code: the brute-force oracle
// below re-derives optimal costs from first principles so solver tests never
// trust the solver under test.
package tsp_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/tourbound/distmat"
	"github.com/katalvlaran/tourbound/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// startV is the canonical start vertex used across tests.
	startV = 0

	// repeatN is how many times determinism checks re-run a solver.
	repeatN = 3
)

// -----------------------------------------------------------------------------
// Fixture matrices
// -----------------------------------------------------------------------------

// square4 is the reference 4-location instance: the optimal closed tour from
// vertex 0 costs 80 ([0 1 3 2 0] or its mirror).
func square4() [][]float64 {
	return [][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	}
}

// square5 is a 5-location instance where nearest-neighbor is strictly
// suboptimal: greedy from 0 walks [0 1 4 2 3 0] for 28, the optimum is 26.
func square5() [][]float64 {
	return [][]float64{
		{0, 2, 9, 10, 7},
		{2, 0, 6, 4, 3},
		{9, 6, 0, 8, 5},
		{10, 4, 8, 0, 6},
		{7, 3, 5, 6, 0},
	}
}

// mkMat builds a validated *distmat.Matrix or fails the test.
func mkMat(t *testing.T, cells [][]float64) *distmat.Matrix {
	t.Helper()
	m, err := distmat.New(cells)
	if err != nil {
		t.Fatalf("fixture matrix rejected: %v", err)
	}

	return m
}

// euclid builds a symmetric instance from 2D points with exact zero diagonal.
func euclid(t *testing.T, pts [][2]float64) *distmat.Matrix {
	t.Helper()
	n := len(pts)
	a := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
	}

	var dx, dy, d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = pts[i][0] - pts[j][0]
			dy = pts[i][1] - pts[j][1]
			d = math.Hypot(dx, dy)
			a[i][j] = d
			a[j][i] = d
		}
	}

	return mkMat(t, a)
}

// ringPoints places n points on a unit circle; the optimal tour follows the
// circle, which makes layout mistakes obvious in failures.
func ringPoints(n int) [][2]float64 {
	pts := make([][2]float64, n)
	var i int
	for i = 0; i < n; i++ {
		ang := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(ang), math.Sin(ang)}
	}

	return pts
}

// -----------------------------------------------------------------------------
// Generic helpers (repeaters, assertions)
// -----------------------------------------------------------------------------

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustEqualInts asserts exact equality of two integer slices.
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustValidTour asserts Hamiltonian-cycle invariants plus the round-trip
// property: the reported cost equals the literal recomputation from the tour.
func mustValidTour(t *testing.T, m *distmat.Matrix, res tsp.TSResult, start int) {
	t.Helper()
	if err := tsp.ValidateTour(res.Tour, m.Size(), start); err != nil {
		t.Fatalf("returned tour %s invalid: %v", tsp.DebugString(res.Tour), err)
	}
	got, err := tsp.TourCost(m, res.Tour)
	if err != nil {
		t.Fatalf("TourCost failed: %v", err)
	}
	if got != res.Cost {
		t.Fatalf("round-trip mismatch: recomputed=%.12f reported=%.12f", got, res.Cost)
	}
}

// -----------------------------------------------------------------------------
// Brute-force oracle
// -----------------------------------------------------------------------------

// bruteForceOptimal enumerates every permutation of the non-start vertices
// and returns the minimum closed-tour cost. Only for small n (≤ 8).
func bruteForceOptimal(t *testing.T, m *distmat.Matrix, start int) float64 {
	t.Helper()
	var (
		n    = m.Size()
		rest = make([]int, 0, n-1)
		best = math.Inf(1)
		v    int
	)
	for v = 0; v < n; v++ {
		if v != start {
			rest = append(rest, v)
		}
	}

	tour := make([]int, n+1)
	tour[0] = start
	tour[n] = start

	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			copy(tour[1:n], rest)
			c, err := tsp.TourCost(m, tour)
			if err != nil {
				t.Fatalf("oracle TourCost failed: %v", err)
			}
			if c < best {
				best = c
			}

			return
		}
		var i int
		for i = k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best
}

// factorial computes n! for small n (node-count bounds in pruning tests).
func factorial(n int) int64 {
	var (
		out int64 = 1
		i   int64
	)
	for i = 2; i <= int64(n); i++ {
		out *= i
	}

	return out
}
