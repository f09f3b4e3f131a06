// Package tsp - tour utilities shared by both solvers and their tests.
//
// These helpers operate purely on tour structure (index sequences) without
// touching distance matrices. O(n) time, sentinel errors only, no panics on
// user input.
package tsp

import "fmt"

// ValidateTour enforces the Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	each vertex v ∈ [0..n) appears exactly once in positions [0..n).
//
// Returns nil if valid.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n, start int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// DebugString returns a compact printable representation for tests/debug,
// e.g. "[0 3 1 2 | 0]" where the vertical bar marks the closure.
//
// Complexity: O(n).
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	var (
		n = len(tour) - 1
		s = "["
		i int
	)
	for i = 0; i < n; i++ {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d", tour[i])
	}
	s += " | "
	s += fmt.Sprintf("%d", tour[n])
	s += "]"

	return s
}
