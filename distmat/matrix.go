// Package distmat: the Matrix type and its validating constructor.
// Dense row-major storage in a flat slice for cache friendliness; every
// entry is validated once in New so the solvers never re-check shape.
package distmat

import (
	"fmt"
	"math"
	"strings"
)

// SymTol is the structural tolerance for the symmetry check in New.
// It guards against ingestion noise (e.g., FP round-trips through YAML),
// not against genuinely asymmetric instances: those remain invalid.
const SymTol = 1e-12

// Matrix is an immutable n×n matrix of pairwise distances.
// n is the location count and data holds n*n elements in row-major order.
// The zero value is unusable; construct via New.
type Matrix struct {
	n    int       // number of locations
	data []float64 // flat backing storage, length == n*n
}

// New builds a Matrix from cells, validating the full distance-matrix
// contract before any storage is committed.
//
// Stage 1 (Shape): n ≥ 1 and every row of length n, else ErrEmptyMatrix /
// ErrNonSquare.
// Stage 2 (Values): entries finite and non-negative, diagonal exactly zero,
// else ErrNaNInf / ErrNegativeWeight / ErrNonZeroDiagonal.
// Stage 3 (Symmetry): |cells[i][j] − cells[j][i]| ≤ SymTol, else ErrAsymmetry.
// Stage 4 (Commit): deep-copy into flat storage.
//
// Complexity: O(n²) time and memory.
func New(cells [][]float64) (*Matrix, error) {
	// Stage 1: shape.
	var n = len(cells)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(cells[i]) != n {
			return nil, ErrNonSquare
		}
	}

	// Stage 2: per-entry value policy.
	var x float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x = cells[i][j]
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, ErrNaNInf
			}
			if x < 0 {
				return nil, ErrNegativeWeight
			}
			if i == j && x != 0 {
				return nil, ErrNonZeroDiagonal
			}
		}
	}

	// Stage 3: symmetry on the upper triangle (avoid double work).
	var diff float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			diff = cells[i][j] - cells[j][i]
			if diff < 0 {
				diff = -diff // |d_ij - d_ji|
			}
			if diff > SymTol {
				return nil, ErrAsymmetry
			}
		}
	}

	// Stage 4: commit into flat row-major storage.
	var data = make([]float64, n*n)
	for i = 0; i < n; i++ {
		copy(data[i*n:(i+1)*n], cells[i])
	}

	return &Matrix{n: n, data: data}, nil
}

// Size returns the number of locations n.
// Complexity: O(1).
func (m *Matrix) Size() int { return m.n }

// At retrieves the distance between locations i and j.
// Returns ErrIndexOutOfBounds if i or j is outside [0..n).
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrIndexOutOfBounds
	}

	return m.data[i*m.n+j], nil
}

// Row returns a copy of row i, or ErrIndexOutOfBounds.
// The copy keeps the receiver immutable; callers may mutate the result freely.
// Complexity: O(n) time and memory.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.n {
		return nil, ErrIndexOutOfBounds
	}
	out := make([]float64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// Dense returns a copy of the flat row-major backing storage (length n*n).
// Solvers prefetch this once to keep their hot loops free of bounds checks.
// Complexity: O(n²) time and memory.
func (m *Matrix) Dense() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns an independent deep copy of the matrix.
// Complexity: O(n²) time and memory.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{n: m.n, data: m.Dense()}
}

// String implements fmt.Stringer for debugging and test failure output.
// Complexity: O(n²).
func (m *Matrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.n+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
