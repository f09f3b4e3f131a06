// Package tsp - nearest-neighbor greedy heuristic.
//
// TSPGreedy builds a closed tour by repeatedly stepping to the nearest
// unvisited vertex. It always produces some valid tour on a complete
// instance, with no optimality guarantee: its cost is an upper bound that
// the exact solver can only meet or beat.
//
// Determinism: candidates are scanned in ascending vertex index and the
// comparison is strict (<), so equal-distance ties resolve to the lowest
// index. Identical input always yields the identical tour.
package tsp

import "github.com/katalvlaran/tourbound/distmat"

// TSPGreedy runs the nearest-neighbor heuristic from opts.StartVertex.
//
// Errors:
//   - distmat.ErrEmptyMatrix for a nil/empty matrix.
//   - ErrStartOutOfRange for a start outside [0..n).
//   - ErrBadOptions for inconsistent options.
//
// Complexity: O(n²) time, O(n) extra space.
func TSPGreedy(m *distmat.Matrix, opts Options) (TSResult, error) {
	n, err := validateInstance(m, opts, distmat.ErrEmptyMatrix)
	if err != nil {
		return TSResult{}, err
	}

	// Prefetch the matrix into a dense buffer: the selection loop reads
	// O(n²) entries and should not pay interface/bounds overhead per read.
	var (
		w       = m.Dense()
		start   = opts.StartVertex
		visited = make([]bool, n)
		tour    = make([]int, n+1)
		total   float64
		current = start
	)
	tour[0] = start
	visited[start] = true

	// Step to the nearest unvisited vertex n-1 times.
	var (
		step int
		v    int
		best int     // chosen next vertex, -1 while unset
		bw   float64 // distance to the chosen vertex
		c    float64
	)
	for step = 1; step < n; step++ {
		best = -1
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			c = w[current*n+v]
			// Strict < keeps the lowest index on equal distances.
			if best == -1 || c < bw {
				best, bw = v, c
			}
		}
		tour[step] = best
		total += bw
		visited[best] = true
		current = best
	}

	// Close the cycle back to start.
	total += w[current*n+start]
	tour[n] = start

	return TSResult{Tour: tour, Cost: round1e9(total)}, nil
}
