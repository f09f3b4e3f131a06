// Package tourbound is a compact toolkit for solving the symmetric
// Travelling Salesman Problem on small, fully specified instances.
//
// 🚀 What is tourbound?
//
//	A deterministic, strictly validated TSP playground that brings together:
//		• distmat/  — immutable dense distance matrices with strict validation
//		• tsp/      — two solvers over a shared result shape:
//		              nearest-neighbor greedy (fast, no optimality guarantee)
//		              and Branch-and-Bound (exact, proven-optimal tours)
//		• dataset/  — labeled instances (YAML) + plain-text tour reports
//		• cmd/      — a small CLI that loads an instance, runs either or both
//		              solvers, and prints a side-by-side comparison
//
// ✨ Why choose tourbound?
//
//   - Deterministic – ascending-index tie-breaks everywhere; identical input
//     always yields the identical tour, not merely the identical cost
//   - Strict sentinels – malformed matrices and out-of-range starts fail fast
//     with errors.Is-matchable values; no panics on user input
//   - Pure functions – solvers share no state across calls, so concurrent
//     solves on one immutable matrix are safe without locks
//
// Quick example:
//
//	m, _ := distmat.New([][]float64{
//		{0, 10, 15, 20},
//		{10, 0, 35, 25},
//		{15, 35, 0, 30},
//		{20, 25, 30, 0},
//	})
//	res, _ := tsp.TSPBranchAndBound(m, tsp.DefaultOptions())
//	fmt.Println(res.Tour, res.Cost) // [0 1 3 2 0] 80
//
// The exact solver is exponential in the worst case; keep n small (the
// reference case study uses n = 10).
package tourbound
