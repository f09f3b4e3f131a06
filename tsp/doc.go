// Package tsp provides Travelling Salesman Problem solvers over a
// distmat.Matrix.
//
// It includes two algorithms with different guarantees:
//
//   - TSPGreedy — nearest-neighbor heuristic.
//
//   - Complexity: O(n²)
//
//   - Produces some valid closed tour; no optimality guarantee.
//
//   - TSPBranchAndBound — exact depth-first Branch-and-Bound search.
//
//   - Complexity: worst case O((n−1)!) nodes; pruning only shrinks this.
//
//   - Produces the proven-optimal tour for the given start vertex.
//
// Both solvers are deterministic: children are explored in ascending vertex
// index, ties are broken toward the lowest index, and an incumbent is only
// replaced on strict improvement, so identical input always yields the
// identical tour. Costs are float64 and compared exactly (no epsilon);
// integral distances therefore behave like integers.
//
// Use Compare to run both solvers independently on one instance and report
// them side by side.
//
// The exact solver is exponential in the worst case: the caller is
// responsible for bounding n to a size it can handle (the reference case
// study caps n at 10). An optional soft time budget (Options.TimeLimit)
// turns the exact search into a best-effort anytime search.
package tsp
