// Package tsp - exact Branch-and-Bound search.
//
// TSPBranchAndBound enumerates Hamiltonian cycles via a depth-first search
// with deterministic branching and a partial-cost lower-bound prune.
//
// Rationale (succinct):
//  1. The matrix is prefetched into a dense buffer to keep the hot loop free
//     of interface calls and bounds checks.
//  2. Branching order: from the current vertex, children are tried in
//     ascending vertex index. Combined with the strict-improvement incumbent
//     update this pins the returned tour when several tours share the
//     optimal cost: the first one found under ascending-index order wins.
//  3. Prune: before descending into child v, projected = costSoFar + w[last→v].
//     If projected >= bestCost the branch is discarded. All distances are
//     non-negative, so any completion of the branch costs at least projected;
//     the prune is admissible and the search stays exact. No stronger bound
//     (degree relaxation, 1-tree) is applied: the partial-cost bound is the
//     contract, and tie-break behavior depends on it.
//  4. Backtracking restores visited[v] on every exit path, so sibling
//     branches always observe the parent state.
//  5. Optional soft time budget: sparse deadline checks at node events; on
//     expiry the search stops descending and the incumbent, if any, is
//     returned as a best-effort result.
//
// Complexity:
//   - Worst case O((n−1)!) nodes (prune disabled); pruning only shrinks this.
//   - Per node: O(1) state updates, O(n) child scan.
//   - Memory: O(n) path/visited + O(n²) dense buffer.

package tsp

import (
	"math"
	"time"

	"github.com/katalvlaran/tourbound/distmat"
)

// deadlineMask throttles wall-clock reads to one per 256 node events.
const deadlineMask = 255

// bbEngine holds all search data for one TSPBranchAndBound call.
// A dedicated engine struct (instead of closures over shared locals) keeps
// hot-path state explicit and makes independent concurrent solves trivially
// safe: nothing escapes the call.
type bbEngine struct {
	// Configuration / policy
	n     int
	start int
	prune bool

	// Time budget
	useDeadline bool
	deadline    time.Time
	steps       int  // sparse deadline check counter
	stopped     bool // set once the budget expires; unwinds the recursion

	// Graph data (dense buffer): w[u*n+v]
	w []float64

	// Current search state
	visited []bool // which vertices are on the current path
	path    []int  // path[0:depth], path[0] == start

	// Current best incumbent
	bestTour []int
	bestCost float64
	foundAny bool

	// Instrumentation
	nodes int64 // expanded search-tree nodes (dfs entries)
}

// at is a fast accessor into the dense weight buffer.
func (e *bbEngine) at(u, v int) float64 { return e.w[u*e.n+v] }

// deadlineCheck performs a rare wall-clock test (every 256 node events).
func (e *bbEngine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&deadlineMask) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// commit records a new incumbent: the closing start is written at path[n]
// and the cost is stabilized.
func (e *bbEngine) commit(total float64) {
	e.path[e.n] = e.start
	copy(e.bestTour, e.path)
	e.bestCost = round1e9(total)
	e.foundAny = true
}

// dfs explores the subtree below the current partial path.
// last is the current vertex, depth == len of the partial path,
// costSoFar the exact accumulated edge sum along it.
func (e *bbEngine) dfs(last, depth int, costSoFar float64) {
	e.nodes++

	// Sparse time check (practically free).
	if e.deadlineCheck() {
		e.stopped = true

		return
	}

	// All vertices placed: close the cycle at start.
	if depth == e.n {
		total := costSoFar + e.at(last, e.start)
		// Strict improvement only: on equal cost the earlier tour stands.
		if total < e.bestCost {
			e.commit(total)
		}

		return
	}

	// Branch in ascending vertex index (fixes all tie-breaks).
	var (
		v         int
		projected float64
	)
	for v = 0; v < e.n; v++ {
		if e.visited[v] {
			continue
		}
		projected = costSoFar + e.at(last, v)
		// Lower-bound prune: remaining edges are non-negative, so any
		// completion costs at least projected.
		if e.prune && projected >= e.bestCost {
			continue
		}
		e.visited[v] = true
		e.path[depth] = v
		e.dfs(v, depth+1, projected)
		e.visited[v] = false
		if e.stopped {
			return
		}
	}
}

// TSPBranchAndBound runs the exact search from opts.StartVertex and returns
// the proven shortest closed tour (or the best-effort incumbent when a
// positive Options.TimeLimit expires mid-search).
//
// Errors:
//   - ErrNoTourFound for a nil/empty matrix, or when a time budget expires
//     before any complete tour was reached.
//   - ErrStartOutOfRange for a start outside [0..n).
//   - ErrBadOptions for inconsistent options.
//
// Complexity: exponential in the worst case; see the file header.
func TSPBranchAndBound(m *distmat.Matrix, opts Options) (TSResult, error) {
	n, err := validateInstance(m, opts, ErrNoTourFound)
	if err != nil {
		return TSResult{}, err
	}

	// Engine initialization.
	var e bbEngine
	e.n = n
	e.start = opts.StartVertex
	e.prune = !opts.DisablePrune
	e.w = m.Dense()

	// Deadline setup (0 means unlimited).
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	// Search state: root = {path=[start], visited={start}, cost 0}.
	e.visited = make([]bool, n)
	e.path = make([]int, n+1)
	e.bestTour = make([]int, n+1)
	e.bestCost = math.Inf(1)
	e.path[0] = e.start
	e.visited[e.start] = true

	e.dfs(e.start, 1, 0)

	if !e.foundAny {
		// Only reachable when a time budget expired before the first leaf.
		return TSResult{}, ErrNoTourFound
	}
	if err = ValidateTour(e.bestTour, n, e.start); err != nil {
		return TSResult{}, err
	}

	return TSResult{Tour: e.bestTour, Cost: e.bestCost, Nodes: e.nodes}, nil
}
