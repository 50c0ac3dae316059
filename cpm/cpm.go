// File: cpm.go
// Role: forward and backward passes, Compute orchestration.
// Determinism:
//   - Arcs are relaxed in ordering order, then adjacency order.

package cpm

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/dfs"
)

// EarliestStart returns, for every vertex, the length of the longest path
// reaching it from any source. order must be a topological ordering of g.
//
// Complexity: O(V + E).
func EarliestStart(g *core.Graph, order []int) ([]float64, error) {
	// 1. Validate inputs
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	if err := checkPermutation(order, n); err != nil {
		return nil, err
	}

	// 2. Relax every arc out of each vertex in order
	earliest := make([]float64, n)
	for _, u := range order {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, v := range nbrs {
			if cand := earliest[u] + g.Weight(u, v); cand > earliest[v] {
				earliest[v] = cand
			}
		}
	}

	return earliest, nil
}

// LatestStart returns the latest start of every vertex that does not delay
// the horizon, together with the horizon itself: the largest earliest start
// over all sinks, or 0 when g has no sink. No latest start is below the
// matching earliest start.
//
// Complexity: O(V + E).
func LatestStart(g *core.Graph, order []int, earliest []float64) ([]float64, float64, error) {
	// 1. Validate inputs
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	n := g.Order()
	if err := checkPermutation(order, n); err != nil {
		return nil, 0, err
	}
	if len(earliest) != n {
		return nil, 0, fmt.Errorf("%w: %d earliest starts for %d vertices", ErrOrderLength, len(earliest), n)
	}

	// 2. Horizon over sinks
	horizon := 0.0
	for v := 0; v < n; v++ {
		if g.OutDegree(v) == 0 && earliest[v] > horizon {
			horizon = earliest[v]
		}
	}

	// 3. Backward pass: every vertex starts at the horizon, non-sinks are
	//    pulled down by their successors.
	latest := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		u := order[i]
		latest[u] = horizon
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, 0, err
		}
		for _, v := range nbrs {
			if cand := latest[v] - g.Weight(u, v); cand < latest[u] {
				latest[u] = cand
			}
		}
		// Rounding in the subtraction can land an ulp below earliest[u].
		if latest[u] < earliest[u] {
			latest[u] = earliest[u]
		}
	}

	return latest, horizon, nil
}

// Compute sorts g topologically, checks that every arc goes forward in the
// ordering and runs both passes.
//
// Returns ErrGraphNil for a nil graph, dfs.ErrUndirectedGraph for a graph
// that mirrors arcs, and ErrPrecedenceViolation when g has a cycle
// (self-loops included).
func Compute(g *core.Graph, opts ...Option) (*Schedule, error) {
	// 1. Validate and apply options
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	log := o.Logger.With(zap.Int("vertices", g.Order()))

	// 2. Ordering
	topo, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, err
	}
	log.Debug("topological order computed", zap.Ints("order", topo.Order))

	// 3. Every arc must go forward
	rank := dfs.Rank(topo.Order, g.Order())
	edges := g.Edges()
	for _, e := range edges {
		if rank[e.From] >= rank[e.To] {
			log.Debug("precedence violation", zap.Int("from", e.From), zap.Int("to", e.To))
			return nil, precedenceError(g, e)
		}
	}

	// 4. Forward and backward passes
	earliest, err := EarliestStart(g, topo.Order)
	if err != nil {
		return nil, err
	}
	latest, horizon, err := LatestStart(g, topo.Order, earliest)
	if err != nil {
		return nil, err
	}
	log.Debug("schedule computed", zap.Int("arcs", len(edges)), zap.Float64("horizon", horizon))

	// 5. Assemble the owned result
	s := &Schedule{
		Order:     topo.Order,
		Parent:    topo.Parent,
		Earliest:  earliest,
		Latest:    latest,
		Horizon:   horizon,
		tolerance: o.Tolerance,
		succ:      make([][]arc, g.Order()),
		sources:   make([]bool, g.Order()),
	}
	for i := range s.sources {
		s.sources[i] = true
	}
	for _, e := range edges {
		s.succ[e.From] = append(s.succ[e.From], arc{to: e.To, w: e.Weight})
		s.sources[e.To] = false
	}

	return s, nil
}

// checkPermutation verifies that order lists each of 0..n-1 exactly once.
func checkPermutation(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("%w: got %d entries for %d vertices", ErrOrderLength, len(order), n)
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("%w: bad or repeated entry %d", ErrOrderLength, v)
		}
		seen[v] = true
	}

	return nil
}

// precedenceError names the offending arc and, when one is found, the cycle
// that contains it.
func precedenceError(g *core.Graph, e core.Edge) error {
	cycle, err := dfs.FindCycle(g)
	if err != nil || len(cycle) == 0 {
		return fmt.Errorf("%w: %s→%s", ErrPrecedenceViolation, g.Label(e.From), g.Label(e.To))
	}
	labels := make([]string, 0, len(cycle)+1)
	for _, v := range cycle {
		labels = append(labels, g.Label(v))
	}
	labels = append(labels, g.Label(cycle[0]))

	return fmt.Errorf("%w: %s→%s (cycle %s)", ErrPrecedenceViolation,
		g.Label(e.From), g.Label(e.To), strings.Join(labels, "→"))
}
