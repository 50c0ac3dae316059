// File: schedule.go
// Role: derived queries over a Schedule and merging into graph outputs.

package cpm

import (
	"math"

	"github.com/katalvlaran/critpath/core"
)

// Len returns the number of vertices the schedule covers.
func (s *Schedule) Len() int { return len(s.Earliest) }

// Slack returns Latest[v] − Earliest[v] floored at 0, or NaN when v is out
// of range.
func (s *Schedule) Slack(v int) float64 {
	if v < 0 || v >= s.Len() {
		return math.NaN()
	}

	return math.Max(0, s.Latest[v]-s.Earliest[v])
}

// IsCritical reports whether v has no slack. The tolerance is absolute for
// horizons up to 1 and relative to the horizon above that.
func (s *Schedule) IsCritical(v int) bool {
	slack := s.Slack(v)
	if math.IsNaN(slack) {
		return false
	}

	return math.Abs(slack) <= s.eps()
}

// Critical returns the critical vertices in ascending ID order.
func (s *Schedule) Critical() []int {
	var out []int
	for v := 0; v < s.Len(); v++ {
		if s.IsCritical(v) {
			out = append(out, v)
		}
	}

	return out
}

// CriticalPath returns one source-to-sink path made of critical vertices
// joined by tight arcs (Earliest[u] + w(u,v) == Earliest[v]). The lowest-ID
// critical source is chosen and successors are tried in adjacency order.
// Returns nil for an empty schedule.
func (s *Schedule) CriticalPath() []int {
	// 1. Pick the first critical source
	start := core.None
	for v := 0; v < s.Len(); v++ {
		if s.sources[v] && s.IsCritical(v) {
			start = v
			break
		}
	}
	if start == core.None {
		return nil
	}

	// 2. Follow tight arcs into critical successors until a sink
	eps := s.eps()
	path := []int{start}
	for u := start; ; {
		next := core.None
		for _, a := range s.succ[u] {
			if s.IsCritical(a.to) && math.Abs(s.Earliest[u]+a.w-s.Earliest[a.to]) <= eps {
				next = a.to
				break
			}
		}
		if next == core.None {
			return path
		}
		path = append(path, next)
		u = next
	}
}

// ApplyTo writes the ordering, DFS-forest parents and both start arrays into
// g's output slots. Extra vertices in g keep their previous values.
func (s *Schedule) ApplyTo(g *core.Graph) {
	g.UpdateOutputs(func(out *core.Outputs) {
		copy(out.TopologicalOrdering, s.Order)
		copy(out.Parents, s.Parent)
		copy(out.EarliestStart, s.Earliest)
		copy(out.LatestStart, s.Latest)
	})
}

func (s *Schedule) eps() float64 {
	return s.tolerance * math.Max(1, math.Abs(s.Horizon))
}
