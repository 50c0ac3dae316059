// File: outputs.go
// Role: per-vertex result slots written by scheduling and spanning-tree results.
// Policy:
//   - Slots are sized with the vertex set and grow only when AddVertex runs.
//   - Writers go through UpdateOutputs so the slices are never swapped out
//     from under a reader holding a snapshot.

package core

// Outputs returns a copy of the result slots.
func (g *Graph) Outputs() Outputs {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Outputs{
		Parents:             append([]int(nil), g.out.Parents...),
		TopologicalOrdering: append([]int(nil), g.out.TopologicalOrdering...),
		EarliestStart:       append([]float64(nil), g.out.EarliestStart...),
		LatestStart:         append([]float64(nil), g.out.LatestStart...),
	}
}

// UpdateOutputs runs fn with exclusive access to the result slots. Every
// slice passed to fn has length Order(); fn writes elements in place and
// must not reslice or replace them.
func (g *Graph) UpdateOutputs(fn func(out *Outputs)) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.growOutputs()
	fn(&g.out)
}

// ResetParents sets every parent slot to None.
func (g *Graph) ResetParents() {
	g.UpdateOutputs(func(out *Outputs) {
		for i := range out.Parents {
			out.Parents[i] = None
		}
	})
}

// growOutputs must be called with g.mu held. New parent slots start at None,
// new ordering slots at their own ID, start dates at zero.
func (g *Graph) growOutputs() {
	n := len(g.coords)
	for len(g.out.Parents) < n {
		g.out.Parents = append(g.out.Parents, None)
	}
	for len(g.out.TopologicalOrdering) < n {
		g.out.TopologicalOrdering = append(g.out.TopologicalOrdering, len(g.out.TopologicalOrdering))
	}
	for len(g.out.EarliestStart) < n {
		g.out.EarliestStart = append(g.out.EarliestStart, 0)
	}
	for len(g.out.LatestStart) < n {
		g.out.LatestStart = append(g.out.LatestStart, 0)
	}
}
