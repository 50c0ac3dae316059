// File: cycle.go
// Role: directed cycle detection with three-color marking over the explicit
// frame stack.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/critpath/core"
)

// Visitation colors.
const (
	White = iota // unvisited
	Gray         // on the current DFS path
	Black        // finished
)

// FindCycle returns one directed cycle of g, or nil when g is acyclic.
// The cycle lists vertices in arc order; its last vertex has an arc back to
// the first. A self-loop is a cycle of length 1.
//
// Vertices are scanned in ID order and successors in adjacency order, so the
// reported cycle is the first back arc the forest walk meets.
// If g is nil, returns ErrGraphNil. If g mirrors arcs, returns ErrUndirectedGraph
// (every mirrored pair would be a 2-cycle).
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle(g *core.Graph) ([]int, error) {
	// 1. Validate graph pointer and orientation
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Undirected() {
		return nil, ErrUndirectedGraph
	}

	// 2. Three-color forest walk
	n := g.Order()
	color := make([]int, n)
	var stack []frame
	push := func(id int) error {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%d): %w", id, err)
		}
		color[id] = Gray
		stack = append(stack, frame{id: id, depth: len(stack), nbrs: nbrs})

		return nil
	}
	for root := 0; root < n; root++ {
		if color[root] != White {
			continue
		}
		if err := push(root); err != nil {
			return nil, err
		}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.nbrs) {
				color[top.id] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			nid := top.nbrs[top.next]
			top.next++

			switch color[nid] {
			case White:
				if err := push(nid); err != nil {
					return nil, err
				}
			case Gray:
				// 3. Back arc: the cycle is the stack suffix starting at nid
				start := len(stack) - 1
				for stack[start].id != nid {
					start--
				}
				cycle := make([]int, 0, len(stack)-start)
				for _, f := range stack[start:] {
					cycle = append(cycle, f.id)
				}
				return cycle, nil
			}
		}
	}

	return nil, nil
}
