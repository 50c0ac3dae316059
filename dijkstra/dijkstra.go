// Package dijkstra implements Dijkstra's shortest-path algorithm on
// coordinate-weighted graphs.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/indexheap"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Steps:
//  1. Validate graph and source.
//  2. Insert source at distance 0.
//  3. Repeatedly settle the closest frontier vertex u; stop when it lies
//     beyond MaxDistance.
//  4. For each arc u→v below InfEdgeThreshold to an unsettled v, lower v's
//     tentative distance (insert or decrease-key) when u offers a shorter one.
//
// Complexity: O((V + E) log V) time, O(V) memory.
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Validate inputs and options
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Prepare state
	n := g.Order()
	res := &Result{
		Source: source,
		Dist:   make([]float64, n),
		Prev:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Dist[i] = math.Inf(1)
		res.Prev[i] = core.None
	}
	settled := make([]bool, n)
	h, err := indexheap.New(n)
	if err != nil {
		return nil, err
	}
	res.Dist[source] = 0
	if err = h.Insert(source, 0); err != nil {
		return nil, err
	}

	// 3) Main loop
	for !h.IsEmpty() {
		u, du, _ := h.PeekMin()
		if du > cfg.MaxDistance {
			break
		}
		if _, err = h.ExtractMin(); err != nil {
			return nil, err
		}
		settled[u] = true

		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		// 4) Relax arcs
		for _, v := range nbrs {
			if settled[v] {
				continue
			}
			w := g.Weight(u, v)
			if w >= cfg.InfEdgeThreshold {
				continue
			}
			nd := du + w
			if nd >= res.Dist[v] {
				continue
			}
			if h.Contains(v) {
				err = h.ModifyPriority(v, nd)
			} else {
				err = h.Insert(v, nd)
			}
			if err != nil {
				return nil, err
			}
			res.Dist[v] = nd
			res.Prev[v] = u
		}
	}

	// 5) Frontier vertices beyond the cap stay unreached
	for !h.IsEmpty() {
		v, _ := h.ExtractMin()
		res.Dist[v] = math.Inf(1)
		res.Prev[v] = core.None
	}

	return res, nil
}

// Reached reports whether v was settled.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Dist) && !math.IsInf(r.Dist[v], 1)
}

// PathTo returns the shortest path Source → dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}
	var path []int
	for cur := dest; cur != core.None; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
