// File: prim.go
// Role: Prim's algorithm over the indexed min-heap.

package prim_kruskal

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/indexheap"
)

// Prim grows a minimum spanning tree of root's component.
//
// Steps:
//  1. Validate graph and root.
//  2. Insert every vertex in ID order: root at 0, the others at +Inf.
//  3. Extract the minimum u; stop once the minimum is +Inf.
//  4. For each successor v of u still in the heap, lower key(v) to w(u,v)
//     when that is strictly smaller and v's parent is not already u.
//
// Complexity: O(E log V) time, O(V) memory.
func Prim(g *core.Graph, root int, opts ...Option) (*Tree, error) {
	// 1. Validate graph and root
	if g == nil {
		return nil, ErrInvalidGraph
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: root %d", core.ErrVertexNotFound, root)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Seed the heap and the result arrays
	n := g.Order()
	h, err := indexheap.New(n)
	if err != nil {
		return nil, err
	}
	t := &Tree{
		Root:    root,
		Parents: make([]int, n),
		Weights: make([]float64, n),
		Reached: make([]bool, n),
		Order:   make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		t.Parents[v] = core.None
		p := math.Inf(1)
		if v == root {
			p = 0
		}
		if err = h.Insert(v, p); err != nil {
			return nil, err
		}
	}

	// 3. Grow the tree
	for !h.IsEmpty() {
		u, key, _ := h.PeekMin()
		if math.IsInf(key, 1) {
			break
		}
		if _, err = h.ExtractMin(); err != nil {
			return nil, err
		}
		t.Reached[u] = true
		t.Weights[u] = key
		t.Order = append(t.Order, u)
		if ce := o.Logger.Check(zapcore.DebugLevel, "vertex attached"); ce != nil {
			ce.Write(zap.Int("vertex", u), zap.Int("parent", t.Parents[u]), zap.Float64("weight", key))
		}

		// 4. Relax successors still outside the tree
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, v := range nbrs {
			cur, inHeap := h.Priority(v)
			if !inHeap {
				continue
			}
			if w := g.Weight(u, v); w < cur && t.Parents[v] != u {
				if err = h.ModifyPriority(v, w); err != nil {
					return nil, err
				}
				t.Parents[v] = u
			}
		}
	}
	o.Logger.Debug("prim finished",
		zap.Int("root", root),
		zap.Int("reached", len(t.Order)),
		zap.Float64("total_weight", t.TotalWeight()))

	return t, nil
}

// TotalWeight sums the weights of the tree edges.
func (t *Tree) TotalWeight() float64 {
	var sum float64
	for _, v := range t.Order {
		sum += t.Weights[v]
	}

	return sum
}

// Size returns the number of attached vertices, root included.
func (t *Tree) Size() int { return len(t.Order) }

// Edges returns the tree edges parent→child in attachment order.
func (t *Tree) Edges() []core.Edge {
	if len(t.Order) < 2 {
		return nil
	}
	out := make([]core.Edge, 0, len(t.Order)-1)
	for _, v := range t.Order[1:] {
		out = append(out, core.Edge{From: t.Parents[v], To: v, Weight: t.Weights[v]})
	}

	return out
}

// ApplyTo writes the parent of every reached vertex into g's Parents slot.
// Unreached vertices keep whatever g held before.
func (t *Tree) ApplyTo(g *core.Graph) {
	g.UpdateOutputs(func(out *core.Outputs) {
		for _, v := range t.Order {
			if v < len(out.Parents) {
				out.Parents[v] = t.Parents[v]
			}
		}
	})
}
