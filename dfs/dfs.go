package dfs

import (
	"fmt"

	"github.com/katalvlaran/critpath/core"
)

// frame is one entry of the explicit DFS stack.
type frame struct {
	id    int   // vertex being explored
	depth int   // tree depth of id
	nbrs  []int // successors of id, in adjacency order
	next  int   // index of the next neighbor to try
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  Options
	res   *Result
	stack []frame
}

// DFS performs depth-first search on graph g. With WithFullTraversal it
// covers every vertex (start is ignored); otherwise it walks from start only.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// 4. Initialize result
	n := g.Order()
	res := &Result{
		PreOrder:  make([]int, 0, n),
		PostOrder: make([]int, 0, n),
		Depth:     make([]int, n),
		Parent:    make([]int, n),
		Visited:   make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = core.None
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if !dopts.FullTraversal {
		return res, w.walk(start)
	}
	for v := 0; v < n; v++ {
		if !res.Visited[v] {
			if err := w.walk(v); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// walk runs one DFS tree rooted at root.
func (w *dfsWalker) walk(root int) error {
	if err := w.enter(root, 0); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		// 1. Try the next neighbor of the frame on top
		if top.next < len(top.nbrs) {
			nid := top.nbrs[top.next]
			top.next++
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(top.id, nid) {
				w.res.SkippedNeighbors++
				continue
			}
			if w.res.Visited[nid] {
				continue
			}
			if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
				continue
			}
			w.res.Parent[nid] = top.id
			// enter may grow the stack; top must not be used after this call.
			if err := w.enter(nid, top.depth+1); err != nil {
				return err
			}
			continue
		}

		// 2. All neighbors done: finish the vertex
		id := top.id
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(id); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
			}
		}
		w.res.PostOrder = append(w.res.PostOrder, id)
	}

	return nil
}

// enter marks id visited, runs the pre-order hook and pushes its frame.
func (w *dfsWalker) enter(id, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.PreOrder = append(w.res.PreOrder, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}
	nbrs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", id, err)
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, nbrs: nbrs})

	return nil
}
