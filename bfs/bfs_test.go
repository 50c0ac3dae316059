package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/critpath/bfs"
	"github.com/katalvlaran/critpath/core"
)

// build creates n vertices on the x axis and the given arcs.
func build(t testing.TB, n int, arcs [][2]int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for i := 0; i < n; i++ {
		if _, err := g.AddVertex("", orb.Point{float64(i), 0}); err != nil {
			t.Fatal(err)
		}
	}
	for _, a := range arcs {
		if err := g.AddEdge(a[0], a[1]); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := build(t, 1, nil)
	if _, err := bfs.BFS(g, 1); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := build(t, 1, nil)
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[0]; d != 0 {
		t.Errorf("Depth[0] = %d; want 0", d)
	}
}

// TestBFS_CycleAndDepths covers an undirected 4-cycle 0–1–2–3–0.
func TestBFS_CycleAndDepths(t *testing.T) {
	g := build(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, core.WithUndirected())
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 2, 1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if want := []int{core.None, 0, 1, 0}; !reflect.DeepEqual(res.Parent, want) {
		t.Errorf("Parent = %v; want %v", res.Parent, want)
	}
}

// TestBFS_DirectedUnreached checks that arcs are followed one way only.
func TestBFS_DirectedUnreached(t *testing.T) {
	g := build(t, 3, [][2]int{{1, 0}, {1, 2}})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached(1) || res.Reached(2) || res.Reached(7) {
		t.Errorf("unexpected reach: %v", res.Depth)
	}
	if _, err := res.PathTo(2); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(2): want ErrNoPath, got %v", err)
	}
}

// TestBFS_PathTo reconstructs a hop-shortest path.
func TestBFS_PathTo(t *testing.T) {
	g := build(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 4}, {0, 3}, {3, 4}})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo(4)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 3, 4}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(4) = %v; want %v", path, want)
	}
	if path, _ := res.PathTo(0); !reflect.DeepEqual(path, []int{0}) {
		t.Errorf("PathTo(start) = %v", path)
	}
}

// TestBFS_MaxDepthAndFilter checks both pruning knobs.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := build(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 4}})

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 4, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth(2) Order = %v; want %v", res.Order, want)
	}

	res, err = bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 1 }))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 4}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("filtered Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks verifies hook order and abort on OnVisit error.
func TestBFS_Hooks(t *testing.T) {
	g := build(t, 3, [][2]int{{0, 1}, {0, 2}})
	var enq, deq []int
	_, err := bfs.BFS(g, 0,
		bfs.WithOnEnqueue(func(id, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id, _ int) { deq = append(deq, id) }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(enq, want) || !reflect.DeepEqual(deq, want) {
		t.Errorf("enqueue %v dequeue %v; want %v", enq, deq, want)
	}

	stop := errors.New("stop")
	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want stop error, got %v", err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order at abort = %v; want %v", res.Order, want)
	}
}

// TestComponent returns sorted members of the reachable set.
func TestComponent(t *testing.T) {
	g := build(t, 6, [][2]int{{4, 2}, {2, 0}, {1, 3}}, core.WithUndirected())
	comp, err := bfs.Component(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 2, 4}; !reflect.DeepEqual(comp, want) {
		t.Errorf("Component(0) = %v; want %v", comp, want)
	}
	if comp, _ := bfs.Component(g, 5); !reflect.DeepEqual(comp, []int{5}) {
		t.Errorf("Component(5) = %v", comp)
	}
	if _, err := bfs.Component(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: got %v", err)
	}
}
