package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/dfs"
)

func TestTopologicalSort_NilAndUndirected(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := buildGraph(t, 2, [][2]int{{0, 1}}, core.WithUndirected())
	_, err = dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrUndirectedGraph)
}

func TestTopologicalSort_Empty(t *testing.T) {
	res, err := dfs.TopologicalSort(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.Empty(t, res.Parent)
}

// TestTopologicalSort_Diamond covers 0→1, 1→2, 1→3.
func TestTopologicalSort_Diamond(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {1, 3}})
	res, err := dfs.TopologicalSort(g)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 1, 0}, res.PostOrder)
	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, []int{core.None, 0, 1, 1}, res.Parent)

	rank := dfs.Rank(res.Order, g.Order())
	assert.Less(t, rank[0], rank[1])
	assert.Less(t, rank[1], rank[2])
	assert.Less(t, rank[1], rank[3])
}

func TestTopologicalSort_ForestRoots(t *testing.T) {
	// Vertex 2 is only reachable from 3, which has a higher ID, so the walk
	// starts a second tree at 2 before reaching 3.
	g := buildGraph(t, 4, [][2]int{{0, 1}, {3, 2}})
	res, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 0, 1}, res.Order)
	assert.Equal(t, []int{core.None, 0, core.None, core.None}, res.Parent)
}

func TestTopologicalSort_RandomDAGs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(30)
		perm := rng.Perm(n)
		var arcs [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < 0.2 {
					// perm hides the natural ID order from the walk
					arcs = append(arcs, [2]int{perm[i], perm[j]})
				}
			}
		}
		g := buildGraph(t, n, arcs)
		res, err := dfs.TopologicalSort(g)
		require.NoError(t, err)
		require.Len(t, res.Order, n)

		rank := dfs.Rank(res.Order, n)
		for _, a := range arcs {
			assert.Less(t, rank[a[0]], rank[a[1]], "trial %d arc %d→%d", trial, a[0], a[1])
		}
	}
}

func TestRank(t *testing.T) {
	assert.Equal(t, []int{2, 0, -1, 1}, dfs.Rank([]int{1, 3, 0}, 4))
	assert.Equal(t, []int{0, -1}, dfs.Rank([]int{0, 7, -3}, 2))
}

func TestTopoResult_ApplyTo(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {1, 3}})
	res, err := dfs.TopologicalSort(g)
	require.NoError(t, err)

	res.ApplyTo(g)
	out := g.Outputs()
	assert.Equal(t, []int{0, 1, 3, 2}, out.TopologicalOrdering)
	assert.Equal(t, []int{core.None, 0, 1, 1}, out.Parents)
}
