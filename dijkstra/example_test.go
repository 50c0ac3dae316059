package dijkstra_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/dijkstra"
)

// ExampleDijkstra routes across a 2×2 block grid.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithUndirected())
	for _, p := range []orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {2, 1}} {
		_, _ = g.AddVertex("", p)
	}
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(0, 3)
	_ = g.AddEdge(3, 2)
	_ = g.AddEdge(2, 4)

	res, _ := dijkstra.Dijkstra(g, 0)
	path, _ := res.PathTo(4)
	fmt.Printf("%v %.1f\n", path, res.Dist[4])
	// Output: [0 1 2 4] 3.0
}
