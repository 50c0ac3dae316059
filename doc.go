// Package critpath schedules and connects geometric graphs: every vertex has
// a planar coordinate and every arc weighs the Euclidean distance between its
// endpoints.
//
// What is in the module?
//
//	• Critical path: topological order, earliest and latest starts, slack,
//	  critical vertices and one critical path (PERT/CPM).
//	• Spanning trees: Prim over an indexed min-heap, Kruskal as a cross-check.
//	• Traversals and paths: DFS, BFS, Dijkstra.
//	• Documents: text, YAML/JSON, HCL and OpenStreetMap XML loaders.
//	• Spatial lookup: nearest vertex and box queries over an R-tree.
//
// Subpackages:
//
//	core/         — Graph: dense int IDs, coordinates, ordered adjacency, output slots
//	indexheap/    — indexed binary min-heap with decrease-key
//	dfs/          — depth-first walk, topological sort and cycle finding
//	cpm/          — earliest/latest start passes and the critical path
//	prim_kruskal/ — minimum spanning tree (Prim) and forest (Kruskal)
//	bfs/          — breadth-first reachability
//	dijkstra/     — single-source shortest paths
//	builder/      — deterministic fixture graphs
//	loader/       — graph documents
//	locate/       — R-tree over vertex coordinates
//	metrics/      — Prometheus collectors
//	cmd/critpath  — command-line front end
//
// Quick example:
//
//	design ──3── build ──4── ship
//	               │
//	               1
//	               │
//	              docs
//
//	g := core.NewGraph()
//	d, _ := g.AddVertex("design", orb.Point{0, 0})
//	b, _ := g.AddVertex("build", orb.Point{3, 0})
//	s, _ := g.AddVertex("ship", orb.Point{3, 4})
//	x, _ := g.AddVertex("docs", orb.Point{4, 0})
//	_ = g.AddEdge(d, b)
//	_ = g.AddEdge(b, s)
//	_ = g.AddEdge(b, x)
//
//	sched, _ := cpm.Compute(g) // horizon 7, critical path design → build → ship
//	tree, _ := prim_kruskal.Prim(g, d)
//	fmt.Println(sched.Horizon, tree.TotalWeight()) // 7 8
package critpath
