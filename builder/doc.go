// Package builder provides deterministic fixture graphs for tests, benchmarks
// and the CLI demo: every vertex gets a coordinate, so arc weights follow from
// geometry the same way they do for loaded documents.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(gopts, bopts, cons...): new core.Graph, resolved config,
//     constructors applied in order.
//   - Constructors (one impl_*.go each):
//     – Path(n):               0→1→…→n-1 along the x axis.
//     – Cycle(n):              Path closed back to 0, on a circle.
//     – Grid(rows, cols):      right and down arcs, row-major IDs.
//     – RandomDAG(n, p):       forward arcs i→j (i<j) with probability p.
//     – RandomGeometric(n, r): uniform points, pairs within distance r joined.
//   - Configuration primitives:
//     – BuilderOption / builderConfig: RNG, spacing, origin, label scheme.
//   - Label schemes (LabelFn implementations):
//     – NoLabels, DecimalLabelFn, ExcelColumnLabelFn, PrefixLabelFn(prefix).
//
// Guarantees:
//
//   - Composable: constructors append vertices after whatever g already holds
//     and number them from g.Order(), so several fixtures can share one graph.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime parameter errors are sentinel-wrapped with the constructor name.
//   - Same inputs, options, seed and constructor order produce identical graphs.
package builder
