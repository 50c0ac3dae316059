// Package builder provides internal helper functions used by Constructor
// implementations.
package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/critpath/core"
)

// addVertices appends one vertex per point and returns the ID of the first.
// Labels come from cfg.labelFn applied to each new ID.
//
// Complexity: O(len(pts)).
func addVertices(g *core.Graph, cfg builderConfig, method string, pts []orb.Point) (int, error) {
	base := g.Order()
	for i, p := range pts {
		label := cfg.labelFn(base + i)
		if _, err := g.AddVertex(label, p); err != nil {
			return core.None, fmt.Errorf("%s: AddVertex(%q): %w", method, label, err)
		}
	}

	return base, nil
}

// addArc wraps g.AddEdge with constructor context.
func addArc(g *core.Graph, method string, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, u, v, err)
	}

	return nil
}
