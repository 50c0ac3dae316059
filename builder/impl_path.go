// SPDX-License-Identifier: MIT
// Package: critpath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex i sits at origin + (i·spacing, 0).
//   - Emits arcs (i-1) → i for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(n) for the point list.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/critpath/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early.
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		// Lay vertices along the x axis.
		pts := make([]orb.Point, n)
		for i := range pts {
			pts[i] = cfg.at(float64(i), 0)
		}
		base, err := addVertices(g, cfg, MethodPath, pts)
		if err != nil {
			return err
		}

		// Emit path arcs 0->1->2->...->(n-1) in stable order.
		for i := 1; i < n; i++ {
			if err = addArc(g, MethodPath, base+i-1, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
