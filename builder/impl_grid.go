// SPDX-License-Identifier: MIT
// Package: critpath/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid; cell (r,c) sits at origin + (c·spacing, r·spacing).
//   • Vertices are appended in row-major order, so (r,c) has ID base + r·cols + c.
//   • Arcs go Right then Down from each cell. On a directed graph that is a
//     DAG with a single source (0,0) and a single sink (rows-1, cols-1).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//
// Complexity:
//   • Time: O(rows·cols). Space: O(rows·cols) for the point list.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/critpath/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		// 2) Add all vertices in row-major order.
		pts := make([]orb.Point, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pts = append(pts, cfg.at(float64(c), float64(r)))
			}
		}
		base, err := addVertices(g, cfg, MethodGrid, pts)
		if err != nil {
			return err
		}
		id := func(r, c int) int { return base + r*cols + c }

		// 3) Emit Right then Down arcs for each cell.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = addArc(g, MethodGrid, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addArc(g, MethodGrid, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
