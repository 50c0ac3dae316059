// SPDX-License-Identifier: MIT
// Package: critpath/builder
//
// impl_random_geometric.go - implementation of RandomGeometric(n, radius).
//
// Canonical model:
//   - n points uniform in the square origin + [0, side)², side = spacing·√n,
//     so density stays near one point per spacing² as n grows.
//   - Each pair i < j whose Euclidean distance is ≤ radius gets an arc i→j
//     (mirrored by core on undirected graphs).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - radius ≥ 0 (else ErrInvalidRadius).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) distance checks. Space: O(n).

package builder

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/critpath/core"
)

// RandomGeometric returns a Constructor that samples a random geometric graph.
func RandomGeometric(n int, radius float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if n < MinRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomGeometric, n, MinRandomVertices, ErrTooFewVertices)
		}
		if radius < 0 || math.IsNaN(radius) {
			return fmt.Errorf("%s: radius=%g: %w", MethodRandomGeometric, radius, ErrInvalidRadius)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomGeometric, ErrNeedRandSource)
		}

		// 2) Sample points.
		side := math.Sqrt(float64(n))
		pts := make([]orb.Point, n)
		for i := range pts {
			pts[i] = cfg.at(cfg.rng.Float64()*side, cfg.rng.Float64()*side)
		}
		base, err := addVertices(g, cfg, MethodRandomGeometric, pts)
		if err != nil {
			return err
		}

		// 3) Join close pairs in (i asc, j asc) order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if planar.Distance(pts[i], pts[j]) <= radius {
					if err = addArc(g, MethodRandomGeometric, base+i, base+j); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
