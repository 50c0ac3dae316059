// SPDX-License-Identifier: MIT
// Package: critpath/builder
//
// impl_random_dag.go - implementation of RandomDAG(n, p) constructor.
//
// Canonical model:
//   - Vertex i sits at x = i·spacing, y drawn uniformly from [0, 4·spacing).
//   - Every forward pair (i, j), i < j, becomes an arc i→j with probability p.
//     IDs therefore already form a topological order.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource): the y coordinates are random.
//   - The graph must be directed (else ErrUnsupportedGraphMode).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(n).
//
// Determinism:
//   - One y draw per vertex in ID order, then trials for i asc, j asc.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/critpath/core"
)

// yBand is the height of the strip RandomDAG draws y coordinates from, in spacing units.
const yBand = 4.0

// RandomDAG returns a Constructor that samples a random DAG over n vertices.
func RandomDAG(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if n < MinRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomDAG, n, MinRandomVertices, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomDAG, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomDAG, ErrNeedRandSource)
		}
		if g.Undirected() {
			return fmt.Errorf("%s: mirrored arcs would form cycles: %w", MethodRandomDAG, ErrUnsupportedGraphMode)
		}

		// 2) Place vertices left to right.
		pts := make([]orb.Point, n)
		for i := range pts {
			pts[i] = cfg.at(float64(i), cfg.rng.Float64()*yBand)
		}
		base, err := addVertices(g, cfg, MethodRandomDAG, pts)
		if err != nil {
			return err
		}

		// 3) Forward Bernoulli trials.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					if err = addArc(g, MethodRandomDAG, base+i, base+j); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
