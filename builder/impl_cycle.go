// SPDX-License-Identifier: MIT
// Package: critpath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices sit on a circle through origin, evenly spaced so that
//     consecutive vertices are spacing apart.
//   - Emits arcs i → (i+1) mod n in increasing i.
//
// A directed Cycle is the canonical input that violates the DAG precondition
// of critical-path scheduling.

package builder

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/critpath/core"
)

// Cycle returns a Constructor that builds a simple ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		// Chord length spacing ⇒ radius = 1 / (2·sin(π/n)) in spacing units.
		r := 1 / (2 * math.Sin(math.Pi/float64(n)))
		pts := make([]orb.Point, n)
		for i := range pts {
			theta := 2 * math.Pi * float64(i) / float64(n)
			pts[i] = cfg.at(r*math.Cos(theta)-r, r*math.Sin(theta))
		}
		base, err := addVertices(g, cfg, MethodCycle, pts)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			if err = addArc(g, MethodCycle, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
