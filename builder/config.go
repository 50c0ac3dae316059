// SPDX-License-Identifier: MIT
// Package: critpath/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • labelFn = NoLabels    (vertices are addressed by ID)
//   • rng     = nil         (pure/deterministic unless seeded)
//   • spacing = 1.0         (distance between neighboring fixture vertices)
//   • origin  = (0,0)

package builder

import (
	"math/rand"

	"github.com/paulmach/orb"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex label strategy: vertex ID -> label ("" means unlabeled).
	labelFn LabelFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Unit distance between neighboring vertices of regular fixtures.
	spacing float64
	// Coordinate of the first vertex of regular fixtures.
	origin orb.Point
}

const defaultSpacing = 1.0

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn: NoLabels,
		spacing: defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// at returns origin + (dx, dy)·spacing.
func (c builderConfig) at(dx, dy float64) orb.Point {
	return orb.Point{c.origin[0] + dx*c.spacing, c.origin[1] + dy*c.spacing}
}
