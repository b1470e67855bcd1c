// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn      = DefaultIDFn        ("0","1","2",...)
//   • rng       = nil                 (pure/deterministic unless seeded)
//   • weightFn  = DefaultWeightFn     (constant DefaultEdgeWeight)
//   • weightKey = core.DefaultWeightKey
//   • bare      = false               (edges carry a weight attribute)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/kpaths/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Attribute key the generated weight is stored under.
	weightKey string
	// bare edges carry no attributes at all (they weigh core.DefaultWeight).
	bare bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		weightFn:  DefaultWeightFn,
		weightKey: core.DefaultWeightKey,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// edgeAttrs draws the attributes of the next edge. The RNG is consulted only
// when edges are weighted, so bare fixtures leave the random stream untouched.
func (c builderConfig) edgeAttrs() core.Attributes {
	if c.bare {
		return nil
	}

	return core.Attributes{c.weightKey: c.weightFn(c.rng)}
}
