// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kpaths/core"
)

// TestIDSchemeOptions verifies that ID scheme options are applied in order
// and that nil schemes are ignored.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", newBuilderConfig().idFn(7))
	assert.Equal(t, "A", newBuilderConfig(WithLetterIDs()).idFn(0))
	assert.Equal(t, "AB", newBuilderConfig(WithLetterIDs()).idFn(27))
	assert.Equal(t, "v4", newBuilderConfig(WithPrefixedIDs("v")).idFn(4))
	assert.Equal(t, "3", newBuilderConfig(WithLetterIDs(), WithIDScheme(DefaultIDFn)).idFn(3))
	assert.Equal(t, "5", newBuilderConfig(WithIDScheme(nil)).idFn(5))
}

// TestRNGOptions verifies reproducibility with WithSeed and the nil guard of WithRand.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newBuilderConfig().rng)

	r := rand.New(rand.NewSource(123))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)
	assert.Panics(t, func() { WithRand(nil) })

	a := newBuilderConfig(WithSeed(42)).rng
	b := newBuilderConfig(WithSeed(42)).rng
	assert.Equal(t, a.Int63(), b.Int63())
	assert.Equal(t, a.Int63(), b.Int63())
}

// TestEdgeAttrs verifies how weight options shape the attributes of emitted edges.
func TestEdgeAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, core.Attributes{core.DefaultWeightKey: DefaultEdgeWeight}, newBuilderConfig().edgeAttrs())

	cfg := newBuilderConfig(WithConstantWeight(9), WithWeightKey("cost"))
	assert.Equal(t, core.Attributes{"cost": 9}, cfg.edgeAttrs())

	// Last option wins.
	cfg = newBuilderConfig(WithConstantWeight(1), WithIntWeight(2, 4), WithSeed(1))
	w := cfg.edgeAttrs().Weight(core.DefaultWeightKey)
	assert.GreaterOrEqual(t, w, 2.0)
	assert.LessOrEqual(t, w, 4.0)

	assert.Nil(t, newBuilderConfig(WithBareEdges()).edgeAttrs())

	require.Panics(t, func() { WithWeightKey("") })
	require.Panics(t, func() { WithWeightFn(nil) })
}
