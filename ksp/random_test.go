package ksp_test

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kpaths/builder"
	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/dfs"
	"github.com/katalvlaran/kpaths/ksp"
)

// simplePathLengths enumerates every loopless source→target path and
// returns their lengths in ascending order.
func simplePathLengths(t *testing.T, g *core.Graph, source, target string) []float64 {
	t.Helper()
	paths, err := dfs.SimplePaths(g, source, target)
	require.NoError(t, err)

	out := make([]float64, len(paths))
	for i, p := range paths {
		out[i], err = ksp.PathLength(g, p, core.DefaultWeightKey)
		require.NoError(t, err)
	}
	sort.Float64s(out)

	return out
}

// checkPaths asserts the structural guarantees of a Yen result and that its
// distinct paths are the cheapest ones in the graph.
func checkPaths(t *testing.T, g *core.Graph, source, target string, k int, lengths []float64, paths [][]string, want []float64) {
	t.Helper()
	require.Len(t, lengths, len(paths))
	require.LessOrEqual(t, len(paths), k)

	seen := make(map[string]bool)
	var distinct []float64
	for i, p := range paths {
		require.NotEmpty(t, p)
		assert.Equal(t, source, p[0])
		assert.Equal(t, target, p[len(p)-1])

		visited := make(map[string]bool, len(p))
		for _, v := range p {
			assert.False(t, visited[v], "vertex %s repeats in %v", v, p)
			visited[v] = true
		}

		l, err := ksp.PathLength(g, p, core.DefaultWeightKey)
		require.NoError(t, err)
		assert.InDelta(t, l, lengths[i], 1e-9)
		if i > 0 {
			assert.LessOrEqual(t, lengths[i-1], lengths[i])
		}

		key := strings.Join(p, "\x00")
		if !seen[key] {
			seen[key] = true
			distinct = append(distinct, lengths[i])
		}
	}

	require.LessOrEqual(t, len(distinct), len(want))
	assert.InDeltaSlice(t, want[:len(distinct)], distinct, 1e-9)
	if len(paths) < k {
		assert.Len(t, distinct, len(want), "a short result must exhaust all paths")
	}
}

func TestYen_RandomGraphsAgainstEnumeration(t *testing.T) {
	const (
		n = 8
		k = 8
	)
	oracles := map[string]ksp.Oracle{"dijkstra": ksp.DijkstraOracle, "gonum": ksp.GonumOracle}
	// Normal draws are rounded and clipped at 0, so zero-weight edges and
	// exact ties both occur; exponential draws are continuous.
	weights := []struct {
		name  string
		opt   builder.BuilderOption
		seeds int64
	}{
		{"int", builder.WithIntWeight(1, 9), 12},
		{"normal", builder.WithNormalWeight(2, 2), 6},
		{"exponential", builder.WithExponentialWeight(0.5), 6},
	}

	for _, w := range weights {
		for _, directed := range []bool{false, true} {
			for seed := int64(1); seed <= w.seeds; seed++ {
				g, err := builder.BuildGraph(
					[]core.GraphOption{core.WithDirected(directed)},
					[]builder.BuilderOption{builder.WithSeed(seed), w.opt},
					builder.RandomSparse(n, 0.4),
				)
				require.NoError(t, err)
				source, target := "0", fmt.Sprint(n-1)
				want := simplePathLengths(t, g, source, target)

				for name, oracle := range oracles {
					t.Run(fmt.Sprintf("%s/directed=%v/seed=%d/%s", w.name, directed, seed, name), func(t *testing.T) {
						before := edgeSnapshot(g)
						lengths, paths, err := ksp.Yen(g, source, target, k, ksp.WithOracle(oracle))
						assert.Equal(t, before, edgeSnapshot(g))

						if len(want) == 0 {
							require.ErrorIs(t, err, ksp.ErrNoPath)
							return
						}
						require.NoError(t, err)
						checkPaths(t, g, source, target, k, lengths, paths, want)
					})
				}
			}
		}
	}
}
