package main

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/dfs"
	"github.com/katalvlaran/kpaths/ksp"
)

var errCheckFailed = errors.New("result differs from exhaustive enumeration")

// lengthTolerance absorbs summation-order differences between float weights.
const lengthTolerance = 1e-9

// verify enumerates every simple source→target path and checks that the
// distinct paths in the result are the cheapest ones, in order. A result
// shorter than k must contain every simple path.
func verify(g *core.Graph, source, target, weightKey string, k int, lengths []float64, paths [][]string) error {
	all, err := dfs.SimplePaths(g, source, target)
	if err != nil {
		return err
	}
	want := make([]float64, len(all))
	for i, p := range all {
		if want[i], err = ksp.PathLength(g, p, weightKey); err != nil {
			return err
		}
	}
	sort.Float64s(want)

	seen := make(map[string]bool, len(paths))
	n := 0
	for i, p := range paths {
		key := strings.Join(p, "\x00")
		if seen[key] {
			continue
		}
		seen[key] = true
		if n >= len(want) {
			return fmt.Errorf("%w: %d distinct paths, only %d exist", errCheckFailed, n+1, len(want))
		}
		if math.Abs(lengths[i]-want[n]) > lengthTolerance {
			return fmt.Errorf("%w: path #%d has length %g, expected %g", errCheckFailed, i+1, lengths[i], want[n])
		}
		n++
	}
	if len(paths) < k && n != len(want) {
		return fmt.Errorf("%w: found %d of %d paths", errCheckFailed, n, len(want))
	}

	return nil
}
