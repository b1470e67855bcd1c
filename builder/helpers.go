// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
package builder

import (
	"strconv"

	"github.com/katalvlaran/kpaths/core"
)

// addVertices inserts idFn(0..n-1) and returns the IDs in index order.
// Complexity: O(n) time and space.
func addVertices(method string, g *core.Graph, n int, idFn IDFn) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, builderErrorf(method, "AddVertex(%s): %w", ids[i], err)
		}
	}

	return ids, nil
}

// addEdge inserts u→v with freshly drawn attributes.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	attrs := cfg.edgeAttrs()
	if _, err := g.AddEdge(u, v, attrs); err != nil {
		return builderErrorf(method, "AddEdge(%s→%s, attrs=%v): %w", u, v, attrs, err)
	}

	return nil
}

// addSymmetric inserts u-v; on directed graphs it adds both arcs, each with
// its own weight draw.
func addSymmetric(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	if err := addEdge(method, g, cfg, u, v); err != nil {
		return err
	}
	if !g.Directed() {
		return nil
	}

	return addEdge(method, g, cfg, v, u)
}

// gridVertexID formats a 2D grid coordinate as "r,c".
// Example: gridVertexID(0,1) → "0,1".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
