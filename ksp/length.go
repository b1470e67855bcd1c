package ksp

import "fmt"

// PathLength returns the total weight of path: the sum, over consecutive
// vertex pairs, of the edge attribute weightKey (core.DefaultWeight when the
// attribute is absent). Paths with fewer than two vertices weigh 0.
//
// Errors:
//   - core.ErrEdgeNotFound (wrapped with the pair) if two consecutive vertices
//     are not joined by an edge.
//
// Complexity: O(len(path)).
func PathLength(g EdgeReader, path []string, weightKey string) (float64, error) {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		e, err := g.EdgeBetween(path[i], path[i+1])
		if err != nil {
			return 0, fmt.Errorf("ksp: path length %s→%s: %w", path[i], path[i+1], err)
		}
		total += e.Weight(weightKey)
	}

	return total, nil
}
