// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) → i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.

package builder

import (
	"github.com/katalvlaran/kpaths/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return builderErrorf(MethodPath, "n=%d < min=%d: %w", n, MinPathNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(MethodPath, g, n, cfg.idFn)
		if err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err = addEdge(MethodPath, g, cfg, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
