// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i → (i+1)%n for i=0..n-1. On a directed
//     graph this is a one-way ring.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.

package builder

import (
	"github.com/katalvlaran/kpaths/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return builderErrorf(MethodCycle, "n=%d < min=%d: %w", n, MinCycleNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(MethodCycle, g, n, cfg.idFn)
		if err != nil {
			return err
		}

		// For i==n-1, connect back to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err = addEdge(MethodCycle, g, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
