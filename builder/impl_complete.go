// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits each unordered pair {i,j} with i<j exactly once,
//     and mirrors to j→i when g.Directed() is true.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges emission.
//   • Space: O(n) extra for the ID slice.
//
// Determinism:
//   • Pair order is lexicographic by (i,j), i<j; weights follow that order.

package builder

import (
	"github.com/katalvlaran/kpaths/core"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return builderErrorf(MethodComplete, "n=%d < min=%d: %w", n, MinCompleteNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(MethodComplete, g, n, cfg.idFn)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addSymmetric(MethodComplete, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
