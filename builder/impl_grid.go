// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Vertex IDs use a fixed scheme "r,c" (row-major order); cfg.idFn is not
//     consulted so coordinates stay explicit.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Adds edges to right (r,c+1) and bottom (r+1,c) neighbors where they exist.
//     In directed graphs, also emits the reverse arc.
//
// Complexity:
//   • Time: O(rows*cols) vertices + O(rows*cols) edges.
//
// Determinism:
//   • Stable edge order: for each (r,c) emit Right then Bottom if present.
//
// Grids are the classic worst case for path enumeration: between opposite
// corners of an R×C grid there are C(R+C-2, R-1) monotone shortest paths.

package builder

import (
	"github.com/katalvlaran/kpaths/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return builderErrorf(MethodGrid, "rows=%d, cols=%d (each must be ≥ %d): %w",
				rows, cols, MinGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := gridVertexID(r, c)
				if err := g.AddVertex(id); err != nil {
					return builderErrorf(MethodGrid, "AddVertex(%s): %w", id, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridVertexID(r, c)
				if c+1 < cols {
					if err := addSymmetric(MethodGrid, g, cfg, u, gridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addSymmetric(MethodGrid, g, cfg, u, gridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
