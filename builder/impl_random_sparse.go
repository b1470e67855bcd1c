// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j); allow self-loops iff g.Looped().
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: i asc, then j asc. The same seed and options give
//     the same graph, weights included.

package builder

import (
	"github.com/katalvlaran/kpaths/core"
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomSparseNodes {
			return builderErrorf(MethodRandomSparse, "n=%d < min=%d: %w", n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return builderErrorf(MethodRandomSparse, "p=%.6f not in [%.1f,%.1f]: %w",
				p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(MethodRandomSparse, "%w", ErrNeedRandSource)
		}

		ids, err := addVertices(MethodRandomSparse, g, n, cfg.idFn)
		if err != nil {
			return err
		}

		// include reports the outcome of one Bernoulli trial; p ∈ {0,1} needs no RNG.
		include := func() bool {
			switch p {
			case MinProbability:
				return false
			case MaxProbability:
				return true
			}

			return cfg.rng.Float64() < p
		}

		directed, loops := g.Directed(), g.Looped()
		for i := 0; i < n; i++ {
			first := i + 1
			if directed {
				first = 0
			}
			for j := first; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !include() {
					continue
				}
				if err = addEdge(MethodRandomSparse, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
