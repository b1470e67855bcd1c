// Package builder provides deterministic fixture constructors for core graphs:
// complete graphs, cycles, paths, grids and seeded random sparse graphs.
//
// Fixtures are assembled with BuildGraph from Constructors and functional
// options:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true)},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithIntWeight(1, 9)},
//		builder.RandomSparse(12, 0.3),
//	)
//
// Components:
//
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), LetterIDFn
//     ("A","Z","AA",…), PrefixedIDFn(prefix).
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntWeightFn, NormalWeightFn, ExponentialWeightFn.
//     Weights are stored under core.DefaultWeightKey unless WithWeightKey says
//     otherwise; WithBareEdges emits edges without attributes.
//
// Guarantees:
//
//   - Same options, seed and constructor order give the same graph, edge IDs
//     and weights included.
//   - Option constructors panic on meaningless values; Constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with the method name.
package builder
