// Package dijkstra provides a deterministic implementation of Dijkstra's
// shortest-path algorithm on graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source vertex to all
//     reachable vertices in O((V + E) log V) time.
//   - ShortestPath answers a point-to-point query (length + vertex sequence) and
//     stops as soon as the target is settled. It is the oracle the ksp package
//     calls once per spur vertex.
//   - Weights are read from an edge attribute (WithWeightKey); an edge without
//     that attribute weighs core.DefaultWeight.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource / ErrEmptyTarget: empty vertex IDs.
//   - ErrNilGraph: nil graph.
//   - ErrVertexNotFound: source or target missing.
//   - ErrNegativeWeight: a relaxed edge carries a negative or NaN weight.
//   - core.ErrNoPath: ShortestPath could not reach the target.
//   - ErrBadMaxDistance / ErrBadInfThreshold: raised (via panic) by the option constructors.
//
// API reference:
//
//	func Dijkstra(g Graph, opts ...Option) (dist map[string]float64, prev map[string]string, err error)
//	func ShortestPath(g Graph, source, target string, opts ...Option) (float64, []string, error)
//
// Determinism:
//
//   - Successors are relaxed in sorted order, a predecessor is replaced only on a
//     strict improvement, and heap ties are broken by vertex ID. The same graph
//     state therefore always yields the same path.
//
// Thread safety:
//
//   - Dijkstra does not lock the graph across the whole run. If the graph is
//     mutated concurrently, synchronize externally.
package dijkstra
