// Package ksp enumerates the K shortest loopless paths between two vertices
// using Yen's algorithm.
//
// Overview:
//
//   - Yen seeds the result with one shortest path from an Oracle, then, for every
//     vertex of the last accepted path (the spur vertex), temporarily removes the
//     edges that would recreate an accepted path or revisit the root prefix, asks
//     the Oracle for a spur path, restores the graph, and queues the combined
//     root+spur path as a candidate. The cheapest candidate becomes the next path.
//   - Candidates are ordered by (length, insertion sequence), so equal-length
//     candidates come out in the order they were generated.
//   - Structurally identical candidates are not deduplicated; a graph with many
//     ties can therefore yield the same path twice.
//   - Fewer than k paths is not an error: Yen returns what exists.
//
// Graph mutation:
//
//   - The graph is mutated during a run and restored before Yen returns, on error
//     paths too. Removed edges are re-inserted with their original ID and
//     attributes (core.WithID), so the edge set is identical afterwards.
//   - The exclude → search → restore window is not atomic with respect to other
//     goroutines. Do not touch the graph concurrently with Yen.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrEmptyVertexID, ErrVertexNotFound: invalid inputs.
//   - ErrBadK: k < 1 (not checked when source == target).
//   - ErrNoPath (== core.ErrNoPath): source cannot reach target.
//   - ErrRestoreFailed: an excluded edge could not be put back.
//
// API reference:
//
//	func Yen(g Graph, source, target string, k int, opts ...Option) ([]float64, [][]string, error)
//	func PathLength(g EdgeReader, path []string, weightKey string) (float64, error)
//	func NewMetrics(reg prometheus.Registerer) *Metrics
//
// Options: WithWeightKey, WithOracle, WithLogger (zerolog), WithMetrics (Prometheus).
//
// Complexity:
//
//   - O(k · n · S) where n bounds the path length and S is the cost of one
//     oracle call (O((V + E) log V) for DijkstraOracle).
package ksp
