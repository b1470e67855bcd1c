// Package kpaths finds the k shortest loopless paths between two vertices of
// a weighted graph, using Yen's algorithm on top of an in-memory,
// thread-safe graph.
//
// 🚀 What is kpaths?
//
//	A small library and CLI that brings together:
//		• Core primitives: vertices & edges with float64 attributes, stable edge IDs
//		• Shortest paths: deterministic Dijkstra, plus a gonum-backed alternative
//		• K shortest paths: Yen's algorithm with exact edge restoration
//		• Enumeration: every simple path by depth-first search
//		• Fixtures: Complete, Cycle, Path, Grid and RandomSparse graph builders
//
// ✨ Why kpaths?
//
//   - Deterministic – the same graph and inputs always yield the same paths
//   - Non-destructive – every edge removed during a search is put back under
//     its original ID, even when the search fails
//   - Pluggable – swap the shortest-path oracle, weight key, logger and metrics
//
// Packages:
//
//	core/       - Graph, Edge, Attributes & thread-safe primitives
//	dijkstra/   - single-source and point-to-point shortest paths
//	ksp/        - Yen's K shortest loopless paths, PathLength, metrics
//	dfs/        - exhaustive simple-path enumeration (reference answers)
//	converters/ - gonum/graph snapshots and a gonum shortest-path oracle
//	builder/    - deterministic graph fixtures
//	cmd/kpaths  - command-line front end (YAML/JSON graphs, text/JSON output)
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	A→D has two paths of two edges each: A-B-D and A-C-D.
//
//	go get github.com/katalvlaran/kpaths/ksp
package kpaths
