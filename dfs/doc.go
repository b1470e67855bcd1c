// Package dfs enumerates simple paths on a graph by depth-first search.
//
// What:
//
//   - SimplePaths: every loopless path between two vertices, found by
//     backtracking. Supports:
//   - Per-path hook
//   - Cancellation via context.Context
//   - Depth limiting (edges per path)
//   - Result limiting
//
// Why:
//   - Reference answer for K shortest path search on small graphs
//   - Exhaustive route listing where the path count is known to be small
//
// Key Types:
//
//   - Graph: HasVertex + Successors, satisfied by *core.Graph
//   - Option: functional options for SimplePaths
//   - Options: holds Context, OnPath, MaxDepth, Limit
//
// Complexity:
//
//   - SimplePaths: Time O(P·V) for P paths, Memory O(V) plus output
//
// Errors:
//
//   - ErrGraphNil              graph is nil
//   - ErrStartVertexNotFound   start vertex ID not in graph
//   - ErrTargetVertexNotFound  target vertex ID not in graph
//   - context.Canceled         enumeration canceled via context
//   - hook errors              propagated from OnPath
//
// Functions:
//
//   - SimplePaths(g Graph, start, target string, opts ...Option) ([][]string, error)
//   - DefaultOptions(), WithContext(), WithOnPath(), WithMaxDepth(), WithLimit()
package dfs
