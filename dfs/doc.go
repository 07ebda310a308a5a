// SPDX-License-Identifier: MIT

// Package dfs implements depth-first analyses of directed matrixgraph
// graphs: topological ordering and cycle detection.
//
// What:
//
//   - TopologicalSort: a linear ordering of the live vertices such that for
//     every edge u→v, u comes before v. Fails with ErrCycleDetected when the
//     graph is not acyclic.
//   - DetectCycles: the cycles closed by DFS back-edges, each reported once
//     in canonical rotation (smallest handle first).
//
// Why:
//
//   - A causal context is expected to be a DAG; both calls check that, and
//     TopologicalSort yields a safe evaluation order for its contextoids.
//
// Both use three-colour marking (White, Gray, Black) and visit vertices and
// successors in slot order, so results are deterministic.
//
// Complexity:
//
//   - TopologicalSort: Time O(V²) on a dense matrix (Successors is O(V)), Memory O(V)
//   - DetectCycles:    Time O(V² + C·L), Memory O(V + C·L)
//     (C = #cycles reported, L = average cycle length)
//
// Errors:
//
//   - ErrGraphNil       graph is nil
//   - ErrCycleDetected  TopologicalSort met a back-edge
//   - context.Canceled  traversal cancelled via WithContext
package dfs
