// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over the directed graphs of
// package matrixgraph, returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex,
//     following edges in their direction only.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → hops from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Hooks: OnVisit (may abort with an error), neighbour filtering,
//     MaxDepth limit (d>0) or explicit "no limit" (d==0), and cancellation.
//
// Why
//
//   - Reachability queries over a context ("which observations can this
//     root reach?") ignore weights; BFS answers them in O(V²) on a dense matrix.
//
// Determinism
//
//	Successors are listed in slot order, so the visit sequence is reproducible
//	for a given sequence of insertions and removals.
package bfs
