// SPDX-License-Identifier: MIT

// Package dijkstra computes shortest paths over the dense directed graphs of
// package matrixgraph, the distance engine behind context-graph queries.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source vertex to all
//     vertices, with unreachable vertices reported as Infinity.
//   - ShortestPath returns one concrete minimum-cost path between two vertices.
//   - AllPairs fans single-source runs out over every vertex concurrently.
//
// Key features:
//
//   - Functional options tune behaviour without changing signatures.
//   - ReturnPath keeps a predecessor map so paths can be rebuilt (Result.PathTo).
//   - MaxDistance stops exploration beyond a distance budget.
//   - InfEdgeThreshold treats heavy edges as walls.
//   - Lazy decrease-key: stale heap entries are skipped instead of updated.
//   - Ties are broken by handle order, so results are deterministic.
//
// Weights are uint64: non-negative by type. Path sums that would overflow are
// treated as unreachable rather than wrapped.
//
// Thread safety:
//
//   - Dijkstra only reads the graph. Concurrent runs are safe as long as no
//     goroutine mutates the graph meanwhile; AllPairs relies on exactly that.
//
// API reference:
//
//	func Dijkstra(g Graph, source matrixgraph.NodeIndex, opts ...Option) (*Result, error)
//	func ShortestPath(g Graph, from, to matrixgraph.NodeIndex, opts ...Option) ([]matrixgraph.NodeIndex, uint64, error)
//	func AllPairs(ctx context.Context, g Graph, opts ...Option) (map[matrixgraph.NodeIndex]*Result, error)
package dijkstra
