// SPDX-License-Identifier: MIT

package contextgraph

import (
	"context"

	"github.com/katalvlaran/causalctx/bfs"
	"github.com/katalvlaran/causalctx/dfs"
	"github.com/katalvlaran/causalctx/dijkstra"
)

// Distances returns the shortest weighted distance from source to every
// Contextoid. Unreachable ones report dijkstra.Infinity.
// Returns dijkstra.ErrSourceNotFound if source is absent or stale.
//
// Complexity: O(V² + E log V).
func (c *Context[D, S, T, ST]) Distances(source NodeIndex, opts ...dijkstra.Option) (*dijkstra.Result, error) {
	return dijkstra.Dijkstra(c.graph, source, opts...)
}

// ShortestPath returns the handles along one cheapest path from → to and its
// total weight. Returns dijkstra.ErrNoPath when to cannot be reached.
func (c *Context[D, S, T, ST]) ShortestPath(from, to NodeIndex, opts ...dijkstra.Option) ([]NodeIndex, uint64, error) {
	return dijkstra.ShortestPath(c.graph, from, to, opts...)
}

// AllDistances runs Distances from every Contextoid concurrently.
// The Context must not be mutated until it returns.
func (c *Context[D, S, T, ST]) AllDistances(ctx context.Context, opts ...dijkstra.Option) (map[NodeIndex]*dijkstra.Result, error) {
	return dijkstra.AllPairs(ctx, c.graph, opts...)
}

// Reachable walks the Context breadth-first from source, ignoring weights.
// Returns bfs.ErrStartVertexNotFound if source is absent or stale.
func (c *Context[D, S, T, ST]) Reachable(source NodeIndex, opts ...bfs.Option) (*bfs.Result, error) {
	return bfs.BFS(c.graph, source, opts...)
}

// TopologicalOrder returns every handle ordered so that each edge points
// forward. Returns dfs.ErrCycleDetected when the Context is not acyclic.
func (c *Context[D, S, T, ST]) TopologicalOrder(ctx context.Context) ([]NodeIndex, error) {
	return dfs.TopologicalSort(c.graph, dfs.WithContext(ctx))
}

// Cycles reports whether the Context has a directed cycle and lists one
// cycle per DFS back-edge; see dfs.DetectCycles.
func (c *Context[D, S, T, ST]) Cycles() (bool, [][]NodeIndex) {
	return dfs.DetectCycles(c.graph)
}
