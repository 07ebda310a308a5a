// SPDX-License-Identifier: MIT

// Package causalctx is the context-graph substrate of a causal reasoning
// engine: typed vertices (Contextoids) carrying data, spatial, temporal or
// spatio-temporal payloads, connected by directed, non-negative weighted
// edges inside a Context.
//
// Under the hood, everything is organized in subpackages:
//
//	protocols/    - capability constraints a payload type must satisfy
//	nodes/        - ready-made payloads: Root, Dataoid, Spaceoid, Tempoid, SpaceTempoid
//	contextgraph/ - Contextoid, VertexType, Context and its locked SyncContext
//	matrixgraph/  - dense directed adjacency matrix with generational handles
//	storage/      - 2-D indexed storage (fixed Array2D, unbounded Sparse2D)
//	distance/     - Euclidean, temporal and Minkowski distances → edge weights
//	dijkstra/     - shortest paths, single-source and concurrent all-pairs
//	bfs/          - unweighted reachability with depth and hooks
//	dfs/          - topological order and cycle detection
//
// Quick start:
//
//	c := contextgraph.New[float64, nodes.Spaceoid, nodes.Tempoid, nodes.SpaceTempoid](1, "lab")
//	r := c.AddContextoid(contextgraph.NewContextoid(0,
//		contextgraph.RootVertex[float64, nodes.Spaceoid, nodes.Tempoid, nodes.SpaceTempoid]()))
//	t := c.AddContextoid(contextgraph.NewContextoid(1,
//		contextgraph.DatumVertex[float64, nodes.Spaceoid, nodes.Tempoid, nodes.SpaceTempoid](21.5)))
//	_ = c.AddEdge(r, t, 1)
//	fmt.Println(c) // Context: id: 1, name: lab, node_count: 2, edge_count: 1
//
// A runnable walkthrough lives in examples/.
package causalctx
