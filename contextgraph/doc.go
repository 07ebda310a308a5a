// SPDX-License-Identifier: MIT

// Package contextgraph holds the context graph of a causal model: a directed,
// weighted graph of Contextoids.
//
// A Contextoid is a vertex carrying a caller-assigned identity and exactly one
// payload kind (root marker, datum, spatial point, temporal point, or
// spatio-temporal point), described by VertexType. The four payload type
// parameters are fixed per Context, so one Context mixes kinds but never
// payload types:
//
//	type Ctx = contextgraph.Context[float64, nodes.Spaceoid, nodes.Tempoid, nodes.SpaceTempoid]
//
// Context owns its Contextoids by value in an arena keyed by NodeIndex; the
// underlying matrixgraph stores only handles. A handle is valid until its
// Contextoid is removed, after which it is stale forever, even if the slot
// is reused.
//
// Edges are directed and carry a uint64 weight. Distances, ShortestPath and
// Reachable run dijkstra and bfs directly over the graph.
//
// Context is not safe for concurrent mutation. Wrap it in a SyncContext when
// several goroutines share it.
//
// Every mutation is logged at debug level through the configured slog.Logger
// and counted through the global OpenTelemetry meter provider.
package contextgraph
