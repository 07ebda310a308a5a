// SPDX-License-Identifier: MIT

// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm over matrixgraph handles.
//
// Weights are uint64, so every edge is non-negative by type and the classic
// algorithm applies without a negative-weight pre-scan.
//
// Options:
//
//	– WithReturnPath:       record predecessors so paths can be rebuilt.
//	– WithMaxDistance:      vertices farther than this are not explored.
//	– WithInfEdgeThreshold: edges with weight ≥ threshold are impassable.
//	– WithParallelism:      bound on concurrent sources in AllPairs.
//
// Errors (sentinel):
//
//	– ErrNilGraph         the graph argument is nil.
//	– ErrSourceNotFound   the source handle is not live in the graph.
//	– ErrNoPath           the destination is unreachable.
//	– ErrPathNotRecorded  PathTo called on a result computed without WithReturnPath.
//	– ErrBadInfThreshold  WithInfEdgeThreshold(0) (panics at option construction).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/causalctx/matrixgraph"
)

// Infinity is the distance reported for unreachable vertices.
const Infinity uint64 = math.MaxUint64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates the source handle is not live in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNoPath indicates that the destination cannot be reached from the source.
	ErrNoPath = errors.New("dijkstra: no path to destination")

	// ErrPathNotRecorded indicates predecessors were not kept (WithReturnPath missing).
	ErrPathNotRecorded = errors.New("dijkstra: predecessors not recorded")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero,
	// which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Graph is the read-only view Dijkstra needs. *matrixgraph.Graph satisfies it.
type Graph interface {
	// HasNode reports whether n is a live handle.
	HasNode(n matrixgraph.NodeIndex) bool
	// NodeIndices lists every live handle.
	NodeIndices() []matrixgraph.NodeIndex
	// OutEdges lists the edges leaving n.
	OutEdges(n matrixgraph.NodeIndex) []matrixgraph.Edge
}

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath       – if true, Result.Prev is populated.
// MaxDistance      – cap on explored distances. Default Infinity (no cap).
// InfEdgeThreshold – edges with weight ≥ this are skipped. Default Infinity.
// Parallelism      – AllPairs bound on concurrent sources; ≤ 0 means unbounded.
type Options struct {
	ReturnPath       bool
	MaxDistance      uint64
	InfEdgeThreshold uint64
	Parallelism      int
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables predecessor recording in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed max are not explored
// and keep distance Infinity.
func WithMaxDistance(max uint64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are non-traversable. Panics on zero, which would block every edge.
func WithInfEdgeThreshold(threshold uint64) Option {
	if threshold == 0 {
		// Invalid configuration is a programmer error; fail at construction.
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithParallelism bounds how many sources AllPairs runs at once.
// n ≤ 0 removes the bound. Ignored by Dijkstra and ShortestPath.
func WithParallelism(n int) Option {
	return func(o *Options) {
		o.Parallelism = n
	}
}

// DefaultOptions returns the defaults: no path recording, no distance cap,
// no impassable edges, unbounded parallelism.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
		Parallelism:      0,
	}
}

// Result holds the outcome of a single-source run.
//
// Dist[v] is the shortest distance from Source to v (Infinity if unreachable).
// Prev[v] is v's predecessor on one shortest path; absent for the source and
// for unreachable vertices. Prev is nil unless WithReturnPath was given.
type Result struct {
	Source matrixgraph.NodeIndex
	Dist   map[matrixgraph.NodeIndex]uint64
	Prev   map[matrixgraph.NodeIndex]matrixgraph.NodeIndex
}

// Reachable reports whether dest received a finite distance.
func (r *Result) Reachable(dest matrixgraph.NodeIndex) bool {
	d, ok := r.Dist[dest]

	return ok && d != Infinity
}

// PathTo reconstructs the path Source → … → dest.
// Returns ErrPathNotRecorded if the run did not keep predecessors and
// ErrNoPath if dest is unreachable.
// Complexity: O(path length).
func (r *Result) PathTo(dest matrixgraph.NodeIndex) ([]matrixgraph.NodeIndex, error) {
	if r.Prev == nil {
		return nil, ErrPathNotRecorded
	}
	if !r.Reachable(dest) {
		return nil, ErrNoPath
	}

	path := []matrixgraph.NodeIndex{dest}
	cur := dest
	for cur != r.Source {
		prev, ok := r.Prev[cur]
		if !ok {
			return nil, ErrNoPath
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get source → dest
	var i, j int
	for i, j = 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
