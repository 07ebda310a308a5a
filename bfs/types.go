// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/causalctx/matrixgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start handle is not live.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for vertices never reached.
	ErrNoPath = errors.New("bfs: no path to vertex")
)

// Graph is the read-only view BFS needs. *matrixgraph.Graph satisfies it.
type Graph interface {
	HasNode(n matrixgraph.NodeIndex) bool
	Successors(n matrixgraph.NodeIndex) []matrixgraph.NodeIndex
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n matrixgraph.NodeIndex, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor matrixgraph.NodeIndex) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with: context.Background(), no depth limit,
// no filtering, and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(matrixgraph.NodeIndex, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ matrixgraph.NodeIndex) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(n matrixgraph.NodeIndex, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor matrixgraph.NodeIndex) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	Start  matrixgraph.NodeIndex
	Order  []matrixgraph.NodeIndex
	Depth  map[matrixgraph.NodeIndex]int
	Parent map[matrixgraph.NodeIndex]matrixgraph.NodeIndex
}

// Reached reports whether n was discovered by the traversal.
func (r *Result) Reached(n matrixgraph.NodeIndex) bool {
	_, ok := r.Depth[n]

	return ok
}

// PathTo reconstructs the hop-minimal path from the start vertex to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest matrixgraph.NodeIndex) ([]matrixgraph.NodeIndex, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %s", ErrNoPath, dest)
	}
	path := []matrixgraph.NodeIndex{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
