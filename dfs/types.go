// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/causalctx/matrixgraph"
)

// Visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // vertex and all descendants explored
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates a cycle met during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Graph is the read-only view the analyses need. *matrixgraph.Graph satisfies it.
type Graph interface {
	NodeIndices() []matrixgraph.NodeIndex
	Successors(n matrixgraph.NodeIndex) []matrixgraph.NodeIndex
}

// Option configures optional behavior of TopologicalSort.
type Option func(*Options)

// Options holds TopologicalSort settings.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns Options with a Background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
