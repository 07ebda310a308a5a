// SPDX-License-Identifier: MIT

package contextgraph

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/causalctx/matrixgraph"
	"github.com/katalvlaran/causalctx/protocols"
	"go.opentelemetry.io/otel/attribute"
)

// Context is a named, directed, weighted graph of Contextoids.
//
// The zero value is not usable; build one with New, WithCapacity or Default.
//
// contextMap is the arena: it owns every Contextoid by value, and its keys are
// exactly the live handles of graph. Every mutation keeps the two in step.
type Context[D protocols.Datable, S protocols.Spatial, T protocols.Temporal, ST protocols.SpaceTemporal] struct {
	id         uint64
	name       string
	graph      *matrixgraph.Graph
	contextMap map[NodeIndex]Contextoid[D, S, T, ST]

	logger *slog.Logger
	attrs  attribute.Set
}

// maxIndexPresize bounds how much of a capacity hint is allocated up front.
const maxIndexPresize = 1 << 16

// Default returns an empty Context with id 0 and name "default".
func Default[D protocols.Datable, S protocols.Spatial, T protocols.Temporal, ST protocols.SpaceTemporal](opts ...Option) *Context[D, S, T, ST] {
	return New[D, S, T, ST](0, "default", opts...)
}

// New returns an empty Context.
func New[D protocols.Datable, S protocols.Spatial, T protocols.Temporal, ST protocols.SpaceTemporal](id uint64, name string, opts ...Option) *Context[D, S, T, ST] {
	return WithCapacity[D, S, T, ST](id, name, 0, opts...)
}

// WithCapacity returns an empty Context whose lookup index is pre-sized for
// capacity Contextoids. capacity is an allocation hint only and never changes
// behavior: negative values count as zero, values above maxIndexPresize are
// clamped, and the adjacency matrix is not pre-sized since its memory grows
// with the square of its side.
func WithCapacity[D protocols.Datable, S protocols.Spatial, T protocols.Temporal, ST protocols.SpaceTemporal](id uint64, name string, capacity int, opts ...Option) *Context[D, S, T, ST] {
	capacity = min(max(capacity, 0), maxIndexPresize)
	cfg := defaultConfig()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Context[D, S, T, ST]{
		id:         id,
		name:       name,
		graph:      matrixgraph.New(0),
		contextMap: make(map[NodeIndex]Contextoid[D, S, T, ST], capacity),
		logger:     cfg.logger.With(slog.Uint64("context_id", id), slog.String("context", name)),
		attrs:      contextAttrs(name),
	}
}

// ID returns the identity of the Context.
func (c *Context[D, S, T, ST]) ID() uint64 { return c.id }

// Name returns the name of the Context.
func (c *Context[D, S, T, ST]) Name() string { return c.name }

// Size returns the number of Contextoids held.
func (c *Context[D, S, T, ST]) Size() int { return len(c.contextMap) }

// IsEmpty reports whether the Context holds no Contextoid.
func (c *Context[D, S, T, ST]) IsEmpty() bool { return len(c.contextMap) == 0 }

// NodeCount returns the number of graph vertices. Always equal to Size.
func (c *Context[D, S, T, ST]) NodeCount() int { return c.graph.NodeCount() }

// EdgeCount returns the number of directed edges.
func (c *Context[D, S, T, ST]) EdgeCount() int { return c.graph.EdgeCount() }

// String renders "Context: id: <id>, name: <name>, node_count: <n>, edge_count: <e>".
func (c *Context[D, S, T, ST]) String() string {
	return fmt.Sprintf("Context: id: %d, name: %s, node_count: %d, edge_count: %d",
		c.id, c.name, c.NodeCount(), c.EdgeCount())
}
