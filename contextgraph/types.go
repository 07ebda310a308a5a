// SPDX-License-Identifier: MIT

package contextgraph

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/causalctx/matrixgraph"
)

// Sentinel errors returned by Context edge operations.
var (
	// ErrContextoidNotFound indicates an absent or stale handle.
	ErrContextoidNotFound = errors.New("contextgraph: contextoid not found")

	// ErrEdgeExists indicates AddEdge on an already connected pair.
	ErrEdgeExists = errors.New("contextgraph: edge already exists")

	// ErrEdgeNotFound indicates RemoveEdge on an unconnected pair.
	ErrEdgeNotFound = errors.New("contextgraph: edge not found")
)

// NodeIndex is the opaque handle of a Contextoid inside one Context.
type NodeIndex = matrixgraph.NodeIndex

// Option configures a Context at construction.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

func defaultConfig() config {
	return config{logger: slog.New(slog.DiscardHandler)}
}

// WithLogger sets the logger receiving debug records for every mutation.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
