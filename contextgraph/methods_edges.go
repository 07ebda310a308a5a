// SPDX-License-Identifier: MIT

package contextgraph

import (
	"fmt"
	"log/slog"
)

// AddEdge connects a → b with weight w.
//
// Errors:
//   - ErrContextoidNotFound if a or b is absent or stale.
//   - ErrEdgeExists if a → b is already present; use UpdateEdge to reweigh it.
//
// Complexity: O(1).
func (c *Context[D, S, T, ST]) AddEdge(a, b NodeIndex, w uint64) error {
	if err := c.mustContainBoth(a, b); err != nil {
		return err
	}
	if c.graph.HasEdge(a, b) {
		return fmt.Errorf("%w: %s→%s", ErrEdgeExists, a, b)
	}
	c.graph.AddEdge(a, b, w)
	c.logEdge("edge added", a, b, w)
	record(edgesAdded, 1, c.attrs)

	return nil
}

// UpdateEdge sets the weight of a → b, creating the edge if needed.
// Returns ErrContextoidNotFound if a or b is absent or stale.
func (c *Context[D, S, T, ST]) UpdateEdge(a, b NodeIndex, w uint64) error {
	if err := c.mustContainBoth(a, b); err != nil {
		return err
	}
	if c.graph.AddEdge(a, b, w) {
		c.logEdge("edge added", a, b, w)
		record(edgesAdded, 1, c.attrs)
	} else {
		c.logEdge("edge updated", a, b, w)
	}

	return nil
}

// RemoveEdge deletes a → b.
//
// Errors:
//   - ErrContextoidNotFound if a or b is absent or stale.
//   - ErrEdgeNotFound if a → b is not present.
func (c *Context[D, S, T, ST]) RemoveEdge(a, b NodeIndex) error {
	if err := c.mustContainBoth(a, b); err != nil {
		return err
	}
	w, ok := c.graph.EdgeWeight(a, b)
	if !ok {
		return fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, a, b)
	}
	c.graph.RemoveEdge(a, b)
	c.logEdge("edge removed", a, b, w)
	record(edgesRemoved, 1, c.attrs)

	return nil
}

// ContainsEdge reports whether the directed edge a → b exists.
// Absent or stale handles yield false.
func (c *Context[D, S, T, ST]) ContainsEdge(a, b NodeIndex) bool {
	return c.graph.HasEdge(a, b)
}

// EdgeWeight returns the weight of a → b and whether the edge exists.
func (c *Context[D, S, T, ST]) EdgeWeight(a, b NodeIndex) (uint64, bool) {
	return c.graph.EdgeWeight(a, b)
}

// Successors returns the targets of edges leaving h, in slot order.
func (c *Context[D, S, T, ST]) Successors(h NodeIndex) ([]NodeIndex, error) {
	if err := c.mustContain(h); err != nil {
		return nil, err
	}

	return c.graph.Successors(h), nil
}

// Predecessors returns the sources of edges entering h, in slot order.
func (c *Context[D, S, T, ST]) Predecessors(h NodeIndex) ([]NodeIndex, error) {
	if err := c.mustContain(h); err != nil {
		return nil, err
	}

	return c.graph.Predecessors(h), nil
}

func (c *Context[D, S, T, ST]) mustContainBoth(a, b NodeIndex) error {
	if err := c.mustContain(a); err != nil {
		return err
	}

	return c.mustContain(b)
}

func (c *Context[D, S, T, ST]) logEdge(msg string, a, b NodeIndex, w uint64) {
	c.logger.Debug(msg,
		slog.String("from", a.String()),
		slog.String("to", b.String()),
		slog.Uint64("weight", w),
	)
}
