// SPDX-License-Identifier: MIT

package contextgraph

import (
	"fmt"
	"log/slog"
)

// AddContextoid stores v and returns its handle.
// Identities are not checked: adding two Contextoids with the same ID yields
// two vertices with distinct handles.
//
// Complexity: O(1) amortized; O(V²) when the matrix grows.
func (c *Context[D, S, T, ST]) AddContextoid(v Contextoid[D, S, T, ST]) NodeIndex {
	h := c.graph.AddNode()
	c.contextMap[h] = v

	c.logger.Debug("contextoid added",
		slog.String("handle", h.String()),
		slog.Uint64("id", v.ID()),
		slog.String("kind", v.VertexType().Kind().String()),
	)
	record(contextoidsAdded, 1, c.attrs)

	return h
}

// ContainsContextoid reports whether h is a live handle of c.
func (c *Context[D, S, T, ST]) ContainsContextoid(h NodeIndex) bool {
	_, ok := c.contextMap[h]
	return ok
}

// GetContextoid returns the Contextoid behind h, or false if h is absent or stale.
func (c *Context[D, S, T, ST]) GetContextoid(h NodeIndex) (Contextoid[D, S, T, ST], bool) {
	v, ok := c.contextMap[h]
	return v, ok
}

// RemoveContextoid removes the Contextoid behind h together with all of its
// incoming and outgoing edges. Removing an absent or stale handle is a no-op.
//
// Complexity: O(V).
func (c *Context[D, S, T, ST]) RemoveContextoid(h NodeIndex) {
	v, ok := c.contextMap[h]
	if !ok {
		return
	}

	before := c.graph.EdgeCount()
	c.graph.RemoveNode(h)
	delete(c.contextMap, h)
	severed := before - c.graph.EdgeCount()

	c.logger.Debug("contextoid removed",
		slog.String("handle", h.String()),
		slog.Uint64("id", v.ID()),
		slog.Int("edges_severed", severed),
	)
	record(contextoidsRemoved, 1, c.attrs)
	record(edgesRemoved, severed, c.attrs)
}

// NodeIndices returns every live handle in slot order.
func (c *Context[D, S, T, ST]) NodeIndices() []NodeIndex {
	return c.graph.NodeIndices()
}

// Contextoids calls fn for every Contextoid in slot order until fn returns false.
func (c *Context[D, S, T, ST]) Contextoids(fn func(h NodeIndex, v Contextoid[D, S, T, ST]) bool) {
	var h NodeIndex
	for _, h = range c.graph.NodeIndices() {
		if !fn(h, c.contextMap[h]) {
			return
		}
	}
}

// mustContain returns ErrContextoidNotFound wrapped with h when h is not live.
func (c *Context[D, S, T, ST]) mustContain(h NodeIndex) error {
	if _, ok := c.contextMap[h]; !ok {
		return fmt.Errorf("%w: %s", ErrContextoidNotFound, h)
	}

	return nil
}
