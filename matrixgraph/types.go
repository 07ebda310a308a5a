// SPDX-License-Identifier: MIT

// Package matrixgraph implements a dense, directed graph whose adjacency is
// kept in a single row-major V×V matrix.
//
// Every vertex occupies a slot (row and column) of the matrix. Handles are
// NodeIndex values pairing the slot with a generation counter: removing a
// vertex frees its slot and bumps the generation, so a later vertex placed in
// the same slot gets a different handle and stale handles never alias it.
// Generations are 64-bit, so a slot cannot wrap around in practice.
//
// Each matrix cell is a nullable uint64 weight: an absent cell means "no
// edge". Weights are unsigned, so they are non-negative by construction,
// which is what shortest-path algorithms over the graph rely on.
//
// Complexity:
//
//	AddNode            O(1) amortized (matrix side doubles on growth, O(V²) copy)
//	RemoveNode         O(V)  (clears one row and one column)
//	Add/Remove/HasEdge O(1)
//	Successors         O(V)
//	Memory             O(V²) in the matrix side, not in the live count
//
// The dense layout favours small, densely connected contexts. Large sparse
// contexts pay quadratic memory for it.
//
// Graph is not safe for concurrent mutation. Concurrent readers are fine as
// long as nothing mutates the graph meanwhile.
package matrixgraph

import (
	"errors"
	"fmt"
)

// ErrNodeNotFound reports a dead, stale, or foreign handle.
// Low-level addressing panics with an error wrapping it.
var ErrNodeNotFound = errors.New("matrixgraph: node not found")

// NodeIndex is an opaque vertex handle issued by Graph.AddNode.
// The zero value is a valid-looking handle only if the graph issued it;
// use Graph.HasNode to check liveness.
type NodeIndex struct {
	slot uint32 // row/column in the matrix
	gen  uint64 // generation of the slot at issue time
}

// Slot returns the matrix row/column of the handle.
func (n NodeIndex) Slot() int { return int(n.slot) }

// Generation returns the slot generation the handle was issued under.
func (n NodeIndex) Generation() uint64 { return n.gen }

// Less orders handles by slot, then generation. Used for deterministic listings.
func (n NodeIndex) Less(o NodeIndex) bool {
	if n.slot != o.slot {
		return n.slot < o.slot
	}

	return n.gen < o.gen
}

// String renders the handle as "n<slot>.<generation>".
func (n NodeIndex) String() string {
	return fmt.Sprintf("n%d.%d", n.slot, n.gen)
}

// Edge is a directed weighted edge From→To.
type Edge struct {
	From   NodeIndex
	To     NodeIndex
	Weight uint64
}

// cell is one adjacency matrix entry; present==false is the null edge.
type cell struct {
	weight  uint64
	present bool
}
