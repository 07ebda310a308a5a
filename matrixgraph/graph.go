// SPDX-License-Identifier: MIT

package matrixgraph

import "fmt"

// minSide is the matrix side allocated on first growth of an empty graph.
const minSide = 4

// Graph is a dense directed graph. Build one with New.
type Graph struct {
	side  int    // matrix dimension (slot capacity)
	cells []cell // side*side entries, cells[from*side+to]

	live []bool   // live[slot]: slot currently holds a vertex
	gens []uint64 // gens[slot]: current generation of the slot
	free []uint32 // freed slots, reused LIFO
	used uint32   // high-water mark of slots ever handed out

	nodeCount int
	edgeCount int
}

// New returns an empty graph with room for capacity vertices before the
// matrix has to grow. capacity ≤ 0 defers allocation to the first AddNode.
// Complexity: O(capacity²) memory.
func New(capacity int) *Graph {
	g := &Graph{}
	if capacity > 0 {
		g.grow(capacity)
	}

	return g
}

// grow resizes the matrix to newSide, preserving every existing cell.
// Complexity: O(newSide²).
func (g *Graph) grow(newSide int) {
	cells := make([]cell, newSide*newSide)
	var row int
	for row = 0; row < g.side; row++ {
		copy(cells[row*newSide:row*newSide+g.side], g.cells[row*g.side:(row+1)*g.side])
	}
	g.cells = cells

	live := make([]bool, newSide)
	copy(live, g.live)
	g.live = live

	gens := make([]uint64, newSide)
	copy(gens, g.gens)
	g.gens = gens

	g.side = newSide
}

// offset returns the flat index of cell (from,to); both slots must be < side.
func (g *Graph) offset(from, to uint32) int {
	return int(from)*g.side + int(to)
}

// mustLive panics unless n is a live handle of g.
func (g *Graph) mustLive(method string, n NodeIndex) {
	if !g.HasNode(n) {
		panic(fmt.Errorf("matrixgraph: %s(%s): %w", method, n, ErrNodeNotFound))
	}
}

// AddNode inserts a vertex and returns its handle.
//
// Freed slots are reused first (with the generation bumped at removal time);
// otherwise the next unused slot is taken, doubling the matrix when full.
// Complexity: O(1) amortized.
func (g *Graph) AddNode() NodeIndex {
	var slot uint32
	if n := len(g.free); n > 0 {
		slot = g.free[n-1]
		g.free = g.free[:n-1]
	} else {
		slot = g.used
		g.used++
		if int(g.used) > g.side {
			newSide := g.side * 2
			if newSide < minSide {
				newSide = minSide
			}
			g.grow(newSide)
		}
	}
	g.live[slot] = true
	g.nodeCount++

	return NodeIndex{slot: slot, gen: g.gens[slot]}
}

// HasNode reports whether n is a live handle of g. Never panics.
// Complexity: O(1).
func (g *Graph) HasNode(n NodeIndex) bool {
	return n.slot < g.used && g.live[n.slot] && g.gens[n.slot] == n.gen
}

// RemoveNode deletes the vertex and every edge into or out of it.
// Returns false (and changes nothing) if n is not live.
// Complexity: O(V).
func (g *Graph) RemoveNode(n NodeIndex) bool {
	if !g.HasNode(n) {
		return false
	}

	var i uint32
	var off int
	for i = 0; i < g.used; i++ {
		off = g.offset(n.slot, i) // outgoing row
		if g.cells[off].present {
			g.cells[off] = cell{}
			g.edgeCount--
		}
		off = g.offset(i, n.slot) // incoming column
		if g.cells[off].present {
			g.cells[off] = cell{}
			g.edgeCount--
		}
	}

	g.live[n.slot] = false
	g.gens[n.slot]++
	g.free = append(g.free, n.slot)
	g.nodeCount--

	return true
}

// AddEdge sets the directed edge a→b to weight w, creating it if needed.
// Self-loops are allowed. Reports whether a new edge was created (false means
// an existing weight was overwritten).
//
// Panics if a or b is not a live handle.
// Complexity: O(1).
func (g *Graph) AddEdge(a, b NodeIndex, w uint64) bool {
	g.mustLive("AddEdge", a)
	g.mustLive("AddEdge", b)

	off := g.offset(a.slot, b.slot)
	created := !g.cells[off].present
	g.cells[off] = cell{weight: w, present: true}
	if created {
		g.edgeCount++
	}

	return created
}

// RemoveEdge deletes the directed edge a→b.
// Returns false if either handle is dead or the edge does not exist.
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b NodeIndex) bool {
	if !g.HasNode(a) || !g.HasNode(b) {
		return false
	}
	off := g.offset(a.slot, b.slot)
	if !g.cells[off].present {
		return false
	}
	g.cells[off] = cell{}
	g.edgeCount--

	return true
}

// HasEdge reports whether the directed edge a→b exists. Never panics.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b NodeIndex) bool {
	_, ok := g.EdgeWeight(a, b)

	return ok
}

// EdgeWeight returns the weight of a→b and true, or (0, false) when the edge
// or either endpoint does not exist. Never panics.
// Complexity: O(1).
func (g *Graph) EdgeWeight(a, b NodeIndex) (uint64, bool) {
	if !g.HasNode(a) || !g.HasNode(b) {
		return 0, false
	}
	c := g.cells[g.offset(a.slot, b.slot)]

	return c.weight, c.present
}

// handle rebuilds the live handle for slot.
func (g *Graph) handle(slot uint32) NodeIndex {
	return NodeIndex{slot: slot, gen: g.gens[slot]}
}

// OutEdges returns every edge leaving a, ordered by target slot.
// Panics if a is not live.
// Complexity: O(V).
func (g *Graph) OutEdges(a NodeIndex) []Edge {
	g.mustLive("OutEdges", a)

	var out []Edge
	var to uint32
	var c cell
	for to = 0; to < g.used; to++ {
		c = g.cells[g.offset(a.slot, to)]
		if c.present {
			out = append(out, Edge{From: a, To: g.handle(to), Weight: c.weight})
		}
	}

	return out
}

// Successors returns the targets of edges leaving a, ordered by slot.
// Panics if a is not live.
// Complexity: O(V).
func (g *Graph) Successors(a NodeIndex) []NodeIndex {
	g.mustLive("Successors", a)

	var out []NodeIndex
	var to uint32
	for to = 0; to < g.used; to++ {
		if g.cells[g.offset(a.slot, to)].present {
			out = append(out, g.handle(to))
		}
	}

	return out
}

// Predecessors returns the sources of edges entering b, ordered by slot.
// Panics if b is not live.
// Complexity: O(V).
func (g *Graph) Predecessors(b NodeIndex) []NodeIndex {
	g.mustLive("Predecessors", b)

	var out []NodeIndex
	var from uint32
	for from = 0; from < g.used; from++ {
		if g.cells[g.offset(from, b.slot)].present {
			out = append(out, g.handle(from))
		}
	}

	return out
}

// NodeIndices returns every live handle ordered by slot.
// Complexity: O(V).
func (g *Graph) NodeIndices() []NodeIndex {
	out := make([]NodeIndex, 0, g.nodeCount)
	var slot uint32
	for slot = 0; slot < g.used; slot++ {
		if g.live[slot] {
			out = append(out, g.handle(slot))
		}
	}

	return out
}

// NodeCount returns the number of live vertices. O(1).
func (g *Graph) NodeCount() int { return g.nodeCount }

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Capacity returns the current matrix side, i.e. how many slots fit before growth.
func (g *Graph) Capacity() int { return g.side }
