// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/causalctx/matrixgraph"
)

// topoSorter holds the state of one topological sort.
type topoSorter struct {
	graph Graph
	opts  Options
	state map[matrixgraph.NodeIndex]int
	order []matrixgraph.NodeIndex // post-order
}

// TopologicalSort returns the live vertices of g in topological order.
// Among valid orders it returns the reverse post-order of a DFS that starts
// from vertices in slot order.
//
// Errors: ErrGraphNil, ErrCycleDetected (wrapped with the vertex closing the
// cycle), or the context error on cancellation.
func TopologicalSort(g Graph, opts ...Option) ([]matrixgraph.NodeIndex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	verts := g.NodeIndices()
	sorter := &topoSorter{
		graph: g,
		opts:  cfg,
		state: make(map[matrixgraph.NodeIndex]int, len(verts)),
		order: make([]matrixgraph.NodeIndex, 0, len(verts)),
	}
	var v matrixgraph.NodeIndex
	for _, v = range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit marks id Gray, explores its successors, and appends it in post-order.
func (t *topoSorter) visit(id matrixgraph.NodeIndex) error {
	select {
	case <-t.opts.Ctx.Done():
		return t.opts.Ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w: back-edge into %s", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	var next matrixgraph.NodeIndex
	for _, next = range t.graph.Successors(id) {
		if err := t.visit(next); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
