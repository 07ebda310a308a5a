// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/causalctx/matrixgraph"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	id    matrixgraph.NodeIndex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation, or any
// error returned by the OnVisit hook (wrapped).
func BFS(g Graph, start matrixgraph.NodeIndex, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartVertexNotFound, start)
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		res: &Result{
			Start:  start,
			Depth:  make(map[matrixgraph.NodeIndex]int),
			Parent: make(map[matrixgraph.NodeIndex]matrixgraph.NodeIndex),
		},
	}

	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{id: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	var item queueItem
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item = w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen successor.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}

	var nbr matrixgraph.NodeIndex
	for _, nbr = range w.graph.Successors(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Depth[nbr] = next
		w.res.Parent[nbr] = item.id
		w.queue = append(w.queue, queueItem{id: nbr, depth: next})
	}
}
