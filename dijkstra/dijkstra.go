// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/causalctx/matrixgraph"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrSourceNotFound).
//
// Complexity:
//
//   - Time:  O(V² + E log V) on a dense matrixgraph (OutEdges is O(V) per vertex).
//   - Space: O(V + E)
func Dijkstra(g Graph, source matrixgraph.NodeIndex, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return run(g, source, cfg)
}

// ShortestPath returns the vertices of one shortest path from → to and its
// total weight. Returns ErrNoPath when to is unreachable.
func ShortestPath(g Graph, from, to matrixgraph.NodeIndex, opts ...Option) ([]matrixgraph.NodeIndex, uint64, error) {
	// copy so the caller's slice is never appended to
	withPath := make([]Option, 0, len(opts)+1)
	withPath = append(withPath, opts...)
	withPath = append(withPath, WithReturnPath())
	res, err := Dijkstra(g, from, withPath...)
	if err != nil {
		return nil, 0, err
	}
	if !g.HasNode(to) {
		return nil, 0, fmt.Errorf("%w: destination %s", ErrNoPath, to)
	}
	path, err := res.PathTo(to)
	if err != nil {
		return nil, 0, err
	}

	return path, res.Dist[to], nil
}

// run validates inputs and executes one single-source computation.
func run(g Graph, source matrixgraph.NodeIndex, cfg Options) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, source)
	}

	vertices := g.NodeIndices()
	V := len(vertices)

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[matrixgraph.NodeIndex]uint64, V),
		visited: make(map[matrixgraph.NodeIndex]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[matrixgraph.NodeIndex]matrixgraph.NodeIndex, V)
	}

	r.init(vertices, source)
	r.process()

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph
	options Options
	dist    map[matrixgraph.NodeIndex]uint64
	prev    map[matrixgraph.NodeIndex]matrixgraph.NodeIndex // nil unless ReturnPath
	visited map[matrixgraph.NodeIndex]bool
	pq      nodePQ
}

// init sets every distance to Infinity and seeds the heap with the source.
func (r *runner) init(vertices []matrixgraph.NodeIndex, source matrixgraph.NodeIndex) {
	var v matrixgraph.NodeIndex
	for _, v = range vertices {
		r.dist[v] = Infinity
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process repeatedly extracts the closest unvisited vertex and relaxes its
// outgoing edges, until the heap drains or MaxDistance is exceeded.
func (r *runner) process() {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)

		// stale entry from lazy decrease-key
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax tries to improve the distance of every successor of u.
func (r *runner) relax(u matrixgraph.NodeIndex) {
	du := r.dist[u]

	var e matrixgraph.Edge
	var newDist uint64
	for _, e = range r.g.OutEdges(u) {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		// saturating add: an overflowing path is never shorter
		newDist = du + e.Weight
		if newDist < du {
			continue
		}
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		if r.prev != nil {
			r.prev[e.To] = u
		}
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}
}

// nodeItem is a heap entry: a vertex and its tentative distance.
type nodeItem struct {
	id   matrixgraph.NodeIndex
	dist uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by handle for deterministic tie-breaking.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id.Less(pq[j].id)
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
