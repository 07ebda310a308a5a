// SPDX-License-Identifier: MIT

package dfs

import (
	"slices"

	"github.com/katalvlaran/causalctx/matrixgraph"
)

// cycleFinder holds the state of one DetectCycles run.
type cycleFinder struct {
	graph  Graph
	state  map[matrixgraph.NodeIndex]int
	path   []matrixgraph.NodeIndex // current DFS stack
	seen   map[string]struct{}     // canonical signatures already reported
	cycles [][]matrixgraph.NodeIndex
}

// DetectCycles reports whether g has a cycle and lists the cycles closed by
// DFS back-edges. Each cycle is closed, [v0, v1, ..., v0], rotated so that
// v0 is its smallest handle; the list is sorted. Self-loops appear as [v, v].
//
// Not every simple cycle of g is listed, only one per back-edge, but the
// result is empty exactly when g is acyclic. A nil graph is cycle-free.
func DetectCycles(g Graph) (bool, [][]matrixgraph.NodeIndex) {
	if g == nil {
		return false, nil
	}
	verts := g.NodeIndices()
	f := &cycleFinder{
		graph: g,
		state: make(map[matrixgraph.NodeIndex]int, len(verts)),
		path:  make([]matrixgraph.NodeIndex, 0, len(verts)),
		seen:  make(map[string]struct{}),
	}
	var v matrixgraph.NodeIndex
	for _, v = range verts {
		if f.state[v] == White {
			f.visit(v)
		}
	}
	if len(f.cycles) == 0 {
		return false, nil
	}
	slices.SortFunc(f.cycles, compareCycles)

	return true, f.cycles
}

func (f *cycleFinder) visit(id matrixgraph.NodeIndex) {
	f.state[id] = Gray
	f.path = append(f.path, id)

	var nbr matrixgraph.NodeIndex
	for _, nbr = range f.graph.Successors(id) {
		switch f.state[nbr] {
		case White:
			f.visit(nbr)
		case Gray:
			f.record(nbr)
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black
}

// record stores the cycle running from start to the top of the stack and
// back to start, unless an equal rotation was already stored.
func (f *cycleFinder) record(start matrixgraph.NodeIndex) {
	idx := slices.Index(f.path, start)
	base := canonical(f.path[idx:])
	sig := signature(base)
	if _, ok := f.seen[sig]; ok {
		return
	}
	f.seen[sig] = struct{}{}
	f.cycles = append(f.cycles, append(base, base[0]))
}

// canonical returns a fresh copy of the open cycle rotated so that its
// smallest handle comes first.
func canonical(open []matrixgraph.NodeIndex) []matrixgraph.NodeIndex {
	minAt := 0
	for i := 1; i < len(open); i++ {
		if open[i].Less(open[minAt]) {
			minAt = i
		}
	}
	out := make([]matrixgraph.NodeIndex, 0, len(open)+1)
	out = append(out, open[minAt:]...)

	return append(out, open[:minAt]...)
}

func signature(cycle []matrixgraph.NodeIndex) string {
	b := make([]byte, 0, len(cycle)*8)
	for _, n := range cycle {
		b = append(b, n.String()...)
		b = append(b, ',')
	}

	return string(b)
}

// compareCycles orders cycles lexicographically by handle.
func compareCycles(a, b []matrixgraph.NodeIndex) int {
	return slices.CompareFunc(a, b, func(x, y matrixgraph.NodeIndex) int {
		switch {
		case x.Less(y):
			return -1
		case y.Less(x):
			return 1
		default:
			return 0
		}
	})
}
