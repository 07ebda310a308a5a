// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/causalctx/dfs"
	"github.com/katalvlaran/causalctx/matrixgraph"
	"github.com/stretchr/testify/require"
)

var handleEq = cmp.Comparer(func(x, y matrixgraph.NodeIndex) bool { return x == y })

func nodes(g *matrixgraph.Graph, n int) []matrixgraph.NodeIndex {
	out := make([]matrixgraph.NodeIndex, n)
	for i := range out {
		out[i] = g.AddNode()
	}

	return out
}

// TestTopologicalSort_Chain verifies a simple chain with a shortcut.
func TestTopologicalSort_Chain(t *testing.T) {
	g := matrixgraph.New(3)
	n := nodes(g, 3)
	g.AddEdge(n[0], n[1], 1)
	g.AddEdge(n[1], n[2], 1)
	g.AddEdge(n[0], n[2], 1)

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Equal(t, n, order)
}

// TestTopologicalSort_Forest checks disconnected vertices and edge order.
func TestTopologicalSort_Forest(t *testing.T) {
	g := matrixgraph.New(4)
	n := nodes(g, 4) // a b c d
	g.AddEdge(n[0], n[1], 1)
	g.AddEdge(n[2], n[1], 1)

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	want := []matrixgraph.NodeIndex{n[3], n[2], n[0], n[1]}
	if diff := cmp.Diff(want, order, handleEq); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	pos := map[matrixgraph.NodeIndex]int{}
	for i, v := range order {
		pos[v] = i
	}
	require.Less(t, pos[n[0]], pos[n[1]])
	require.Less(t, pos[n[2]], pos[n[1]])
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	g := matrixgraph.New(2)
	n := nodes(g, 2)
	g.AddEdge(n[0], n[1], 1)
	g.AddEdge(n[1], n[0], 1)
	_, err = dfs.TopologicalSort(g)
	require.ErrorIs(t, err, dfs.ErrCycleDetected)

	loop := matrixgraph.New(1)
	v := loop.AddNode()
	loop.AddEdge(v, v, 0)
	_, err = dfs.TopologicalSort(loop)
	require.ErrorIs(t, err, dfs.ErrCycleDetected, "self-loop")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	acyclic := matrixgraph.New(1)
	acyclic.AddNode()
	_, err = dfs.TopologicalSort(acyclic, dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestDetectCycles(t *testing.T) {
	g := matrixgraph.New(5)
	n := nodes(g, 5) // a b c d e
	g.AddEdge(n[0], n[1], 1)
	g.AddEdge(n[1], n[2], 1)
	g.AddEdge(n[2], n[0], 1)
	g.AddEdge(n[2], n[2], 1)
	g.AddEdge(n[3], n[4], 1)
	g.AddEdge(n[4], n[3], 1)

	has, cycles := dfs.DetectCycles(g)
	require.True(t, has)
	want := [][]matrixgraph.NodeIndex{
		{n[0], n[1], n[2], n[0]},
		{n[2], n[2]},
		{n[3], n[4], n[3]},
	}
	if diff := cmp.Diff(want, cycles, handleEq); diff != "" {
		t.Errorf("cycles mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectCycles_Acyclic(t *testing.T) {
	has, cycles := dfs.DetectCycles(nil)
	require.False(t, has)
	require.Nil(t, cycles)

	g := matrixgraph.New(3)
	n := nodes(g, 3)
	g.AddEdge(n[0], n[1], 1)
	g.AddEdge(n[0], n[2], 1)
	g.AddEdge(n[1], n[2], 1)
	has, cycles = dfs.DetectCycles(g)
	require.False(t, has)
	require.Empty(t, cycles)
}
