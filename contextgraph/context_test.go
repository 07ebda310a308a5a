// SPDX-License-Identifier: MIT

package contextgraph_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/causalctx/bfs"
	"github.com/katalvlaran/causalctx/contextgraph"
	"github.com/katalvlaran/causalctx/dfs"
	"github.com/katalvlaran/causalctx/dijkstra"
	"github.com/katalvlaran/causalctx/distance"
	"github.com/katalvlaran/causalctx/nodes"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Contextoid storage
// ------------------------------------------------------------------------

func TestWithCapacity_AddRoot(t *testing.T) {
	c := contextgraph.WithCapacity[int, nodes.Spaceoid, nodes.Tempoid, nodes.SpaceTempoid](1, "root_ctx", 10)
	require.True(t, c.IsEmpty())

	c.AddContextoid(root(0))
	require.Equal(t, 1, c.Size())
	require.Equal(t, 1, c.NodeCount())
	require.False(t, c.IsEmpty())
	require.Equal(t, uint64(1), c.ID())
	require.Equal(t, "root_ctx", c.Name())
}

func TestWithCapacity_HugeHintIsOnlyAHint(t *testing.T) {
	var c *testContext
	require.NotPanics(t, func() {
		c = contextgraph.WithCapacity[int, nodes.Spaceoid, nodes.Tempoid, nodes.SpaceTempoid](1, "big", 1<<23)
	})
	require.True(t, c.IsEmpty())
	require.Zero(t, c.NodeCount())

	h := c.AddContextoid(root(0))
	require.True(t, c.ContainsContextoid(h))
	require.Equal(t, 1, c.Size())

	neg := contextgraph.WithCapacity[int, nodes.Spaceoid, nodes.Tempoid, nodes.SpaceTempoid](1, "neg", -5)
	require.True(t, neg.IsEmpty())
}

func TestDefault(t *testing.T) {
	c := contextgraph.Default[int, nodes.Spaceoid, nodes.Tempoid, nodes.SpaceTempoid]()
	require.Equal(t, uint64(0), c.ID())
	require.Equal(t, "default", c.Name())
	require.True(t, c.IsEmpty())

	c.AddContextoid(root(0))
	require.Equal(t, "Context: id: 0, name: default, node_count: 1, edge_count: 0", c.String())
}

func TestAddContextoid_Lookup(t *testing.T) {
	c := newContext("lookup")
	v := datum(1, 42)
	h := c.AddContextoid(v)

	require.True(t, c.ContainsContextoid(h))
	got, ok := c.GetContextoid(h)
	require.True(t, ok)
	require.Equal(t, v, got)

	d, ok := got.VertexType().Datum()
	require.True(t, ok)
	require.Equal(t, 42, d)
}

func TestAddContextoid_DuplicateIDs(t *testing.T) {
	c := newContext("dups")
	a := c.AddContextoid(datum(7, 1))
	b := c.AddContextoid(datum(7, 1))

	require.NotEqual(t, a, b)
	require.Equal(t, 2, c.Size())
}

func TestRemoveContextoid(t *testing.T) {
	c := newContext("remove")
	keep := c.AddContextoid(root(0))
	h := c.AddContextoid(datum(1, 42))

	c.RemoveContextoid(h)
	require.False(t, c.ContainsContextoid(h))
	require.Equal(t, 1, c.Size())
	require.Equal(t, c.Size(), c.NodeCount())
	_, ok := c.GetContextoid(h)
	require.False(t, ok)

	// second removal is a no-op
	before := c.String()
	c.RemoveContextoid(h)
	require.Equal(t, before, c.String())
	require.Equal(t, 1, c.Size())
	require.True(t, c.ContainsContextoid(keep))
}

func TestRemoveContextoid_StaleHandleNeverAliases(t *testing.T) {
	c := newContext("stale")
	old := c.AddContextoid(datum(1, 1))
	c.RemoveContextoid(old)

	fresh := c.AddContextoid(datum(2, 2))
	require.Equal(t, old.Slot(), fresh.Slot(), "slot is reused")
	require.NotEqual(t, old, fresh)
	require.False(t, c.ContainsContextoid(old))

	c.RemoveContextoid(old)
	got, ok := c.GetContextoid(fresh)
	require.True(t, ok, "removing the stale handle must not touch the new vertex")
	require.Equal(t, uint64(2), got.ID())
}

func TestSizeMatchesNodeCount(t *testing.T) {
	c := newContext("consistency")
	var hs []contextgraph.NodeIndex
	for i := 0; i < 20; i++ {
		hs = append(hs, c.AddContextoid(datum(uint64(i), i)))
		require.Equal(t, c.Size(), c.NodeCount())
	}
	for i := 0; i < len(hs); i += 3 {
		c.RemoveContextoid(hs[i])
		require.Equal(t, c.Size(), c.NodeCount())
	}
	require.Len(t, c.NodeIndices(), c.Size())
}

func TestContextoids_Iterates(t *testing.T) {
	c := newContext("iter")
	for i := 0; i < 4; i++ {
		c.AddContextoid(datum(uint64(i), i*10))
	}

	var ids []uint64
	c.Contextoids(func(_ contextgraph.NodeIndex, v testContextoid) bool {
		ids = append(ids, v.ID())
		return len(ids) < 3
	})
	require.Equal(t, []uint64{0, 1, 2}, ids)
}

// ------------------------------------------------------------------------
// 2. Edges
// ------------------------------------------------------------------------

func TestAddEdge_Directed(t *testing.T) {
	c := newContext("edges")
	a := c.AddContextoid(root(0))
	b := c.AddContextoid(datum(1, 42))

	require.NoError(t, c.AddEdge(a, b, 5))
	require.Equal(t, 1, c.EdgeCount())
	require.True(t, c.ContainsEdge(a, b))
	require.False(t, c.ContainsEdge(b, a))

	w, ok := c.EdgeWeight(a, b)
	require.True(t, ok)
	require.Equal(t, uint64(5), w)

	require.ErrorIs(t, c.AddEdge(a, b, 6), contextgraph.ErrEdgeExists)
	w, _ = c.EdgeWeight(a, b)
	require.Equal(t, uint64(5), w, "failed AddEdge leaves the weight alone")
}

func TestAddEdge_MissingEndpoint(t *testing.T) {
	c := newContext("missing")
	a := c.AddContextoid(root(0))
	b := c.AddContextoid(root(1))
	c.RemoveContextoid(b)

	require.ErrorIs(t, c.AddEdge(a, b, 1), contextgraph.ErrContextoidNotFound)
	require.ErrorIs(t, c.AddEdge(b, a, 1), contextgraph.ErrContextoidNotFound)
	require.ErrorIs(t, c.UpdateEdge(a, b, 1), contextgraph.ErrContextoidNotFound)
	require.ErrorIs(t, c.RemoveEdge(a, b), contextgraph.ErrContextoidNotFound)
	require.False(t, c.ContainsEdge(a, b))

	_, err := c.Successors(b)
	require.ErrorIs(t, err, contextgraph.ErrContextoidNotFound)
	_, err = c.Predecessors(b)
	require.ErrorIs(t, err, contextgraph.ErrContextoidNotFound)
}

func TestUpdateAndRemoveEdge(t *testing.T) {
	c := newContext("update")
	a := c.AddContextoid(root(0))
	b := c.AddContextoid(root(1))

	require.NoError(t, c.UpdateEdge(a, b, 3))
	require.NoError(t, c.UpdateEdge(a, b, 4))
	require.Equal(t, 1, c.EdgeCount())
	w, _ := c.EdgeWeight(a, b)
	require.Equal(t, uint64(4), w)

	require.NoError(t, c.RemoveEdge(a, b))
	require.Zero(t, c.EdgeCount())
	require.ErrorIs(t, c.RemoveEdge(a, b), contextgraph.ErrEdgeNotFound)
}

func TestRemoveContextoid_SeversEdges(t *testing.T) {
	c := newContext("sever")
	a := c.AddContextoid(root(0))
	b := c.AddContextoid(datum(1, 1))
	d := c.AddContextoid(datum(2, 2))
	require.NoError(t, c.AddEdge(a, b, 1))
	require.NoError(t, c.AddEdge(b, d, 1))
	require.NoError(t, c.AddEdge(d, b, 1))
	require.NoError(t, c.AddEdge(a, d, 1))

	c.RemoveContextoid(b)
	require.Equal(t, 1, c.EdgeCount())
	require.True(t, c.ContainsEdge(a, d))

	succ, err := c.Successors(a)
	require.NoError(t, err)
	if diff := cmp.Diff([]contextgraph.NodeIndex{d}, succ, cmp.Comparer(func(x, y contextgraph.NodeIndex) bool { return x == y })); diff != "" {
		t.Errorf("Successors mismatch (-want +got):\n%s", diff)
	}
	pred, err := c.Predecessors(d)
	require.NoError(t, err)
	require.Equal(t, []contextgraph.NodeIndex{a}, pred)
}

func TestString(t *testing.T) {
	c := contextgraph.New[int, nodes.Spaceoid, nodes.Tempoid, nodes.SpaceTempoid](3, "ctx")
	a := c.AddContextoid(root(0))
	b := c.AddContextoid(root(1))
	require.NoError(t, c.AddEdge(a, b, 2))

	require.Equal(t, "Context: id: 3, name: ctx, node_count: 2, edge_count: 1", c.String())
}

// ------------------------------------------------------------------------
// 3. Queries
// ------------------------------------------------------------------------

func TestQueries_SpatialWeights(t *testing.T) {
	c := newContext("spatial")
	weigh := distance.SpatialWeigher[nodes.Spaceoid](1)

	pts := []testContextoid{
		spatial(0, 0, 0, 0),
		spatial(1, 3, 4, 0),
		spatial(2, 3, 4, 12),
		spatial(3, 100, 0, 0),
	}
	hs := make([]contextgraph.NodeIndex, len(pts))
	for i, p := range pts {
		hs[i] = c.AddContextoid(p)
	}
	connect := func(i, j int) {
		si, _ := pts[i].VertexType().Spatial()
		sj, _ := pts[j].VertexType().Spatial()
		w, err := weigh(si, sj)
		require.NoError(t, err)
		require.NoError(t, c.AddEdge(hs[i], hs[j], w))
	}
	connect(0, 1) // 5
	connect(1, 2) // 12
	connect(0, 2) // 13

	res, err := c.Distances(hs[0])
	require.NoError(t, err)
	require.Equal(t, uint64(13), res.Dist[hs[2]])
	require.Equal(t, dijkstra.Infinity, res.Dist[hs[3]])

	path, cost, err := c.ShortestPath(hs[0], hs[2], dijkstra.WithInfEdgeThreshold(13))
	require.NoError(t, err)
	require.Equal(t, uint64(17), cost)
	require.Equal(t, []contextgraph.NodeIndex{hs[0], hs[1], hs[2]}, path)

	_, _, err = c.ShortestPath(hs[0], hs[3])
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	all, err := c.AllDistances(context.Background(), dijkstra.WithParallelism(2))
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, res.Dist, all[hs[0]].Dist)

	reach, err := c.Reachable(hs[0])
	require.NoError(t, err)
	require.Equal(t, 1, reach.Depth[hs[2]])
	require.False(t, reach.Reached(hs[3]))
}

func TestQueries_StaleSource(t *testing.T) {
	c := newContext("stale-source")
	h := c.AddContextoid(root(0))
	c.RemoveContextoid(h)

	_, err := c.Distances(h)
	require.ErrorIs(t, err, dijkstra.ErrSourceNotFound)
	_, err = c.Reachable(h)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestQueries_Ordering(t *testing.T) {
	c := newContext("dag")
	cause := c.AddContextoid(root(0))
	mid := c.AddContextoid(datum(1, 1))
	effect := c.AddContextoid(datum(2, 2))
	require.NoError(t, c.AddEdge(mid, effect, 1))
	require.NoError(t, c.AddEdge(cause, mid, 1))

	order, err := c.TopologicalOrder(context.Background())
	require.NoError(t, err)
	require.Equal(t, []contextgraph.NodeIndex{cause, mid, effect}, order)
	has, _ := c.Cycles()
	require.False(t, has)

	require.NoError(t, c.AddEdge(effect, cause, 1))
	_, err = c.TopologicalOrder(context.Background())
	require.ErrorIs(t, err, dfs.ErrCycleDetected)
	has, cycles := c.Cycles()
	require.True(t, has)
	require.Equal(t, [][]contextgraph.NodeIndex{{cause, mid, effect, cause}}, cycles)
}

// ------------------------------------------------------------------------
// 4. Logging
// ------------------------------------------------------------------------

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := newContext("logged", contextgraph.WithLogger(logger))

	a := c.AddContextoid(root(0))
	b := c.AddContextoid(datum(9, 1))
	require.NoError(t, c.AddEdge(a, b, 4))
	c.RemoveContextoid(b)

	out := buf.String()
	require.Contains(t, out, `msg="contextoid added"`)
	require.Contains(t, out, "context=logged")
	require.Contains(t, out, "kind=Datum")
	require.Contains(t, out, `msg="edge added"`)
	require.Contains(t, out, "weight=4")
	require.Contains(t, out, "edges_severed=1")
}

func TestWithLogger_NilKeepsDefault(t *testing.T) {
	c := newContext("nil-logger", contextgraph.WithLogger(nil))
	require.NotPanics(t, func() { c.AddContextoid(root(0)) })
}
