// SPDX-License-Identifier: MIT

package contextgraph_test

import (
	"github.com/katalvlaran/causalctx/contextgraph"
	"github.com/katalvlaran/causalctx/nodes"
)

type (
	testContext    = contextgraph.Context[int, nodes.Spaceoid, nodes.Tempoid, nodes.SpaceTempoid]
	testContextoid = contextgraph.Contextoid[int, nodes.Spaceoid, nodes.Tempoid, nodes.SpaceTempoid]
	testVertexType = contextgraph.VertexType[int, nodes.Spaceoid, nodes.Tempoid, nodes.SpaceTempoid]
)

func newContext(name string, opts ...contextgraph.Option) *testContext {
	return contextgraph.New[int, nodes.Spaceoid, nodes.Tempoid, nodes.SpaceTempoid](1, name, opts...)
}

func root(id uint64) testContextoid {
	return contextgraph.NewContextoid(id, contextgraph.RootVertex[int, nodes.Spaceoid, nodes.Tempoid, nodes.SpaceTempoid]())
}

func datum(id uint64, d int) testContextoid {
	return contextgraph.NewContextoid(id, contextgraph.DatumVertex[int, nodes.Spaceoid, nodes.Tempoid, nodes.SpaceTempoid](d))
}

func spatial(id uint64, x, y, z float64) testContextoid {
	return contextgraph.NewContextoid(id, contextgraph.SpatialVertex[int, nodes.Spaceoid, nodes.Tempoid, nodes.SpaceTempoid](nodes.NewSpaceoid(id, x, y, z)))
}
