// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/causalctx/dijkstra"
	"github.com/katalvlaran/causalctx/matrixgraph"
)

// ExampleShortestPath finds the cheapest route through a small directed graph.
func ExampleShortestPath() {
	g := matrixgraph.New(3)
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 2)
	g.AddEdge(a, c, 5)

	path, cost, err := dijkstra.ShortestPath(g, a, c)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, cost)
	// Output: [n0.0 n1.0 n2.0] 3
}
