// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/graphframe/graphframe/core"
	"github.com/graphframe/graphframe/tabular"
)

// Build a tiny directed graph node by node and read it back.
func ExampleNewGraph() {
	g := core.NewGraph(core.WithDirected(true))

	alice, _ := g.AddNode("person", "alice")
	bob, _ := g.AddNode("person", "bob")
	g.AddEdge(alice, bob, "follows")

	fmt.Println("nodes:", g.NodeCount())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("ids:", g.NodeIDs())
	// Output:
	// nodes: 2
	// edges: 1
	// ids: [1 2]
}

// Merging two containers renumbers the incoming IDs past the base's
// counters, so composition never collides.
func ExampleCombine() {
	base := core.NewGraph(core.WithDirected(true))
	a, _ := base.AddNode("", "")
	b, _ := base.AddNode("", "")
	base.AddEdge(a, b, "")

	other := core.NewGraph(core.WithDirected(true))
	c, _ := other.AddNode("", "")
	d, _ := other.AddNode("", "")
	other.AddEdge(c, d, "")

	merged, _ := core.Combine(base, other)

	from, to := merged.EdgeEndpoints()
	fmt.Println("nodes:", merged.NodeIDs())
	fmt.Println("edges:", merged.EdgeIDs())
	fmt.Println("arcs:", from, to)
	// Output:
	// nodes: [1 2 3 4]
	// edges: [1 2]
	// arcs: [1 3] [2 4]
}

// Deferred actions run after every mutation; attribute joins and
// aggregation close the loop.
func ExampleGraph_AggregateNodeAttr() {
	g := core.NewGraph()
	a, _ := g.AddNode("sensor", "s1")
	b, _ := g.AddNode("sensor", "s2")
	c, _ := g.AddNode("gateway", "gw")

	g.SetNodeAttrs("reading", map[int64]tabular.Value{
		a: 4.0, b: 8.0, c: 100.0,
	})

	mean, _ := g.AggregateNodeAttr(
		tabular.ByName("reading"),
		tabular.AggMean,
		tabular.Filter{Col: tabular.ByName("type"), Op: tabular.FilterEq, Lit: "sensor"},
	)
	fmt.Println("mean sensor reading:", mean)
	// Output:
	// mean sensor reading: 6
}
