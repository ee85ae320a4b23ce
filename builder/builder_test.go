// SPDX-License-Identifier: MIT
// Package builder_test verifies the table builders, shape constructors,
// and their composition behavior against live graph containers.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphframe/graphframe/builder"
	"github.com/graphframe/graphframe/core"
	"github.com/graphframe/graphframe/tabular"
)

// endpointSet collects (from, to) pairs for order-insensitive topology checks.
type endpointSet map[[2]int64]int

func collectEndpoints(t *testing.T, g *core.Graph) endpointSet {
	t.Helper()
	from, to := g.EdgeEndpoints()
	require.Len(t, to, len(from))
	set := make(endpointSet, len(from))
	for i := range from {
		set[[2]int64{from[i], to[i]}]++
	}
	return set
}

func lastOp(t *testing.T, g *core.Graph) string {
	t.Helper()
	log := g.Log()
	require.NotEmpty(t, log)
	return log[len(log)-1].Operation
}

func TestNodeSeq_Defaults(t *testing.T) {
	tbl, err := builder.NodeSeq(3)
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.NumRows())
	assert.True(t, tbl.HasColumn(core.ColID))
	assert.True(t, tbl.HasColumn(core.ColType))
	assert.True(t, tbl.HasColumn(core.ColLabel))

	// Labels default to stringified IDs; types default to null.
	label, err := tbl.Cell(1, tabular.ByName(core.ColLabel))
	require.NoError(t, err)
	assert.Equal(t, "2", label)

	typ, err := tbl.Cell(0, tabular.ByName(core.ColType))
	require.NoError(t, err)
	assert.True(t, tabular.IsNull(typ))
}

func TestNodeSeq_OptionsAndErrors(t *testing.T) {
	tbl, err := builder.NodeSeq(2,
		builder.WithType("person"),
		builder.WithLabels([]string{"ada", "bob"}),
		builder.WithNodeAttr("age", []tabular.Value{int64(36), int64(41)}),
	)
	require.NoError(t, err)

	typ, err := tbl.Cell(0, tabular.ByName(core.ColType))
	require.NoError(t, err)
	assert.Equal(t, "person", typ)

	label, err := tbl.Cell(1, tabular.ByName(core.ColLabel))
	require.NoError(t, err)
	assert.Equal(t, "bob", label)

	age, err := tbl.Cell(0, tabular.ByName("age"))
	require.NoError(t, err)
	assert.Equal(t, int64(36), age)

	_, err = builder.NodeSeq(0)
	assert.ErrorIs(t, err, builder.ErrMinimumSize)

	_, err = builder.NodeSeq(3, builder.WithLabels([]string{"only-one"}))
	assert.ErrorIs(t, err, tabular.ErrLengthMismatch)

	_, err = builder.NodeSeq(2, builder.WithNodeAttr("x", []tabular.Value{1, 2, 3}))
	assert.ErrorIs(t, err, tabular.ErrLengthMismatch)
}

func TestNodeSeq_WithoutLabels(t *testing.T) {
	tbl, err := builder.NodeSeq(2, builder.WithoutLabels())
	require.NoError(t, err)

	label, err := tbl.Cell(0, tabular.ByName(core.ColLabel))
	require.NoError(t, err)
	assert.Equal(t, "", label)
}

func TestEdgeSeq(t *testing.T) {
	tbl, err := builder.EdgeSeq(
		[]int64{1, 2},
		[]int64{2, 3},
		builder.WithRel("follows"),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.NumRows())

	rel, err := tbl.Cell(1, tabular.ByName(core.ColRel))
	require.NoError(t, err)
	assert.Equal(t, "follows", rel)

	_, err = builder.EdgeSeq([]int64{1}, []int64{2, 3})
	assert.ErrorIs(t, err, tabular.ErrLengthMismatch)

	_, err = builder.EdgeSeq([]int64{1, 2}, []int64{2, 1}, builder.WithRels([]string{"a"}))
	assert.ErrorIs(t, err, tabular.ErrLengthMismatch)
}

func TestAddStar_Topology(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, builder.AddStar(g, 4))

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, "add_star", lastOp(t, g))

	set := collectEndpoints(t, g)
	assert.Equal(t, 1, set[[2]int64{1, 2}])
	assert.Equal(t, 1, set[[2]int64{1, 3}])
	assert.Equal(t, 1, set[[2]int64{1, 4}])
}

func TestAddStar_MinimumSize(t *testing.T) {
	g := core.NewGraph()
	err := builder.AddStar(g, 3)
	assert.ErrorIs(t, err, builder.ErrMinimumSize)
	// Failed construction leaves the graph untouched.
	assert.Zero(t, g.NodeCount())
	assert.Len(t, g.Log(), 1) // create entry only
}

func TestAddCycle_Topology(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, builder.AddCycle(g, 3))

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, "add_cycle", lastOp(t, g))

	set := collectEndpoints(t, g)
	assert.Equal(t, 1, set[[2]int64{1, 2}])
	assert.Equal(t, 1, set[[2]int64{2, 3}])
	assert.Equal(t, 1, set[[2]int64{3, 1}])

	err := builder.AddCycle(core.NewGraph(), 2)
	assert.ErrorIs(t, err, builder.ErrMinimumSize)
}

func TestAddPath_Topology(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, builder.AddPath(g, 2))

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, "add_path", lastOp(t, g))

	set := collectEndpoints(t, g)
	assert.Equal(t, 1, set[[2]int64{1, 2}])

	err := builder.AddPath(core.NewGraph(), 1)
	assert.ErrorIs(t, err, builder.ErrMinimumSize)
}

// Shapes appended to a non-empty graph are renumbered past the target's
// counters, so repeated appends never collide.
func TestShapes_RenumberOnAppend(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, builder.AddPath(g, 2))  // nodes 1,2  edge 1
	require.NoError(t, builder.AddStar(g, 4))  // nodes 3..6 edges 2..4
	require.NoError(t, builder.AddCycle(g, 3)) // nodes 7..9 edges 5..7

	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}, g.NodeIDs())
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7}, g.EdgeIDs())

	set := collectEndpoints(t, g)
	// Star hub landed on node 3.
	assert.Equal(t, 1, set[[2]int64{3, 4}])
	assert.Equal(t, 1, set[[2]int64{3, 5}])
	assert.Equal(t, 1, set[[2]int64{3, 6}])
	// Cycle ring closed over 7,8,9.
	assert.Equal(t, 1, set[[2]int64{7, 8}])
	assert.Equal(t, 1, set[[2]int64{8, 9}])
	assert.Equal(t, 1, set[[2]int64{9, 7}])

	// One log entry per shape on top of the create entry.
	assert.Len(t, g.Log(), 4)
}

func TestShapes_TypeAndRelOptions(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, builder.AddCycle(g, 3,
		builder.WithType("stage"),
		builder.WithRel("next"),
	))

	typ, err := g.NodeAttr(1, core.ColType)
	require.NoError(t, err)
	assert.Equal(t, "stage", typ)

	rel, err := g.EdgeAttr(1, core.ColRel)
	require.NoError(t, err)
	assert.Equal(t, "next", rel)
}

func TestAddRandomSimple_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g := core.NewGraph(core.WithDirected(true))
		require.NoError(t, builder.AddRandomSimple(g, 10, 22, 23))
		return g
	}

	a, b := build(), build()
	assert.Equal(t, 10, a.NodeCount())
	assert.Equal(t, 22, a.EdgeCount())
	assert.Equal(t, "add_random_graph", lastOp(t, a))
	assert.Equal(t, collectEndpoints(t, a), collectEndpoints(t, b))

	// Simple: no loops, no duplicate pairs.
	for pair, count := range collectEndpoints(t, a) {
		assert.NotEqual(t, pair[0], pair[1])
		assert.Equal(t, 1, count)
	}
}

func TestAddRandomSimple_Errors(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))

	err := builder.AddRandomSimple(g, 0, 0, 1)
	assert.ErrorIs(t, err, builder.ErrMinimumSize)

	err = builder.AddRandomSimple(g, 3, -1, 1)
	assert.ErrorIs(t, err, builder.ErrBadSize)

	// Directed capacity for n=3 is 6.
	err = builder.AddRandomSimple(g, 3, 7, 1)
	assert.ErrorIs(t, err, builder.ErrTooManyEdges)

	// Undirected capacity for n=3 is 3.
	u := core.NewGraph()
	err = builder.AddRandomSimple(u, 3, 4, 1)
	assert.ErrorIs(t, err, builder.ErrTooManyEdges)
}

func TestAddNodesFromColumns(t *testing.T) {
	src, err := tabular.NewTable(
		tabular.Column{Name: "a", Cells: []tabular.Value{"f", "p", "q"}},
		tabular.Column{Name: "b", Cells: []tabular.Value{"q", "x", "f"}},
	)
	require.NoError(t, err)

	g := core.NewGraph()
	require.NoError(t, builder.AddNodesFromColumns(g, src,
		[]tabular.ColumnSelector{tabular.ByName("a"), tabular.ByName("b")}))

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, "add_nodes_from_columns", lastOp(t, g))

	var labels []string
	for _, id := range g.NodeIDs() {
		v, attrErr := g.NodeAttr(id, core.ColLabel)
		require.NoError(t, attrErr)
		s, ok := tabular.AsString(v)
		require.True(t, ok)
		labels = append(labels, s)
	}
	assert.Equal(t, []string{"f", "p", "q", "x"}, labels)
}

func TestAddNodesFromColumns_SplitsAndSkipsExisting(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode("", "beta")
	require.NoError(t, err)

	src, err := tabular.NewTable(
		tabular.Column{Name: "words", Cells: []tabular.Value{"alpha beta", nil, "gamma"}},
	)
	require.NoError(t, err)

	sel := []tabular.ColumnSelector{tabular.ByIndex(1)}
	require.NoError(t, builder.AddNodesFromColumns(g, src, sel))

	// "beta" already labels an existing node; nulls contribute nothing.
	assert.Equal(t, 3, g.NodeCount())

	// With duplicates kept, "beta" comes in again.
	g2 := core.NewGraph()
	_, err = g2.AddNode("", "beta")
	require.NoError(t, err)
	require.NoError(t, builder.AddNodesFromColumns(g2, src, sel,
		builder.WithKeepDuplicates()))
	assert.Equal(t, 4, g2.NodeCount())
}

// Only text cells contribute values: a column of numbers and booleans
// yields no nodes, just the logged no-op entry.
func TestAddNodesFromColumns_NonTextCellsSkipped(t *testing.T) {
	src, err := tabular.NewTable(
		tabular.Column{Name: "nums", Cells: []tabular.Value{int64(42), 3.5, true}},
		tabular.Column{Name: "mixed", Cells: []tabular.Value{int64(7), "tagged", nil}},
	)
	require.NoError(t, err)

	g := core.NewGraph()
	before := len(g.Log())
	require.NoError(t, builder.AddNodesFromColumns(g, src,
		[]tabular.ColumnSelector{tabular.ByName("nums")}))

	assert.Zero(t, g.NodeCount())
	assert.Len(t, g.Log(), before+1)
	assert.Equal(t, "add_nodes_from_columns", lastOp(t, g))

	// A mixed column keeps only its text cell.
	require.NoError(t, builder.AddNodesFromColumns(g, src,
		[]tabular.ColumnSelector{tabular.ByName("mixed")}))
	assert.Equal(t, 1, g.NodeCount())
	label, err := g.NodeAttr(1, core.ColLabel)
	require.NoError(t, err)
	assert.Equal(t, "tagged", label)
}

func TestAddNodesFromColumns_Errors(t *testing.T) {
	g := core.NewGraph()

	err := builder.AddNodesFromColumns(g, nil, nil)
	assert.ErrorIs(t, err, tabular.ErrNilTable)

	src, err := tabular.NewTable(
		tabular.Column{Name: "a", Cells: []tabular.Value{"x"}},
	)
	require.NoError(t, err)

	err = builder.AddNodesFromColumns(g, src,
		[]tabular.ColumnSelector{tabular.ByName("missing")})
	assert.ErrorIs(t, err, tabular.ErrColumnNotFound)

	err = builder.AddNodesFromColumns(g, src,
		[]tabular.ColumnSelector{tabular.ByIndex(2)})
	assert.ErrorIs(t, err, tabular.ErrColumnIndexOutOfRange)
}

func TestAddNodesFromColumns_EmptyHarvestStillLogs(t *testing.T) {
	g := core.NewGraph()
	before := len(g.Log())

	src, err := tabular.NewTable(
		tabular.Column{Name: "a", Cells: []tabular.Value{nil, nil}},
	)
	require.NoError(t, err)

	require.NoError(t, builder.AddNodesFromColumns(g, src,
		[]tabular.ColumnSelector{tabular.ByName("a")}))

	assert.Zero(t, g.NodeCount())
	assert.Len(t, g.Log(), before+1)
	assert.Equal(t, "add_nodes_from_columns", lastOp(t, g))
}

func TestBuildGraph_ComposesInOrder(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		nil,
		builder.Star(4),
		builder.Path(2),
	)
	require.NoError(t, err)

	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())

	set := collectEndpoints(t, g)
	assert.Equal(t, 1, set[[2]int64{5, 6}]) // path landed after the star
}

func TestBuildGraph_Errors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(nil, nil, builder.Cycle(1))
	assert.ErrorIs(t, err, builder.ErrMinimumSize)
}

func TestDirectedMismatchNeverSurfaces(t *testing.T) {
	// Shapes adopt the target's directedness, so both modes work.
	for _, directed := range []bool{true, false} {
		g := core.NewGraph(core.WithDirected(directed))
		require.NoError(t, builder.AddCycle(g, 3))
		require.NoError(t, builder.AddStar(g, 4))
		require.NoError(t, g.Validate())
	}
}

func TestNilGraphHelpers(t *testing.T) {
	assert.ErrorIs(t, builder.AddStar(nil, 4), core.ErrNilGraph)
	assert.ErrorIs(t, builder.AddCycle(nil, 3), core.ErrNilGraph)
	assert.ErrorIs(t, builder.AddPath(nil, 2), core.ErrNilGraph)
	assert.ErrorIs(t, builder.AddRandomSimple(nil, 3, 1, 1), core.ErrNilGraph)
	assert.ErrorIs(t, builder.AddNodesFromColumns(nil, nil, nil), core.ErrNilGraph)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithTypes(nil) })
	assert.Panics(t, func() { builder.WithLabels(nil) })
	assert.Panics(t, func() { builder.WithRels(nil) })
	assert.Panics(t, func() { builder.WithNodeAttr("", []tabular.Value{1}) })
	assert.Panics(t, func() { builder.WithEdgeAttr("x", nil) })
}
