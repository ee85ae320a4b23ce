// SPDX-License-Identifier: MIT
// Package metrics_test verifies degree and coreness measures against
// hand-checked topologies and the attach/aggregate workflow.
package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphframe/graphframe/builder"
	"github.com/graphframe/graphframe/core"
	"github.com/graphframe/graphframe/metrics"
	"github.com/graphframe/graphframe/tabular"
)

func TestOutDegree_DirectedStar(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, builder.AddStar(g, 4))

	out, err := metrics.OutDegree(g)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{1: 3, 2: 0, 3: 0, 4: 0}, out)

	in, err := metrics.InDegree(g)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{1: 0, 2: 1, 3: 1, 4: 1}, in)

	deg, err := metrics.Degree(g)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{1: 3, 2: 1, 3: 1, 4: 1}, deg)
}

func TestDegree_UndirectedInOutAgree(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, builder.AddCycle(g, 5))

	in, err := metrics.InDegree(g)
	require.NoError(t, err)
	out, err := metrics.OutDegree(g)
	require.NoError(t, err)
	deg, err := metrics.Degree(g)
	require.NoError(t, err)

	assert.Equal(t, deg, in)
	assert.Equal(t, deg, out)
	for _, d := range deg {
		assert.Equal(t, 2, d)
	}
}

func TestDegree_SkipsLoopsCollapsesParallels(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	a, err := g.AddNode("", "")
	require.NoError(t, err)
	b, err := g.AddNode("", "")
	require.NoError(t, err)

	_, err = g.AddEdge(a, a, "") // loop
	require.NoError(t, err)
	_, err = g.AddEdge(a, b, "")
	require.NoError(t, err)
	_, err = g.AddEdge(a, b, "") // parallel
	require.NoError(t, err)

	out, err := metrics.OutDegree(g)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{a: 1, b: 0}, out)
}

func TestCoreness_TriangleWithTail(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, builder.AddCycle(g, 3)) // triangle 1-2-3
	tail, err := g.AddNode("", "")
	require.NoError(t, err)
	_, err = g.AddEdge(1, tail, "")
	require.NoError(t, err)

	cores, err := metrics.Coreness(g)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{1: 2, 2: 2, 3: 2, tail: 1}, cores)
}

func TestCoreness_IsolatedNodes(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		_, err := g.AddNode("", "")
		require.NoError(t, err)
	}

	cores, err := metrics.Coreness(g)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{1: 0, 2: 0, 3: 0}, cores)
}

func TestAttachDegree_AggregationWorkflow(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, builder.AddRandomSimple(g, 10, 22, 23))
	require.NoError(t, metrics.AttachDegree(g))

	require.True(t, g.Nodes().HasColumn(metrics.ColInDegree))
	require.True(t, g.Nodes().HasColumn(metrics.ColOutDegree))
	require.True(t, g.Nodes().HasColumn(metrics.ColDegree))

	mean, err := g.AggregateNodeAttr(tabular.ByName(metrics.ColOutDegree), tabular.AggMean)
	require.NoError(t, err)
	assert.InDelta(t, 2.2, mean, 1e-12) // 22 arcs over 10 nodes

	median, err := g.AggregateNodeAttr(tabular.ByName(metrics.ColOutDegree), tabular.AggMedian)
	require.NoError(t, err)
	// Ten integer degrees: the median is k or k+0.5, never 2.2.
	assert.NotEqual(t, mean, median)

	// Re-attaching overwrites rather than duplicating columns.
	before := g.Nodes().NumCols()
	require.NoError(t, metrics.AttachDegree(g))
	assert.Equal(t, before, g.Nodes().NumCols())
}

func TestMeasures_Errors(t *testing.T) {
	_, err := metrics.Degree(nil)
	assert.ErrorIs(t, err, metrics.ErrNilGraph)
	_, err = metrics.Coreness(nil)
	assert.ErrorIs(t, err, metrics.ErrNilGraph)
	assert.ErrorIs(t, metrics.AttachDegree(nil), metrics.ErrNilGraph)

	empty := core.NewGraph()
	_, err = metrics.OutDegree(empty)
	assert.ErrorIs(t, err, metrics.ErrEmptyGraph)
	_, err = metrics.Coreness(empty)
	assert.ErrorIs(t, err, metrics.ErrEmptyGraph)
}
