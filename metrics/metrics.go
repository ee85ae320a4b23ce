// SPDX-License-Identifier: MIT
// Package: graphframe/metrics
//
// metrics.go — degree and coreness measures over gonum conversions.
//
// Contract:
//   - Conversion is the delegation surface: containers become
//     gonum.org/v1/gonum/graph/simple graphs, measures come from the
//     gonum representation, keyed by the container's node IDs.
//   - Self-loops are skipped (simple-graph measures); parallel edges
//     collapse to one.
//   - Directed semantics: InDegree counts incoming arcs, OutDegree
//     outgoing, Degree their sum. Undirected: all three agree.
//   - Coreness is computed by iterative minimum-degree peeling on the
//     undirected view; a node's coreness is the largest k such that it
//     survives in the k-core.
//
// Complexity: conversion O(V+E); degree reads O(V); peeling O(V^2 + E)
// worst case, linear-ish on sparse containers.

package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/graphframe/graphframe/core"
	"github.com/graphframe/graphframe/tabular"
)

// Degree column names written by AttachDegree.
const (
	ColDegree    = "degree"
	ColInDegree  = "indegree"
	ColOutDegree = "outdegree"
)

// method-name constants for error context.
const (
	methodDegree       = "Degree"
	methodInDegree     = "InDegree"
	methodOutDegree    = "OutDegree"
	methodCoreness     = "Coreness"
	methodAttachDegree = "AttachDegree"
)

// Degree returns the total simple-graph degree of every node: in plus
// out for directed containers, neighbor count for undirected ones.
// Errors: ErrNilGraph, ErrEmptyGraph.
func Degree(g *core.Graph) (map[int64]int, error) {
	in, out, err := degreePair(g, methodDegree)
	if err != nil {
		return nil, err
	}

	total := make(map[int64]int, len(out))
	if g.Directed() {
		for id, d := range out {
			total[id] = d + in[id]
		}
	} else {
		for id, d := range out {
			total[id] = d
		}
	}

	return total, nil
}

// InDegree returns the number of incoming arcs per node. For undirected
// containers this equals the total degree.
// Errors: ErrNilGraph, ErrEmptyGraph.
func InDegree(g *core.Graph) (map[int64]int, error) {
	in, _, err := degreePair(g, methodInDegree)
	if err != nil {
		return nil, err
	}

	return in, nil
}

// OutDegree returns the number of outgoing arcs per node. For undirected
// containers this equals the total degree.
// Errors: ErrNilGraph, ErrEmptyGraph.
func OutDegree(g *core.Graph) (map[int64]int, error) {
	_, out, err := degreePair(g, methodOutDegree)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Coreness returns the k-core number of every node, computed by
// minimum-degree peeling on the undirected simple view of the container.
// Errors: ErrNilGraph, ErrEmptyGraph.
func Coreness(g *core.Graph) (map[int64]int, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodCoreness, ErrNilGraph)
	}
	ids := g.NodeIDs()
	if len(ids) == 0 {
		return nil, fmt.Errorf("%s: %w", methodCoreness, ErrEmptyGraph)
	}

	// Undirected adjacency with loops skipped and parallels collapsed.
	adj := make(map[int64]map[int64]struct{}, len(ids))
	for _, id := range ids {
		adj[id] = make(map[int64]struct{})
	}
	from, to := g.EdgeEndpoints()
	for i := range from {
		if from[i] == to[i] {
			continue
		}
		adj[from[i]][to[i]] = struct{}{}
		adj[to[i]][from[i]] = struct{}{}
	}

	deg := make(map[int64]int, len(ids))
	for id, nbrs := range adj {
		deg[id] = len(nbrs)
	}

	// Peel: repeatedly remove a minimum-degree node; its coreness is the
	// running maximum of the minimum degree seen so far.
	coreness := make(map[int64]int, len(ids))
	k := 0
	remaining := len(ids)
	removed := make(map[int64]bool, len(ids))
	for remaining > 0 {
		var pick int64
		pickDeg := -1
		for _, id := range ids {
			if removed[id] {
				continue
			}
			if pickDeg < 0 || deg[id] < pickDeg || (deg[id] == pickDeg && id < pick) {
				pick, pickDeg = id, deg[id]
			}
		}
		if pickDeg > k {
			k = pickDeg
		}
		coreness[pick] = k
		removed[pick] = true
		remaining--
		for nbr := range adj[pick] {
			if !removed[nbr] {
				deg[nbr]--
			}
		}
	}

	return coreness, nil
}

// AttachDegree computes all three degree measures and writes them to the
// node table as the indegree, outdegree and degree columns, one
// SetNodeAttrs mutation per column (three log entries).
// Errors: ErrNilGraph, ErrEmptyGraph, plus any attribute-write failure.
func AttachDegree(g *core.Graph) error {
	in, out, err := degreePair(g, methodAttachDegree)
	if err != nil {
		return err
	}

	total := make(map[int64]tabular.Value, len(out))
	inVals := make(map[int64]tabular.Value, len(in))
	outVals := make(map[int64]tabular.Value, len(out))
	for id, d := range out {
		outVals[id] = int64(d)
		inVals[id] = int64(in[id])
		if g.Directed() {
			total[id] = int64(d + in[id])
		} else {
			total[id] = int64(d)
		}
	}

	if err = g.SetNodeAttrs(ColInDegree, inVals); err != nil {
		return fmt.Errorf("%s: %w", methodAttachDegree, err)
	}
	if err = g.SetNodeAttrs(ColOutDegree, outVals); err != nil {
		return fmt.Errorf("%s: %w", methodAttachDegree, err)
	}
	if err = g.SetNodeAttrs(ColDegree, total); err != nil {
		return fmt.Errorf("%s: %w", methodAttachDegree, err)
	}

	return nil
}

// degreePair converts once and reads both directions.
func degreePair(g *core.Graph, method string) (in, out map[int64]int, err error) {
	if g == nil {
		return nil, nil, fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	ids := g.NodeIDs()
	if len(ids) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", method, ErrEmptyGraph)
	}

	in = make(map[int64]int, len(ids))
	out = make(map[int64]int, len(ids))

	if g.Directed() {
		dg := toDirected(g, ids)
		for _, id := range ids {
			in[id] = dg.To(id).Len()
			out[id] = dg.From(id).Len()
		}

		return in, out, nil
	}

	ug := toUndirected(g, ids)
	for _, id := range ids {
		d := ug.From(id).Len()
		in[id] = d
		out[id] = d
	}

	return in, out, nil
}

// toDirected builds the gonum directed simple graph for g.
func toDirected(g *core.Graph, ids []int64) *simple.DirectedGraph {
	dg := simple.NewDirectedGraph()
	for _, id := range ids {
		dg.AddNode(simple.Node(id))
	}
	from, to := g.EdgeEndpoints()
	for i := range from {
		if from[i] == to[i] {
			continue // simple-graph measures skip loops
		}
		if dg.HasEdgeFromTo(from[i], to[i]) {
			continue
		}
		dg.SetEdge(simple.Edge{F: simple.Node(from[i]), T: simple.Node(to[i])})
	}

	return dg
}

// toUndirected builds the gonum undirected simple graph for g.
func toUndirected(g *core.Graph, ids []int64) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for _, id := range ids {
		ug.AddNode(simple.Node(id))
	}
	from, to := g.EdgeEndpoints()
	for i := range from {
		if from[i] == to[i] {
			continue
		}
		if ug.HasEdgeBetween(from[i], to[i]) {
			continue
		}
		ug.SetEdge(simple.Edge{F: simple.Node(from[i]), T: simple.Node(to[i])})
	}

	return ug
}
