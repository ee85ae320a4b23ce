// SPDX-License-Identifier: MIT
// Package: graphframe/core
//
// methods_edges.go — edge-table mutators.
//
// Contract:
//   - Both endpoints must exist as node IDs at commit time; validation
//     precedes any state change.
//   - Edge IDs are allocated from lastEdge and never reused.
//   - Self-loops and parallel edges are permitted; the metrics package
//     documents how measures treat them.

package core

import (
	"fmt"
	"time"

	"github.com/graphframe/graphframe/tabular"
)

// AddEdge appends one edge from → to with an optional relationship label
// and attribute values, returning the allocated ID.
// An empty rel is stored as null.
// Errors: ErrNilGraph, ErrNodeNotFound (either endpoint),
// ErrReservedColumn, tabular.ErrDuplicateColumn.
// Complexity: O(V + E*C).
func (g *Graph) AddEdge(from, to int64, rel string, attrs ...Attr) (int64, error) {
	if g == nil {
		return 0, coreErrorf(opAddEdge, ErrNilGraph)
	}
	start := time.Now()

	if err := checkAttrs(opAddEdge, attrs); err != nil {
		return 0, err
	}

	g.mu.Lock()
	if _, ok := rowByIDLocked(g.nodes, from); !ok {
		g.mu.Unlock()

		return 0, fmt.Errorf("%s: from=%d: %w", opAddEdge, from, ErrNodeNotFound)
	}
	if _, ok := rowByIDLocked(g.nodes, to); !ok {
		g.mu.Unlock()

		return 0, fmt.Errorf("%s: to=%d: %w", opAddEdge, to, ErrNodeNotFound)
	}

	id := g.lastEdge + 1
	row, err := oneRowTable(
		[]tabular.Column{
			{Name: ColID, Cells: []tabular.Value{id}},
			{Name: ColFrom, Cells: []tabular.Value{from}},
			{Name: ColTo, Cells: []tabular.Value{to}},
			{Name: ColRel, Cells: []tabular.Value{optString(rel)}},
		},
		attrs,
	)
	if err != nil {
		g.mu.Unlock()

		return 0, coreErrorf(opAddEdge, err)
	}

	merged, err := g.edges.Append(row)
	if err != nil {
		g.mu.Unlock()

		return 0, coreErrorf(opAddEdge, err)
	}

	g.edges = merged
	g.lastEdge = id
	g.appendLogLocked(opAddEdge, start)
	g.mu.Unlock()

	g.afterMutation(opAddEdge)

	return id, nil
}

// AddEdgeTable appends a prebuilt edge table (builder.EdgeSeq output).
// Incoming edge IDs must be unique positive integers; they are renumbered
// by adding lastEdge, and the counter advances by the highest incoming ID.
// from/to cells are NOT renumbered: they must reference node IDs already
// present in the container.
// Errors: ErrNilGraph, tabular.ErrNilTable, ErrInvalidGraph,
// ErrEdgeEndpointMissing.
// Complexity: O(V + (E + n) * C).
func (g *Graph) AddEdgeTable(t *tabular.Table) error {
	if g == nil {
		return coreErrorf(opAddEdgeTable, ErrNilGraph)
	}
	if t == nil {
		return coreErrorf(opAddEdgeTable, tabular.ErrNilTable)
	}
	start := time.Now()

	ids, err := uniquePositiveIDs(t, "incoming edge")
	if err != nil {
		return coreErrorf(opAddEdgeTable, err)
	}
	var maxIncoming int64
	for id := range ids {
		if id > maxIncoming {
			maxIncoming = id
		}
	}
	if !t.HasColumn(ColFrom) || !t.HasColumn(ColTo) {
		return fmt.Errorf("%s: missing %q/%q columns: %w", opAddEdgeTable, ColFrom, ColTo, ErrInvalidGraph)
	}

	g.mu.Lock()
	// Referential integrity before any state change.
	nodeIDs, err := uniquePositiveIDs(g.nodes, "node")
	if err != nil {
		g.mu.Unlock()

		return coreErrorf(opAddEdgeTable, err)
	}
	from := int64ColumnLocked(t, ColFrom)
	to := int64ColumnLocked(t, ColTo)
	for i := range from {
		if _, ok := nodeIDs[from[i]]; !ok {
			g.mu.Unlock()

			return fmt.Errorf("%s: row %d from=%d: %w", opAddEdgeTable, i, from[i], ErrEdgeEndpointMissing)
		}
		if _, ok := nodeIDs[to[i]]; !ok {
			g.mu.Unlock()

			return fmt.Errorf("%s: row %d to=%d: %w", opAddEdgeTable, i, to[i], ErrEdgeEndpointMissing)
		}
	}

	shifted, err := shiftedEdgeTable(t, g.lastEdge, 0)
	if err != nil {
		g.mu.Unlock()

		return coreErrorf(opAddEdgeTable, err)
	}
	merged, err := g.edges.Append(shifted)
	if err != nil {
		g.mu.Unlock()

		return coreErrorf(opAddEdgeTable, err)
	}

	g.edges = merged
	g.lastEdge += maxIncoming
	g.appendLogLocked(opAddEdgeTable, start)
	g.mu.Unlock()

	g.afterMutation(opAddEdgeTable)

	return nil
}

// DeleteEdge removes one edge row. Counters do not decrease.
// Errors: ErrNilGraph, ErrEdgeNotFound.
// Complexity: O(E).
func (g *Graph) DeleteEdge(id int64) error {
	if g == nil {
		return coreErrorf(opDeleteEdge, ErrNilGraph)
	}
	start := time.Now()

	g.mu.Lock()
	row, ok := rowByIDLocked(g.edges, id)
	if !ok {
		g.mu.Unlock()

		return fmt.Errorf("%s: id %d: %w", opDeleteEdge, id, ErrEdgeNotFound)
	}

	keep := make([]int, 0, g.edges.NumRows()-1)
	for i := 0; i < g.edges.NumRows(); i++ {
		if i != row {
			keep = append(keep, i)
		}
	}
	edges, err := g.edges.Select(keep)
	if err != nil {
		g.mu.Unlock()

		return coreErrorf(opDeleteEdge, err)
	}

	g.edges = edges
	g.appendLogLocked(opDeleteEdge, start)
	g.mu.Unlock()

	g.afterMutation(opDeleteEdge)

	return nil
}

// SetEdgeAttrs joins an attribute column onto the edge table by ID, with
// the same semantics as SetNodeAttrs.
// Errors: ErrNilGraph, ErrReservedColumn.
// Complexity: O(E).
func (g *Graph) SetEdgeAttrs(name string, vals map[int64]tabular.Value) error {
	if g == nil {
		return coreErrorf(opSetEdgeAttrs, ErrNilGraph)
	}
	start := time.Now()

	if _, reserved := reservedNodeColumns[name]; reserved {
		return fmt.Errorf("%s: column %q: %w", opSetEdgeAttrs, name, ErrReservedColumn)
	}

	g.mu.Lock()
	if err := joinColumnLocked(g.edges, name, vals); err != nil {
		g.mu.Unlock()

		return coreErrorf(opSetEdgeAttrs, err)
	}
	g.appendLogLocked(opSetEdgeAttrs, start)
	g.mu.Unlock()

	g.afterMutation(opSetEdgeAttrs)

	return nil
}

// shiftedEdgeTable clones t, shifts edge IDs by idOffset and endpoint
// references by refOffset (composition renumbers both; table ingestion
// shifts IDs only), synthesizing a missing rel column.
func shiftedEdgeTable(t *tabular.Table, idOffset, refOffset int64) (*tabular.Table, error) {
	out := t.Clone()
	if err := out.MapColumn(tabular.ByName(ColID), func(v tabular.Value) tabular.Value {
		return v.(int64) + idOffset
	}); err != nil {
		return nil, err
	}
	if refOffset != 0 {
		for _, name := range []string{ColFrom, ColTo} {
			if err := out.MapColumn(tabular.ByName(name), func(v tabular.Value) tabular.Value {
				return v.(int64) + refOffset
			}); err != nil {
				return nil, err
			}
		}
	}

	if !out.HasColumn(ColRel) {
		if err := out.AppendColumn(tabular.Column{Name: ColRel, Cells: nullCells(out.NumRows())}); err != nil {
			return nil, err
		}
	}

	return out, nil
}
