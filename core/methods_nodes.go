// SPDX-License-Identifier: MIT
// Package: graphframe/core
//
// methods_nodes.go — node-table mutators.
//
// Contract (all mutators):
//   - Validate completely before touching state: on error the container is
//     byte-identical to before the call and nothing was logged.
//   - On success: apply, advance counters, append exactly one log entry,
//     release the lock, then run the post-mutation hook chain.
//   - IDs are allocated from lastNode and never reused.

package core

import (
	"fmt"
	"strconv"
	"time"

	"github.com/graphframe/graphframe/tabular"
)

// reservedNodeColumns are the schema columns attribute writes may not touch.
var reservedNodeColumns = map[string]struct{}{
	ColID: {}, ColType: {}, ColLabel: {}, ColFrom: {}, ColTo: {}, ColRel: {},
}

// AddNode appends one node with the given type and label plus optional
// attribute values, returning the allocated ID.
// An empty label defaults to the stringified ID; an empty type is stored
// as null.
// Errors: ErrNilGraph, ErrReservedColumn, tabular.ErrDuplicateColumn.
// Complexity: O(V * C) for the table append.
func (g *Graph) AddNode(typ, label string, attrs ...Attr) (int64, error) {
	if g == nil {
		return 0, coreErrorf(opAddNode, ErrNilGraph)
	}
	start := time.Now()

	if err := checkAttrs(opAddNode, attrs); err != nil {
		return 0, err
	}

	g.mu.Lock()
	id := g.lastNode + 1
	if label == "" {
		label = strconv.FormatInt(id, 10)
	}

	row, err := oneRowTable(
		[]tabular.Column{
			{Name: ColID, Cells: []tabular.Value{id}},
			{Name: ColType, Cells: []tabular.Value{optString(typ)}},
			{Name: ColLabel, Cells: []tabular.Value{label}},
		},
		attrs,
	)
	if err != nil {
		g.mu.Unlock()

		return 0, coreErrorf(opAddNode, err)
	}

	merged, err := g.nodes.Append(row)
	if err != nil {
		g.mu.Unlock()

		return 0, coreErrorf(opAddNode, err)
	}

	g.nodes = merged
	g.lastNode = id
	g.appendLogLocked(opAddNode, start)
	g.mu.Unlock()

	g.afterMutation(opAddNode)

	return id, nil
}

// AddNodeTable appends a prebuilt node table (builder.NodeSeq output).
// Incoming IDs must be unique positive integers; they are renumbered by
// adding the container's lastNode, and the counter advances by the highest
// incoming ID (equal to the row count for sequential builder tables).
// Missing type/label columns are synthesized (null type, stringified ID
// label). Extra attribute columns are united by name.
// Errors: ErrNilGraph, tabular.ErrNilTable, ErrInvalidGraph (malformed IDs).
// Complexity: O((V + n) * C).
func (g *Graph) AddNodeTable(t *tabular.Table) error {
	if g == nil {
		return coreErrorf(opAddNodeTable, ErrNilGraph)
	}
	if t == nil {
		return coreErrorf(opAddNodeTable, tabular.ErrNilTable)
	}
	start := time.Now()

	ids, err := uniquePositiveIDs(t, "incoming node")
	if err != nil {
		return coreErrorf(opAddNodeTable, err)
	}
	var maxIncoming int64
	for id := range ids {
		if id > maxIncoming {
			maxIncoming = id
		}
	}

	g.mu.Lock()
	shifted, err := shiftedNodeTable(t, g.lastNode)
	if err != nil {
		g.mu.Unlock()

		return coreErrorf(opAddNodeTable, err)
	}
	merged, err := g.nodes.Append(shifted)
	if err != nil {
		g.mu.Unlock()

		return coreErrorf(opAddNodeTable, err)
	}

	g.nodes = merged
	g.lastNode += maxIncoming
	g.appendLogLocked(opAddNodeTable, start)
	g.mu.Unlock()

	g.afterMutation(opAddNodeTable)

	return nil
}

// DeleteNode removes the node and all incident edges. The ID counters do
// not decrease, so the ID is never reallocated.
// Errors: ErrNilGraph, ErrNodeNotFound.
// Complexity: O(V + E).
func (g *Graph) DeleteNode(id int64) error {
	if g == nil {
		return coreErrorf(opDeleteNode, ErrNilGraph)
	}
	start := time.Now()

	g.mu.Lock()
	row, ok := rowByIDLocked(g.nodes, id)
	if !ok {
		g.mu.Unlock()

		return fmt.Errorf("%s: id %d: %w", opDeleteNode, id, ErrNodeNotFound)
	}

	// Surviving node rows, in order.
	keepNodes := make([]int, 0, g.nodes.NumRows()-1)
	for i := 0; i < g.nodes.NumRows(); i++ {
		if i != row {
			keepNodes = append(keepNodes, i)
		}
	}

	// Surviving edge rows: neither endpoint references the node.
	from := int64ColumnLocked(g.edges, ColFrom)
	to := int64ColumnLocked(g.edges, ColTo)
	keepEdges := make([]int, 0, g.edges.NumRows())
	for i := range from {
		if from[i] != id && to[i] != id {
			keepEdges = append(keepEdges, i)
		}
	}

	nodes, err := g.nodes.Select(keepNodes)
	if err != nil {
		g.mu.Unlock()

		return coreErrorf(opDeleteNode, err)
	}
	edges, err := g.edges.Select(keepEdges)
	if err != nil {
		g.mu.Unlock()

		return coreErrorf(opDeleteNode, err)
	}

	g.nodes, g.edges = nodes, edges
	g.appendLogLocked(opDeleteNode, start)
	g.mu.Unlock()

	g.afterMutation(opDeleteNode)

	return nil
}

// SetNodeAttrs joins an attribute column onto the node table by ID: rows
// whose ID appears in vals receive the mapped value, other rows keep their
// existing cell (null for a fresh column). IDs absent from the table are
// ignored.
// Errors: ErrNilGraph, ErrReservedColumn.
// Complexity: O(V).
func (g *Graph) SetNodeAttrs(name string, vals map[int64]tabular.Value) error {
	if g == nil {
		return coreErrorf(opSetNodeAttrs, ErrNilGraph)
	}
	start := time.Now()

	if _, reserved := reservedNodeColumns[name]; reserved {
		return fmt.Errorf("%s: column %q: %w", opSetNodeAttrs, name, ErrReservedColumn)
	}

	g.mu.Lock()
	if err := joinColumnLocked(g.nodes, name, vals); err != nil {
		g.mu.Unlock()

		return coreErrorf(opSetNodeAttrs, err)
	}
	g.appendLogLocked(opSetNodeAttrs, start)
	g.mu.Unlock()

	g.afterMutation(opSetNodeAttrs)

	return nil
}

// ---------------------------------------------------------------------------
// Shared row/column helpers
// ---------------------------------------------------------------------------

// checkAttrs rejects reserved or duplicated attribute names before any
// state is touched.
func checkAttrs(op string, attrs []Attr) error {
	seen := make(map[string]struct{}, len(attrs))
	for _, a := range attrs {
		if _, reserved := reservedNodeColumns[a.Name]; reserved {
			return fmt.Errorf("%s: attr %q: %w", op, a.Name, ErrReservedColumn)
		}
		if _, dup := seen[a.Name]; dup {
			return fmt.Errorf("%s: attr %q: %w", op, a.Name, tabular.ErrDuplicateColumn)
		}
		seen[a.Name] = struct{}{}
	}

	return nil
}

// oneRowTable builds a single-row table from schema columns plus attrs.
func oneRowTable(schema []tabular.Column, attrs []Attr) (*tabular.Table, error) {
	cols := make([]tabular.Column, 0, len(schema)+len(attrs))
	cols = append(cols, schema...)
	for _, a := range attrs {
		cols = append(cols, tabular.Column{Name: a.Name, Cells: []tabular.Value{a.Value}})
	}

	return tabular.NewTable(cols...)
}

// optString maps "" to the null cell.
func optString(s string) tabular.Value {
	if s == "" {
		return nil
	}

	return s
}

// shiftedNodeTable clones t, shifts its IDs by offset and synthesizes
// missing type/label columns.
func shiftedNodeTable(t *tabular.Table, offset int64) (*tabular.Table, error) {
	out := t.Clone()
	if err := out.MapColumn(tabular.ByName(ColID), func(v tabular.Value) tabular.Value {
		return v.(int64) + offset
	}); err != nil {
		return nil, err
	}

	n := out.NumRows()
	if !out.HasColumn(ColType) {
		if err := out.AppendColumn(tabular.Column{Name: ColType, Cells: nullCells(n)}); err != nil {
			return nil, err
		}
	}
	if !out.HasColumn(ColLabel) {
		ids := int64ColumnLocked(out, ColID)
		labels := make([]tabular.Value, n)
		for i, id := range ids {
			labels[i] = strconv.FormatInt(id, 10)
		}
		if err := out.AppendColumn(tabular.Column{Name: ColLabel, Cells: labels}); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// nullCells returns n null cells.
func nullCells(n int) []tabular.Value {
	return make([]tabular.Value, n)
}

// joinColumnLocked implements the by-ID column join shared by
// SetNodeAttrs/SetEdgeAttrs. Caller holds the write lock.
func joinColumnLocked(t *tabular.Table, name string, vals map[int64]tabular.Value) error {
	cells := nullCells(t.NumRows())
	if t.HasColumn(name) {
		col, err := t.Column(tabular.ByName(name))
		if err != nil {
			return err
		}
		cells = col.Cells
	}

	ids := int64ColumnLocked(t, ColID)
	for i, id := range ids {
		if v, ok := vals[id]; ok {
			cells[i] = v
		}
	}

	return t.SetColumn(tabular.Column{Name: name, Cells: cells})
}
