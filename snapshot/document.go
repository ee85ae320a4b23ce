// SPDX-License-Identifier: MIT
// Package: graphframe/snapshot
//
// document.go — the JSON document codec for full container state.
//
// Contract:
//   - Cells serialize with a one-letter type tag so the conventional
//     value types (null, string, bool, int64, float64) round-trip
//     without JSON's number flattening: "n" null, "s" string, "i"
//     int64, "f" float64, "b" bool.
//   - Encode reads the container through its public accessors only.
//   - Decode rebuilds via core.FromTables with the recorded counters as
//     floor and the recorded log as history, so the restored container
//     continues the original version sequence.
//   - Documents carry a uuid so concurrently written snapshots of the
//     same version never collide on a name.

package snapshot

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/graphframe/graphframe/core"
	"github.com/graphframe/graphframe/tabular"
)

// Cell type tags.
const (
	tagNull   = "n"
	tagString = "s"
	tagInt    = "i"
	tagFloat  = "f"
	tagBool   = "b"
)

// cellDoc is one serialized table cell.
type cellDoc struct {
	T string  `json:"t"`
	S string  `json:"s,omitempty"`
	I int64   `json:"i,omitempty"`
	F float64 `json:"f,omitempty"`
	B bool    `json:"b,omitempty"`
}

// columnDoc is one serialized table column.
type columnDoc struct {
	Name  string    `json:"name"`
	Cells []cellDoc `json:"cells"`
}

// tableDoc is one serialized table, columns in display order.
type tableDoc struct {
	Columns []columnDoc `json:"columns"`
}

// logEntryDoc is one serialized action-log entry.
type logEntryDoc struct {
	Version   int       `json:"version"`
	Operation string    `json:"operation"`
	Timestamp time.Time `json:"timestamp"`
	Duration  int64     `json:"duration_ns"`
	Nodes     int       `json:"nodes"`
	Edges     int       `json:"edges"`
}

// attrDoc is one serialized global attribute binding.
type attrDoc struct {
	Attr  string  `json:"attr"`
	Value cellDoc `json:"value"`
	Kind  string  `json:"kind"`
}

// Document is the complete serialized state of one container at one
// version. It is the unit both the file writer and the badger store
// persist.
type Document struct {
	ID          string        `json:"id"`
	CreatedAt   time.Time     `json:"created_at"`
	Version     int           `json:"version"`
	Directed    bool          `json:"directed"`
	LastNodeID  int64         `json:"last_node_id"`
	LastEdgeID  int64         `json:"last_edge_id"`
	Nodes       tableDoc      `json:"nodes"`
	Edges       tableDoc      `json:"edges"`
	Log         []logEntryDoc `json:"log"`
	GlobalAttrs []attrDoc     `json:"global_attrs,omitempty"`
}

// Encode captures g's full state as a Document with a fresh uuid.
// The version is the container's latest log version (0 for a container
// constructed with an empty history).
// Errors: ErrNilGraph, ErrBadDocument (unsupported cell type).
// Complexity: O(V + E + len(log)).
func Encode(g *core.Graph) (*Document, error) {
	if g == nil {
		return nil, fmt.Errorf("Encode: %w", ErrNilGraph)
	}

	nodes, err := encodeTable(g.Nodes())
	if err != nil {
		return nil, fmt.Errorf("Encode: nodes: %w", err)
	}
	edges, err := encodeTable(g.Edges())
	if err != nil {
		return nil, fmt.Errorf("Encode: edges: %w", err)
	}

	log := g.Log()
	entries := make([]logEntryDoc, len(log))
	version := 0
	for i, e := range log {
		entries[i] = logEntryDoc{
			Version:   e.Version,
			Operation: e.Operation,
			Timestamp: e.Timestamp,
			Duration:  int64(e.Duration),
			Nodes:     e.Nodes,
			Edges:     e.Edges,
		}
		if e.Version > version {
			version = e.Version
		}
	}

	var attrs []attrDoc
	for _, a := range g.GlobalAttrs() {
		cell, cellErr := encodeCell(a.Value)
		if cellErr != nil {
			return nil, fmt.Errorf("Encode: attr %q: %w", a.Attr, cellErr)
		}
		attrs = append(attrs, attrDoc{Attr: a.Attr, Value: cell, Kind: a.Kind.String()})
	}

	return &Document{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		Version:     version,
		Directed:    g.Directed(),
		LastNodeID:  g.LastNodeID(),
		LastEdgeID:  g.LastEdgeID(),
		Nodes:       nodes,
		Edges:       edges,
		Log:         entries,
		GlobalAttrs: attrs,
	}, nil
}

// Decode restores the container a Document describes. The restored graph
// shares nothing with the document: tables are rebuilt, counters floored
// at the recorded high-water marks, and the recorded log seeds the
// history (no fresh create entry).
// Errors: ErrNilDocument, ErrBadDocument, core.ErrInvalidGraph.
// Complexity: O(V + E + len(log)).
func Decode(d *Document) (*core.Graph, error) {
	if d == nil {
		return nil, fmt.Errorf("Decode: %w", ErrNilDocument)
	}

	nodes, err := decodeTable(d.Nodes)
	if err != nil {
		return nil, fmt.Errorf("Decode: nodes: %w", err)
	}
	edges, err := decodeTable(d.Edges)
	if err != nil {
		return nil, fmt.Errorf("Decode: edges: %w", err)
	}

	entries := make([]core.LogEntry, len(d.Log))
	for i, e := range d.Log {
		entries[i] = core.LogEntry{
			Version:   e.Version,
			Operation: e.Operation,
			Timestamp: e.Timestamp,
			Duration:  time.Duration(e.Duration),
			Nodes:     e.Nodes,
			Edges:     e.Edges,
		}
	}

	opts := []core.GraphOption{
		core.WithDirected(d.Directed),
		core.WithCounterFloor(d.LastNodeID, d.LastEdgeID),
		core.WithHistory(entries...),
	}
	for _, a := range d.GlobalAttrs {
		if a.Attr == "" {
			return nil, fmt.Errorf("Decode: empty attr name: %w", ErrBadDocument)
		}
		kind, kindErr := parseAttrKind(a.Kind)
		if kindErr != nil {
			return nil, fmt.Errorf("Decode: attr %q: %w", a.Attr, kindErr)
		}
		opts = append(opts, core.WithGlobalAttr(a.Attr, decodeCell(a.Value), kind))
	}

	g, err := core.FromTables(nodes, edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	return g, nil
}

// encodeTable serializes a table column by column.
func encodeTable(t *tabular.Table) (tableDoc, error) {
	var doc tableDoc
	for _, name := range t.ColumnNames() {
		col, err := t.Column(tabular.ByName(name))
		if err != nil {
			return tableDoc{}, err
		}
		cells := make([]cellDoc, len(col.Cells))
		for i, v := range col.Cells {
			cell, cellErr := encodeCell(v)
			if cellErr != nil {
				return tableDoc{}, fmt.Errorf("column %q row %d: %w", name, i, cellErr)
			}
			cells[i] = cell
		}
		doc.Columns = append(doc.Columns, columnDoc{Name: name, Cells: cells})
	}

	return doc, nil
}

// decodeTable rebuilds a table; a document with no columns yields nil so
// core.FromTables treats it as the empty schema.
func decodeTable(doc tableDoc) (*tabular.Table, error) {
	if len(doc.Columns) == 0 {
		return nil, nil
	}

	cols := make([]tabular.Column, len(doc.Columns))
	for i, c := range doc.Columns {
		cells := make([]tabular.Value, len(c.Cells))
		for j, cell := range c.Cells {
			if !validTag(cell.T) {
				return nil, fmt.Errorf("column %q row %d tag %q: %w", c.Name, j, cell.T, ErrBadDocument)
			}
			cells[j] = decodeCell(cell)
		}
		cols[i] = tabular.Column{Name: c.Name, Cells: cells}
	}

	return tabular.NewTable(cols...)
}

// encodeCell tags one cell value.
func encodeCell(v tabular.Value) (cellDoc, error) {
	switch x := v.(type) {
	case nil:
		return cellDoc{T: tagNull}, nil
	case string:
		return cellDoc{T: tagString, S: x}, nil
	case bool:
		return cellDoc{T: tagBool, B: x}, nil
	case int64:
		return cellDoc{T: tagInt, I: x}, nil
	case int:
		return cellDoc{T: tagInt, I: int64(x)}, nil
	case float64:
		return cellDoc{T: tagFloat, F: x}, nil
	default:
		return cellDoc{}, fmt.Errorf("cell type %T: %w", v, ErrBadDocument)
	}
}

// decodeCell untags one cell value; callers validate the tag first.
func decodeCell(c cellDoc) tabular.Value {
	switch c.T {
	case tagString:
		return c.S
	case tagInt:
		return c.I
	case tagFloat:
		return c.F
	case tagBool:
		return c.B
	default:
		return nil
	}
}

func validTag(t string) bool {
	switch t {
	case tagNull, tagString, tagInt, tagFloat, tagBool:
		return true
	default:
		return false
	}
}

// parseAttrKind inverts core.AttrKind.String.
func parseAttrKind(s string) (core.AttrKind, error) {
	switch s {
	case core.AttrGraph.String():
		return core.AttrGraph, nil
	case core.AttrNode.String():
		return core.AttrNode, nil
	case core.AttrEdge.String():
		return core.AttrEdge, nil
	default:
		return 0, fmt.Errorf("attr kind %q: %w", s, ErrBadDocument)
	}
}
