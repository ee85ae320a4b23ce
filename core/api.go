// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only facade over the Graph container.
// Policy:
//   - No mutation here; every method takes the read lock only.
//   - Returned tables and slices are deep copies: callers can never alias
//     container state.
//   - Ordered output follows table row order (insertion order), except
//     NodeIDs/EdgeIDs which are sorted ascending for deterministic
//     consumption by the metrics package and tests.

package core

import (
	"fmt"
	"sort"

	"github.com/graphframe/graphframe/tabular"
)

// Directed reports the container's directedness (fixed at construction).
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// NodeCount returns the number of node rows.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.NumRows()
}

// EdgeCount returns the number of edge rows.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.NumRows()
}

// LastNodeID returns the node ID high-water mark.
// Complexity: O(1).
func (g *Graph) LastNodeID() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.lastNode
}

// LastEdgeID returns the edge ID high-water mark.
// Complexity: O(1).
func (g *Graph) LastEdgeID() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.lastEdge
}

// Nodes returns a deep copy of the node table.
// Complexity: O(R*C).
func (g *Graph) Nodes() *tabular.Table {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.Clone()
}

// Edges returns a deep copy of the edge table.
// Complexity: O(R*C).
func (g *Graph) Edges() *tabular.Table {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.Clone()
}

// Log returns a copy of the action log in append order.
// Complexity: O(len(log)).
func (g *Graph) Log() []LogEntry {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]LogEntry, len(g.log))
	copy(out, g.log)

	return out
}

// GlobalAttrs returns a copy of the global attribute bindings.
// Complexity: O(len(attrs)).
func (g *Graph) GlobalAttrs() []GlobalAttr {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]GlobalAttr, len(g.globalAttrs))
	copy(out, g.globalAttrs)

	return out
}

// NodeIDs returns all node IDs sorted ascending.
// Complexity: O(R log R).
func (g *Graph) NodeIDs() []int64 {
	g.mu.RLock()
	ids := g.idColumnLocked(g.nodes)
	g.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// EdgeIDs returns all edge IDs sorted ascending.
// Complexity: O(R log R).
func (g *Graph) EdgeIDs() []int64 {
	g.mu.RLock()
	ids := g.idColumnLocked(g.edges)
	g.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// EdgeEndpoints returns the from/to node IDs of every edge, in row order.
// The two slices are index-aligned. Used by the metrics package as the
// conversion surface toward the external graph library.
// Complexity: O(E).
func (g *Graph) EdgeEndpoints() (from, to []int64) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	from = int64ColumnLocked(g.edges, ColFrom)
	to = int64ColumnLocked(g.edges, ColTo)

	return from, to
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(R).
func (g *Graph) HasNode(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := rowByIDLocked(g.nodes, id)

	return ok
}

// HasEdge reports whether an edge with the given ID exists.
// Complexity: O(R).
func (g *Graph) HasEdge(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := rowByIDLocked(g.edges, id)

	return ok
}

// NodeAttr returns the named attribute cell of one node.
// Errors: ErrNodeNotFound, ErrAttrNotFound.
// Complexity: O(R + C).
func (g *Graph) NodeAttr(id int64, name string) (tabular.Value, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return attrLocked(opNodeAttr, g.nodes, id, name, ErrNodeNotFound)
}

// EdgeAttr returns the named attribute cell of one edge.
// Errors: ErrEdgeNotFound, ErrAttrNotFound.
// Complexity: O(R + C).
func (g *Graph) EdgeAttr(id int64, name string) (tabular.Value, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return attrLocked(opEdgeAttr, g.edges, id, name, ErrEdgeNotFound)
}

// Actions returns the registered action names in registration order.
// Complexity: O(len(actions)).
func (g *Graph) Actions() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, len(g.actions))
	for i, a := range g.actions {
		names[i] = a.Name
	}

	return names
}

// Validate checks the container invariants:
//   - schema columns present on both tables;
//   - IDs are positive int64 and unique within each table;
//   - every edge endpoint references an existing node ID;
//   - lastNode >= max(nodes.id) and lastEdge >= max(edges.id).
//
// Errors: ErrInvalidGraph (wrapped detail), ErrEdgeEndpointMissing.
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	if g == nil {
		return coreErrorf(opValidate, ErrNilGraph)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.validateLocked(opValidate)
}

// validateLocked is the shared invariant check; caller holds a lock.
func (g *Graph) validateLocked(op string) error {
	for _, col := range []string{ColID, ColType, ColLabel} {
		if !g.nodes.HasColumn(col) {
			return fmt.Errorf("%s: node table lacks %q: %w", op, col, ErrInvalidGraph)
		}
	}
	for _, col := range []string{ColID, ColFrom, ColTo, ColRel} {
		if !g.edges.HasColumn(col) {
			return fmt.Errorf("%s: edge table lacks %q: %w", op, col, ErrInvalidGraph)
		}
	}

	nodeIDs, err := uniquePositiveIDs(g.nodes, "node")
	if err != nil {
		return coreErrorf(op, err)
	}
	edgeIDs, err := uniquePositiveIDs(g.edges, "edge")
	if err != nil {
		return coreErrorf(op, err)
	}

	var maxNode, maxEdge int64
	for id := range nodeIDs {
		if id > maxNode {
			maxNode = id
		}
	}
	for id := range edgeIDs {
		if id > maxEdge {
			maxEdge = id
		}
	}
	if g.lastNode < maxNode {
		return fmt.Errorf("%s: lastNode=%d below max node id %d: %w", op, g.lastNode, maxNode, ErrInvalidGraph)
	}
	if g.lastEdge < maxEdge {
		return fmt.Errorf("%s: lastEdge=%d below max edge id %d: %w", op, g.lastEdge, maxEdge, ErrInvalidGraph)
	}

	// Referential integrity: every endpoint must exist as a node ID.
	from := int64ColumnLocked(g.edges, ColFrom)
	to := int64ColumnLocked(g.edges, ColTo)
	for i := range from {
		if _, ok := nodeIDs[from[i]]; !ok {
			return fmt.Errorf("%s: edge row %d from=%d: %w", op, i, from[i], ErrEdgeEndpointMissing)
		}
		if _, ok := nodeIDs[to[i]]; !ok {
			return fmt.Errorf("%s: edge row %d to=%d: %w", op, i, to[i], ErrEdgeEndpointMissing)
		}
	}

	return nil
}

// ---------------------------------------------------------------------------
// Internal table helpers (caller holds a lock)
// ---------------------------------------------------------------------------

// idColumnLocked reads the id column as []int64 (malformed cells become 0;
// Validate reports them properly).
func (g *Graph) idColumnLocked(t *tabular.Table) []int64 {
	return int64ColumnLocked(t, ColID)
}

// int64ColumnLocked reads an int64-typed column by name.
func int64ColumnLocked(t *tabular.Table, name string) []int64 {
	col, err := t.Column(tabular.ByName(name))
	if err != nil {
		return nil
	}
	out := make([]int64, len(col.Cells))
	for i, c := range col.Cells {
		if v, ok := c.(int64); ok {
			out[i] = v
		}
	}

	return out
}

// rowByIDLocked returns the row index of the given ID in t.
func rowByIDLocked(t *tabular.Table, id int64) (int, bool) {
	col, err := t.Column(tabular.ByName(ColID))
	if err != nil {
		return 0, false
	}
	for i, c := range col.Cells {
		if v, ok := c.(int64); ok && v == id {
			return i, true
		}
	}

	return 0, false
}

// attrLocked reads one attribute cell from t.
func attrLocked(op string, t *tabular.Table, id int64, name string, notFound error) (tabular.Value, error) {
	row, ok := rowByIDLocked(t, id)
	if !ok {
		return nil, fmt.Errorf("%s: id %d: %w", op, id, notFound)
	}
	if !t.HasColumn(name) {
		return nil, fmt.Errorf("%s: column %q: %w", op, name, ErrAttrNotFound)
	}
	v, err := t.Cell(row, tabular.ByName(name))
	if err != nil {
		return nil, coreErrorf(op, err)
	}

	return v, nil
}

// uniquePositiveIDs validates and indexes the id column of t.
func uniquePositiveIDs(t *tabular.Table, what string) (map[int64]struct{}, error) {
	col, err := t.Column(tabular.ByName(ColID))
	if err != nil {
		return nil, fmt.Errorf("%s table: %w", what, ErrInvalidGraph)
	}

	ids := make(map[int64]struct{}, len(col.Cells))
	for i, c := range col.Cells {
		v, ok := c.(int64)
		if !ok || v <= 0 {
			return nil, fmt.Errorf("%s row %d: id %v not a positive integer: %w", what, i, c, ErrInvalidGraph)
		}
		if _, dup := ids[v]; dup {
			return nil, fmt.Errorf("%s row %d: id %d duplicated: %w", what, i, v, ErrInvalidGraph)
		}
		ids[v] = struct{}{}
	}

	return ids, nil
}
