// SPDX-License-Identifier: MIT
// Package: graphframe/core
//
// combine.go — the composition engine: merging two containers with ID
// renumbering, plus FromTables construction and cloning.
//
// Renumbering contract:
//   - Incoming node IDs and edge endpoint references shift by
//     base.lastNode; incoming edge IDs shift by base.lastEdge.
//   - Base rows precede incoming rows in both tables (insertion order is
//     preserved for display-order consumers).
//   - Result counters: lastNode = base.lastNode + incoming.lastNode, and
//     likewise for edges. For freshly built incoming graphs the incoming
//     high-water mark equals the row count, which makes ID allocation
//     associative across composition groupings.
//   - Directedness must match; WithCoerceDirected adopts the base's.

package core

import (
	"fmt"
	"strconv"
	"time"

	"github.com/graphframe/graphframe/tabular"
)

// combineConfig resolves the CombineOption set.
type combineConfig struct {
	coerceDirected bool
	operation      string
}

// CombineOption customizes one composition call.
type CombineOption func(*combineConfig)

// WithCoerceDirected lets a composition proceed across a directedness
// mismatch; the result keeps the base's directedness.
func WithCoerceDirected() CombineOption {
	return func(c *combineConfig) { c.coerceDirected = true }
}

// WithOperationName overrides the log entry name recorded for the
// composition (builders use it so one shape append logs one entry under
// its own name). Panics on empty (programmer error).
func WithOperationName(op string) CombineOption {
	if op == "" {
		panic("core: WithOperationName(empty)")
	}

	return func(c *combineConfig) { c.operation = op }
}

// Combine merges incoming into a fresh copy of base and returns it; both
// inputs are left untouched. The result carries base's log plus one
// combine entry, base's actions, global attributes and backup settings.
// Errors: ErrNilGraph, ErrDirectedMismatch.
// Complexity: O((V+E) of both graphs).
func Combine(base, incoming *Graph, opts ...CombineOption) (*Graph, error) {
	if base == nil || incoming == nil {
		return nil, coreErrorf(opCombine, ErrNilGraph)
	}

	merged := base.Clone()
	if err := merged.Absorb(incoming, opts...); err != nil {
		return nil, err
	}

	return merged, nil
}

// Absorb appends incoming's renumbered tables to g in place, advancing
// g's counters and logging one entry. incoming is read through its public
// accessors and never mutated; absorbing a graph into itself duplicates
// its rows under fresh IDs.
// Errors: ErrNilGraph, ErrDirectedMismatch.
// Complexity: O((V+E) of both graphs).
func (g *Graph) Absorb(incoming *Graph, opts ...CombineOption) error {
	if g == nil || incoming == nil {
		return coreErrorf(opAbsorb, ErrNilGraph)
	}
	start := time.Now()

	cfg := combineConfig{operation: opCombine}
	for _, opt := range opts {
		opt(&cfg)
	}

	if g.Directed() != incoming.Directed() && !cfg.coerceDirected {
		return fmt.Errorf("%s: base directed=%v incoming directed=%v: %w",
			cfg.operation, g.Directed(), incoming.Directed(), ErrDirectedMismatch)
	}

	// Snapshot incoming state lock-free w.r.t. g (deep copies).
	inNodes := incoming.Nodes()
	inEdges := incoming.Edges()
	inLastNode := incoming.LastNodeID()
	inLastEdge := incoming.LastEdgeID()

	g.mu.Lock()
	nodeOffset, edgeOffset := g.lastNode, g.lastEdge

	shiftedNodes, err := shiftedNodeTable(inNodes, nodeOffset)
	if err != nil {
		g.mu.Unlock()

		return coreErrorf(cfg.operation, err)
	}
	shiftedEdges, err := shiftedEdgeTable(inEdges, edgeOffset, nodeOffset)
	if err != nil {
		g.mu.Unlock()

		return coreErrorf(cfg.operation, err)
	}

	nodes, err := g.nodes.Append(shiftedNodes)
	if err != nil {
		g.mu.Unlock()

		return coreErrorf(cfg.operation, err)
	}
	edges, err := g.edges.Append(shiftedEdges)
	if err != nil {
		g.mu.Unlock()

		return coreErrorf(cfg.operation, err)
	}

	g.nodes, g.edges = nodes, edges
	g.lastNode += inLastNode
	g.lastEdge += inLastEdge
	g.appendLogLocked(cfg.operation, start)
	g.mu.Unlock()

	g.afterMutation(cfg.operation)

	return nil
}

// Clone returns a deep copy of the container: tables, counters, log,
// actions and global attributes are copied; the logger and snapshot
// writer are shared. Cloning is a read, not a mutation: no log entry.
// Complexity: O(V + E + len(log)).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		directed:     g.directed,
		nodes:        g.nodes.Clone(),
		edges:        g.edges.Clone(),
		lastNode:     g.lastNode,
		lastEdge:     g.lastEdge,
		log:          make([]LogEntry, len(g.log)),
		actions:      make([]GraphAction, len(g.actions)),
		globalAttrs:  make([]GlobalAttr, len(g.globalAttrs)),
		writeBackups: g.writeBackups,
		backup:       g.backup,
		logger:       g.logger,
	}
	copy(out.log, g.log)
	copy(out.actions, g.actions)
	copy(out.globalAttrs, g.globalAttrs)

	return out
}

// FromTables builds a container from caller-supplied tables. Either table
// may be nil (empty schema). Missing type/label/rel columns are
// synthesized; IDs must be unique positive integers; every edge endpoint
// must reference a supplied node ID. Counters start at the highest
// supplied IDs (raise them with WithCounterFloor when restoring).
// Unless WithHistory seeds a log, one create entry is recorded.
// Errors: ErrInvalidGraph, ErrEdgeEndpointMissing.
// Complexity: O(V + E).
func FromTables(nodes, edges *tabular.Table, opts ...GraphOption) (*Graph, error) {
	start := time.Now()

	g := &Graph{
		nodes:  emptyNodeTable(),
		edges:  emptyEdgeTable(),
		logger: discardLogger(),
	}

	if nodes != nil && nodes.NumRows() > 0 {
		prepared, err := prepareNodeTable(nodes)
		if err != nil {
			return nil, coreErrorf(opFromTables, err)
		}
		g.nodes = prepared
		for _, id := range int64ColumnLocked(prepared, ColID) {
			if id > g.lastNode {
				g.lastNode = id
			}
		}
	}

	if edges != nil && edges.NumRows() > 0 {
		prepared, err := prepareEdgeTable(edges)
		if err != nil {
			return nil, coreErrorf(opFromTables, err)
		}
		g.edges = prepared
		for _, id := range int64ColumnLocked(prepared, ColID) {
			if id > g.lastEdge {
				g.lastEdge = id
			}
		}
	}

	for _, opt := range opts {
		opt(g)
	}

	if err := g.validateLocked(opFromTables); err != nil {
		return nil, err
	}

	if len(g.log) == 0 {
		g.appendLogLocked(opFromTables, start)
	}
	g.afterMutation(opFromTables)

	return g, nil
}

// prepareNodeTable clones and completes a caller-supplied node table.
func prepareNodeTable(t *tabular.Table) (*tabular.Table, error) {
	if _, err := uniquePositiveIDs(t, "node"); err != nil {
		return nil, err
	}

	out := t.Clone()
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

// prepareEdgeTable clones and completes a caller-supplied edge table.
func prepareEdgeTable(t *tabular.Table) (*tabular.Table, error) {
	if _, err := uniquePositiveIDs(t, "edge"); err != nil {
		return nil, err
	}
	if !t.HasColumn(ColFrom) || !t.HasColumn(ColTo) {
		return nil, fmt.Errorf("edge table lacks %q/%q: %w", ColFrom, ColTo, ErrInvalidGraph)
	}

	out := t.Clone()
	if !out.HasColumn(ColRel) {
		if err := out.AppendColumn(tabular.Column{Name: ColRel, Cells: nullCells(out.NumRows())}); err != nil {
			return nil, err
		}
	}

	return out, nil
}
