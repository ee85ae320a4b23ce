// SPDX-License-Identifier: MIT
// Package: graphframe/core
//
// aggregate.go — aggregation glue over the live tables.
//
// The container only forwards to tabular.Aggregate under the read lock;
// filter semantics (AND intersection, null exclusion, NaN-on-empty) are
// defined and tested in the tabular package.

package core

import "github.com/graphframe/graphframe/tabular"

// AggregateNodeAttr aggregates one node-table column over the rows
// matching all filters. Null and non-numeric cells are excluded; an empty
// subset yields NaN with a nil error.
// Errors: ErrNilGraph plus tabular sentinels (selector, operator, kind).
// Complexity: O(V * len(filters)).
func (g *Graph) AggregateNodeAttr(sel tabular.ColumnSelector, kind tabular.AggKind, filters ...tabular.Filter) (float64, error) {
	if g == nil {
		return 0, coreErrorf(opAggregateNodes, ErrNilGraph)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return tabular.Aggregate(g.nodes, sel, kind, filters...)
}

// AggregateEdgeAttr aggregates one edge-table column, with the same
// semantics as AggregateNodeAttr.
// Complexity: O(E * len(filters)).
func (g *Graph) AggregateEdgeAttr(sel tabular.ColumnSelector, kind tabular.AggKind, filters ...tabular.Filter) (float64, error) {
	if g == nil {
		return 0, coreErrorf(opAggregateEdges, ErrNilGraph)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return tabular.Aggregate(g.edges, sel, kind, filters...)
}
