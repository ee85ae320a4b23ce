// SPDX-License-Identifier: MIT
// Package: graphframe/builder
//
// tables.go — the two table builders that every shape constructor is
// composed from: NodeSeq produces a node table with IDs 1..n, EdgeSeq
// pairs two endpoint vectors into an edge table with IDs 1..m.
//
// Contract:
//   - Tables produced here always carry the full core schema (id, type,
//     label for nodes; id, from, to, rel for edges) so they feed
//     core.FromTables without further preparation.
//   - IDs are local to the produced table; core.Graph.Absorb renumbers
//     them against the target graph.
//   - Any per-row option vector whose length disagrees with the row
//     count yields tabular.ErrLengthMismatch; n below the minimum
//     yields ErrMinimumSize. Builders never panic.
//
// Determinism: output depends only on the inputs and options.

package builder

import (
	"fmt"
	"strconv"

	"github.com/graphframe/graphframe/core"
	"github.com/graphframe/graphframe/tabular"
)

// NodeSeq builds a node table with sequential IDs 1..n.
//
// Labels follow the configured policy: stringified IDs by default,
// empty strings with WithoutLabels, or an explicit vector with
// WithLabels. Types are null unless WithType or WithTypes is given.
// Extra columns come from WithNodeAttr, one cell per node.
//
// Returns ErrMinimumSize when n < MinSeqNodes and
// tabular.ErrLengthMismatch when any option vector is not n long.
// Complexity: O(n * columns).
func NodeSeq(n int, opts ...Option) (*tabular.Table, error) {
	return nodeSeq(n, newBuilderConfig(opts...))
}

func nodeSeq(n int, cfg builderConfig) (*tabular.Table, error) {
	if n < MinSeqNodes {
		return nil, fmt.Errorf("%s: n=%d: %w", MethodNodeSeq, n, ErrMinimumSize)
	}
	if cfg.nodeTypes != nil && len(cfg.nodeTypes) != n {
		return nil, fmt.Errorf("%s: types length %d for %d nodes: %w", MethodNodeSeq,
			len(cfg.nodeTypes), n, tabular.ErrLengthMismatch)
	}
	if cfg.labels == labelExplicit && len(cfg.labelVals) != n {
		return nil, fmt.Errorf("%s: labels length %d for %d nodes: %w", MethodNodeSeq,
			len(cfg.labelVals), n, tabular.ErrLengthMismatch)
	}

	ids := make([]tabular.Value, n)
	types := make([]tabular.Value, n)
	labels := make([]tabular.Value, n)
	for i := 0; i < n; i++ {
		id := int64(i + 1)
		ids[i] = id

		switch {
		case cfg.nodeTypes != nil:
			types[i] = cfg.nodeTypes[i]
		case cfg.nodeType != "":
			types[i] = cfg.nodeType
		default:
			types[i] = nil
		}

		switch cfg.labels {
		case labelExplicit:
			labels[i] = cfg.labelVals[i]
		case labelNone:
			labels[i] = ""
		default:
			labels[i] = strconv.FormatInt(id, 10)
		}
	}

	cols := []tabular.Column{
		{Name: core.ColID, Cells: ids},
		{Name: core.ColType, Cells: types},
		{Name: core.ColLabel, Cells: labels},
	}
	for _, av := range cfg.nodeAttrs {
		if len(av.cells) != n {
			return nil, fmt.Errorf("%s: attr %q length %d for %d nodes: %w", MethodNodeSeq,
				av.name, len(av.cells), n, tabular.ErrLengthMismatch)
		}
		cols = append(cols, tabular.Column{Name: av.name, Cells: av.cells})
	}

	return tabular.NewTable(cols...)
}

// EdgeSeq builds an edge table with sequential IDs 1..len(from),
// pairing from[i] with to[i].
//
// Relationships are null unless WithRel or WithRels is given; extra
// columns come from WithEdgeAttr. Endpoint IDs are NOT validated here:
// core.FromTables and core.Graph.Absorb enforce referential integrity
// against the node table they are combined with.
//
// Returns tabular.ErrLengthMismatch when the endpoint vectors or any
// option vector disagree in length.
// Complexity: O(m * columns).
func EdgeSeq(from, to []int64, opts ...Option) (*tabular.Table, error) {
	return edgeSeq(from, to, newBuilderConfig(opts...))
}

func edgeSeq(from, to []int64, cfg builderConfig) (*tabular.Table, error) {
	m := len(from)
	if len(to) != m {
		return nil, fmt.Errorf("%s: from length %d, to length %d: %w", MethodEdgeSeq,
			m, len(to), tabular.ErrLengthMismatch)
	}
	if cfg.rels != nil && len(cfg.rels) != m {
		return nil, fmt.Errorf("%s: rels length %d for %d edges: %w", MethodEdgeSeq,
			len(cfg.rels), m, tabular.ErrLengthMismatch)
	}

	ids := make([]tabular.Value, m)
	froms := make([]tabular.Value, m)
	tos := make([]tabular.Value, m)
	rels := make([]tabular.Value, m)
	for i := 0; i < m; i++ {
		ids[i] = int64(i + 1)
		froms[i] = from[i]
		tos[i] = to[i]

		switch {
		case cfg.rels != nil:
			rels[i] = cfg.rels[i]
		case cfg.rel != "":
			rels[i] = cfg.rel
		default:
			rels[i] = nil
		}
	}

	cols := []tabular.Column{
		{Name: core.ColID, Cells: ids},
		{Name: core.ColFrom, Cells: froms},
		{Name: core.ColTo, Cells: tos},
		{Name: core.ColRel, Cells: rels},
	}
	for _, av := range cfg.edgeAttrs {
		if len(av.cells) != m {
			return nil, fmt.Errorf("%s: attr %q length %d for %d edges: %w", MethodEdgeSeq,
				av.name, len(av.cells), m, tabular.ErrLengthMismatch)
		}
		cols = append(cols, tabular.Column{Name: av.name, Cells: av.cells})
	}

	return tabular.NewTable(cols...)
}
