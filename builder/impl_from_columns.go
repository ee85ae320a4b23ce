// SPDX-License-Identifier: MIT
// Package: graphframe/builder
//
// impl_from_columns.go - implementation of FromColumns(t, sels).
//
// Contract:
//   - Every selector must resolve against the source table
//     (else tabular.ErrColumnNotFound / ErrColumnIndexOutOfRange).
//   - Only text cells contribute: non-text cells (numbers, booleans,
//     nulls) are silently skipped. String cells are split on whitespace
//     and the tokens deduplicated first-seen-first-kept, scanning
//     columns in selector order and rows top to bottom.
//   - Values equal to an existing node label in the target graph are
//     skipped unless WithKeepDuplicates is set.
//   - Each surviving value becomes one node, labelled with the value.
//     Zero survivors still record one log entry (empty absorb).
//
// Complexity: O(cells * tokens + V) time, O(distinct values) space.
//
// Determinism: survivor order follows the scan order above.

package builder

import (
	"fmt"
	"strings"

	"github.com/graphframe/graphframe/core"
	"github.com/graphframe/graphframe/tabular"
)

// FromColumns returns a Constructor that extracts whitespace-separated
// values from the text cells of the selected columns of t and adds one
// node per distinct value, using the value as the node label. Non-text
// cells are silently skipped. Columns are selected by name or by
// 1-based position.
func FromColumns(t *tabular.Table, sels []tabular.ColumnSelector) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if t == nil {
			return fmt.Errorf("%s: %w", MethodFromColumns, tabular.ErrNilTable)
		}

		values, err := harvestValues(t, sels)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodFromColumns, err)
		}

		if !cfg.keepDuplicates {
			values = excludeExistingLabels(g, values)
		}

		if len(values) == 0 {
			// Record the operation even when nothing survives.
			return mergeShape(g, nil, nil, opAddFromColumns)
		}

		shapeCfg := cfg
		shapeCfg.labels = labelExplicit
		shapeCfg.labelVals = values

		nodes, err := nodeSeq(len(values), shapeCfg)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodFromColumns, err)
		}

		return mergeShape(g, nodes, nil, opAddFromColumns)
	}
}

// harvestValues gathers the distinct whitespace-separated tokens of the
// text cells in the selected columns, in scan order. Non-text cells are
// silently skipped.
func harvestValues(t *tabular.Table, sels []tabular.ColumnSelector) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string

	for _, sel := range sels {
		col, err := t.Column(sel)
		if err != nil {
			return nil, err
		}
		for _, cell := range col.Cells {
			s, ok := tabular.AsString(cell)
			if !ok {
				continue
			}
			for _, token := range strings.Fields(s) {
				if _, dup := seen[token]; dup {
					continue
				}
				seen[token] = struct{}{}
				out = append(out, token)
			}
		}
	}

	return out, nil
}

// excludeExistingLabels drops values whose label is already present in
// the target graph, preserving order.
func excludeExistingLabels(g *core.Graph, values []string) []string {
	existing := make(map[string]struct{})
	nodes := g.Nodes()
	if col, err := nodes.Column(tabular.ByName(core.ColLabel)); err == nil {
		for _, cell := range col.Cells {
			if s, ok := tabular.AsString(cell); ok {
				existing[s] = struct{}{}
			}
		}
	}

	kept := values[:0]
	for _, v := range values {
		if _, dup := existing[v]; dup {
			continue
		}
		kept = append(kept, v)
	}

	return kept
}
