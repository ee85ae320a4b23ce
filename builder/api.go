// SPDX-License-Identifier: MIT
// Package: graphframe/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared in impl_*.go and return a Constructor closure.
//   - Functional options (Option) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order => identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
//   - Every constructor finishes as exactly one mutation on the target graph, so one
//     action-log entry records the whole shape (Add* against an existing graph) and
//     deferred graph actions fire once per shape.

package builder

import (
	"fmt"

	"github.com/graphframe/graphframe/core"
	"github.com/graphframe/graphframe/tabular"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit nodes and edges in a stable, documented order.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: sum of each constructor's cost.
//
// Errors: wraps constructor errors via %w; callers branch with errors.Is
// against builder sentinels (ErrMinimumSize, ErrTooManyEdges, ...).
func BuildGraph(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)

	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Thin helpers - resolve cfg and run one constructor against an existing graph.
// =============================================================================

// AddStar adds an n-node star (hub plus n-1 leaves) to g.
// It returns sentinel errors; it never panics.
func AddStar(g *core.Graph, n int, opts ...Option) error {
	if g == nil {
		return fmt.Errorf("AddStar: nil graph: %w", core.ErrNilGraph)
	}
	return Star(n)(g, newBuilderConfig(opts...))
}

// AddCycle adds an n-node simple cycle to g.
// It returns sentinel errors; it never panics.
func AddCycle(g *core.Graph, n int, opts ...Option) error {
	if g == nil {
		return fmt.Errorf("AddCycle: nil graph: %w", core.ErrNilGraph)
	}
	return Cycle(n)(g, newBuilderConfig(opts...))
}

// AddPath adds an n-node simple path to g.
// It returns sentinel errors; it never panics.
func AddPath(g *core.Graph, n int, opts ...Option) error {
	if g == nil {
		return fmt.Errorf("AddPath: nil graph: %w", core.ErrNilGraph)
	}
	return Path(n)(g, newBuilderConfig(opts...))
}

// AddRandomSimple adds a seeded random simple graph with n nodes and m
// edges to g. Deterministic for equal (n, m, seed).
// It returns sentinel errors; it never panics.
func AddRandomSimple(g *core.Graph, n, m int, seed int64, opts ...Option) error {
	if g == nil {
		return fmt.Errorf("AddRandomSimple: nil graph: %w", core.ErrNilGraph)
	}
	return RandomSimple(n, m, seed)(g, newBuilderConfig(opts...))
}

// AddNodesFromColumns extracts whitespace-separated values from the text
// cells of the selected columns of t and adds one node per distinct
// value, using the value as the node label. Non-text cells are silently
// skipped; values whose label already exists in g are skipped unless
// WithKeepDuplicates is given.
// It returns sentinel errors; it never panics.
func AddNodesFromColumns(g *core.Graph, t *tabular.Table, sels []tabular.ColumnSelector, opts ...Option) error {
	if g == nil {
		return fmt.Errorf("AddNodesFromColumns: nil graph: %w", core.ErrNilGraph)
	}
	return FromColumns(t, sels)(g, newBuilderConfig(opts...))
}
