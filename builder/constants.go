// SPDX-License-Identifier: MIT
// Package: graphframe/builder
//
// constants.go — shared constants: canonical method names for error
// context, operation names recorded in the target's action log, and the
// per-shape minimum node counts.

package builder

// Canonical constructor names used to prefix errors.
const (
	// MethodNodeSeq is the canonical name for the NodeSeq table builder.
	MethodNodeSeq = "NodeSeq"
	// MethodEdgeSeq is the canonical name for the EdgeSeq table builder.
	MethodEdgeSeq = "EdgeSeq"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodRandomSimple is the canonical name for the RandomSimple constructor.
	MethodRandomSimple = "RandomSimple"
	// MethodFromColumns is the canonical name for the FromColumns constructor.
	MethodFromColumns = "FromColumns"
)

// Operation names recorded in the target graph's action log.
const (
	opAddStar        = "add_star"
	opAddCycle       = "add_cycle"
	opAddPath        = "add_path"
	opAddRandom      = "add_random_graph"
	opAddFromColumns = "add_nodes_from_columns"
)

// Minimum node counts per shape.
const (
	// MinStarNodes: a star is one center plus at least three leaves.
	MinStarNodes = 4
	// MinCycleNodes: fewer than 3 nodes cannot form a ring without loops
	// or parallel edges.
	MinCycleNodes = 3
	// MinPathNodes: a path of fewer than 2 nodes has no edges.
	MinPathNodes = 2
	// MinSeqNodes: a node sequence must be non-empty.
	MinSeqNodes = 1
)
