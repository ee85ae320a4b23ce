// SPDX-License-Identifier: MIT
// Package: graphframe/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   - labels    = auto (stringified sequential ID)
//   - type/rel  = unset (stored as null cells)
//   - attrs     = none
//   - keepDuplicates = false (FromColumns excludes existing labels)

package builder

import "github.com/graphframe/graphframe/tabular"

// labelMode discriminates the three label policies of the table builders.
type labelMode uint8

const (
	// labelAuto assigns the stringified sequential ID.
	labelAuto labelMode = iota
	// labelNone assigns the empty string.
	labelNone
	// labelExplicit assigns the caller-supplied vector (length-checked).
	labelExplicit
)

// attrVec is one positional attribute vector supplied via options.
type attrVec struct {
	name  string
	cells []tabular.Value
}

// builderConfig aggregates all knobs used by the table builders and
// shape constructors. Passed by value: immutable to constructors.
type builderConfig struct {
	// Node knobs.
	nodeType  string   // scalar type for every node ("" = null)
	nodeTypes []string // per-node types; length-checked when set
	labels    labelMode
	labelVals []string // explicit labels; length-checked
	nodeAttrs []attrVec

	// Edge knobs.
	rel       string
	rels      []string
	edgeAttrs []attrVec

	// FromColumns knob.
	keepDuplicates bool
}

// newBuilderConfig resolves deterministic defaults, then applies options
// in the given order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
