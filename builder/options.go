// SPDX-License-Identifier: MIT
// Package: graphframe/builder
//
// options.go — functional options for the table builders and shape
// constructors.
//
// Contract:
//   - Options validate their inputs eagerly and panic on clear misuse
//     (nil vector, empty attribute name). Runtime builder functions
//     never panic: length mismatches against the eventual node/edge
//     count surface as errors from NodeSeq/EdgeSeq instead, because the
//     count is not known at option-application time.
//   - Later options override earlier ones for the same knob.

package builder

import "github.com/graphframe/graphframe/tabular"

// Option mutates a builderConfig during construction.
type Option func(*builderConfig)

// WithType assigns the same type string to every generated node.
// An empty string restores the default (null type cells).
func WithType(typ string) Option {
	return func(cfg *builderConfig) {
		cfg.nodeType = typ
		cfg.nodeTypes = nil
	}
}

// WithTypes assigns one type per generated node.
// The vector length is checked against the node count by NodeSeq.
// Panics if types is nil.
func WithTypes(types []string) Option {
	if types == nil {
		panic("builder.WithTypes: nil slice")
	}
	return func(cfg *builderConfig) {
		cfg.nodeTypes = types
		cfg.nodeType = ""
	}
}

// WithLabels assigns explicit labels to the generated nodes, one per
// node. The vector length is checked against the node count by NodeSeq.
// Panics if labels is nil.
func WithLabels(labels []string) Option {
	if labels == nil {
		panic("builder.WithLabels: nil slice")
	}
	return func(cfg *builderConfig) {
		cfg.labels = labelExplicit
		cfg.labelVals = labels
	}
}

// WithoutLabels suppresses automatic labelling: every generated node
// gets the empty-string label instead of its stringified ID.
func WithoutLabels() Option {
	return func(cfg *builderConfig) {
		cfg.labels = labelNone
		cfg.labelVals = nil
	}
}

// WithRel assigns the same relationship string to every generated edge.
// An empty string restores the default (null rel cells).
func WithRel(rel string) Option {
	return func(cfg *builderConfig) {
		cfg.rel = rel
		cfg.rels = nil
	}
}

// WithRels assigns one relationship per generated edge.
// The vector length is checked against the edge count by EdgeSeq.
// Panics if rels is nil.
func WithRels(rels []string) Option {
	if rels == nil {
		panic("builder.WithRels: nil slice")
	}
	return func(cfg *builderConfig) {
		cfg.rels = rels
		cfg.rel = ""
	}
}

// WithNodeAttr attaches one extra positional attribute column to the
// generated node table. May be repeated for several columns; the vector
// length is checked against the node count by NodeSeq.
// Panics if name is empty or cells is nil.
func WithNodeAttr(name string, cells []tabular.Value) Option {
	if name == "" {
		panic("builder.WithNodeAttr: empty name")
	}
	if cells == nil {
		panic("builder.WithNodeAttr: nil cells")
	}
	return func(cfg *builderConfig) {
		cfg.nodeAttrs = append(cfg.nodeAttrs, attrVec{name: name, cells: cells})
	}
}

// WithEdgeAttr attaches one extra positional attribute column to the
// generated edge table. May be repeated; the vector length is checked
// against the edge count by EdgeSeq.
// Panics if name is empty or cells is nil.
func WithEdgeAttr(name string, cells []tabular.Value) Option {
	if name == "" {
		panic("builder.WithEdgeAttr: empty name")
	}
	if cells == nil {
		panic("builder.WithEdgeAttr: nil cells")
	}
	return func(cfg *builderConfig) {
		cfg.edgeAttrs = append(cfg.edgeAttrs, attrVec{name: name, cells: cells})
	}
}

// WithKeepDuplicates disables the label-dedup step of
// AddNodesFromColumns: extracted values are added even when a node with
// the same label already exists in the target graph.
func WithKeepDuplicates() Option {
	return func(cfg *builderConfig) {
		cfg.keepDuplicates = true
	}
}
