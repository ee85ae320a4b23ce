// Package graphframe is an in-memory playground for building, composing
// and analyzing property graphs backed by paired node and edge tables.
//
// 🚀 What is graphframe?
//
//	A modern, thread-safe library that brings together:
//		• Tabular primitives: columnar tables, filters, aggregations
//		• Graph container: node/edge tables, monotonic ID counters,
//		  append-only action log, deferred graph actions
//		• Composition: merge whole graphs with automatic ID renumbering
//		• Builders: star, cycle, path, seeded random and column-harvested
//		  topologies
//		• Measures: degree and coreness, delegated to gonum
//		• Persistence: JSON snapshot files and embedded BadgerDB history
//
// ✨ Why choose graphframe?
//
//   - Table-native – nodes and edges stay addressable as data frames
//   - Rock-solid guarantees – R/W locks, append-only history, validated
//     referential integrity
//   - Deterministic – seeded generators, stable emission orders
//   - Extensible – register deferred actions that run after every mutation
//
// Under the hood, everything is organized under five subpackages:
//
//	tabular/  — columnar Table, Column, filters & aggregation kernels
//	core/     — the Graph container, composition engine, action log
//	builder/  — shape constructors & the NodeSeq/EdgeSeq table builders
//	metrics/  — degree & coreness measures over gonum conversions
//	snapshot/ — JSON document codec, file writer, BadgerDB store
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    4───3
//
//	g := core.NewGraph()
//	_ = builder.AddCycle(g, 4)
//
// Start with core.NewGraph, grow the container with builder shapes or
// your own tables, measure with metrics, and persist with snapshot.
package graphframe
