// Package builder provides functional-options-style shape constructors for
// graphframe containers: deterministic star, cycle, path and seeded random
// topologies, a column-harvesting node importer, and the two table builders
// (NodeSeq, EdgeSeq) they are all composed from.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Option:        a function that mutates builderConfig before use.
//     – builderConfig: holds type/label/rel policies and attribute vectors.
//   - Table builders:
//     – NodeSeq(n):       node table with IDs 1..n and policy-driven labels.
//     – EdgeSeq(from,to): edge table pairing two endpoint vectors.
//   - Shape constructors (each returns a Constructor closure):
//     – Star(n):             hub node 1 plus n-1 leaves (n ≥ 4).
//     – Cycle(n):            ring 1→2→…→n→1 (n ≥ 3).
//     – Path(n):             chain 1→2→…→n (n ≥ 2).
//     – RandomSimple(n,m,s): seeded simple graph, m edges from a shuffled
//       candidate list (deterministic per seed).
//     – FromColumns(t, sels): one node per distinct whitespace-separated
//       value harvested from the selected table columns.
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): fresh graph, options, constructors
//       in order.
//     – AddStar/AddCycle/AddPath/AddRandomSimple/AddNodesFromColumns: thin
//       wrappers that mutate an existing graph.
//
// Guarantees:
//
//   - Every constructor lands on the target graph as exactly one logged
//     mutation, so composition history stays one-entry-per-shape and
//     deferred graph actions fire once per shape.
//   - Shape-local IDs are renumbered against the target's counters on
//     absorption; shapes are position-independent.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; structured sentinel errors (ErrMinimumSize, ErrBadSize,
//     ErrTooManyEdges, ErrConstructFailed) at runtime, never panics.
//   - Deterministic output for equal inputs, options and seeds.
//
// See individual function documentation for detailed contracts, panic
// conditions, parameter descriptions, and performance notes.
package builder
