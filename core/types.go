// SPDX-License-Identifier: MIT
// Package: graphframe/core
//
// types.go — the Graph container, its log/action/attribute records, the
// SnapshotWriter collaborator interface, and the GraphOption constructors.
//
// Identity model (the contract the whole repository rests on):
//   - Node and edge IDs are positive int64 values, unique within their
//     table, allocated from the container's lastNode/lastEdge counters.
//   - The counters are monotonic high-water marks: they never decrease,
//     even when rows are deleted, so IDs are never reused and composition
//     can renumber an incoming graph by simple offset addition.
//   - directed is fixed at construction and immutable afterwards.
//
// Every structural mutation appends exactly one log entry (strictly
// increasing Version starting at 1), then re-invokes the registered graph
// actions in registration order, then — when backups are enabled — hands
// the container to the SnapshotWriter. Action and snapshot failures are
// logged and never roll back the mutation.

package core

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/graphframe/graphframe/tabular"
)

// Fixed schema column names. Node tables always begin with id, type and
// label; edge tables with id, from, to and rel. Arbitrary caller-supplied
// attribute columns follow on the right.
const (
	// ColID is the primary-key column of both tables.
	ColID = "id"
	// ColType is the optional free-text group label of a node.
	ColType = "type"
	// ColLabel is the display label of a node (defaults to the stringified ID).
	ColLabel = "label"
	// ColFrom is the source node ID of an edge.
	ColFrom = "from"
	// ColTo is the destination node ID of an edge.
	ColTo = "to"
	// ColRel is the optional relationship label of an edge.
	ColRel = "rel"
)

// LogEntry is one immutable record of the append-only action log.
type LogEntry struct {
	// Version is the 1-based, strictly increasing entry number.
	Version int

	// Operation is the canonical name of the mutating call.
	Operation string

	// Timestamp is when the operation started.
	Timestamp time.Time

	// Duration is how long the operation took to commit.
	Duration time.Duration

	// Nodes and Edges are the table row counts after the operation.
	Nodes int
	Edges int
}

// GraphAction is a named deferred transformation re-invoked after every
// structural mutation, in registration order. Actions are a pass-through
// hook: their errors are reported to the container's logger and never
// abort or roll back the triggering mutation. Mutations performed inside
// an action are logged but do not re-trigger actions or snapshots.
type GraphAction struct {
	// Name identifies the action for registration bookkeeping.
	Name string

	// Fn is the transformation applied to the mutated container.
	Fn func(*Graph) error
}

// AttrKind scopes a global attribute binding.
type AttrKind uint8

const (
	// AttrGraph binds an attribute to the graph as a whole.
	AttrGraph AttrKind = iota + 1
	// AttrNode binds a default attribute for nodes.
	AttrNode
	// AttrEdge binds a default attribute for edges.
	AttrEdge
)

// String renders the kind for logs and serialization.
func (k AttrKind) String() string {
	switch k {
	case AttrGraph:
		return "graph"
	case AttrNode:
		return "node"
	case AttrEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// GlobalAttr is one global attribute binding carried by the container.
type GlobalAttr struct {
	// Attr is the attribute name.
	Attr string

	// Value is the bound value.
	Value tabular.Value

	// Kind scopes the binding (graph, node or edge).
	Kind AttrKind
}

// Attr is a single named attribute value supplied to AddNode/AddEdge.
type Attr struct {
	// Name is the attribute column the value lands in.
	Name string

	// Value is the cell written for the new row.
	Value tabular.Value
}

// SnapshotWriter persists a full container state. Implementations live in
// the snapshot package; the core only consults the writer after mutations
// when backups are enabled, and treats failures as best-effort.
type SnapshotWriter interface {
	// WriteSnapshot serializes the container. It must not mutate g.
	WriteSnapshot(g *Graph) error
}

// Graph is the tabular graph container.
//
// A single RWMutex guards all state; the container is safe for concurrent
// readers but the design assumes one mutating caller at a time (see doc.go).
type Graph struct {
	mu sync.RWMutex

	// directed is fixed at construction.
	directed bool

	// nodes: id, type, label, attribute columns...
	// edges: id, from, to, rel, attribute columns...
	nodes *tabular.Table
	edges *tabular.Table

	// lastNode/lastEdge are the monotonic high-water ID counters.
	lastNode int64
	lastEdge int64

	// log is the append-only audit trail.
	log []LogEntry

	// actions are the deferred transformations, in registration order.
	actions []GraphAction

	// replaying is set while actions run, so nested mutations do not
	// re-trigger actions or snapshots.
	replaying bool

	// globalAttrs are the container-level attribute bindings.
	globalAttrs []GlobalAttr

	// writeBackups + backup implement the post-mutation snapshot hook.
	writeBackups bool
	backup       SnapshotWriter

	// logger reports action/snapshot failures; discards by default.
	logger *slog.Logger
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the container (immutable afterwards).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLogger attaches a structured logger for action and snapshot failure
// reporting. Panics on nil (programmer error; pass nothing for the default).
func WithLogger(l *slog.Logger) GraphOption {
	if l == nil {
		panic("core: WithLogger(nil)")
	}

	return func(g *Graph) { g.logger = l }
}

// WithSnapshotWriter attaches the persistence collaborator consulted after
// mutations. Panics on nil. Writing starts once WithBackups is also set.
func WithSnapshotWriter(w SnapshotWriter) GraphOption {
	if w == nil {
		panic("core: WithSnapshotWriter(nil)")
	}

	return func(g *Graph) { g.backup = w }
}

// WithBackups enables the best-effort snapshot write after every mutation.
func WithBackups() GraphOption {
	return func(g *Graph) { g.writeBackups = true }
}

// WithGlobalAttr seeds one global attribute binding at construction.
func WithGlobalAttr(attr string, value tabular.Value, kind AttrKind) GraphOption {
	if attr == "" {
		panic("core: WithGlobalAttr(empty attr)")
	}

	return func(g *Graph) {
		g.globalAttrs = append(g.globalAttrs, GlobalAttr{Attr: attr, Value: value, Kind: kind})
	}
}

// WithCounterFloor raises the ID counters to at least the given values.
// Snapshot restoration uses it to preserve high-water marks that exceed the
// highest surviving ID. Panics on negative input.
func WithCounterFloor(lastNode, lastEdge int64) GraphOption {
	if lastNode < 0 || lastEdge < 0 {
		panic("core: WithCounterFloor(negative)")
	}

	return func(g *Graph) {
		if lastNode > g.lastNode {
			g.lastNode = lastNode
		}
		if lastEdge > g.lastEdge {
			g.lastEdge = lastEdge
		}
	}
}

// WithHistory seeds the action log with previously recorded entries.
// Construction then records no create entry of its own, so a restored
// container continues its original version sequence.
func WithHistory(entries ...LogEntry) GraphOption {
	return func(g *Graph) {
		g.log = append(g.log, entries...)
	}
}

// NewGraph creates an empty container and records the create operation.
// By default the graph is undirected, silent and without backups.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	start := time.Now()
	g := &Graph{
		nodes:  emptyNodeTable(),
		edges:  emptyEdgeTable(),
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	// A restored history owns the version sequence; otherwise this is
	// version 1.
	if len(g.log) == 0 {
		g.appendLogLocked(opCreateGraph, start)
	}
	g.afterMutation(opCreateGraph)

	return g
}

// emptyNodeTable returns the zero-row node schema: id, type, label.
func emptyNodeTable() *tabular.Table {
	return tabular.MustNewTable(
		tabular.Column{Name: ColID, Cells: []tabular.Value{}},
		tabular.Column{Name: ColType, Cells: []tabular.Value{}},
		tabular.Column{Name: ColLabel, Cells: []tabular.Value{}},
	)
}

// emptyEdgeTable returns the zero-row edge schema: id, from, to, rel.
func emptyEdgeTable() *tabular.Table {
	return tabular.MustNewTable(
		tabular.Column{Name: ColID, Cells: []tabular.Value{}},
		tabular.Column{Name: ColFrom, Cells: []tabular.Value{}},
		tabular.Column{Name: ColTo, Cells: []tabular.Value{}},
		tabular.Column{Name: ColRel, Cells: []tabular.Value{}},
	)
}

// discardLogger is the default nop logger.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
