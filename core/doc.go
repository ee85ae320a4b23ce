// Package core provides the tabular graph container: a pair of ordered
// tables (nodes, edges) with a counter-based identity model, an append-only
// action log, deferred graph actions, and a post-mutation snapshot hook.
//
// The container G holds:
//
//   - a node table with fixed leading columns id, type, label plus
//     arbitrary caller-supplied attribute columns;
//   - an edge table with fixed leading columns id, from, to, rel plus
//     arbitrary attribute columns — every from/to references an existing
//     node id at commit time;
//   - monotonic high-water counters lastNode/lastEdge allocating IDs that
//     are never reused, even after deletions;
//   - a directedness flag fixed at construction;
//   - global attribute bindings scoped to graph, node or edge;
//   - the append-only log: one immutable entry per mutating call with a
//     strictly increasing Version starting at 1;
//   - deferred graph actions re-applied after every structural mutation.
//
// Why counters instead of row positions?
//
//   - Composition (Combine/Absorb) renumbers an incoming graph by simple
//     offset addition: node IDs and edge endpoint references shift by the
//     base's lastNode, edge IDs by the base's lastEdge. Base rows precede
//     incoming rows, so display order is stable.
//   - Deleting a row never frees its ID, so merged graphs can never
//     collide.
//
// Configuration (GraphOption):
//
//	– WithDirected(bool)            directedness, immutable afterwards
//	– WithLogger(*slog.Logger)      failure reporting for hooks (default: discard)
//	– WithSnapshotWriter(w)         persistence collaborator (snapshot package)
//	– WithBackups()                 write a snapshot after every mutation
//	– WithGlobalAttr(a, v, kind)    seed a global attribute binding
//	– WithCounterFloor(n, e)        raise counters (snapshot restore)
//	– WithHistory(entries...)       seed the log (snapshot restore)
//
// Mutators (AddNode, AddNodeTable, AddEdge, AddEdgeTable, DeleteNode,
// DeleteEdge, SetNodeAttrs, SetEdgeAttrs, SetGlobalAttr, DeleteGlobalAttr,
// Absorb) are all-or-nothing: validation precedes any state change, and a
// returned error guarantees nothing was applied and nothing was logged.
// After a successful mutation the container runs its deferred actions in
// registration order and then, when backups are enabled, hands itself to
// the SnapshotWriter; failures of either are reported to the logger and
// never roll back the mutation.
//
// A single RWMutex makes the container safe for concurrent readers. The
// design assumes one mutating caller at a time; the lock exists so hooks
// and readers observe consistent state, not to serialize contending
// writers with useful fairness.
package core
