// SPDX-License-Identifier: MIT
// Package: graphframe/core
//
// log.go — the append-only action log and the post-mutation hook chain.
//
// Contract:
//   - Exactly one entry per mutating call, appended after the state change
//     and before the deferred actions run.
//   - Version = len(log) + 1 at append time: strictly increasing from 1.
//   - Entries are immutable once appended; the log is never truncated.
//   - Appending never fails.
//
// Hook chain after every mutation: actions in registration order, then the
// snapshot writer (best-effort). Both run without the container lock held,
// so actions may call mutators; such nested mutations log entries but do
// not re-enter the hook chain (replaying guard).

package core

import "time"

// Canonical operation names recorded in the log and used as error context.
const (
	opCreateGraph     = "create_graph"
	opAddNode         = "add_node"
	opAddNodeTable    = "add_node_table"
	opAddEdge         = "add_edge"
	opAddEdgeTable    = "add_edge_table"
	opDeleteNode      = "delete_node"
	opDeleteEdge      = "delete_edge"
	opSetNodeAttrs    = "set_node_attrs"
	opSetEdgeAttrs    = "set_edge_attrs"
	opSetGlobalAttr   = "set_global_attr"
	opDelGlobalAttr   = "delete_global_attr"
	opCombine         = "combine"
	opRegisterAction  = "register_action"
	opValidate        = "validate"
	opNodeAttr        = "node_attr"
	opEdgeAttr        = "edge_attr"
	opAggregateNodes  = "aggregate_node_attr"
	opAggregateEdges  = "aggregate_edge_attr"
	opFromTables      = "create_graph_from_tables"
	opAbsorb          = "absorb"
)

// appendLogLocked records one entry for op. Caller holds the write lock
// (or, during construction, exclusive ownership of g).
func (g *Graph) appendLogLocked(op string, start time.Time) {
	g.log = append(g.log, LogEntry{
		Version:   len(g.log) + 1,
		Operation: op,
		Timestamp: start,
		Duration:  time.Since(start),
		Nodes:     g.nodes.NumRows(),
		Edges:     g.edges.NumRows(),
	})
}

// afterMutation runs the deferred actions and the snapshot write for op.
// Must be called without the lock held. Nested invocations (mutations made
// by an action) return immediately.
func (g *Graph) afterMutation(op string) {
	g.mu.Lock()
	if g.replaying {
		g.mu.Unlock()

		return
	}
	g.replaying = true

	// Copy hook state under the lock; run hooks outside it.
	actions := make([]GraphAction, len(g.actions))
	copy(actions, g.actions)
	writer := g.backup
	doBackup := g.writeBackups && writer != nil
	logger := g.logger
	g.mu.Unlock()

	for _, a := range actions {
		if err := a.Fn(g); err != nil {
			logger.Warn("graph action failed",
				"action", a.Name, "operation", op, "error", err)
		}
	}

	if doBackup {
		if err := writer.WriteSnapshot(g); err != nil {
			logger.Warn("snapshot write failed", "operation", op, "error", err)
		}
	}

	g.mu.Lock()
	g.replaying = false
	g.mu.Unlock()
}
