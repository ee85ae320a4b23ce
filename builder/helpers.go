// SPDX-License-Identifier: MIT
// Package: graphframe/builder
//
// helpers.go - shared plumbing for the shape constructors.
//
// Every impl_*.go constructor follows the same two-phase protocol:
//  1. Assemble the shape as a standalone container (NodeSeq/EdgeSeq +
//     core.FromTables) with local IDs 1..n. Nothing touches the target
//     graph, so a failed assembly leaves g untouched.
//  2. Absorb the shape into the target under the constructor's log
//     operation name. core renumbers the local IDs against g's
//     counters, which makes every shape position-independent.
//
// The shape container is built with the target's directedness, so the
// absorb step can never fail on a directedness mismatch.

package builder

import (
	"fmt"

	"github.com/graphframe/graphframe/core"
	"github.com/graphframe/graphframe/tabular"
)

// mergeShape assembles (nodes, edges) into a throwaway container and
// absorbs it into g as one logged mutation named op.
// Complexity: O(rows * columns) once for assembly and once for absorb.
func mergeShape(g *core.Graph, nodes, edges *tabular.Table, op string) error {
	shape, err := core.FromTables(nodes, edges, core.WithDirected(g.Directed()))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = g.Absorb(shape, core.WithOperationName(op)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// seqEndpoints fills from/to for a chain 1->2->...->n, with an optional
// closing edge n->1. Emission order is ascending source index.
func seqEndpoints(n int, closed bool) (from, to []int64) {
	m := n - 1
	if closed {
		m = n
	}
	from = make([]int64, 0, m)
	to = make([]int64, 0, m)
	for i := 1; i < n; i++ {
		from = append(from, int64(i))
		to = append(to, int64(i+1))
	}
	if closed {
		from = append(from, int64(n))
		to = append(to, 1)
	}
	return from, to
}
