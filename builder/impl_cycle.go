// SPDX-License-Identifier: MIT
// Package: graphframe/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n >= MinCycleNodes (else ErrMinimumSize).
//   - Shape-local nodes 1..n; ring edges i -> i+1 plus the closing edge
//     n -> 1, emitted in ascending source order.
//   - Returns only sentinel errors; never panics.
//
// Complexity: O(n) nodes + O(n) edges; O(1) extra space.

package builder

import (
	"fmt"

	"github.com/graphframe/graphframe/core"
)

// Cycle returns a Constructor that adds an n-node simple cycle to the
// target graph.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrMinimumSize)
		}

		nodes, err := nodeSeq(n, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodCycle, err)
		}

		from, to := seqEndpoints(n, true)
		edges, err := edgeSeq(from, to, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodCycle, err)
		}

		return mergeShape(g, nodes, edges, opAddCycle)
	}
}
