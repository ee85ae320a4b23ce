// SPDX-License-Identifier: MIT
// Package: graphframe/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n >= MinPathNodes (else ErrMinimumSize).
//   - Shape-local nodes 1..n; chain edges i -> i+1 in ascending order.
//   - Returns only sentinel errors; never panics.
//
// Complexity: O(n) nodes + O(n-1) edges; O(1) extra space.

package builder

import (
	"fmt"

	"github.com/graphframe/graphframe/core"
)

// Path returns a Constructor that adds an n-node simple path to the
// target graph.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrMinimumSize)
		}

		nodes, err := nodeSeq(n, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodPath, err)
		}

		from, to := seqEndpoints(n, false)
		edges, err := edgeSeq(from, to, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodPath, err)
		}

		return mergeShape(g, nodes, edges, opAddPath)
	}
}
