// SPDX-License-Identifier: MIT
// Package: graphframe/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n >= MinStarNodes (else ErrMinimumSize).
//   - Hub is the shape-local node 1; leaves are 2..n in ascending order.
//   - Emits spokes in stable order hub -> leaf[i] for i = 2..n.
//   - Honors the target's directedness (spokes point outward when
//     directed); returns only sentinel errors, never panics.
//
// Complexity: O(n) nodes + O(n-1) edges; O(1) extra space.
//
// Determinism: fixed hub position, ascending leaf order, stable spoke
// emission order.

package builder

import (
	"fmt"

	"github.com/graphframe/graphframe/core"
)

// Star returns a Constructor that adds a star with one hub and n-1
// leaves to the target graph.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrMinimumSize)
		}

		nodes, err := nodeSeq(n, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodStar, err)
		}

		// Spokes fan out from the hub in ascending leaf order.
		from := make([]int64, 0, n-1)
		to := make([]int64, 0, n-1)
		for leaf := int64(2); leaf <= int64(n); leaf++ {
			from = append(from, 1)
			to = append(to, leaf)
		}

		edges, err := edgeSeq(from, to, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodStar, err)
		}

		return mergeShape(g, nodes, edges, opAddStar)
	}
}
