// SPDX-License-Identifier: MIT
// Package: graphframe/builder
//
// impl_random.go - implementation of RandomSimple(n, m, seed).
//
// Contract:
//   - n >= MinSeqNodes (else ErrMinimumSize); m >= 0 (else ErrBadSize).
//   - m must not exceed the simple-graph capacity: n*(n-1) ordered
//     pairs when the target is directed, n*(n-1)/2 unordered pairs
//     otherwise (else ErrTooManyEdges).
//   - No self-loops and no parallel edges within the generated shape.
//   - Deterministic for equal (n, m, seed, target directedness): the
//     full candidate pair list is materialized in ascending order and
//     shuffled with rand.New(rand.NewSource(seed)); the first m pairs
//     become edges.
//
// Complexity: O(n^2) time and space for candidate materialization.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/graphframe/graphframe/core"
)

// RandomSimple returns a Constructor that adds a seeded random simple
// graph with n nodes and m edges to the target graph.
func RandomSimple(n, m int, seed int64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinSeqNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSimple, n, MinSeqNodes, ErrMinimumSize)
		}
		if m < 0 {
			return fmt.Errorf("%s: m=%d: %w", MethodRandomSimple, m, ErrBadSize)
		}

		capacity := n * (n - 1)
		if !g.Directed() {
			capacity /= 2
		}
		if m > capacity {
			return fmt.Errorf("%s: m=%d > capacity=%d for n=%d: %w",
				MethodRandomSimple, m, capacity, n, ErrTooManyEdges)
		}

		nodes, err := nodeSeq(n, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodRandomSimple, err)
		}

		// Materialize every admissible (from, to) pair in ascending order,
		// then draw m of them via a seeded shuffle.
		type pair struct{ from, to int64 }
		candidates := make([]pair, 0, capacity)
		for i := int64(1); i <= int64(n); i++ {
			for j := int64(1); j <= int64(n); j++ {
				if i == j {
					continue
				}
				if !g.Directed() && i > j {
					continue
				}
				candidates = append(candidates, pair{from: i, to: j})
			}
		}

		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(len(candidates), func(a, b int) {
			candidates[a], candidates[b] = candidates[b], candidates[a]
		})

		from := make([]int64, m)
		to := make([]int64, m)
		for i := 0; i < m; i++ {
			from[i] = candidates[i].from
			to[i] = candidates[i].to
		}

		edges, err := edgeSeq(from, to, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodRandomSimple, err)
		}

		return mergeShape(g, nodes, edges, opAddRandom)
	}
}
