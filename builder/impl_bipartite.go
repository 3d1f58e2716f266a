// SPDX-License-Identifier: MIT
// Package: gamma/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left part occupies b..b+n1-1, right part b+n1..b+n1+n2-1.
//   • Emits every cross pair, i asc over the left, inner j asc over the right.
//
// Complexity: O(n1·n2) time, O(1) extra space.
package builder

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(a *Adjacency, _ builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := a.AddVertices(n1)
		right := a.AddVertices(n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := a.AddEdge(left+i, right+j); err != nil {
					return fmt.Errorf("%s: %w", methodCompleteBipartite, err)
				}
			}
		}

		return nil
	}
}
