// SPDX-License-Identifier: MIT
// Package: gamma/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The first vertex of the block is the centre; leaves follow in order.
package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(a *Adjacency, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		centre := a.AddVertices(n)
		for i := 1; i < n; i++ {
			if err := a.AddEdge(centre, centre+i); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}
