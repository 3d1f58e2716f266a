// SPDX-License-Identifier: MIT
// Package: gamma/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits i-(i+1) for i = 0..n-2 over a fresh vertex block.
package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(a *Adjacency, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := a.AddVertices(n)
		for i := 0; i+1 < n; i++ {
			if err := a.AddEdge(base+i, base+i+1); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}
