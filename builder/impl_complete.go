// SPDX-License-Identifier: MIT
// Package: gamma/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j}, i<j, exactly once in lexicographic order.
//
// Complexity: O(n²) time, O(1) extra space.
package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(a *Adjacency, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := a.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := a.AddEdge(base+i, base+j); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}
