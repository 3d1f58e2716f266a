// SPDX-License-Identifier: MIT
// Package: gamma/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Allocates n fresh vertices b..b+n-1 and emits i-((i+1) mod n) for i asc.
//
// Complexity: O(n) time, O(1) extra space.
package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(a *Adjacency, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := a.AddVertices(n)
		for i := 0; i < n; i++ {
			if err := a.AddEdge(base+i, base+(i+1)%n); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}

		return nil
	}
}
