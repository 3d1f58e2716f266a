// SPDX-License-Identifier: MIT
// Package: gamma/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): rim C_{n-1} plus a hub.
//   • Rim vertices come first (b..b+n-2), the hub is the last vertex (b+n-1).
//   • Spokes are emitted by increasing rim index.
package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // the rim has n-1 vertices and must be a cycle
)

// Wheel returns a Constructor that builds the wheel W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(a *Adjacency, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		rim := a.Order()
		if err := Cycle(n-1)(a, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := a.AddVertices(1)
		for i := 0; i < n-1; i++ {
			if err := a.AddEdge(hub, rim+i); err != nil {
				return fmt.Errorf("%s: %w", methodWheel, err)
			}
		}

		return nil
	}
}
