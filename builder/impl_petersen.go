// SPDX-License-Identifier: MIT
// Package: gamma/builder
//
// impl_petersen.go — implementation of Petersen() constructor.
//
// Outer pentagon 0..4, spokes i-(i+5), inner pentagram (5+i)-(5+((i+2) mod 5)).
// 10 vertices, 15 edges, 3-regular, contains a subdivided K3,3: not planar.
package builder

import "fmt"

const (
	methodPetersen = "Petersen"
	petersenRing   = 5
)

// Petersen returns a Constructor for the Petersen graph.
func Petersen() Constructor {
	return func(a *Adjacency, _ builderConfig) error {
		base := a.AddVertices(2 * petersenRing)
		for i := 0; i < petersenRing; i++ {
			outer := base + i
			inner := base + petersenRing + i
			pairs := [][2]int{
				{outer, base + (i+1)%petersenRing},
				{outer, inner},
				{inner, base + petersenRing + (i+2)%petersenRing},
			}
			for _, p := range pairs {
				if err := a.AddEdge(p[0], p[1]); err != nil {
					return fmt.Errorf("%s: %w", methodPetersen, err)
				}
			}
		}

		return nil
	}
}
