// SPDX-License-Identifier: MIT
// Package: gamma/builder
//
// impl_platonic.go — implementation of PlatonicSolid(name, withCenter).
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron};
//     anything else → ErrOptionViolation.
//   • Shell vertices occupy a fresh block in index order; edges follow the
//     pre-sorted tables of variants_platonic.go.
//   • withCenter appends one hub vertex joined to every shell vertex. A graph
//     plus a universal vertex is planar iff the graph is outerplanar; no
//     Platonic shell is, so every hubbed solid is non-planar.
package builder

import "fmt"

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally with a hub connected by spokes to all shell vertices.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(a *Adjacency, _ builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		base := a.AddVertices(n)
		if err := addEdges(a, methodPlatonicSolid, base, platonicEdgeSets[name]); err != nil {
			return err
		}
		if !withCenter {
			return nil
		}

		hub := a.AddVertices(1)
		for i := 0; i < n; i++ {
			if err := a.AddEdge(hub, base+i); err != nil {
				return fmt.Errorf("%s: %w", methodPlatonicSolid, err)
			}
		}

		return nil
	}
}
