// Package gamma is a small planarity-testing toolkit built around the
// gamma algorithm.
//
// Under the hood, everything is organized under two subpackages:
//
//	planarity/ — the decision procedure: IsPlanar, Check and their options
//	builder/   — deterministic graph fixtures (cycles, complete and bipartite
//	             graphs, Platonic solids, Petersen, grids, seeded random
//	             sparse and regular graphs) and transforms (relabel, edge
//	             add/remove, disjoint union)
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
// is K4 minus the edge 1–3; it is planar, as is every graph on four vertices.
//
//	g := planarity.Graph{{1, 2, 3}, {0, 2}, {0, 1, 3}, {0, 2}}
//	ok, err := planarity.IsPlanar(g) // true, nil
//
//	go get github.com/Delton71/Gamma-algorithm/planarity
package gamma
