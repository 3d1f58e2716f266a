// SPDX-License-Identifier: MIT

// Package builder provides deterministic graph fixtures for planarity work.
//
// Graphs are plain adjacency lists ([][]int, ids 0..n-1, each list sorted
// ascending) so they feed directly into planarity.IsPlanar.
//
// Constructors:
//
//	Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid,
//	PlatonicSolid (optionally with a hub), Petersen,
//	RandomSparse (G(n,p)), RandomRegular (stub matching)
//
// Every constructor allocates its own vertex block, so
//
//	g, err := builder.BuildGraph(nil, builder.Complete(5), builder.Cycle(4))
//
// yields K5 ⊔ C4 with the cycle on ids 5..8.
//
// Transforms (Relabel, AddEdge, RemoveEdge, DisjointUnion, Edges) never
// mutate their input.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability, ...);
// branch with errors.Is. Option constructors panic on meaningless input,
// constructors never do.
package builder
