// SPDX-License-Identifier: MIT
// Package: gamma/planarity
//
// validate.go — input glue: range/loop checks, symmetry policy, dedup.
//
// Contract:
//   • Every neighbour id must lie in [0,n) and differ from its owner.
//   • Duplicates collapse to one logical edge.
//   • Asymmetric entries are unioned, or rejected in strict mode.
//   • The output adjacency is symmetric and sorted ascending per vertex,
//     which fixes the traversal order of everything downstream.
package planarity

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

const methodCheck = "Check"

// normalize validates g and returns a symmetric, sorted, duplicate-free
// adjacency together with the number of undirected edges.
// Complexity: O(V + E log Δ).
func normalize(g Graph, strict bool) ([][]int, int, error) {
	n := len(g)

	// 1) Range and self-loop checks while collecting each vertex's own list.
	listed := make([]mapset.Set[int], n)
	for v := 0; v < n; v++ {
		listed[v] = mapset.NewThreadUnsafeSet[int]()
		for _, u := range g[v] {
			if u < 0 || u >= n {
				return nil, 0, fmt.Errorf("%s: vertex %d: neighbour %d out of range [0,%d): %w",
					methodCheck, v, u, n, ErrInvalidGraph)
			}
			if u == v {
				return nil, 0, fmt.Errorf("%s: vertex %d: self-loop: %w", methodCheck, v, ErrInvalidGraph)
			}
			listed[v].Add(u)
		}
	}

	// 2) Symmetry: mirror one-sided entries, or reject them in strict mode.
	for v := 0; v < n; v++ {
		for _, u := range listed[v].ToSlice() {
			if listed[u].Contains(v) {
				continue
			}
			if strict {
				return nil, 0, fmt.Errorf("%s: vertex %d lists %d but not vice versa: %w",
					methodCheck, v, u, ErrInvalidGraph)
			}
			listed[u].Add(v)
		}
	}

	// 3) Freeze into sorted slices; every edge is counted from both ends.
	adj := make([][]int, n)
	degrees := 0
	for v := 0; v < n; v++ {
		adj[v] = listed[v].ToSlice()
		slices.Sort(adj[v])
		degrees += len(adj[v])
	}

	return adj, degrees / 2, nil
}
