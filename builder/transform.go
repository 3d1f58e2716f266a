// SPDX-License-Identifier: MIT
// Package: gamma/builder
//
// transform.go — pure transforms over adjacency-list graphs.
//
// Contract:
//   • Inputs are never mutated; every transform returns fresh lists.
//   • Output lists are sorted ascending and free of duplicates.
//   • Relabel validates the permutation; the edge helpers ignore
//     out-of-range ids rather than failing.
package builder

import (
	"fmt"
	"slices"
)

const methodRelabel = "Relabel"

// Relabel returns the graph with vertex v renamed to perm[v].
// Errors: ErrBadPermutation if perm is not a bijection on 0..len(g)-1.
func Relabel(g [][]int, perm []int) ([][]int, error) {
	n := len(g)
	if len(perm) != n {
		return nil, fmt.Errorf("%s: len(perm)=%d, want %d: %w", methodRelabel, len(perm), n, ErrBadPermutation)
	}
	seen := make([]bool, n)
	for v, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, fmt.Errorf("%s: perm[%d]=%d: %w", methodRelabel, v, p, ErrBadPermutation)
		}
		seen[p] = true
	}

	out := make([][]int, n)
	for v, nbrs := range g {
		row := make([]int, 0, len(nbrs))
		for _, u := range nbrs {
			if u >= 0 && u < n {
				row = append(row, perm[u])
			}
		}
		out[perm[v]] = row
	}

	return canonical(out), nil
}

// AddEdge returns a copy of g with the undirected edge {u,v} present.
// A loop or an out-of-range id leaves the copy unchanged.
func AddEdge(g [][]int, u, v int) [][]int {
	out := clone(g)
	if u == v || u < 0 || v < 0 || u >= len(out) || v >= len(out) {
		return out
	}
	out[u] = append(out[u], v)
	out[v] = append(out[v], u)

	return canonical(out)
}

// RemoveEdge returns a copy of g without the undirected edge {u,v}.
func RemoveEdge(g [][]int, u, v int) [][]int {
	out := clone(g)
	if u < 0 || v < 0 || u >= len(out) || v >= len(out) {
		return out
	}
	out[u] = slices.DeleteFunc(out[u], func(x int) bool { return x == v })
	out[v] = slices.DeleteFunc(out[v], func(x int) bool { return x == u })

	return out
}

// DisjointUnion places the graphs side by side, shifting the ids of each
// graph past those of the graphs before it.
func DisjointUnion(gs ...[][]int) [][]int {
	var out [][]int
	for _, g := range gs {
		base := len(out)
		for _, nbrs := range g {
			row := make([]int, len(nbrs))
			for i, u := range nbrs {
				row[i] = base + u
			}
			out = append(out, row)
		}
	}

	return canonical(out)
}

// Edges lists every undirected edge once as {lo,hi}, ordered lexicographically.
func Edges(g [][]int) [][2]int {
	var out [][2]int
	for v, nbrs := range g {
		for _, u := range nbrs {
			if v < u {
				out = append(out, [2]int{v, u})
			}
		}
	}
	slices.SortFunc(out, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})

	return slices.Compact(out)
}

func clone(g [][]int) [][]int {
	out := make([][]int, len(g))
	for v, nbrs := range g {
		out[v] = slices.Clone(nbrs)
	}

	return out
}

// canonical sorts and deduplicates every list in place.
func canonical(g [][]int) [][]int {
	for v := range g {
		slices.Sort(g[v])
		g[v] = slices.Compact(g[v])
	}

	return g
}
