// SPDX-License-Identifier: MIT
// Package: gamma/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates the accumulator,
//     resolves cfg, runs cons in order.
//   - Every constructor appends its own fresh vertex block, so composing
//     several constructors yields their disjoint union.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
package builder

import (
	"fmt"
	"slices"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Allocate their vertices through a.AddVertices and touch only those.
//   - Preserve determinism for the same config and call order.
type Constructor func(a *Adjacency, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts and applies all
// constructors in order, returning the adjacency lists of the result
// (ids 0..n-1, each list ascending). Any constructor error is wrapped with
// "BuildGraph: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor + O(V + E log Δ) to freeze.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) ([][]int, error) {
	a := NewAdjacency()
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		// Reject a nil constructor instead of panicking on call.
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(a, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return a.Lists(), nil
}

// Adjacency accumulates a simple undirected graph. Vertex ids are dense and
// assigned in allocation order; parallel edges collapse, loops are rejected.
type Adjacency struct {
	lists [][]int
	edges map[[2]int]struct{}
}

// NewAdjacency returns an empty accumulator.
func NewAdjacency() *Adjacency {
	return &Adjacency{edges: make(map[[2]int]struct{})}
}

// Order returns the number of vertices.
func (a *Adjacency) Order() int { return len(a.lists) }

// Size returns the number of distinct edges.
func (a *Adjacency) Size() int { return len(a.edges) }

// AddVertices appends k isolated vertices and returns the id of the first.
func (a *Adjacency) AddVertices(k int) int {
	base := len(a.lists)
	for i := 0; i < k; i++ {
		a.lists = append(a.lists, nil)
	}

	return base
}

// AddEdge inserts the undirected edge {u,v}. A repeated edge is a no-op.
// Errors: ErrInvalidEdge for a loop or an id outside [0,Order()).
func (a *Adjacency) AddEdge(u, v int) error {
	n := len(a.lists)
	if u < 0 || v < 0 || u >= n || v >= n {
		return fmt.Errorf("AddEdge(%d,%d): order %d: %w", u, v, n, ErrInvalidEdge)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): loop: %w", u, v, ErrInvalidEdge)
	}
	key := [2]int{min(u, v), max(u, v)}
	if _, dup := a.edges[key]; dup {
		return nil
	}
	a.edges[key] = struct{}{}
	a.lists[u] = append(a.lists[u], v)
	a.lists[v] = append(a.lists[v], u)

	return nil
}

// HasEdge reports whether {u,v} is present.
func (a *Adjacency) HasEdge(u, v int) bool {
	_, ok := a.edges[[2]int{min(u, v), max(u, v)}]
	return ok
}

// Lists returns a copy of the adjacency lists, each sorted ascending.
func (a *Adjacency) Lists() [][]int {
	out := make([][]int, len(a.lists))
	for v, nbrs := range a.lists {
		out[v] = slices.Clone(nbrs)
		slices.Sort(out[v])
	}

	return out
}

// addEdges inserts a batch of edges offset by base, wrapping failures with
// the constructor's method tag.
func addEdges(a *Adjacency, method string, base int, edges []chord) error {
	for _, e := range edges {
		if err := a.AddEdge(base+e.U, base+e.V); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}

// chord is an unordered index pair local to one constructor.
type chord struct{ U, V int }
