// SPDX-License-Identifier: MIT
// Package: gamma/planarity
//
// embed.go — the embedder.
//
// Three cases, by the shape of the chosen bridge:
//  1. one contact: the fragment hangs off a single vertex and never splits a
//     face. Its edges go straight to the skeleton. If it holds a cycle it is
//     handed back as a detached piece, since a block attached at one vertex
//     is planar iff it is planar on its own.
//  2. chord: one new face; the witness face is split by the edge.
//  3. general: a path through the bridge interior joins the smallest and the
//     largest contact; one new face; the witness face is split by the path.
//     The caller rescans the path interior for the leftovers of the bridge.
package planarity

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// piece is an independent graph to test: a connected component of the input
// or a detached single-contact bridge. ids maps local ids to input ids.
type piece struct {
	adj [][]int
	ids []int
}

// embedBridge commits b into face witness. It returns the interior vertices
// of the embedded path (nil for chords and single-contact bridges) and the
// detached piece of a cyclic single-contact bridge (nil otherwise).
func (st *embedding) embedBridge(b bridge, witness int) (inner []int, detached *piece, err error) {
	switch {
	case len(b.contacts) == 1:
		return nil, st.detach(b), nil
	case b.chord():
		from, to := b.contacts[0], b.contacts[1]
		fresh := st.allocFace()
		st.addSkeletonEdge(from, to)

		return nil, nil, st.splitFace(witness, fresh, from, to, nil)
	}

	// General bridge: lowest to highest contact keeps the routing reproducible.
	from, to := b.contacts[0], b.contacts[len(b.contacts)-1]
	path, err := interiorPath(st, b, from, to)
	if err != nil {
		return nil, nil, err
	}

	fresh := st.allocFace()
	for i := 1; i < len(path); i++ {
		st.addSkeletonEdge(path[i-1], path[i])
	}
	inner = path[1 : len(path)-1]
	for _, v := range inner {
		st.markEmbedded(v)
	}
	if err = st.splitFace(witness, fresh, from, to, inner); err != nil {
		return nil, nil, err
	}

	return inner, nil, nil
}

// interiorPath finds a shortest path from → … → to whose inner vertices all
// belong to the interior of b. Breadth-first, neighbours in ascending order.
func interiorPath(st *embedding, b bridge, from, to int) ([]int, error) {
	allowed := bitset.New(uint(len(st.vertices)))
	for _, v := range b.interior {
		allowed.Set(uint(v))
	}

	prev := map[int]int{from: from}
	queue := []int{from}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range st.neighbours(v) {
			// The target is only reachable through the interior, never by a chord.
			if u == to && v != from {
				path := []int{to}
				for x := v; x != from; x = prev[x] {
					path = append(path, x)
				}
				path = append(path, from)
				slices.Reverse(path)

				return path, nil
			}
			if _, seen := prev[u]; seen || !allowed.Test(uint(u)) {
				continue
			}
			prev[u] = v
			queue = append(queue, u)
		}
	}

	return nil, fmt.Errorf("interiorPath: no path %d→%d inside bridge: %w", from, to, ErrInternal)
}

// detach moves every remaining edge of a single-contact bridge into the
// skeleton and marks its interior embedded. A tree needs nothing more; any
// other fragment is returned, relabelled to local ids, for a separate test.
func (st *embedding) detach(b bridge) *piece {
	contact := b.contacts[0]
	ids := append([]int{contact}, b.interior...)
	local := make(map[int]int, len(ids))
	for i, v := range ids {
		local[v] = i
	}

	adj := make([][]int, len(ids))
	edges := 0
	for _, v := range b.interior {
		for _, u := range st.neighbours(v) {
			// Interior–interior edges are met twice; keep the lower end's copy.
			if u != contact && u < v {
				continue
			}
			adj[local[v]] = append(adj[local[v]], local[u])
			adj[local[u]] = append(adj[local[u]], local[v])
			edges++
		}
	}
	for _, v := range b.interior {
		for _, u := range st.neighbours(v) {
			st.addSkeletonEdge(v, u)
		}
		st.markEmbedded(v)
	}

	// Connected with V-1 edges: a tree, planar as is.
	if edges < len(ids) {
		return nil
	}
	for i := range adj {
		slices.Sort(adj[i])
	}

	return &piece{adj: adj, ids: ids}
}
