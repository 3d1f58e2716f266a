// SPDX-License-Identifier: MIT
// Package: gamma/planarity
//
// state.go — the embedding state of one piece.
//
// Model:
//   • Each vertex carries a monotonic state (unvisited → embedded), the set of
//     neighbours whose edge is not yet embedded, and the set of face ids whose
//     boundary it lies on.
//   • skeleton holds the embedded edges in insertion order.
//   • boundaries is the face registry: face id → cyclic boundary walk over
//     skeleton edges. A face is still defined by id membership of vertices;
//     the registry only orders those members, and the two always agree.
//
// The embedded part stays 2-connected (a cycle plus paths between distinct
// boundary vertices), so every boundary walk is a simple cycle.
package planarity

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

type vertexState uint8

const (
	vertexUnvisited vertexState = iota
	vertexEmbedded
)

type vertexRecord struct {
	state     vertexState
	remaining mapset.Set[int]
	faces     mapset.Set[int]
}

type embedding struct {
	vertices   []vertexRecord
	skeleton   [][]int
	boundaries map[int][]int
	nextFace   int
}

// newEmbedding builds an empty embedding over a normalised adjacency.
func newEmbedding(adj [][]int) *embedding {
	st := &embedding{
		vertices:   make([]vertexRecord, len(adj)),
		skeleton:   make([][]int, len(adj)),
		boundaries: make(map[int][]int),
	}
	for v, nbrs := range adj {
		st.vertices[v] = vertexRecord{
			state:     vertexUnvisited,
			remaining: mapset.NewThreadUnsafeSet[int](nbrs...),
			faces:     mapset.NewThreadUnsafeSet[int](),
		}
	}

	return st
}

func (st *embedding) embedded(v int) bool {
	return st.vertices[v].state == vertexEmbedded
}

func (st *embedding) markEmbedded(v int) {
	st.vertices[v].state = vertexEmbedded
}

// neighbours returns the remaining neighbours of v in ascending order.
func (st *embedding) neighbours(v int) []int {
	out := st.vertices[v].remaining.ToSlice()
	slices.Sort(out)

	return out
}

// addSkeletonEdge moves the edge {u,v} from the remaining graph into the
// skeleton.
func (st *embedding) addSkeletonEdge(u, v int) {
	st.vertices[u].remaining.Remove(v)
	st.vertices[v].remaining.Remove(u)
	st.skeleton[u] = append(st.skeleton[u], v)
	st.skeleton[v] = append(st.skeleton[v], u)
}

func (st *embedding) allocFace() int {
	id := st.nextFace
	st.nextFace++

	return id
}

// embedCycle commits the initial cycle: two faces (inside and outside), both
// carried by every cycle vertex.
func (st *embedding) embedCycle(cycle []int) {
	inner, outer := st.allocFace(), st.allocFace()
	for i, v := range cycle {
		st.addSkeletonEdge(v, cycle[(i+1)%len(cycle)])
		st.vertices[v].faces.Add(inner)
		st.vertices[v].faces.Add(outer)
		st.markEmbedded(v)
	}
	st.boundaries[inner] = slices.Clone(cycle)
	reversed := slices.Clone(cycle)
	slices.Reverse(reversed)
	st.boundaries[outer] = reversed
}

// splitFace divides face old by a chord or path from → inner... → to.
//
// The boundary of old is walked from `from` until `to`; the vertices strictly
// between them lose old and gain fresh. from and to gain fresh, every inner
// vertex gains both ids, and the opposite arc keeps old unchanged.
func (st *embedding) splitFace(old, fresh, from, to int, inner []int) error {
	walk, ok := st.boundaries[old]
	if !ok {
		return fmt.Errorf("splitFace: face %d not registered: %w", old, ErrInternal)
	}
	i, j := slices.Index(walk, from), slices.Index(walk, to)
	if i < 0 || j < 0 || i == j {
		return fmt.Errorf("splitFace: face %d: endpoints %d,%d not on boundary: %w", old, from, to, ErrInternal)
	}

	// 1) Rotate so the walk starts at from; to then sits at index j.
	k := len(walk)
	rot := make([]int, 0, k)
	rot = append(rot, walk[i:]...)
	rot = append(rot, walk[:i]...)
	j = (j - i + k) % k

	back := slices.Clone(inner)
	slices.Reverse(back)

	// 2) fresh: from → … → to along the walk, then back over the inner path.
	moved := slices.Clone(rot[:j+1])
	moved = append(moved, back...)
	// 3) old: to → … → from along the rest of the walk, then over the path.
	kept := slices.Clone(rot[j:])
	kept = append(kept, rot[0])
	kept = append(kept, inner...)

	// 4) Relabel vertex face sets to match both new boundaries.
	for _, v := range rot[1:j] {
		st.vertices[v].faces.Remove(old)
		st.vertices[v].faces.Add(fresh)
	}
	st.vertices[from].faces.Add(fresh)
	st.vertices[to].faces.Add(fresh)
	for _, v := range inner {
		st.vertices[v].faces.Add(old)
		st.vertices[v].faces.Add(fresh)
	}

	st.boundaries[old] = kept
	st.boundaries[fresh] = moved

	return nil
}
