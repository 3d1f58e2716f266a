// SPDX-License-Identifier: MIT
// Package: gamma/planarity
//
// cycle.go — cycle extractor.
//
// An iterative depth-first search over remaining edges. A neighbour that is
// still on the DFS path (and is not the tree parent) closes a cycle; the cycle
// is rebuilt by unwinding the frame stack back to that neighbour.
//
// All marks live in bitsets allocated per call, so no state survives between
// two extractions.
//
// Complexity: Time O(V+E) of the component, Memory O(V).
package planarity

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// dfsFrame is one level of the explicit DFS stack.
type dfsFrame struct {
	v      int
	parent int
	nbrs   []int
	next   int
}

// extractCycle returns one simple cycle (≥3 vertices, consecutive entries and
// the two ends adjacent) in the component of start. When the component is
// acyclic cycle is nil and reached lists every vertex of the component.
func extractCycle(st *embedding, start int) (cycle, reached []int) {
	n := uint(len(st.vertices))
	visited := bitset.New(n)
	onPath := bitset.New(n)

	visited.Set(uint(start))
	onPath.Set(uint(start))
	reached = append(reached, start)
	stack := []dfsFrame{{v: start, parent: -1, nbrs: st.neighbours(start)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		// 1) Frame exhausted: leave the path.
		if top.next == len(top.nbrs) {
			onPath.Clear(uint(top.v))
			stack = stack[:len(stack)-1]
			continue
		}
		u := top.nbrs[top.next]
		top.next++

		switch {
		case u == top.parent:
			// tree edge seen from below
		case onPath.Test(uint(u)):
			// 2) Back edge to an ancestor: unwind frames down to u.
			for k := len(stack) - 1; k >= 0; k-- {
				cycle = append(cycle, stack[k].v)
				if stack[k].v == u {
					break
				}
			}
			slices.Reverse(cycle)

			return cycle, reached
		case !visited.Test(uint(u)):
			// 3) Descend.
			parent := top.v
			visited.Set(uint(u))
			onPath.Set(uint(u))
			reached = append(reached, u)
			stack = append(stack, dfsFrame{v: u, parent: parent, nbrs: st.neighbours(u)})
		}
	}

	return nil, reached
}
