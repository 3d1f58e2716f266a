// SPDX-License-Identifier: MIT
// Package: gamma/planarity
//
// bridge.go — bridge finder.
//
// A bridge is a piece of the graph not yet drawn:
//   • chord-bridge: one remaining edge between two embedded vertices;
//   • component-bridge: a maximal connected set of unembedded vertices plus
//     every embedded vertex adjacent to it (its contacts).
//
// findBridges is called with the vertices just embedded (the initial cycle or
// the interior of a freshly embedded path). After it returns, every remaining
// edge incident to a scanned vertex belongs to exactly one returned bridge.
package planarity

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
	mapset "github.com/deckarep/golang-set/v2"
)

// bridge is a fragment waiting to be embedded. Both slices are ascending.
type bridge struct {
	contacts []int
	interior []int
}

// chord reports whether the bridge is a single edge between two contacts.
func (b bridge) chord() bool {
	return len(b.interior) == 0
}

// findBridges discovers the bridges touching the scanned vertices.
// Claim marks are private to the call.
func findBridges(st *embedding, scan []int) []bridge {
	n := uint(len(st.vertices))
	inScan := bitset.New(n)
	for _, v := range scan {
		inScan.Set(uint(v))
	}
	claimed := bitset.New(n)

	var out []bridge
	for _, v := range scan {
		for _, u := range st.neighbours(v) {
			switch {
			case st.embedded(u):
				// Both ends scanned: register the chord once, from its lower end.
				if inScan.Test(uint(u)) && u < v {
					continue
				}
				out = append(out, bridge{contacts: []int{min(u, v), max(u, v)}})
			case !claimed.Test(uint(u)):
				out = append(out, collectBridge(st, u, claimed))
			}
		}
	}

	return out
}

// collectBridge gathers the unembedded component of start and its contacts,
// claiming every interior vertex it visits.
func collectBridge(st *embedding, start int, claimed *bitset.BitSet) bridge {
	contacts := mapset.NewThreadUnsafeSet[int]()
	var interior []int

	claimed.Set(uint(start))
	stack := []int{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		interior = append(interior, v)
		for _, u := range st.neighbours(v) {
			if st.embedded(u) {
				contacts.Add(u)
				continue
			}
			if !claimed.Test(uint(u)) {
				claimed.Set(uint(u))
				stack = append(stack, u)
			}
		}
	}

	b := bridge{contacts: contacts.ToSlice(), interior: interior}
	slices.Sort(b.contacts)
	slices.Sort(b.interior)

	return b
}
