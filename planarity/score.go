// SPDX-License-Identifier: MIT
// Package: gamma/planarity
//
// score.go — gamma evaluator.
//
// gamma(B) is the number of faces whose boundary touches every contact of B,
// i.e. the size of the intersection of the contacts' face sets. A bridge with
// gamma 0 fits no face: the graph is not planar.
package planarity

import "slices"

// noFace is the witness of a bridge that fits no face.
const noFace = -1

// gammaOf returns the gamma number of b and the smallest admissible face id
// (noFace when gamma is 0).
func gammaOf(st *embedding, b bridge) (gamma, witness int) {
	common := st.vertices[b.contacts[0]].faces.Clone()
	for _, c := range b.contacts[1:] {
		common = common.Intersect(st.vertices[c].faces)
		if common.Cardinality() == 0 {
			return 0, noFace
		}
	}
	if common.Cardinality() == 0 {
		return 0, noFace
	}

	return common.Cardinality(), slices.Min(common.ToSlice())
}

// selectBridge picks the bridge to embed next: minimum gamma, ties resolved
// by rule. It stops at the first gamma-0 bridge.
func selectBridge(st *embedding, bridges []bridge, rule TieBreak) (idx, gamma, witness int) {
	idx, gamma, witness = -1, 0, noFace
	for i, b := range bridges {
		g, w := gammaOf(st, b)
		if g == 0 {
			return i, 0, noFace
		}

		take := idx < 0 || g < gamma
		if !take && g == gamma {
			switch rule {
			case TieBreakTwoContact:
				take = len(b.contacts) == 2 && len(bridges[idx].contacts) != 2
			case TieBreakLast:
				take = true
			}
		}
		if take {
			idx, gamma, witness = i, g, w
		}
	}

	return idx, gamma, witness
}
