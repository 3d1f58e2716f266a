// SPDX-License-Identifier: MIT
// Package: gamma/planarity
//
// types.go — public types, sentinel errors and the Report returned by Check.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the API boundary ("Check: ...").
//   • A zero gamma number is a verdict, not an error: Check returns
//     Report{Planar: false} and a nil error.
package planarity

import "errors"

// Graph is an undirected graph given as adjacency lists over contiguous
// vertex ids 0..len(g)-1. g[v] lists the neighbours of v. Duplicate entries
// collapse into one logical edge; self-loops and ids outside the range are
// rejected with ErrInvalidGraph.
//
// An edge listed by only one of its endpoints is treated as present
// (union policy) unless WithStrictSymmetry is set.
type Graph [][]int

// ErrInvalidGraph indicates malformed input: a negative or out-of-range
// neighbour id, a self-loop, or (strict mode) an asymmetric adjacency entry.
var ErrInvalidGraph = errors.New("planarity: invalid graph")

// ErrInternal indicates a broken embedding invariant. It is never expected
// on any input; seeing it means the embedding bookkeeping is corrupt.
var ErrInternal = errors.New("planarity: internal invariant violated")

// TieBreak selects which bridge wins when several share the minimum gamma.
// The verdict never depends on it; only the order of face splits does.
type TieBreak int

const (
	// TieBreakTwoContact takes the first bridge with exactly two contact
	// vertices among those of minimum gamma, else the first of them.
	TieBreakTwoContact TieBreak = iota
	// TieBreakFirst keeps the first bridge found with the minimum gamma.
	TieBreakFirst
	// TieBreakLast keeps the last bridge found with the minimum gamma.
	TieBreakLast
)

// String returns a readable name for logs.
func (t TieBreak) String() string {
	switch t {
	case TieBreakTwoContact:
		return "two-contact"
	case TieBreakFirst:
		return "first"
	case TieBreakLast:
		return "last"
	default:
		return "unknown"
	}
}

// Report summarises one run of the decision procedure.
type Report struct {
	// Planar is the verdict.
	Planar bool

	// Vertices and Edges describe the normalised input.
	Vertices int
	Edges    int

	// Components counts connected components of the input, isolated
	// vertices included.
	Components int

	// CyclicPieces counts pieces that needed an embedding (a cycle was found).
	// A piece is a connected component or a detached single-contact bridge.
	CyclicPieces int

	// Detached counts single-contact bridges that contained a cycle and were
	// therefore tested as independent pieces.
	Detached int

	// Faces is the total number of face ids allocated across all cyclic
	// pieces. For a planar 2-connected graph it equals Edges-Vertices+2.
	Faces int

	// Bridges counts bridges committed into faces (chords, paths and
	// single-contact bridges).
	Bridges int
}
