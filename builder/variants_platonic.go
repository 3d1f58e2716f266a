// SPDX-License-Identifier: MIT
// Package: gamma/builder
//
// variants_platonic.go — canonical data for the five Platonic solids.
//
// Every edge list is sorted by (U,V) with U < V. All five graphs are planar
// and 3-connected, which makes them good fixtures for face counting:
// F = E - V + 2.
package builder

// PlatonicName enumerates the five Platonic solids (canonical graph shells).
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// String provides a readable identifier for logs/errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

var platonicEdgeSets = map[PlatonicName][]chord{
	// K4.
	Tetrahedron: {
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3},
		{U: 1, V: 2}, {U: 1, V: 3},
		{U: 2, V: 3},
	},

	// Bottom face 0-1-2-3, top face 4-5-6-7, verticals i-(i+4).
	Cube: {
		{U: 0, V: 1}, {U: 0, V: 3}, {U: 0, V: 4},
		{U: 1, V: 2}, {U: 1, V: 5},
		{U: 2, V: 3}, {U: 2, V: 6},
		{U: 3, V: 7},
		{U: 4, V: 5}, {U: 4, V: 7},
		{U: 5, V: 6},
		{U: 6, V: 7},
	},

	// Poles 0 and 1, equator 2-4-3-5 (2 and 3 are opposite, as are 4 and 5).
	Octahedron: {
		{U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
		{U: 1, V: 2}, {U: 1, V: 3}, {U: 1, V: 4}, {U: 1, V: 5},
		{U: 2, V: 4}, {U: 2, V: 5}, {U: 3, V: 4}, {U: 3, V: 5},
	},

	// Top pentagon 0..4, bottom pentagon 5..9, middle 10-cycle 10..19.
	// Top i meets middle 10+2i, bottom 5+i meets middle 11+2i.
	Dodecahedron: {
		{U: 0, V: 1}, {U: 0, V: 4}, {U: 0, V: 10},
		{U: 1, V: 2}, {U: 1, V: 12},
		{U: 2, V: 3}, {U: 2, V: 14},
		{U: 3, V: 4}, {U: 3, V: 16},
		{U: 4, V: 18},
		{U: 5, V: 6}, {U: 5, V: 9}, {U: 5, V: 11},
		{U: 6, V: 7}, {U: 6, V: 13},
		{U: 7, V: 8}, {U: 7, V: 15},
		{U: 8, V: 9}, {U: 8, V: 17},
		{U: 9, V: 19},
		{U: 10, V: 11}, {U: 10, V: 19},
		{U: 11, V: 12},
		{U: 12, V: 13},
		{U: 13, V: 14},
		{U: 14, V: 15},
		{U: 15, V: 16},
		{U: 16, V: 17},
		{U: 17, V: 18},
		{U: 18, V: 19},
	},

	// Pole 0, upper ring 1..5, lower ring 6..10, pole 11.
	// Upper i meets lower 5+i and 6+i (wrapping 10 → 6).
	Icosahedron: {
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
		{U: 1, V: 2}, {U: 1, V: 5}, {U: 1, V: 6}, {U: 1, V: 7},
		{U: 2, V: 3}, {U: 2, V: 7}, {U: 2, V: 8},
		{U: 3, V: 4}, {U: 3, V: 8}, {U: 3, V: 9},
		{U: 4, V: 5}, {U: 4, V: 9}, {U: 4, V: 10},
		{U: 5, V: 6}, {U: 5, V: 10},
		{U: 6, V: 7}, {U: 6, V: 10}, {U: 6, V: 11},
		{U: 7, V: 8}, {U: 7, V: 11},
		{U: 8, V: 9}, {U: 8, V: 11},
		{U: 9, V: 10}, {U: 9, V: 11},
		{U: 10, V: 11},
	},
}
