package planarity

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// mustNormalize is a test helper around normalize in union mode.
func mustNormalize(t *testing.T, g Graph) [][]int {
	t.Helper()
	adj, _, err := normalize(g, false)
	require.NoError(t, err)
	return adj
}

// faceMembers lists the vertices carrying face id f, ascending.
func faceMembers(st *embedding, f int) []int {
	var out []int
	for v, rec := range st.vertices {
		if rec.faces.Contains(f) {
			out = append(out, v)
		}
	}
	return out
}

// requireRegistryConsistent checks that every registered boundary is a simple
// closed walk over skeleton edges whose vertex set equals the id members.
func requireRegistryConsistent(t *testing.T, st *embedding) {
	t.Helper()
	for f, walk := range st.boundaries {
		sorted := slices.Clone(walk)
		slices.Sort(sorted)
		require.Equal(t, len(sorted), len(slices.Compact(slices.Clone(sorted))), "face %d walk repeats a vertex: %v", f, walk)
		require.Equal(t, faceMembers(st, f), sorted, "face %d", f)
		for i, v := range walk {
			u := walk[(i+1)%len(walk)]
			require.Contains(t, st.skeleton[v], u, "face %d: %d-%d not in skeleton", f, v, u)
		}
	}
}

var k4 = Graph{{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}}

func TestNormalize(t *testing.T) {
	t.Parallel()

	// 1) Duplicates collapse, one-sided entries are mirrored.
	adj, m, err := normalize(Graph{{1, 1, 2}, {}, {0}}, false)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {0}, {0}}, adj)
	require.Equal(t, 2, m)

	// 2) Strict mode rejects the same graph.
	_, _, err = normalize(Graph{{1, 2}, {}, {0}}, true)
	require.ErrorIs(t, err, ErrInvalidGraph)

	// 3) Range and loop checks.
	_, _, err = normalize(Graph{{3}, {}, {}}, false)
	require.ErrorIs(t, err, ErrInvalidGraph)
	_, _, err = normalize(Graph{{-1}}, false)
	require.ErrorIs(t, err, ErrInvalidGraph)
	_, _, err = normalize(Graph{{1}, {1}}, false)
	require.ErrorIs(t, err, ErrInvalidGraph)

	// 4) Empty graph.
	adj, m, err = normalize(nil, true)
	require.NoError(t, err)
	require.Empty(t, adj)
	require.Zero(t, m)
}

func TestExtractCycle(t *testing.T) {
	t.Parallel()

	// Triangle 0-1-2 with a tail 2-3.
	st := newEmbedding(mustNormalize(t, Graph{{1, 2}, {0, 2}, {0, 1, 3}, {2}}))
	cycle, _ := extractCycle(st, 0)
	require.Equal(t, []int{0, 1, 2}, cycle)

	// Starting on the tail still finds the triangle.
	cycle, _ = extractCycle(st, 3)
	require.ElementsMatch(t, []int{0, 1, 2}, cycle)

	// A path has no cycle; every vertex is reached.
	st = newEmbedding(mustNormalize(t, Graph{{1}, {0, 2}, {1, 3}, {2}, {}}))
	cycle, reached := extractCycle(st, 1)
	require.Nil(t, cycle)
	require.ElementsMatch(t, []int{0, 1, 2, 3}, reached)

	// Every extracted cycle is simple and closed.
	st = newEmbedding(mustNormalize(t, k4))
	cycle, _ = extractCycle(st, 0)
	require.GreaterOrEqual(t, len(cycle), 3)
	for i, v := range cycle {
		require.Contains(t, st.neighbours(v), cycle[(i+1)%len(cycle)])
	}
}

func TestEmbedCycle(t *testing.T) {
	t.Parallel()

	st := newEmbedding(mustNormalize(t, k4))
	st.embedCycle([]int{0, 1, 2, 3})
	require.Equal(t, 2, st.nextFace)
	require.Equal(t, []int{0, 1, 2, 3}, st.boundaries[0])
	require.Equal(t, []int{3, 2, 1, 0}, st.boundaries[1])
	require.Equal(t, []int{2}, st.neighbours(0))
	requireRegistryConsistent(t, st)
}

// TestChordSplits walks K4 through two chord insertions and checks the
// resulting faces by hand.
func TestChordSplits(t *testing.T) {
	t.Parallel()

	st := newEmbedding(mustNormalize(t, k4))
	st.embedCycle([]int{0, 1, 2, 3})

	bridges := findBridges(st, []int{0, 1, 2, 3})
	require.Equal(t, []bridge{{contacts: []int{0, 2}}, {contacts: []int{1, 3}}}, bridges)

	// 1) Both chords fit both faces; rules decide the order.
	idx, gamma, witness := selectBridge(st, bridges, TieBreakTwoContact)
	require.Equal(t, []int{0, 2, 0}, []int{idx, gamma, witness})
	idx, _, _ = selectBridge(st, bridges, TieBreakFirst)
	require.Equal(t, 0, idx)
	idx, _, _ = selectBridge(st, bridges, TieBreakLast)
	require.Equal(t, 1, idx)

	// 2) Chord 0-2 splits face 0.
	inner, detached, err := st.embedBridge(bridges[0], 0)
	require.NoError(t, err)
	require.Nil(t, inner)
	require.Nil(t, detached)
	require.Equal(t, []int{0, 1, 2}, st.boundaries[2])
	require.Equal(t, []int{2, 3, 0}, st.boundaries[0])
	requireRegistryConsistent(t, st)

	// 3) Chord 1-3 now fits only the outer face.
	gamma, witness = gammaOf(st, bridges[1])
	require.Equal(t, 1, gamma)
	require.Equal(t, 1, witness)
	_, _, err = st.embedBridge(bridges[1], witness)
	require.NoError(t, err)
	require.Equal(t, 4, st.nextFace)
	require.Equal(t, []int{1, 0, 3}, st.boundaries[3])
	require.Equal(t, []int{3, 2, 1}, st.boundaries[1])
	requireRegistryConsistent(t, st)
	require.Equal(t, []int{0, 2, 3}, faceMembers(st, 0))
}

func TestGeneralBridge(t *testing.T) {
	t.Parallel()

	st := newEmbedding(mustNormalize(t, k4))
	st.embedCycle([]int{0, 1, 2})

	bridges := findBridges(st, []int{0, 1, 2})
	require.Len(t, bridges, 1)
	b := bridges[0]
	require.Equal(t, []int{0, 1, 2}, b.contacts)
	require.Equal(t, []int{3}, b.interior)
	require.False(t, b.chord())

	path, err := interiorPath(st, b, 0, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 2}, path)

	gamma, witness := gammaOf(st, b)
	require.Equal(t, 2, gamma)
	require.Equal(t, 0, witness)

	inner, _, err := st.embedBridge(b, witness)
	require.NoError(t, err)
	require.Equal(t, []int{3}, inner)
	require.True(t, st.embedded(3))
	requireRegistryConsistent(t, st)

	// The leftover edge 3-1 surfaces as a chord that fits one face.
	rest := findBridges(st, inner)
	require.Equal(t, []bridge{{contacts: []int{1, 3}}}, rest)
	gamma, witness = gammaOf(st, rest[0])
	require.Equal(t, 1, gamma)
	require.Equal(t, 2, witness)
}

func TestInteriorPath_NoRoute(t *testing.T) {
	t.Parallel()

	st := newEmbedding(mustNormalize(t, k4))
	st.embedCycle([]int{0, 1, 2})
	// An empty interior leaves only the chord, which is never a route.
	_, err := interiorPath(st, bridge{contacts: []int{0, 1}}, 0, 1)
	require.ErrorIs(t, err, ErrInternal)
}

func TestSplitFace_Unregistered(t *testing.T) {
	t.Parallel()

	st := newEmbedding(mustNormalize(t, k4))
	st.embedCycle([]int{0, 1, 2})
	require.ErrorIs(t, st.splitFace(7, 8, 0, 1, nil), ErrInternal)
	require.ErrorIs(t, st.splitFace(0, 8, 0, 3, nil), ErrInternal)
}

func TestDetach(t *testing.T) {
	t.Parallel()

	// 1) Bowtie: a second triangle hangs off vertex 2.
	bowtie := Graph{{1, 2}, {0, 2}, {0, 1, 3, 4}, {2, 4}, {2, 3}}
	st := newEmbedding(mustNormalize(t, bowtie))
	st.embedCycle([]int{0, 1, 2})
	bridges := findBridges(st, []int{0, 1, 2})
	require.Equal(t, []bridge{{contacts: []int{2}, interior: []int{3, 4}}}, bridges)

	_, p, err := st.embedBridge(bridges[0], noFace)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, []int{2, 3, 4}, p.ids)
	require.Equal(t, [][]int{{1, 2}, {0, 2}, {0, 1}}, p.adj)
	require.True(t, st.embedded(3))
	require.Empty(t, st.neighbours(2))

	// 2) A pendant edge is a tree and is absorbed.
	st = newEmbedding(mustNormalize(t, Graph{{1, 2}, {0, 2}, {0, 1, 3}, {2}}))
	st.embedCycle([]int{0, 1, 2})
	bridges = findBridges(st, []int{0, 1, 2})
	_, p, err = st.embedBridge(bridges[0], noFace)
	require.NoError(t, err)
	require.Nil(t, p)
	require.True(t, st.embedded(3))
}

func TestPieceGlobal(t *testing.T) {
	t.Parallel()

	p := piece{ids: []int{7, 3, 9}}
	require.Equal(t, []int{9, 7}, p.global([]int{2, 0}))
	require.Empty(t, p.global(nil))
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	require.Equal(t, TieBreakTwoContact, cfg.tieBreak)
	require.False(t, cfg.strictSymmetry)
	require.False(t, cfg.eulerBound)
	require.NotNil(t, cfg.logger)

	cfg = newConfig(WithTieBreak(TieBreakLast), WithTieBreak(TieBreakFirst), WithStrictSymmetry(), WithEulerBound())
	require.Equal(t, TieBreakFirst, cfg.tieBreak)
	require.True(t, cfg.strictSymmetry)
	require.True(t, cfg.eulerBound)
}
