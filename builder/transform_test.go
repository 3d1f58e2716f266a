package builder_test

import (
	"testing"

	"github.com/Delton71/Gamma-algorithm/builder"
	"github.com/stretchr/testify/require"
)

func TestRelabel(t *testing.T) {
	t.Parallel()

	path := [][]int{{1}, {0, 2}, {1}}
	got, err := builder.Relabel(path, []int{2, 0, 1})
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {0}, {0}}, got)
	require.Equal(t, [][]int{{1}, {0, 2}, {1}}, path, "input must stay intact")

	_, err = builder.Relabel(path, []int{0, 0, 1})
	require.ErrorIs(t, err, builder.ErrBadPermutation)
	_, err = builder.Relabel(path, []int{0, 1})
	require.ErrorIs(t, err, builder.ErrBadPermutation)
	_, err = builder.Relabel(path, []int{0, 1, 3})
	require.ErrorIs(t, err, builder.ErrBadPermutation)
}

func TestAddRemoveEdge(t *testing.T) {
	t.Parallel()

	g := [][]int{{1}, {0}, {}}
	added := builder.AddEdge(g, 2, 0)
	require.Equal(t, [][]int{{1, 2}, {0}, {0}}, added)
	require.Equal(t, [][]int{{1}, {0}, {}}, g)

	require.Equal(t, added, builder.AddEdge(added, 0, 2), "duplicate add is a no-op")
	require.Equal(t, added, builder.AddEdge(added, 1, 1), "loop is ignored")
	require.Equal(t, added, builder.AddEdge(added, 0, 9), "out of range is ignored")

	removed := builder.RemoveEdge(added, 0, 1)
	require.Equal(t, [][]int{{2}, {}, {0}}, removed)
	require.Equal(t, [][]int{{1, 2}, {0}, {0}}, added)
}

func TestDisjointUnionAndEdges(t *testing.T) {
	t.Parallel()

	tri := [][]int{{1, 2}, {0, 2}, {0, 1}}
	edge := [][]int{{1}, {0}}
	u := builder.DisjointUnion(tri, edge)
	require.Len(t, u, 5)
	require.Equal(t, []int{4}, u[3])
	require.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}, {3, 4}}, builder.Edges(u))
	require.Empty(t, builder.DisjointUnion())
}
