package planarity_test

import (
	"testing"

	"github.com/Delton71/Gamma-algorithm/builder"
	"github.com/Delton71/Gamma-algorithm/planarity"
)

func benchmarkGraph(b *testing.B, g [][]int) {
	b.Helper()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := planarity.IsPlanar(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsPlanar_Grid30(b *testing.B) {
	g, err := builder.BuildGraph(nil, builder.Grid(30, 30))
	if err != nil {
		b.Fatal(err)
	}
	benchmarkGraph(b, g)
}

func BenchmarkIsPlanar_Icosahedron(b *testing.B) {
	g, err := builder.BuildGraph(nil, builder.PlatonicSolid(builder.Icosahedron, false))
	if err != nil {
		b.Fatal(err)
	}
	benchmarkGraph(b, g)
}

func BenchmarkIsPlanar_Petersen(b *testing.B) {
	g, err := builder.BuildGraph(nil, builder.Petersen())
	if err != nil {
		b.Fatal(err)
	}
	benchmarkGraph(b, g)
}
