package planarity_test

import (
	"fmt"

	"github.com/Delton71/Gamma-algorithm/builder"
	"github.com/Delton71/Gamma-algorithm/planarity"
)

func ExampleIsPlanar() {
	// K5 minus one edge is planar; K5 itself is not.
	k5, _ := builder.BuildGraph(nil, builder.Complete(5))
	almost := builder.RemoveEdge(k5, 0, 3)

	a, _ := planarity.IsPlanar(almost)
	b, _ := planarity.IsPlanar(k5)
	fmt.Println(a, b)
	// Output: true false
}

func ExampleCheck() {
	cube, _ := builder.BuildGraph(nil, builder.PlatonicSolid(builder.Cube, false))
	rep, _ := planarity.Check(cube)
	fmt.Printf("planar=%v V=%d E=%d F=%d\n", rep.Planar, rep.Vertices, rep.Edges, rep.Faces)
	// Output: planar=true V=8 E=12 F=6
}
