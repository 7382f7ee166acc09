package mesh

import (
	"math"

	"github.com/golang/geo/r3"
)

// Ad hoc mesh fixtures

// Unit cube with every face split along one diagonal, counterclockwise from
// outside. The diagonals are 0-2, 4-6, 0-5, 3-6, 0-7 and 1-6, so vertices 0
// and 6 touch six triangles and the rest touch four.
func UnitCube() *TriangleVertexMesh[uint32] {
	vertices := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: 0, Y: 1, Z: 1},
	}
	indices := []uint32{
		0, 2, 1, 0, 3, 2, // bottom
		4, 5, 6, 4, 6, 7, // top
		0, 1, 5, 0, 5, 4, // front
		3, 7, 6, 3, 6, 2, // back
		0, 4, 7, 0, 7, 3, // left
		1, 2, 6, 1, 6, 5, // right
	}
	m, err := New(vertices, indices)
	if err != nil {
		panic(err)
	}
	return m
}

// Unit square in the z=0 plane made of two triangles sharing the 0-2 diagonal.
func PlanarSquare() *TriangleVertexMesh[int] {
	m, err := New([]r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}, []int{0, 1, 2, 0, 2, 3})
	if err != nil {
		panic(err)
	}
	return m
}

// A bumpy height field of n by n quads, each split into two triangles.
func BumpyGrid(n int) *TriangleVertexMesh[uint16] {
	var vertices []r3.Vector
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			z := 0.3 * math.Sin(float64(x)*0.7) * math.Cos(float64(y)*1.3)
			vertices = append(vertices, r3.Vector{X: float64(x), Y: float64(y), Z: z})
		}
	}
	var indices []uint16
	row := uint16(n + 1)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			i := uint16(y)*row + uint16(x)
			indices = append(indices, i, i+1, i+row+1, i, i+row+1, i+row)
		}
	}
	m, err := New(vertices, indices)
	if err != nil {
		panic(err)
	}
	return m
}
