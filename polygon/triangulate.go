package polygon

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/osuushi/cgkernel/internal"
)

// Triangulate fan triangulates polygons with at most one concave vertex.
//
// A convex polygon is fanned from vertex 0. A polygon with exactly one concave
// vertex is fanned from that vertex, which can see every other vertex. With two
// or more concave vertices no triangulation is attempted and the second result
// is false; this is a conservative rule, not a test for simplicity, and no
// fallback algorithm is provided.
//
// On success there are exactly Len()-2 triangles.
func (poly Polygon[V]) Triangulate() ([]Triangle, bool) {
	concave, ok := poly.ConcaveVertices()
	if !ok {
		return nil, false
	}
	switch len(concave) {
	case 0:
		return poly.Fan(0), true
	case 1:
		return poly.Fan(concave[0]), true
	default:
		internal.Logger().Debug("polygon not triangulated",
			"points", len(poly.Points),
			"concave", len(concave))
		return nil, false
	}
}

// Fan splits the polygon into triangles all sharing apex. The triangles walk
// the boundary starting just after the apex:
//
//	(apex, apex+1, apex+2), (apex, apex+2, apex+3), ...
//
// with indexes wrapping around. An apex outside [0, Len()) wraps the same way.
// The result is only a valid triangulation when every vertex is visible from
// the apex.
func (poly Polygon[V]) Fan(apex int) []Triangle {
	n := len(poly.Points)
	if n < 3 {
		return nil
	}
	apex = CircularIndex(apex, n)
	triangles := make([]Triangle, 0, n-2)
	for i := 0; i < n-2; i++ {
		triangles = append(triangles, Triangle{
			A: apex,
			B: CircularIndex(apex+1+i, n),
			C: CircularIndex(apex+2+i, n),
		})
	}
	return triangles
}

// Flatten converts triangles to a flat index buffer, three indexes per
// triangle, in the layout meshes use.
func Flatten(triangles []Triangle) []int {
	indices := make([]int, 0, 3*len(triangles))
	for _, tri := range triangles {
		indices = append(indices, tri.A, tri.B, tri.C)
	}
	return indices
}

// Regular builds a regular polygon with the given number of corners on the
// circle of radius around center. The first corner is at angle 0 (directly
// right of center) and the rest follow counterclockwise. The same arguments
// always produce identical coordinates.
func Regular(center r2.Point, radius float64, corners int) Polygon[r2.Point] {
	poly := Polygon[r2.Point]{Points: make([]r2.Point, 0, max(corners, 0))}
	anglePerCorner := 2 * math.Pi / float64(corners)
	for i := 0; i < corners; i++ {
		sin, cos := math.Sincos(anglePerCorner * float64(i))
		poly.Push(center.Add(r2.Point{X: cos * radius, Y: sin * radius}))
	}
	return poly
}
