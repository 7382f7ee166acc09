// Package polygon classifies the vertices of simple planar polygons and
// triangulates the easy ones.
//
// Polygons are given as an ordered list of points, with the last point
// implicitly connected back to the first. Solid polygons wind
// counterclockwise. Simplicity (no self intersection) is assumed and never
// checked; results for a self intersecting polygon are meaningless.
package polygon

import (
	"github.com/osuushi/cgkernel/vector"
)

// Polygon is a closed ring of points. Analysis assumes it is simple and winds
// counterclockwise; neither is checked.
type Polygon[V vector.Vec2[V]] struct {
	Points []V
}

// A Triangle is three indexes into the Points of the polygon it was made from.
type Triangle struct {
	A, B, C int
}

// New copies points into a polygon.
func New[V vector.Vec2[V]](points ...V) Polygon[V] {
	return Polygon[V]{Points: append([]V(nil), points...)}
}

// Push appends a point, closing the ring through it.
func (poly *Polygon[V]) Push(p V) {
	poly.Points = append(poly.Points, p)
}

// Len is the number of points.
func (poly Polygon[V]) Len() int {
	return len(poly.Points)
}

// Reverse returns a copy with the opposite winding.
func (poly Polygon[V]) Reverse() Polygon[V] {
	newPoly := Polygon[V]{Points: make([]V, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Wedge of the edge coming into vertex i with the edge leaving it. Positive is
// a left (counterclockwise) turn.
func (poly Polygon[V]) turn(i int) float64 {
	n := len(poly.Points)
	prev := poly.Points[CircularIndex(i-1, n)]
	current := poly.Points[i]
	next := poly.Points[CircularIndex(i+1, n)]
	incoming := current.Sub(prev)
	outgoing := next.Sub(current)
	return incoming.Cross(outgoing)
}

// SignedArea is positive for counterclockwise polygons. Computed as a fan of
// wedges from the first point, which is the shoelace formula.
func (poly Polygon[V]) SignedArea() float64 {
	if len(poly.Points) < 3 {
		return 0
	}
	origin := poly.Points[0]
	var sum float64
	for i := 1; i < len(poly.Points)-1; i++ {
		sum += poly.Points[i].Sub(origin).Cross(poly.Points[i+1].Sub(origin))
	}
	return sum / 2
}

func (poly Polygon[V]) IsCCW() bool {
	return poly.SignedArea() > 0
}

// ConcaveVertices returns the indexes of vertices where the boundary turns
// clockwise, in ascending order. It reports false for polygons with fewer
// than three points, where the question is undefined. Collinear vertices are
// not concave.
//
// The classification depends on orientation: for a clockwise polygon this
// returns the convex vertices instead.
func (poly Polygon[V]) ConcaveVertices() ([]int, bool) {
	if len(poly.Points) < 3 {
		return nil, false
	}
	concave := []int{}
	for i := range poly.Points {
		if poly.turn(i) < 0 {
			concave = append(concave, i)
		}
	}
	return concave, true
}

// IsConvex reports whether no vertex is concave. The second result is false
// for polygons with fewer than three points.
func (poly Polygon[V]) IsConvex() (convex bool, ok bool) {
	if len(poly.Points) < 3 {
		return false, false
	}
	for i := range poly.Points {
		if poly.turn(i) < 0 {
			return false, true
		}
	}
	return true, true
}
