// Package vector is the thin numeric layer the kernel needs on top of
// github.com/golang/geo. Floating point 2D points are r2.Point and 3D vectors
// are r3.Vector; this package adds an integer 2D point, normalization that
// reports failure instead of quietly returning zero, and helpers to lift planar
// geometry into 3D.
package vector

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Vec2 is the capability the polygon analyzer needs from a 2D point type: edge
// vectors by subtraction, and the wedge (signed parallelogram area) of two
// edges. r2.Point and Vec2i both satisfy it.
type Vec2[V any] interface {
	Sub(V) V
	Cross(V) float64
}

// Vec2i is a 2D point with integer coordinates, for callers working on pixel or
// grid polygons where float rounding is unwelcome.
type Vec2i struct {
	X, Y int64
}

func (v Vec2i) Add(o Vec2i) Vec2i { return Vec2i{v.X + o.X, v.Y + o.Y} }
func (v Vec2i) Sub(o Vec2i) Vec2i { return Vec2i{v.X - o.X, v.Y - o.Y} }
func (v Vec2i) Mul(m int64) Vec2i { return Vec2i{v.X * m, v.Y * m} }
func (v Vec2i) Dot(o Vec2i) int64 { return v.X*o.X + v.Y*o.Y }

// Cross is the 2D wedge product. It is exact as long as the products fit in an
// int64, and only then converted to float64.
func (v Vec2i) Cross(o Vec2i) float64 {
	return float64(v.X*o.Y - v.Y*o.X)
}

// Float converts to an r2.Point.
func (v Vec2i) Float() r2.Point {
	return r2.Point{X: float64(v.X), Y: float64(v.Y)}
}

// Normalize2 scales p to unit length. It reports false for a zero length (or
// non-finite) input, where r2.Point.Normalize would silently return zero.
func Normalize2(p r2.Point) (r2.Point, bool) {
	n := p.Norm()
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return r2.Point{}, false
	}
	return p.Mul(1 / n), true
}

// Normalize3 is Normalize2 for 3D vectors.
func Normalize3(v r3.Vector) (r3.Vector, bool) {
	n := v.Norm()
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return r3.Vector{}, false
	}
	return v.Mul(1 / n), true
}

// Angle between a and b in radians, in [0, π]. It is derived from the dot and
// cross products, so it stays accurate for nearly parallel vectors.
func Angle(a, b r3.Vector) float64 {
	return a.Angle(b).Radians()
}
