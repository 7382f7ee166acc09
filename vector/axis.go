package vector

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Axis is one of the three cardinal directions.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// PlaneIndices gives the two component indices spanning the plane orthogonal
// to the axis, in ascending order.
func PlaneIndices(a Axis) (int, int) {
	switch a {
	case X:
		return 1, 2
	case Y:
		return 0, 2
	default:
		return 0, 1
	}
}

// Component returns v's coordinate along index i (0 = X, 1 = Y, 2 = Z).
func Component(v r3.Vector, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func setComponent(v *r3.Vector, i int, value float64) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
}

// Embed lifts a 2D point onto the plane orthogonal to axis, at coordinate
// value along that axis. The point's X and Y land on the plane's two axes in
// ascending order, so embedding along Z is (p.X, p.Y, value).
func Embed(axis Axis, value float64, p r2.Point) r3.Vector {
	var v r3.Vector
	first, second := PlaneIndices(axis)
	setComponent(&v, int(axis), value)
	setComponent(&v, first, p.X)
	setComponent(&v, second, p.Y)
	return v
}

// EmbedAll embeds every point, preserving order.
func EmbedAll(axis Axis, value float64, points []r2.Point) []r3.Vector {
	result := make([]r3.Vector, len(points))
	for i, p := range points {
		result[i] = Embed(axis, value, p)
	}
	return result
}
