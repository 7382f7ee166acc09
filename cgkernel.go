// A small computational geometry kernel for Go.
//
// The work is done in the subpackages: polygon classifies and triangulates
// simple polygons, and mesh builds adjacency and vertex normals for indexed
// triangle meshes. This package adds flat array entry points, for callers that
// pass geometry around as plain number buffers (for example across a native
// boundary), and the logging switch shared by every package.
package cgkernel

import (
	"log/slog"

	"github.com/golang/geo/r2"
	"github.com/osuushi/cgkernel/internal"
	"github.com/osuushi/cgkernel/polygon"
	"github.com/pkg/errors"
)

var (
	ErrTooFewPoints    = errors.New("polygon needs at least 3 points")
	ErrNotTriangulable = errors.New("polygon has more than one concave vertex")
)

// SetLogger configures the logger for the kernel and all its subpackages. By
// default nothing is logged. Everything the kernel logs is at debug level
// (refused triangulations, degenerate faces). Pass nil to silence it again.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}

// TriangulateFlat triangulates a polygon given as interleaved coordinates
// x0, y0, x1, y1, ... and returns a flat index buffer with three point indexes
// per triangle.
//
// The polygon must be simple and counterclockwise. Only polygons with at most
// one concave vertex can be triangulated; others fail with ErrNotTriangulable.
func TriangulateFlat(xy []float64) (result []int, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	poly := polygon.Polygon[r2.Point]{Points: decodePoints(xy)}
	if poly.Len() < 3 {
		return nil, errors.Wrapf(ErrTooFewPoints, "got %d", poly.Len())
	}
	triangles, ok := poly.Triangulate()
	if !ok {
		return nil, ErrNotTriangulable
	}
	return polygon.Flatten(triangles), nil
}

// RegularFlat builds a regular polygon (see polygon.Regular) and returns its
// corners as interleaved coordinates.
func RegularFlat(centerX, centerY, radius float64, corners int) ([]float64, error) {
	if corners < 3 {
		return nil, errors.Wrapf(ErrTooFewPoints, "got %d corners", corners)
	}
	poly := polygon.Regular(r2.Point{X: centerX, Y: centerY}, radius, corners)
	return encodePoints(poly.Points), nil
}

func decodePoints(xy []float64) []r2.Point {
	if len(xy)%2 != 0 {
		internal.Fatalf("odd coordinate count %d", len(xy))
	}
	points := make([]r2.Point, len(xy)/2)
	for i := range points {
		points[i] = r2.Point{X: xy[2*i], Y: xy[2*i+1]}
	}
	return points
}

func encodePoints(points []r2.Point) []float64 {
	xy := make([]float64, 0, 2*len(points))
	for _, p := range points {
		xy = append(xy, p.X, p.Y)
	}
	return xy
}
