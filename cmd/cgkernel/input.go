package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/osuushi/cgkernel/mesh"
	"github.com/osuushi/cgkernel/polygon"
	"github.com/pkg/errors"
)

// Polygon input is newline separated points in the form "x y", with each
// polygon separated by an extra newline.
func readPolygons(in io.Reader) ([]polygon.Polygon[r2.Point], error) {
	var polygons []polygon.Polygon[r2.Point]
	scanner := bufio.NewScanner(in)
	var current polygon.Polygon[r2.Point]
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// An empty line ends the polygon, if we collected any points
		if line == "" {
			if current.Len() > 0 {
				polygons = append(polygons, current)
				current = polygon.Polygon[r2.Point]{}
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		current.Push(point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read polygons")
	}

	// Handle trailing polygon if any
	if current.Len() > 0 {
		polygons = append(polygons, current)
	}
	return polygons, nil
}

func parsePoint(line string) (r2.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return r2.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	coords, err := parseFloats(parts)
	if err != nil {
		return r2.Point{}, err
	}
	return r2.Point{X: coords[0], Y: coords[1]}, nil
}

func parseFloats(parts []string) ([]float64, error) {
	result := make([]float64, len(parts))
	for i, part := range parts {
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", part)
		}
		result[i] = f
	}
	return result, nil
}

// Mesh input is a subset of Wavefront OBJ: "v x y z" vertex lines and
// "f a b c" triangle lines with 1-based indexes. Face corners may carry
// texture and normal references ("f 1/1/1 2/2/2 3/3/3"); only the vertex
// index is used. Everything else is ignored.
func readMesh(in io.Reader) (*mesh.TriangleVertexMesh[uint32], error) {
	var vertices []r3.Vector
	var indices []uint32
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, errors.Errorf("line %d: vertex needs 3 coordinates", lineNumber)
			}
			coords, err := parseFloats(fields[1:4])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			vertices = append(vertices, r3.Vector{X: coords[0], Y: coords[1], Z: coords[2]})
		case "f":
			if len(fields) != 4 {
				return nil, errors.Errorf("line %d: only triangles are supported, got %d corners", lineNumber, len(fields)-1)
			}
			for _, corner := range fields[1:] {
				reference := strings.SplitN(corner, "/", 2)[0]
				idx, err := strconv.ParseUint(reference, 10, 32)
				if err != nil || idx == 0 {
					return nil, errors.Errorf("line %d: invalid vertex reference %q", lineNumber, corner)
				}
				indices = append(indices, uint32(idx-1))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read mesh")
	}
	return mesh.New(vertices, indices)
}
