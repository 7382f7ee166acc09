package polygon

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/golang/geo/r2"
)

// This file parses the svg fixtures into polygons. This is not a full (or even
// correct) svg parser. It finds the single polygon element in the file and
// converts its points into a CCW Polygon. If anything goes wrong, it fails
// loudly.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.
// Coordinates are taken as is, with y pointing up.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon[r2.Point] {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	var result Polygon[r2.Point]
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		result.Push(r2.Point{X: x, Y: y})
	}

	if !result.IsCCW() {
		result = result.Reverse()
	}
	return result
}

// Ad hoc fixtures

func Star(outerRadius, innerRadius float64, spikes int) Polygon[r2.Point] {
	var poly Polygon[r2.Point]
	n := 2 * spikes
	for i := 0; i < n; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		poly.Push(r2.Point{X: r * cos, Y: r * sin})
	}
	return poly
}
