package polygon

import (
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/cgkernel/dbg"
	"github.com/pkg/errors"
)

// DrawOptions control how Draw renders a polygon and its triangulation.
// Colors are hex strings as accepted by gg.Context.SetHexColor.
type DrawOptions struct {
	Scale         float64 `yaml:"scale"`
	Padding       int     `yaml:"padding"`
	LineWidth     float64 `yaml:"line_width"`
	Background    string  `yaml:"background"`
	Fill          string  `yaml:"fill"`
	Stroke        string  `yaml:"stroke"`
	TriangleEdges string  `yaml:"triangle_edges"`
	Concave       string  `yaml:"concave"`
	// Label each triangle with a readable debug name.
	Labels bool `yaml:"labels"`
}

func DefaultDrawOptions() DrawOptions {
	return DrawOptions{
		Scale:         50,
		Padding:       40,
		LineWidth:     2,
		Background:    "#000000",
		Fill:          "#008000",
		Stroke:        "#00ffff",
		TriangleEdges: "#ffff00",
		Concave:       "#ff0000",
	}
}

// Draw renders the polygon, with the triangles' edges on top and concave
// vertices marked. triangles may be nil. The y axis points up.
func Draw(poly Polygon[r2.Point], triangles []Triangle, opts DrawOptions) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range poly.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(poly.Points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(opts.Scale*(maxX-minX)) + opts.Padding*2
	height := int(opts.Scale*(maxY-minY)) + opts.Padding*2
	c := gg.NewContext(width, height)
	c.SetHexColor(opts.Background)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, then pad, scale
	// and move the bounding box to the origin
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(float64(opts.Padding), float64(opts.Padding))
	c.Scale(opts.Scale, opts.Scale)
	c.Translate(-minX, -minY)

	if len(poly.Points) == 0 {
		return c
	}

	// gg applies line width in device space, so it is independent of Scale
	c.SetLineWidth(opts.LineWidth)
	c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
	for _, p := range poly.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetHexColor(opts.Fill)
	c.FillPreserve()
	c.SetHexColor(opts.Stroke)
	c.Stroke()

	c.SetHexColor(opts.TriangleEdges)
	for _, tri := range triangles {
		a, b, cc := poly.Points[tri.A], poly.Points[tri.B], poly.Points[tri.C]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(cc.X, cc.Y)
		c.ClosePath()
		c.Stroke()
	}

	if concave, ok := poly.ConcaveVertices(); ok {
		c.SetHexColor(opts.Concave)
		for _, i := range concave {
			p := poly.Points[i]
			c.DrawCircle(p.X, p.Y, 4/opts.Scale)
			c.Fill()
		}
	}

	if opts.Labels {
		for i := range triangles {
			tri := &triangles[i]
			a, b, cc := poly.Points[tri.A], poly.Points[tri.B], poly.Points[tri.C]
			// Text must be drawn in device space or it comes out mirrored
			x, y := c.TransformPoint((a.X+b.X+cc.X)/3, (a.Y+b.Y+cc.Y)/3)
			c.Push()
			c.Identity()
			c.SetRGB(1, 1, 1)
			c.DrawStringAnchored(dbg.Name(tri), x, y, 0.5, 0.5)
			c.Pop()
		}
	}
	return c
}

// SavePNG renders and writes the image to path, creating its directory.
func SavePNG(path string, poly Polygon[r2.Point], triangles []Triangle, opts DrawOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	c := Draw(poly, triangles, opts)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}

// Show renders to a temporary PNG and prints it inline to w (iTerm only). This
// is for debugging.
func Show(w io.Writer, poly Polygon[r2.Point], triangles []Triangle, opts DrawOptions) error {
	path := filepath.Join(os.TempDir(), "cgkernel_polygon.png")
	if err := SavePNG(path, poly, triangles, opts); err != nil {
		return err
	}
	imgcat.CatFile(path, w)
	return nil
}
