package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/cgkernel"
	"github.com/osuushi/cgkernel/config"
	"github.com/osuushi/cgkernel/mesh"
	"github.com/osuushi/cgkernel/polygon"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for the kernel. Polygons are read from stdin as
// newline separated "x y" points, with each polygon separated by an extra
// newline. Polygons should be simple and wind counterclockwise; this is not
// validated. Meshes are read from stdin as OBJ triangles.
func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "cgkernel:", err)
		os.Exit(1)
	}
}

type cli struct {
	app *kingpin.Application

	verbose    *bool
	noColor    *bool
	configPath *string
	dump       *bool

	classify *kingpin.CmdClause

	triangulate *kingpin.CmdClause
	png         *string
	render      *bool
	show        *bool
	labels      *bool

	regular *kingpin.CmdClause
	centerX *float64
	centerY *float64
	radius  *float64
	corners *int

	normals *kingpin.CmdClause
	workers *int
}

func newCLI() *cli {
	c := &cli{app: kingpin.New("cgkernel", "Polygon triangulation and mesh normals.")}
	c.verbose = c.app.Flag("verbose", "Log debug output to stderr.").Short('v').Bool()
	c.noColor = c.app.Flag("no-color", "Disable colored output.").Bool()
	c.configPath = c.app.Flag("config", "YAML config file.").Envar("CGKERNEL_CONFIG").String()
	c.dump = c.app.Flag("dump", "Dump intermediate structures.").Bool()

	c.classify = c.app.Command("classify", "Report convexity and concave vertices of each polygon.")

	c.triangulate = c.app.Command("triangulate", "Fan triangulate each polygon.")
	c.png = c.triangulate.Flag("png", "Render the triangulation to this PNG path.").String()
	c.render = c.triangulate.Flag("render", "Render each polygon into the configured output directory.").Bool()
	c.show = c.triangulate.Flag("show", "Print the rendering inline (iTerm only).").Bool()
	c.labels = c.triangulate.Flag("labels", "Label triangles in renderings.").Bool()

	c.regular = c.app.Command("regular", "Print a regular polygon in the input format.")
	c.centerX = c.regular.Flag("cx", "Center x.").Default("0").Float64()
	c.centerY = c.regular.Flag("cy", "Center y.").Default("0").Float64()
	c.radius = c.regular.Flag("radius", "Circumradius.").Default("1").Float64()
	c.corners = c.regular.Arg("corners", "Number of corners.").Required().Int()

	c.normals = c.app.Command("normals", "Compute angle weighted vertex normals of an OBJ mesh.")
	c.workers = c.normals.Flag("workers", "Goroutines to use, overriding the config.").Int()
	return c
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	c := newCLI()
	command, err := c.app.Parse(args)
	if err != nil {
		return err
	}

	if *c.verbose {
		cgkernel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	cfg, err := config.Load(*c.configPath)
	if err != nil {
		return err
	}
	au := aurora.NewAurora(!*c.noColor)

	switch command {
	case c.classify.FullCommand():
		return c.runClassify(stdin, stdout, au)
	case c.triangulate.FullCommand():
		return c.runTriangulate(stdin, stdout, au, cfg)
	case c.regular.FullCommand():
		return c.runRegular(stdout)
	case c.normals.FullCommand():
		return c.runNormals(stdin, stdout, au, cfg)
	}
	return errors.Errorf("unknown command %q", command)
}

func (c *cli) runClassify(stdin io.Reader, stdout io.Writer, au aurora.Aurora) error {
	polygons, err := readPolygons(stdin)
	if err != nil {
		return err
	}
	for i, poly := range polygons {
		concave, ok := poly.ConcaveVertices()
		if !ok {
			fmt.Fprintf(stdout, "polygon %d: %s\n", i, au.Yellow(fmt.Sprintf("undefined, %d points", poly.Len())))
			continue
		}
		if len(concave) == 0 {
			fmt.Fprintf(stdout, "polygon %d: %s\n", i, au.Green("convex"))
		} else {
			fmt.Fprintf(stdout, "polygon %d: %s at %v\n", i, au.Red("concave"), concave)
		}
		if !poly.IsCCW() {
			fmt.Fprintf(stdout, "polygon %d: %s\n", i, au.Yellow("clockwise, classification is inverted"))
		}
	}
	return nil
}

func (c *cli) runTriangulate(stdin io.Reader, stdout io.Writer, au aurora.Aurora, cfg config.Config) error {
	polygons, err := readPolygons(stdin)
	if err != nil {
		return err
	}
	opts := cfg.Draw
	opts.Labels = opts.Labels || *c.labels

	for i, poly := range polygons {
		triangles, ok := poly.Triangulate()
		if !ok {
			fmt.Fprintf(stdout, "polygon %d: %s\n", i, au.Yellow("cannot triangulate"))
			continue
		}
		fmt.Fprintf(stdout, "polygon %d: %d triangles\n", i, len(triangles))
		for _, tri := range triangles {
			fmt.Fprintf(stdout, "%d %d %d\n", tri.A, tri.B, tri.C)
		}
		if *c.dump {
			dumper().Fdump(stdout, triangles)
		}

		if *c.png != "" {
			if err := polygon.SavePNG(pngPath(*c.png, i, len(polygons)), poly, triangles, opts); err != nil {
				return err
			}
		}
		if *c.render {
			path := filepath.Join(cfg.OutputDir, fmt.Sprintf("polygon_%d.png", i))
			if err := polygon.SavePNG(path, poly, triangles, opts); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "rendered %s\n", au.Cyan(path))
		}
		if *c.show {
			if err := polygon.Show(stdout, poly, triangles, opts); err != nil {
				return err
			}
		}
	}
	return nil
}

// With several polygons, each rendering gets the polygon's index appended.
func pngPath(path string, i, count int) string {
	if count == 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%d%s", path[:len(path)-len(ext)], i, ext)
}

func (c *cli) runRegular(stdout io.Writer) error {
	xy, err := cgkernel.RegularFlat(*c.centerX, *c.centerY, *c.radius, *c.corners)
	if err != nil {
		return err
	}
	for i := 0; i < len(xy); i += 2 {
		fmt.Fprintf(stdout, "%g %g\n", xy[i], xy[i+1])
	}
	return nil
}

func (c *cli) runNormals(stdin io.Reader, stdout io.Writer, au aurora.Aurora, cfg config.Config) error {
	m, err := readMesh(stdin)
	if err != nil {
		return err
	}
	workers := cfg.NormalWorkers
	if *c.workers > 0 {
		workers = *c.workers
	}

	if *c.dump {
		incidence, err := m.MakeIncidenceMap(mesh.Vertex, mesh.Vertex)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, "# vertex neighbors")
		dumper().Fdump(stdout, incidence)
	}

	normals, err := m.AngleWeightedPseudoVertexNormals(mesh.WithWorkers(workers))
	if err != nil {
		return err
	}
	// A vertex with no faces has no normal, which is not the same as the zero
	// normal of a degenerate neighborhood. It gets an uncolored marker line in
	// place of a vn line so consumers can parse it.
	undefined := 0
	for i := 0; i < normals.Len(); i++ {
		n, ok := normals.Get(i)
		if !ok {
			fmt.Fprintf(stdout, "# undefined %d\n", i+1)
			undefined++
			continue
		}
		fmt.Fprintf(stdout, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}
	if undefined > 0 {
		summary := fmt.Sprintf("%d of %d vertices have no faces", undefined, normals.Len())
		fmt.Fprintf(os.Stderr, "%s\n", au.Yellow(summary))
	}
	return nil
}

func dumper() *spew.ConfigState {
	return &spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
}
