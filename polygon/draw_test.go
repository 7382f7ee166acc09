package polygon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	poly := LoadFixture("arrow")
	triangles, ok := poly.Triangulate()
	require.True(t, ok)

	opts := DefaultDrawOptions()
	opts.Labels = true
	c := Draw(poly, triangles, opts)

	// 4x4 polygon at scale 50 plus padding on both sides
	assert.Equal(t, 4*50+2*opts.Padding, c.Width())
	assert.Equal(t, 4*50+2*opts.Padding, c.Height())

	// The bottom left corner of the polygon sits at (padding, height-padding)
	// in image space, and a point just inside it is filled
	r, g, b, _ := c.Image().At(opts.Padding+10, c.Height()-opts.Padding-10).RGBA()
	assert.Zero(t, r)
	assert.NotZero(t, g)
	assert.Zero(t, b)

	// Outside the polygon is background
	r, g, b, _ = c.Image().At(2, 2).RGBA()
	assert.Zero(t, r+g+b)
}

func TestDraw_Empty(t *testing.T) {
	c := Draw(New[r2.Point](), nil, DefaultDrawOptions())
	assert.Equal(t, 2*DefaultDrawOptions().Padding, c.Width())
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "square.png")
	poly := LoadFixture("square")
	triangles, _ := poly.Triangulate()
	require.NoError(t, SavePNG(path, poly, triangles, DefaultDrawOptions()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
