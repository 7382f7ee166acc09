package cgkernel

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are tested in their packages.

func TestTriangulateFlat(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		indices, err := TriangulateFlat([]float64{1, -1, 1, 1, -1, 1, -1, -1})
		assert.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 0, 2, 3}, indices)
	})

	t.Run("one concave vertex", func(t *testing.T) {
		indices, err := TriangulateFlat([]float64{0, 0, 1, 0, 1, 1, 0, 1, 0.5, 0.5})
		assert.NoError(t, err)
		assert.Equal(t, []int{4, 0, 1, 4, 1, 2, 4, 2, 3}, indices)
	})

	t.Run("two concave vertices", func(t *testing.T) {
		_, err := TriangulateFlat([]float64{0, 0, 6, 0, 6, 4, 4, 4, 4, 2, 2, 2, 2, 4, 0, 4})
		assert.True(t, errors.Is(err, ErrNotTriangulable))
	})

	t.Run("too few points", func(t *testing.T) {
		_, err := TriangulateFlat([]float64{0, 0, 1, 1})
		assert.True(t, errors.Is(err, ErrTooFewPoints))
	})

	t.Run("odd coordinate count", func(t *testing.T) {
		indices, err := TriangulateFlat([]float64{0, 0, 1, 0, 1})
		assert.EqualError(t, err, "odd coordinate count 5")
		assert.Nil(t, indices)
	})
}

func TestRegularFlat(t *testing.T) {
	xy, err := RegularFlat(0, 0, 1, 4)
	require.NoError(t, err)
	require.Len(t, xy, 8)
	expected := []float64{1, 0, 0, 1, -1, 0, 0, -1}
	for i := range expected {
		assert.InDelta(t, expected[i], xy[i], 1e-12)
	}

	again, err := RegularFlat(0, 0, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, xy, again)

	indices, err := TriangulateFlat(xy)
	require.NoError(t, err)
	assert.Len(t, indices, 6)

	_, err = RegularFlat(0, 0, 1, 2)
	assert.True(t, errors.Is(err, ErrTooFewPoints))
}

func TestSetLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		SetLogger(nil)
	})
}
