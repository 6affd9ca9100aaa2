package lithophane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPointCloud_PlanarBacking(t *testing.T) {
	pc, err := newPointCloud(identityX, identityY, zero, 3, 2, 1)
	require.NoError(t, err)

	require.Equal(t, 3, pc.width)
	require.Equal(t, 2, pc.height)
	require.Len(t, pc.vertices, 6)
	require.Len(t, pc.normals, 6)

	// Border stripped: the interior starts at (0, 0) and ends at (2, 1).
	assert.Equal(t, v3(0, 0, 0), pc.vertices[0])
	assert.Equal(t, v3(2, 0, 0), pc.vertices[2])
	assert.Equal(t, v3(2, 1, 0), pc.vertices[5])

	// With the image origin top left, the outward normal of a planar
	// backing points along -Z.
	for i, n := range pc.normals {
		assert.Equal(t, v3(0, 0, -1), n, "normal %d", i)
	}
}

func TestNewPointCloud_StepKeepsParallelSequences(t *testing.T) {
	pc, err := newPointCloud(identityX, identityY, zero, 15, 15, 4)
	require.NoError(t, err)

	// stepIndices(15, 4) has 7 entries, so the interior is 5x5.
	assert.Equal(t, 5, pc.width)
	assert.Equal(t, 5, pc.height)
	assert.Len(t, pc.vertices, 25)
	assert.Len(t, pc.normals, 25)
}

// Constant coordinate functions collapse every cross product to zero length;
// generation must fail rather than guess a normal.
func TestNewPointCloud_DegenerateSurface(t *testing.T) {
	constant := func(x, y, w, h float32) float32 { return 1 }

	_, err := newPointCloud(constant, constant, constant, 3, 3, 1)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}
