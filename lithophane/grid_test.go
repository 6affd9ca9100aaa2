package lithophane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepIndices_DocumentedExample(t *testing.T) {
	assert.Equal(t, []int{-4, 0, 4, 8, 12, 14, 16}, stepIndices(15, 4))
}

func TestStepIndices_FullResolution(t *testing.T) {
	// Step 1 samples every index from -1 to length inclusive.
	assert.Equal(t, []int{-1, 0, 1, 2, 3, 4, 5}, stepIndices(5, 1))
}

func TestStepIndices_StepLandsExactlyOnEdge(t *testing.T) {
	// 12 = 3*4 lands on length-1 without a correction index.
	assert.Equal(t, []int{-4, 0, 4, 8, 12, 16}, stepIndices(13, 4))
}

// The last image index must always be sampled exactly, and the final border
// index must mirror the second-to-last around it.
func TestStepIndices_EdgeExactAndMirrored(t *testing.T) {
	cases := []struct {
		length int
		step   int
	}{
		{2, 1}, {2, 4}, {5, 2}, {5, 3}, {15, 4}, {16, 4}, {17, 4}, {100, 7},
	}
	for _, tc := range cases {
		v := stepIndices(tc.length, tc.step)
		require.GreaterOrEqual(t, len(v), 3, "length=%d step=%d", tc.length, tc.step)

		assert.Contains(t, v, tc.length-1, "length=%d step=%d", tc.length, tc.step)
		assert.Equal(t, tc.length-1, v[len(v)-2], "length=%d step=%d", tc.length, tc.step)
		assert.Equal(t, 2*(tc.length-1)-v[len(v)-3], v[len(v)-1],
			"length=%d step=%d", tc.length, tc.step)
	}
}

func TestEvaluateGrid_DimensionsAndOrder(t *testing.T) {
	g := evaluateGrid(identityX, identityY, zero, 4, 3, 1)

	require.Equal(t, 6, g.cols)
	require.Equal(t, 5, g.rows)
	require.Len(t, g.verts, 30)

	// Row-major, starting at the border index (-1, -1).
	assert.Equal(t, v3(-1, -1, 0), g.at(0, 0))
	assert.Equal(t, v3(4, -1, 0), g.at(5, 0))
	assert.Equal(t, v3(0, 0, 0), g.at(1, 1))
	assert.Equal(t, v3(4, 3, 0), g.at(5, 4))
}

// The coordinate functions always receive the full image dimensions,
// regardless of step.
func TestEvaluateGrid_PassesFullDimensions(t *testing.T) {
	widthOf := func(x, y, w, h float32) float32 { return w }
	heightOf := func(x, y, w, h float32) float32 { return h }

	g := evaluateGrid(widthOf, heightOf, zero, 15, 9, 4)
	for _, v := range g.verts {
		assert.Equal(t, float32(15), v[0])
		assert.Equal(t, float32(9), v[1])
	}
}
