package lithophane

import "github.com/hschendel/stl"

// stepIndices builds the sample indices for one axis: from -step up to but
// not including length, stepping by step, with length-1 appended if the last
// regular step missed it, and a final index mirroring the second-to-last
// around length-1 (eg length=15 step=4 gives -4,0,4,8,12,14,16). The leading
// and trailing indices form the border used for normal estimation; the image
// edge itself is always sampled exactly.
func stepIndices(length, step int) []int {
	v := make([]int, 0, (length-1+step-1)/step+3)

	for i := -step; i < length; i += step {
		v = append(v, i)
	}

	if (length-1)%step != 0 {
		v = append(v, length-1)
	}
	v = append(v, 2*(length-1)-v[len(v)-2])

	return v
}

// grid is a bordered vertex grid: cols x rows vertices in row-major order,
// where the outer ring exists only to support normal estimation.
type grid struct {
	verts []stl.Vec3
	cols  int
	rows  int
}

func (g *grid) at(x, y int) stl.Vec3 {
	return g.verts[y*g.cols+x]
}

// evaluateGrid samples the three coordinate functions over the stepped index
// sequences for a width x height image. The functions always receive the full
// image dimensions as w and h, regardless of step. width and height must be
// at least 1.
func evaluateGrid(xFn, yFn, zFn CoordFunc, width, height, step int) *grid {
	xIndices := stepIndices(width, step)
	yIndices := stepIndices(height, step)

	w32 := float32(width)
	h32 := float32(height)

	verts := make([]stl.Vec3, 0, len(xIndices)*len(yIndices))
	for _, yi := range yIndices {
		for _, xi := range xIndices {
			x32 := float32(xi)
			y32 := float32(yi)
			verts = append(verts, stl.Vec3{
				xFn(x32, y32, w32, h32),
				yFn(x32, y32, w32, h32),
				zFn(x32, y32, w32, h32),
			})
		}
	}

	return &grid{verts: verts, cols: len(xIndices), rows: len(yIndices)}
}
