package lithophane

import (
	"fmt"

	"github.com/hschendel/stl"
)

// pointCloud is the interior of a bordered grid: width x height surface
// vertices in row-major order with one normal per vertex. vertices and
// normals are parallel and share index order.
type pointCloud struct {
	vertices []stl.Vec3
	normals  []stl.Vec3
	width    int
	height   int
}

// newPointCloud evaluates a bordered grid over the image dimensions and
// derives per-vertex normals from the border, which is then stripped.
//
// The normal at a vertex v averages two independent finite-difference
// estimates: the cross product of the vectors to the lower and right
// neighbours, and the cross product of the vectors to the upper and left
// neighbours. Each estimate is normalized before averaging so anisotropic
// step spacing cannot bias the result. Depth extrusion displaces along these
// normals, so the formula must not be swapped for another estimation scheme.
func newPointCloud(xFn, yFn, zFn CoordFunc, width, height, step int) (*pointCloud, error) {
	g := evaluateGrid(xFn, yFn, zFn, width, height, step)

	wc := g.cols - 2
	hc := g.rows - 2

	normals := make([]stl.Vec3, 0, wc*hc)
	for y := 0; y < hc; y++ {
		for x := 0; x < wc; x++ {
			v := g.at(x+1, y+1)
			// lower and right vectors
			n1, err := unit(cross(sub(g.at(x+1, y+2), v), sub(g.at(x+2, y+1), v)))
			if err != nil {
				return nil, fmt.Errorf("estimating normal at (%d, %d): %w", x, y, err)
			}
			// upper and left vectors
			n2, err := unit(cross(sub(g.at(x+1, y), v), sub(g.at(x, y+1), v)))
			if err != nil {
				return nil, fmt.Errorf("estimating normal at (%d, %d): %w", x, y, err)
			}
			n, err := unit(add(n1, n2))
			if err != nil {
				return nil, fmt.Errorf("estimating normal at (%d, %d): %w", x, y, err)
			}
			normals = append(normals, n)
		}
	}

	vertices := make([]stl.Vec3, 0, wc*hc)
	for y := 1; y <= hc; y++ {
		row := y * g.cols
		vertices = append(vertices, g.verts[row+1:row+1+wc]...)
	}

	return &pointCloud{
		vertices: vertices,
		normals:  normals,
		width:    wc,
		height:   hc,
	}, nil
}
