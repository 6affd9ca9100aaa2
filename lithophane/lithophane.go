// Package lithophane turns a grayscale image into a closed triangle mesh
// whose local thickness encodes pixel brightness. The shape of the backing
// surface is not fixed: three caller-supplied coordinate functions map image
// indices onto world coordinates, so the backing can be a plane, a cylinder,
// a wave, or anything else they describe.
//
// Generation is synchronous and single-threaded; a call owns all of its
// buffers and shares nothing with other calls. It is not interruptible
// mid-way, so a caller needing bounded latency must impose its own deadline
// around the whole call.
package lithophane

import (
	"fmt"
	"image"

	"github.com/hschendel/stl"
)

// CoordFunc maps an image index (x, y) and the full image dimensions (w, h)
// to a single world coordinate. x and y may lie outside the image: one index
// beyond every edge is sampled to estimate border normals. Implementations
// must be pure and total; they are called once per grid index with no
// memoization.
type CoordFunc func(x, y, w, h float32) float32

// Generate builds a full lithophane for img: the backing surface described
// by the three coordinate functions, a front surface displaced along the
// per-vertex normals by a brightness-derived depth, and four side walls
// closing the mesh into a watertight solid. whiteDepth and blackDepth are
// the extrusion depths for pure white and pure black pixels; intermediate
// intensities interpolate linearly between them.
//
// Generation is all-or-nothing: if any face normal is undefined
// (ErrDegenerateGeometry), no partial mesh is returned. An image with a zero
// or one pixel side yields a solid with no triangles.
func Generate(xFn, yFn, zFn CoordFunc, img *image.Gray, whiteDepth, blackDepth float32) (*stl.Solid, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return &stl.Solid{}, nil
	}

	pc, err := newPointCloud(xFn, yFn, zFn, width, height, 1)
	if err != nil {
		return nil, err
	}

	triangles, err := assembleMesh(pc, img, whiteDepth, blackDepth)
	if err != nil {
		return nil, err
	}

	return &stl.Solid{Triangles: triangles}, nil
}

// Preview triangulates only the backing surface, sampled every step indices,
// with the image edges always sampled exactly. There is no normal
// estimation, extrusion, or side wall: the result is a cheap open surface
// for visualising the coordinate functions before a full generation.
func Preview(xFn, yFn, zFn CoordFunc, width, height, step int) (*stl.Solid, error) {
	if step < 1 {
		return nil, fmt.Errorf("step must be at least 1, got %d", step)
	}
	if width <= 0 || height <= 0 {
		return &stl.Solid{}, nil
	}

	g := evaluateGrid(xFn, yFn, zFn, width, height, step)

	wc := g.cols - 2
	hc := g.rows - 2

	triangles := make([]stl.Triangle, 0, 2*(wc-1)*(hc-1))
	for y := 0; y < hc-1; y++ {
		for x := 0; x < wc-1; x++ {
			t, err := newTriangle(g.at(x+1, y+1), g.at(x+1, y+2), g.at(x+2, y+2))
			if err != nil {
				return nil, err
			}
			triangles = append(triangles, t)
			t, err = newTriangle(g.at(x+1, y+1), g.at(x+2, y+2), g.at(x+2, y+1))
			if err != nil {
				return nil, err
			}
			triangles = append(triangles, t)
		}
	}

	return &stl.Solid{Triangles: triangles}, nil
}
