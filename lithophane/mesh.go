package lithophane

import (
	"image"

	"github.com/hschendel/stl"
)

// pixelDepth interpolates the extrusion depth for an 8-bit intensity:
// 255 maps to whiteDepth, 0 to blackDepth, linearly in between.
func pixelDepth(gray uint8, whiteDepth, blackDepth float32) float32 {
	return whiteDepth + float32(255-gray)/255*(blackDepth-whiteDepth)
}

// assembleMesh stitches the backing surface, the depth-extruded front
// surface, and the four side walls into one triangle list. The point cloud
// and image dimensions must match; with a one or zero pixel side every loop
// below is empty and no triangles are produced.
//
// Image origin is top left, so index (0, 0) is the top-left corner of the
// image. All windings are counter-clockwise seen from outside the solid.
func assembleMesh(pc *pointCloud, img *image.Gray, whiteDepth, blackDepth float32) ([]stl.Triangle, error) {
	width := pc.width
	height := pc.height
	if width < 2 || height < 2 {
		return nil, nil
	}

	// Triangles for backing mesh and front surface, plus the walls
	// enclosing the front against the backing.
	numTriangles := (width-1)*(height-1)*4 + 4*(width-1) + 4*(height-1)
	triangles := make([]stl.Triangle, 0, numTriangles)

	appendTriangle := func(p0, p1, p2 stl.Vec3) error {
		t, err := newTriangle(p0, p1, p2)
		if err != nil {
			return err
		}
		triangles = append(triangles, t)
		return nil
	}

	// Backing mesh.
	for y := 0; y < height-1; y++ {
		for x := 0; x < width-1; x++ {
			if err := appendTriangle(
				pc.vertices[y*width+x],
				pc.vertices[(y+1)*width+x+1],
				pc.vertices[(y+1)*width+x],
			); err != nil {
				return nil, err
			}
			if err := appendTriangle(
				pc.vertices[y*width+x],
				pc.vertices[y*width+x+1],
				pc.vertices[(y+1)*width+x+1],
			); err != nil {
				return nil, err
			}
		}
	}

	// Extrude each vertex along its normal by the depth of its pixel.
	bounds := img.Bounds()
	pxVertices := make([]stl.Vec3, 0, width*height)
	for i := 0; i < width*height; i++ {
		gray := img.GrayAt(bounds.Min.X+i%width, bounds.Min.Y+i/width).Y
		depth := pixelDepth(gray, whiteDepth, blackDepth)
		pxVertices = append(pxVertices, add(pc.vertices[i], scale(pc.normals[i], depth)))
	}

	// Front surface, winding mirrored relative to the backing mesh.
	for y := 0; y < height-1; y++ {
		for x := 0; x < width-1; x++ {
			if err := appendTriangle(
				pxVertices[y*width+x],
				pxVertices[(y+1)*width+x],
				pxVertices[(y+1)*width+x+1],
			); err != nil {
				return nil, err
			}
			if err := appendTriangle(
				pxVertices[y*width+x],
				pxVertices[(y+1)*width+x+1],
				pxVertices[y*width+x+1],
			); err != nil {
				return nil, err
			}
		}
	}

	// Wall along the top row of the image.
	for x := 0; x < width-1; x++ {
		if err := appendTriangle(pc.vertices[x], pxVertices[x], pxVertices[x+1]); err != nil {
			return nil, err
		}
		if err := appendTriangle(pc.vertices[x], pxVertices[x+1], pc.vertices[x+1]); err != nil {
			return nil, err
		}
	}

	// Wall along the bottom row.
	for i := (height - 1) * width; i < height*width-1; i++ {
		if err := appendTriangle(pc.vertices[i], pxVertices[i+1], pxVertices[i]); err != nil {
			return nil, err
		}
		if err := appendTriangle(pc.vertices[i], pc.vertices[i+1], pxVertices[i+1]); err != nil {
			return nil, err
		}
	}

	// Wall along the left column.
	for y := 0; y < height-1; y++ {
		current := y * width
		lower := (y + 1) * width
		if err := appendTriangle(pc.vertices[current], pc.vertices[lower], pxVertices[lower]); err != nil {
			return nil, err
		}
		if err := appendTriangle(pc.vertices[current], pxVertices[lower], pxVertices[current]); err != nil {
			return nil, err
		}
	}

	// Wall along the right column.
	for y := 0; y < height-1; y++ {
		current := (y+1)*width - 1
		lower := (y+2)*width - 1
		if err := appendTriangle(pc.vertices[current], pxVertices[lower], pc.vertices[lower]); err != nil {
			return nil, err
		}
		if err := appendTriangle(pc.vertices[current], pxVertices[current], pxVertices[lower]); err != nil {
			return nil, err
		}
	}

	return triangles, nil
}
