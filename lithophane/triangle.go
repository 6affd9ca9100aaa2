package lithophane

import "github.com/hschendel/stl"

// newTriangle builds an STL triangle from three points wound
// counter-clockwise, deriving the face normal from the winding under the
// right-hand rule. Collinear or coincident points are rejected with
// ErrDegenerateGeometry; every triangle in every mesh is built here, so no
// mesh can contain a face with an undefined normal.
func newTriangle(p0, p1, p2 stl.Vec3) (stl.Triangle, error) {
	n, err := unit(cross(sub(p1, p0), sub(p2, p0)))
	if err != nil {
		return stl.Triangle{}, err
	}
	return stl.Triangle{
		Normal:   n,
		Vertices: [3]stl.Vec3{p0, p1, p2},
	}, nil
}
