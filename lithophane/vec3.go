package lithophane

import (
	"math"

	"github.com/hschendel/stl"
)

func sub(a, b stl.Vec3) stl.Vec3 {
	return stl.Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func add(a, b stl.Vec3) stl.Vec3 {
	return stl.Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func scale(a stl.Vec3, s float32) stl.Vec3 {
	return stl.Vec3{a[0] * s, a[1] * s, a[2] * s}
}

func cross(a, b stl.Vec3) stl.Vec3 {
	return stl.Vec3{
		a[1]*b[2] - b[1]*a[2],
		a[2]*b[0] - b[2]*a[0],
		a[0]*b[1] - b[0]*a[1],
	}
}

// unit returns v scaled to unit length, or ErrDegenerateGeometry if v has no
// length.
func unit(v stl.Vec3) (stl.Vec3, error) {
	l := float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l == 0 {
		return stl.Vec3{}, ErrDegenerateGeometry
	}
	return stl.Vec3{v[0] / l, v[1] / l, v[2] / l}, nil
}
