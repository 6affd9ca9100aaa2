package lithophane

import "errors"

// ErrDegenerateGeometry is reported when a face normal cannot be derived:
// either three triangle points are collinear or coincident, or the normal
// estimate at a vertex collapses to a zero-length vector (for instance when
// the coordinate functions map a whole neighbourhood onto one point).
var ErrDegenerateGeometry = errors.New("degenerate geometry: points are collinear or coincident")
