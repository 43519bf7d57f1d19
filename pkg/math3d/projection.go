package math3d

import "math"

// ProjectOrthographic drops the z component.
func ProjectOrthographic(v Vec3) Vec2 {
	return Vec2{v.X, v.Y}
}

// ProjectPerspective scales x and y by focal/(focal+z). Points with
// |z| < Epsilon fall back to the orthographic projection.
func ProjectPerspective(v Vec3, focal float64) Vec2 {
	if math.Abs(v.Z) < Epsilon {
		return ProjectOrthographic(v)
	}
	s := focal / (focal + v.Z)
	return Vec2{v.X * s, v.Y * s}
}
