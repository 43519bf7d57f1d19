package render

import (
	"fmt"
	"math"

	"github.com/taigrr/wireframe/pkg/math3d"
)

// Projection selects how 3D points are flattened.
type Projection int

const (
	Orthographic Projection = iota
	Perspective
)

// String returns the lowercase projection name.
func (p Projection) String() string {
	switch p {
	case Orthographic:
		return "orthographic"
	case Perspective:
		return "perspective"
	default:
		return fmt.Sprintf("Projection(%d)", int(p))
	}
}

// ParseProjection parses "orthographic" or "perspective".
func ParseProjection(s string) (Projection, bool) {
	switch s {
	case "orthographic", "ortho":
		return Orthographic, true
	case "perspective":
		return Perspective, true
	default:
		return Orthographic, false
	}
}

// DefaultFocalLength is the focal length used by perspective viewports
// created with NewViewport.
const DefaultFocalLength = 2.0

// Viewport maps view-space points in [-1,1]^2 onto a pixel grid.
type Viewport struct {
	Projection  Projection
	FocalLength float64
}

// NewViewport creates a viewport using the given projection.
func NewViewport(p Projection) Viewport {
	return Viewport{Projection: p, FocalLength: DefaultFocalLength}
}

// Project flattens v according to the viewport projection.
func (vp Viewport) Project(v math3d.Vec3) math3d.Vec2 {
	if vp.Projection == Perspective {
		return math3d.ProjectPerspective(v, vp.FocalLength)
	}
	return math3d.ProjectOrthographic(v)
}

// ToScreen maps a projected point to pixel coordinates on a w x h target:
// x = (p.X+1)*w/2 and y = (1-p.Y)*h/2, truncated toward zero. +Y is up.
// Coordinates far outside the target are clamped to a guard band so a
// runaway projection cannot produce an unbounded line walk.
func (vp Viewport) ToScreen(p math3d.Vec2, w, h int) (x, y int) {
	sx := (p.X + 1) * float64(w) / 2
	sy := (1 - p.Y) * float64(h) / 2
	guard := float64(4 * max(w, h, 1))
	return int(clampGuard(sx, guard)), int(clampGuard(sy, guard))
}

// Screen projects v and maps it onto a w x h target.
func (vp Viewport) Screen(v math3d.Vec3, w, h int) (x, y int) {
	return vp.ToScreen(vp.Project(v), w, h)
}

func clampGuard(v, guard float64) float64 {
	switch {
	case math.IsNaN(v):
		return -guard
	case v < -guard:
		return -guard
	case v > guard:
		return guard
	default:
		return v
	}
}
