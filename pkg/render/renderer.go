package render

import (
	"github.com/taigrr/wireframe/pkg/math3d"
	"github.com/taigrr/wireframe/pkg/models"
)

// DrawStats counts what a DrawWireframe call drew.
type DrawStats struct {
	Edges        int // edges drawn
	SkippedEdges int // edges with an out-of-range endpoint
	Vertices     int // vertex markers drawn
}

// Renderer draws wireframe objects immediately onto a Target.
type Renderer struct {
	target   Target
	Viewport Viewport
	Mode     CircleMode
}

// NewRenderer creates an orthographic renderer drawing filled vertex
// markers onto t.
func NewRenderer(t Target) *Renderer {
	return &Renderer{
		target:   t,
		Viewport: NewViewport(Orthographic),
		Mode:     CircleFilled,
	}
}

// Target returns the surface the renderer draws on.
func (r *Renderer) Target() Target {
	return r.target
}

// Clear fills the target with c.
func (r *Renderer) Clear(c Color) {
	r.target.Clear(c)
}

func (r *Renderer) screen(v math3d.Vec3) (int, int) {
	return r.Viewport.Screen(v, r.target.Width(), r.target.Height())
}

// DrawVertex draws a marker of the given pixel radius at pos.
func (r *Renderer) DrawVertex(pos math3d.Vec3, radius int, c Color) {
	x, y := r.screen(pos)
	DrawMarker(r.target, r.Mode, x, y, radius, c)
}

// DrawEdge draws a line between two points.
func (r *Renderer) DrawEdge(a, b math3d.Vec3, c Color) {
	x0, y0 := r.screen(a)
	x1, y1 := r.screen(b)
	DrawLine(r.target, x0, y0, x1, y1, c)
}

// DrawWireframe draws every valid edge of o, then a marker on every
// vertex. Edges with an out-of-range endpoint are skipped.
func (r *Renderer) DrawWireframe(o *models.Object, radius int, edgeColor, vertexColor Color) DrawStats {
	var stats DrawStats
	n := len(o.Vertices)
	for _, e := range o.Edges {
		if !e.Valid(n) {
			stats.SkippedEdges++
			continue
		}
		r.DrawEdge(o.Vertices[e.A].Position, o.Vertices[e.B].Position, edgeColor)
		stats.Edges++
	}
	for _, v := range o.Vertices {
		r.DrawVertex(v.Position, radius, vertexColor)
		stats.Vertices++
	}
	return stats
}
