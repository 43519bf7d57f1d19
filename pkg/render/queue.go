package render

import (
	"github.com/taigrr/wireframe/pkg/math3d"
	"github.com/taigrr/wireframe/pkg/models"
)

// Primitive is a drawing command that can be deferred. The set of
// implementations is closed: Point, Line and Circle.
type Primitive interface {
	isPrimitive()
}

// Point is a filled disc of radius Size pixels.
type Point struct {
	Position math3d.Vec3
	Size     int
	Color    Color
}

// Line is a segment between two points.
type Line struct {
	Start, End math3d.Vec3
	Color      Color
}

// Circle is a midpoint outline of Radius pixels, truncated to an integer.
type Circle struct {
	Center math3d.Vec3
	Radius float64
	Color  Color
}

func (Point) isPrimitive()  {}
func (Line) isPrimitive()   {}
func (Circle) isPrimitive() {}

// op is a primitive already resolved to pixel coordinates.
type op struct {
	kind   opKind
	x0, y0 int
	x1, y1 int
	r      int
	color  Color
}

type opKind uint8

const (
	opPoint opKind = iota
	opLine
	opCircle
)

// Queue collects primitives and draws them onto a Target when flushed.
// Points are projected when they are enqueued, so transforming an object
// after enqueueing it does not change what gets drawn.
type Queue struct {
	target   Target
	Viewport Viewport
	ops      []op
}

// NewQueue creates an empty orthographic queue targeting t.
func NewQueue(t Target) *Queue {
	return &Queue{target: t, Viewport: NewViewport(Orthographic)}
}

func (q *Queue) screen(v math3d.Vec3) (int, int) {
	return q.Viewport.Screen(v, q.target.Width(), q.target.Height())
}

// Enqueue appends p. A nil primitive is ignored.
func (q *Queue) Enqueue(p Primitive) {
	switch p := p.(type) {
	case Point:
		x, y := q.screen(p.Position)
		q.ops = append(q.ops, op{kind: opPoint, x0: x, y0: y, r: p.Size, color: p.Color})
	case Line:
		x0, y0 := q.screen(p.Start)
		x1, y1 := q.screen(p.End)
		q.ops = append(q.ops, op{kind: opLine, x0: x0, y0: y0, x1: x1, y1: y1, color: p.Color})
	case Circle:
		x, y := q.screen(p.Center)
		q.ops = append(q.ops, op{kind: opCircle, x0: x, y0: y, r: int(p.Radius), color: p.Color})
	}
}

// EnqueueWireframe appends a Line per valid edge of o followed by a Point
// per vertex.
func (q *Queue) EnqueueWireframe(o *models.Object, radius int, edgeColor, vertexColor Color) {
	n := len(o.Vertices)
	for _, e := range o.Edges {
		if !e.Valid(n) {
			continue
		}
		q.Enqueue(Line{Start: o.Vertices[e.A].Position, End: o.Vertices[e.B].Position, Color: edgeColor})
	}
	for _, v := range o.Vertices {
		q.Enqueue(Point{Position: v.Position, Size: radius, Color: vertexColor})
	}
}

// Len returns the number of queued primitives.
func (q *Queue) Len() int {
	return len(q.ops)
}

// Reset drops all queued primitives without drawing them.
func (q *Queue) Reset() {
	q.ops = q.ops[:0]
}

// Flush draws every queued primitive in enqueue order, so later
// primitives overwrite earlier ones, then empties the queue.
func (q *Queue) Flush() {
	for _, o := range q.ops {
		switch o.kind {
		case opPoint:
			FillCircle(q.target, o.x0, o.y0, o.r, o.color)
		case opLine:
			DrawLine(q.target, o.x0, o.y0, o.x1, o.y1, o.color)
		case opCircle:
			DrawCircle(q.target, o.x0, o.y0, o.r, o.color)
		}
	}
	q.Reset()
}
