// Package models provides the index-based wireframe object and loaders
// that build one from model files.
package models

import (
	"math"

	"github.com/taigrr/wireframe/pkg/math3d"
	"github.com/taigrr/wireframe/pkg/transform"
)

// Vertex is a point of an object in model space.
type Vertex struct {
	Position math3d.Vec3
}

// Edge connects two vertices by index into Object.Vertices.
type Edge struct {
	A, B int
}

// Valid reports whether both endpoints index into a vertex list of length n.
func (e Edge) Valid(n int) bool {
	return e.A >= 0 && e.A < n && e.B >= 0 && e.B < n
}

// Object is a wireframe: an ordered vertex list plus edges referring to it
// by position. Edges are not validated when added; renderers skip invalid
// ones.
type Object struct {
	Name     string
	Vertices []Vertex
	Edges    []Edge
}

// NewObject creates an empty object.
func NewObject(name string) *Object {
	return &Object{Name: name}
}

// AddVertex appends a vertex and returns its index.
func (o *Object) AddVertex(p math3d.Vec3) int {
	o.Vertices = append(o.Vertices, Vertex{Position: p})
	return len(o.Vertices) - 1
}

// AddEdge appends an edge between the vertices at indices a and b.
func (o *Object) AddEdge(a, b int) {
	o.Edges = append(o.Edges, Edge{A: a, B: b})
}

// VertexCount returns the number of vertices.
func (o *Object) VertexCount() int {
	return len(o.Vertices)
}

// EdgeCount returns the number of edges, valid or not.
func (o *Object) EdgeCount() int {
	return len(o.Edges)
}

// InvalidEdges counts edges with an out-of-range endpoint.
func (o *Object) InvalidEdges() int {
	n := 0
	for _, e := range o.Edges {
		if !e.Valid(len(o.Vertices)) {
			n++
		}
	}
	return n
}

// Transform replaces every vertex position p with m*p. Edges are untouched.
func (o *Object) Transform(m math3d.Mat4) {
	for i := range o.Vertices {
		o.Vertices[i].Position = m.MulVec3(o.Vertices[i].Position)
	}
}

// Clone returns a deep copy.
func (o *Object) Clone() *Object {
	c := &Object{Name: o.Name}
	if o.Vertices != nil {
		c.Vertices = append(make([]Vertex, 0, len(o.Vertices)), o.Vertices...)
	}
	if o.Edges != nil {
		c.Edges = append(make([]Edge, 0, len(o.Edges)), o.Edges...)
	}
	return c
}

// Bounds returns the axis-aligned bounding box. An empty object reports a
// zero box.
func (o *Object) Bounds() (lo, hi math3d.Vec3) {
	if len(o.Vertices) == 0 {
		return math3d.Zero3(), math3d.Zero3()
	}

	lo = o.Vertices[0].Position
	hi = lo
	for _, v := range o.Vertices[1:] {
		lo = lo.Min(v.Position)
		hi = hi.Max(v.Position)
	}
	return lo, hi
}

// Center returns the center of the bounding box.
func (o *Object) Center() math3d.Vec3 {
	lo, hi := o.Bounds()
	return lo.Add(hi).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (o *Object) Size() math3d.Vec3 {
	lo, hi := o.Bounds()
	return hi.Sub(lo)
}

// NormalizeToUnitCube centers the object on the origin and scales it so its
// largest bounding-box dimension becomes 2, fitting it in [-1,1]^3.
// Objects whose extent is zero in every axis are only centered.
func (o *Object) NormalizeToUnitCube() {
	if len(o.Vertices) == 0 {
		return
	}

	c := o.Center()
	p := transform.NewPipeline()
	p.AddTranslation(-c.X, -c.Y, -c.Z)
	if d := o.Size().MaxComponent(); d > 0 {
		s := 2 / d
		p.AddScale(s, s, s)
	}
	o.Transform(p.Resolve())
}

// CreateTetrahedron builds a four-vertex pyramid. The base is an
// equilateral triangle with side size lying at y = -h/3, and the apex sits
// on +Y at h = size*sqrt(2/3), so the apex edges are longer than size
// (about 1.23x). Only the base is regular.
func CreateTetrahedron(size float64) *Object {
	h := size * math.Sqrt(2.0/3.0)
	sqrt3 := math.Sqrt(3)

	o := NewObject("tetrahedron")
	apex := o.AddVertex(math3d.V3(0, h, 0))
	a := o.AddVertex(math3d.V3(-size/2, -h/3, -size/(2*sqrt3)))
	b := o.AddVertex(math3d.V3(size/2, -h/3, -size/(2*sqrt3)))
	c := o.AddVertex(math3d.V3(0, -h/3, size/sqrt3))

	o.AddEdge(apex, a)
	o.AddEdge(apex, b)
	o.AddEdge(apex, c)
	o.AddEdge(a, b)
	o.AddEdge(b, c)
	o.AddEdge(c, a)
	return o
}

// CreateCube builds an axis-aligned cube centered on the origin.
func CreateCube(size float64) *Object {
	s := size / 2
	o := NewObject("cube")
	for _, z := range []float64{-s, s} {
		o.AddVertex(math3d.V3(-s, -s, z))
		o.AddVertex(math3d.V3(s, -s, z))
		o.AddVertex(math3d.V3(s, s, z))
		o.AddVertex(math3d.V3(-s, s, z))
	}

	for i := range 4 {
		o.AddEdge(i, (i+1)%4)     // back face
		o.AddEdge(4+i, 4+(i+1)%4) // front face
		o.AddEdge(i, i+4)         // connecting
	}
	return o
}
