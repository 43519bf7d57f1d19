package transform

import (
	"github.com/taigrr/wireframe/pkg/math3d"
)

// Pipeline is an append-only sequence of Ops plus a cached composite matrix.
//
// The cached matrix, when not stale, equals Op_n * ... * Op_2 * Op_1, so the
// first op added is the first one applied to a point. Appending is cheap;
// the fold only runs on the first Resolve after a change.
//
// The zero value is an empty pipeline whose first Resolve folds to the
// identity. A Pipeline is not safe for concurrent use.
type Pipeline struct {
	ops    []Op
	cached math3d.Mat4
	valid  bool // cached matches ops
	folds  int
}

// NewPipeline returns an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Add appends op and marks the cached matrix stale.
func (p *Pipeline) Add(op Op) {
	p.ops = append(p.ops, op)
	p.valid = false
}

// AddTranslation appends a translation.
func (p *Pipeline) AddTranslation(x, y, z float64) {
	p.Add(Translation{X: x, Y: y, Z: z})
}

// AddRotation appends a rotation of angle radians about axis.
func (p *Pipeline) AddRotation(axis Axis, angle float64) {
	p.Add(Rotation{Axis: axis, Angle: angle})
}

// AddRotationX appends a rotation about the X axis.
func (p *Pipeline) AddRotationX(angle float64) {
	p.AddRotation(AxisX, angle)
}

// AddRotationY appends a rotation about the Y axis.
func (p *Pipeline) AddRotationY(angle float64) {
	p.AddRotation(AxisY, angle)
}

// AddRotationZ appends a rotation about the Z axis.
func (p *Pipeline) AddRotationZ(angle float64) {
	p.AddRotation(AxisZ, angle)
}

// AddScale appends a component-wise scale.
func (p *Pipeline) AddScale(x, y, z float64) {
	p.Add(Scale{X: x, Y: y, Z: z})
}

// AddMatrix appends a raw matrix.
func (p *Pipeline) AddMatrix(m math3d.Mat4) {
	p.Add(RawMatrix{M: m})
}

// Clear empties the sequence. The next Resolve yields the identity.
func (p *Pipeline) Clear() {
	p.ops = p.ops[:0]
	p.valid = false
}

// Resolve returns the composite matrix, refolding only when stale.
func (p *Pipeline) Resolve() math3d.Mat4 {
	if !p.valid {
		p.fold()
	}
	return p.cached
}

func (p *Pipeline) fold() {
	m := math3d.Identity()
	for _, op := range p.ops {
		m = op.Matrix().Mul(m)
	}
	p.cached = m
	p.valid = true
	p.folds++
}

// Apply resolves the pipeline and transforms v.
func (p *Pipeline) Apply(v math3d.Vec3) math3d.Vec3 {
	m := p.Resolve()
	return m.MulVec3(v)
}

// Len returns the number of ops in the sequence.
func (p *Pipeline) Len() int {
	return len(p.ops)
}

// Ops returns a copy of the op sequence in insertion order.
func (p *Pipeline) Ops() []Op {
	out := make([]Op, len(p.ops))
	copy(out, p.ops)
	return out
}

// Stale reports whether the next Resolve will refold.
func (p *Pipeline) Stale() bool {
	return !p.valid
}

// Folds returns how many times the matrix has been recomputed.
func (p *Pipeline) Folds() int {
	return p.folds
}
