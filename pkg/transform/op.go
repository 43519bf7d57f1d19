// Package transform provides an ordered log of affine transform commands
// that is collapsed lazily into a single cached matrix.
package transform

import (
	"fmt"

	"github.com/taigrr/wireframe/pkg/math3d"
)

// Axis names one of the three coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis letter.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Op is a single transform command. The set of implementations is closed:
// Translation, Rotation, Scale and RawMatrix.
type Op interface {
	// Matrix returns the equivalent homogeneous matrix.
	Matrix() math3d.Mat4
	isOp()
}

// Translation moves points by (X, Y, Z).
type Translation struct {
	X, Y, Z float64
}

// Rotation rotates points by Angle radians about Axis.
type Rotation struct {
	Axis  Axis
	Angle float64
}

// Scale scales points component-wise.
type Scale struct {
	X, Y, Z float64
}

// RawMatrix applies an arbitrary matrix.
type RawMatrix struct {
	M math3d.Mat4
}

func (Translation) isOp() {}
func (Rotation) isOp()    {}
func (Scale) isOp()       {}
func (RawMatrix) isOp()   {}

// Matrix implements Op.
func (t Translation) Matrix() math3d.Mat4 {
	return math3d.Translate(math3d.V3(t.X, t.Y, t.Z))
}

// Matrix implements Op. An unknown axis yields the identity.
func (r Rotation) Matrix() math3d.Mat4 {
	switch r.Axis {
	case AxisX:
		return math3d.RotateX(r.Angle)
	case AxisY:
		return math3d.RotateY(r.Angle)
	case AxisZ:
		return math3d.RotateZ(r.Angle)
	default:
		return math3d.Identity()
	}
}

// Matrix implements Op.
func (s Scale) Matrix() math3d.Mat4 {
	return math3d.Scale(math3d.V3(s.X, s.Y, s.Z))
}

// Matrix implements Op.
func (r RawMatrix) Matrix() math3d.Mat4 {
	return r.M
}

// Describe returns a short human readable form of op.
func Describe(op Op) string {
	switch o := op.(type) {
	case Translation:
		return fmt.Sprintf("translate(%g, %g, %g)", o.X, o.Y, o.Z)
	case Rotation:
		return fmt.Sprintf("rotate%s(%g)", o.Axis, o.Angle)
	case Scale:
		return fmt.Sprintf("scale(%g, %g, %g)", o.X, o.Y, o.Z)
	case RawMatrix:
		return "matrix"
	default:
		panic(fmt.Sprintf("transform: unknown op %T", op))
	}
}
