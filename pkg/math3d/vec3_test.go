package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

func assertVec3(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tolerance, "X")
	assert.InDelta(t, want.Y, got.Y, tolerance, "Y")
	assert.InDelta(t, want.Z, got.Z, tolerance, "Z")
}

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	assert.Equal(t, V3(5, -3, 9), a.Add(b))
	assert.Equal(t, V3(-3, 7, -3), a.Sub(b))
	assert.Equal(t, V3(2, 4, 6), a.Scale(2))
	assert.Equal(t, V3(-1, -2, -3), a.Negate())
	assert.Equal(t, 12.0, a.Dot(b))

	// Inputs are values and stay untouched.
	assert.Equal(t, V3(1, 2, 3), a)
}

func TestVec3Cross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)

	assert.Equal(t, V3(0, 0, 1), x.Cross(y))
	assert.Equal(t, V3(0, 0, -1), y.Cross(x))
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"axis", V3(0, 5, 0), V3(0, 1, 0)},
		{"3-4-5", V3(3, 4, 0), V3(0.6, 0.8, 0)},
		{"zero returned unchanged", Zero3(), Zero3()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertVec3(t, tc.want, tc.in.Normalize())
		})
	}
}

func TestVec3LenDistance(t *testing.T) {
	assert.Equal(t, 5.0, V3(3, 4, 0).Len())
	assert.InDelta(t, math.Sqrt(3), V3(1, 1, 1).Distance(Zero3()), tolerance)
}

func TestVec3MinMax(t *testing.T) {
	a := V3(1, 5, -2)
	b := V3(3, -1, 0)

	assert.Equal(t, V3(1, -1, -2), a.Min(b))
	assert.Equal(t, V3(3, 5, 0), a.Max(b))
	assert.Equal(t, 5.0, a.MaxComponent())
}

func TestVec2Arithmetic(t *testing.T) {
	a := V2(1, 2)
	b := V2(3, -4)

	assert.Equal(t, V2(4, -2), a.Add(b))
	assert.Equal(t, V2(-2, 6), a.Sub(b))
	assert.Equal(t, V2(0.5, 1), a.Scale(0.5))
}

func TestVec4PerspectiveDivide(t *testing.T) {
	assert.Equal(t, V3(1, 2, 3), V4(2, 4, 6, 2).PerspectiveDivide())
	// Degenerate w returns the undivided components.
	assert.Equal(t, V3(2, 4, 6), V4(2, 4, 6, 1e-9).PerspectiveDivide())
	assert.Equal(t, V3(2, 4, 6), V4(2, 4, 6, 0).PerspectiveDivide())
}
