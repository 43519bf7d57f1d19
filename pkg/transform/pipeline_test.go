package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/wireframe/pkg/math3d"
)

const tolerance = 1e-9

func assertMat4(t *testing.T, want, got math3d.Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tolerance, "element %d", i)
	}
}

func TestEmptyPipelineIsIdentity(t *testing.T) {
	var p Pipeline

	assert.True(t, p.Stale())
	assert.Equal(t, math3d.Identity(), p.Resolve())
	assert.False(t, p.Stale())
	assert.Equal(t, 1, p.Folds())
}

func TestResolveFoldsOncePerChange(t *testing.T) {
	p := NewPipeline()
	p.AddTranslation(1, 2, 3)
	p.AddRotationY(0.5)
	p.AddScale(2, 2, 2)

	// Appends alone never fold.
	assert.Equal(t, 0, p.Folds())

	first := p.Resolve()
	for range 10 {
		assert.Equal(t, first, p.Resolve())
	}
	assert.Equal(t, 1, p.Folds())

	p.AddRotationX(0.25)
	p.AddRotationZ(0.25)
	assert.True(t, p.Stale())
	_ = p.Resolve()
	_ = p.Resolve()
	assert.Equal(t, 2, p.Folds())

	p.Clear()
	assert.True(t, p.Stale())
	assert.Equal(t, math3d.Identity(), p.Resolve())
	assert.Equal(t, 3, p.Folds())
	assert.Equal(t, 0, p.Len())
}

func TestApplyDoesNotRefold(t *testing.T) {
	p := NewPipeline()
	p.AddTranslation(0, 0, 3)

	for range 5 {
		assert.Equal(t, math3d.V3(1, 1, 4), p.Apply(math3d.V3(1, 1, 1)))
	}
	assert.Equal(t, 1, p.Folds())
}

func TestFirstAddedIsInnermost(t *testing.T) {
	theta, phi := 0.7, -0.3

	p := NewPipeline()
	p.AddRotationY(theta)
	p.AddRotationX(phi)

	want := math3d.RotateX(phi).Mul(math3d.RotateY(theta))
	assertMat4(t, want, p.Resolve())

	v := math3d.V3(0.2, -1.5, 3)
	stepwise := math3d.RotateX(phi).MulVec3(math3d.RotateY(theta).MulVec3(v))
	got := p.Apply(v)
	assert.InDelta(t, stepwise.X, got.X, tolerance)
	assert.InDelta(t, stepwise.Y, got.Y, tolerance)
	assert.InDelta(t, stepwise.Z, got.Z, tolerance)
}

func TestTranslateThenScale(t *testing.T) {
	p := NewPipeline()
	p.AddTranslation(1, 0, 0)
	p.AddScale(2, 2, 2)

	// Translation applies first, so the offset is scaled too.
	assert.Equal(t, math3d.V3(4, 0, 0), p.Apply(math3d.V3(1, 0, 0)))
}

func TestAllVariants(t *testing.T) {
	raw := math3d.Translate(math3d.V3(0, 0, 5))

	p := NewPipeline()
	p.Add(Translation{X: 1})
	p.Add(Rotation{Axis: AxisZ, Angle: math.Pi / 2})
	p.Add(Scale{X: 1, Y: 3, Z: 1})
	p.AddMatrix(raw)

	require.Equal(t, 4, p.Len())
	ops := p.Ops()
	assert.IsType(t, Translation{}, ops[0])
	assert.IsType(t, Rotation{}, ops[1])
	assert.IsType(t, Scale{}, ops[2])
	assert.IsType(t, RawMatrix{}, ops[3])

	// (0,0,0) -> (1,0,0) -> (0,1,0) -> (0,3,0) -> (0,3,5)
	got := p.Apply(math3d.Zero3())
	assert.InDelta(t, 0, got.X, tolerance)
	assert.InDelta(t, 3, got.Y, tolerance)
	assert.InDelta(t, 5, got.Z, tolerance)
}

func TestOpsReturnsCopy(t *testing.T) {
	p := NewPipeline()
	p.AddScale(1, 1, 1)

	ops := p.Ops()
	ops[0] = Translation{X: 9}

	assert.Equal(t, Scale{X: 1, Y: 1, Z: 1}, p.Ops()[0])
}

func TestRotationMatrix(t *testing.T) {
	assert.Equal(t, math3d.RotateX(1), Rotation{Axis: AxisX, Angle: 1}.Matrix())
	assert.Equal(t, math3d.RotateY(1), Rotation{Axis: AxisY, Angle: 1}.Matrix())
	assert.Equal(t, math3d.RotateZ(1), Rotation{Axis: AxisZ, Angle: 1}.Matrix())
	assert.Equal(t, math3d.Identity(), Rotation{Axis: Axis(7), Angle: 1}.Matrix())
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{Translation{X: 1, Y: 2, Z: 3}, "translate(1, 2, 3)"},
		{Rotation{Axis: AxisY, Angle: 0.5}, "rotateY(0.5)"},
		{Scale{X: 2, Y: 2, Z: 2}, "scale(2, 2, 2)"},
		{RawMatrix{M: math3d.Identity()}, "matrix"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, Describe(tc.op))
		})
	}
	assert.Equal(t, "Axis(7)", Axis(7).String())
}

func BenchmarkResolveCached(b *testing.B) {
	p := NewPipeline()
	for i := range 64 {
		p.AddRotationY(float64(i) * 0.01)
	}
	_ = p.Resolve()

	for b.Loop() {
		_ = p.Resolve()
	}
}

func BenchmarkResolveAfterAppend(b *testing.B) {
	p := NewPipeline()

	for b.Loop() {
		p.AddRotationX(0.01)
		_ = p.Resolve()
	}
}
