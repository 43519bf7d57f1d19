package math3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectOrthographic(t *testing.T) {
	assert.Equal(t, V2(1, -2), ProjectOrthographic(V3(1, -2, 99)))
}

func TestProjectPerspective(t *testing.T) {
	tests := []struct {
		name  string
		in    Vec3
		focal float64
		want  Vec2
	}{
		{"z behind focal plane shrinks", V3(2, 4, 2), 2, V2(1, 2)},
		{"z in front grows", V3(1, 1, -0.5), 1, V2(2, 2)},
		{"near zero z degrades to orthographic", V3(3, 5, 1e-8), 1, V2(3, 5)},
		{"zero z", V3(3, 5, 0), 10, V2(3, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ProjectPerspective(tc.in, tc.focal)
			assert.InDelta(t, tc.want.X, got.X, tolerance)
			assert.InDelta(t, tc.want.Y, got.Y, tolerance)
		})
	}
}
