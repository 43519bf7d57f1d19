package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/wireframe/pkg/math3d"
	"github.com/taigrr/wireframe/pkg/models"
)

func TestQueueDefersDrawing(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	q := NewQueue(fb)

	q.Enqueue(Point{Position: math3d.Zero3(), Size: 1, Color: ColorRed})
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, ColorBlack, fb.GetPixel(5, 5))

	q.Flush()
	assert.Equal(t, ColorRed, fb.GetPixel(5, 5))
	assert.Equal(t, 0, q.Len())

	// Flushing an empty queue is a no-op.
	q.Flush()
	assert.Equal(t, ColorRed, fb.GetPixel(5, 5))
}

func TestQueueLastWriterWins(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	q := NewQueue(fb)
	q.Enqueue(Line{Start: math3d.V3(-1, 0, 0), End: math3d.V3(1, 0, 0), Color: ColorGreen})
	q.Enqueue(Point{Position: math3d.Zero3(), Size: 0, Color: ColorRed})
	q.Flush()
	assert.Equal(t, ColorRed, fb.GetPixel(5, 5))

	q.Enqueue(Point{Position: math3d.Zero3(), Size: 0, Color: ColorRed})
	q.Enqueue(Line{Start: math3d.V3(-1, 0, 0), End: math3d.V3(1, 0, 0), Color: ColorGreen})
	q.Flush()
	assert.Equal(t, ColorGreen, fb.GetPixel(5, 5))
}

func TestQueueFlushOrder(t *testing.T) {
	rec := newRecorder(10, 10)
	q := NewQueue(rec)
	q.Enqueue(Point{Position: math3d.Zero3(), Size: 0, Color: ColorRed})
	q.Enqueue(Circle{Center: math3d.Zero3(), Radius: 0.9, Color: ColorGreen})
	q.Enqueue(Line{Start: math3d.Zero3(), End: math3d.Zero3(), Color: ColorBlue})
	q.Flush()

	require.NotEmpty(t, rec.colors)
	assert.Equal(t, ColorRed, rec.colors[0])
	assert.Equal(t, ColorBlue, rec.colors[len(rec.colors)-1])
	for _, c := range rec.colors[1 : len(rec.colors)-1] {
		assert.Equal(t, ColorGreen, c)
	}
	// A radius truncated to zero draws the center only.
	for _, p := range rec.writes {
		assert.Equal(t, pixel{5, 5}, p)
	}
}

func TestQueueProjectsAtEnqueue(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	q := NewQueue(fb)

	o := models.NewObject("p")
	o.AddVertex(math3d.Zero3())
	q.EnqueueWireframe(o, 0, ColorRed, ColorRed)

	o.Transform(math3d.Translate(math3d.V3(0.6, 0, 0)))
	q.Flush()

	assert.Equal(t, ColorRed, fb.GetPixel(5, 5))
	assert.Equal(t, ColorBlack, fb.GetPixel(8, 5))
}

func TestQueueReset(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	q := NewQueue(fb)
	q.EnqueueWireframe(models.CreateTetrahedron(1), 1, ColorWhite, ColorWhite)
	assert.Equal(t, 10, q.Len())

	q.Reset()
	q.Flush()
	for _, p := range fb.Pixels {
		assert.Equal(t, ColorBlack, p)
	}
}

func TestEnqueueWireframeSkipsInvalidEdges(t *testing.T) {
	o := models.CreateTetrahedron(1)
	o.AddEdge(0, 99)
	o.AddEdge(-1, 2)

	q := NewQueue(NewFramebuffer(8, 8))
	q.EnqueueWireframe(o, 1, ColorWhite, ColorWhite)
	assert.Equal(t, 6+4, q.Len())

	q.Enqueue(nil)
	assert.Equal(t, 10, q.Len())
}

func TestQueueMatchesRenderer(t *testing.T) {
	o := models.CreateTetrahedron(1)

	direct := NewFramebuffer(48, 48)
	NewRenderer(direct).DrawWireframe(o, 2, ColorWhite, ColorWhite)

	deferred := NewFramebuffer(48, 48)
	q := NewQueue(deferred)
	q.EnqueueWireframe(o, 2, ColorWhite, ColorWhite)
	q.Flush()

	assert.Equal(t, direct.Pixels, deferred.Pixels)
}

func BenchmarkQueueWireframe(b *testing.B) {
	o := models.CreateCube(1)
	fb := NewFramebuffer(320, 240)
	q := NewQueue(fb)
	for b.Loop() {
		q.EnqueueWireframe(o, 2, ColorWhite, ColorWhite)
		q.Flush()
	}
}
