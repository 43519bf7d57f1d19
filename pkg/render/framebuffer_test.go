package render

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestNewFramebufferIsBlack(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	assert.Equal(t, 3, fb.Width())
	assert.Equal(t, 2, fb.Height())
	require.Len(t, fb.Pixels, 6)
	for _, p := range fb.Pixels {
		assert.Equal(t, ColorBlack, p)
	}
}

func TestNegativeDimensions(t *testing.T) {
	fb := NewFramebuffer(-1, 5)
	assert.Equal(t, 0, fb.Width())
	assert.Empty(t, fb.Pixels)
	fb.SetPixel(0, 0, ColorRed)
	fb.Clear(ColorRed)
}

func TestPixelBounds(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.SetPixel(3, 2, ColorRed)
	assert.Equal(t, ColorRed, fb.GetPixel(3, 2))
	assert.Equal(t, ColorRed, fb.Pixels[2*4+3])

	before := append([]Color(nil), fb.Pixels...)
	for _, p := range []pixel{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		fb.SetPixel(p.x, p.y, ColorGreen)
		assert.Equal(t, ColorBlack, fb.GetPixel(p.x, p.y), "read at %v", p)
	}
	assert.Equal(t, before, fb.Pixels)
}

func TestGetPixelOutOfRangeReturnsClearColor(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Clear(ColorBlue)
	assert.Equal(t, ColorBlue, fb.GetPixel(-5, 0))
	assert.Equal(t, ColorBlue, fb.GetPixel(0, 0))
}

func TestClear(t *testing.T) {
	fb := NewFramebuffer(7, 5)
	fb.SetPixel(1, 1, ColorRed)
	fb.Clear(ColorCyan)
	for _, p := range fb.Pixels {
		assert.Equal(t, ColorCyan, p)
	}
}

func TestResize(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Clear(ColorGray)
	fb.Resize(3, 4)
	assert.Equal(t, 3, fb.Width())
	assert.Equal(t, 4, fb.Height())
	assert.Len(t, fb.Pixels, 12)
	assert.Equal(t, ColorGray, fb.GetPixel(2, 3))
}

func TestWritePPM(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.SetPixel(0, 0, RGB(255, 0, 0))
	fb.SetPixel(1, 0, RGB(0, 255, 0))

	var buf bytes.Buffer
	require.NoError(t, fb.WritePPM(&buf))
	assert.Equal(t, []byte("P6\n2 1\n255\n\xFF\x00\x00\x00\xFF\x00"), buf.Bytes())
}

func TestWritePPMSize(t *testing.T) {
	fb := NewFramebuffer(5, 3)
	var buf bytes.Buffer
	require.NoError(t, fb.WritePPM(&buf))

	header := "P6\n5 3\n255\n"
	assert.Equal(t, len(header)+5*3*3, buf.Len())
	assert.Equal(t, header, buf.String()[:len(header)])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWritePPMError(t *testing.T) {
	fb := NewFramebuffer(64, 64)
	fb.SetPixel(1, 1, ColorRed)
	assert.Error(t, fb.WritePPM(failingWriter{}))
	assert.Equal(t, ColorRed, fb.GetPixel(1, 1))
}

func TestSaveByExtension(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.SetPixel(2, 1, ColorYellow)
	dir := t.TempDir()

	ppm := filepath.Join(dir, "frame.ppm")
	require.NoError(t, fb.Save(ppm))
	data, err := os.ReadFile(ppm)
	require.NoError(t, err)
	assert.Equal(t, len("P6\n3 2\n255\n")+18, len(data))

	pngPath := filepath.Join(dir, "frame.PNG")
	require.NoError(t, fb.Save(pngPath))
	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	r, g, b, _ := img.At(2, 1).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0}, [3]uint32{r, g, b})

	bmpPath := filepath.Join(dir, "frame.bmp")
	require.NoError(t, fb.Save(bmpPath))
	bf, err := os.Open(bmpPath)
	require.NoError(t, err)
	defer bf.Close()
	cfg, err := bmp.DecodeConfig(bf)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Width)
	assert.Equal(t, 2, cfg.Height)

	assert.ErrorIs(t, fb.Save(filepath.Join(dir, "frame.gif")), ErrUnknownFormat)
	assert.Error(t, fb.SavePPM(filepath.Join(dir, "missing", "frame.ppm")))
}

func TestToImage(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetPixel(1, 0, ColorMagenta)
	img := fb.ToImage()
	assert.Equal(t, ColorMagenta, img.RGBAAt(1, 0))
	assert.Equal(t, ColorBlack, img.RGBAAt(0, 1))
}
