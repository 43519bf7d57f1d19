package render

// Framebuffer is an in-memory RGB pixel buffer stored row-major. A new
// framebuffer is black.
type Framebuffer struct {
	width  int
	height int
	Pixels []Color // row-major, len == width*height

	background Color // last clear color
}

// NewFramebuffer creates a black framebuffer. Negative dimensions are
// treated as zero.
func NewFramebuffer(width, height int) *Framebuffer {
	width, height = max(width, 0), max(height, 0)
	fb := &Framebuffer{
		width:  width,
		height: height,
		Pixels: make([]Color, width*height),
	}
	fb.Clear(ColorBlack)
	return fb
}

// Width returns the width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c Color) {
	fb.background = c
	if len(fb.Pixels) == 0 {
		return
	}
	// copy-doubling fill
	fb.Pixels[0] = c
	for filled := 1; filled < len(fb.Pixels); filled *= 2 {
		copy(fb.Pixels[filled:], fb.Pixels[:filled])
	}
}

// SetPixel sets the pixel at (x, y). Out-of-range writes are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if !fb.inBounds(x, y) {
		return
	}
	fb.Pixels[y*fb.width+x] = c
}

// GetPixel returns the color at (x, y), or the last clear color when
// (x, y) is out of range.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if !fb.inBounds(x, y) {
		return fb.background
	}
	return fb.Pixels[y*fb.width+x]
}

// Resize reallocates the buffer and fills it with the last clear color.
func (fb *Framebuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == fb.width && height == fb.height {
		return
	}
	fb.width, fb.height = width, height
	fb.Pixels = make([]Color, width*height)
	fb.Clear(fb.background)
}

func (fb *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}
