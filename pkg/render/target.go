// Package render rasterizes wireframe objects onto pixel targets such as an
// in-memory framebuffer or a terminal screen.
package render

import "image/color"

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack   = color.RGBA{0, 0, 0, 255}
	ColorWhite   = color.RGBA{255, 255, 255, 255}
	ColorRed     = color.RGBA{255, 0, 0, 255}
	ColorGreen   = color.RGBA{0, 255, 0, 255}
	ColorBlue    = color.RGBA{0, 0, 255, 255}
	ColorYellow  = color.RGBA{255, 255, 0, 255}
	ColorCyan    = color.RGBA{0, 255, 255, 255}
	ColorMagenta = color.RGBA{255, 0, 255, 255}
	ColorGray    = color.RGBA{128, 128, 128, 255}
)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Target is the pixel sink every drawing routine writes through.
// Implementations ignore writes outside [0,Width)x[0,Height).
type Target interface {
	SetPixel(x, y int, c Color)
	GetPixel(x, y int) Color
	Width() int
	Height() int
	Clear(c Color)
}
