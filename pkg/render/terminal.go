package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// upperHalf is drawn with the top pixel as foreground and the bottom pixel
// as background, giving two framebuffer rows per terminal row.
const upperHalf = "▀"

// Draw paints the framebuffer onto area of scr. Framebuffer pixel (x, y)
// lands in cell (area.Min.X+x, area.Min.Y+y/2).
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		if topY >= fb.height {
			break
		}
		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.width {
				break
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: upperHalf,
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(fb.GetPixel(x, topY)),
					Bg: rgbaToColor(fb.GetPixel(x, topY+1)),
				},
			})
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // transparent
	}
	return c
}

// Display is a cell screen that can push its contents to the terminal,
// such as *uv.Terminal.
type Display interface {
	uv.Screen
	Display() error
}

// TerminalRenderer shows framebuffers on a terminal using half-block cells.
type TerminalRenderer struct {
	scr  Display
	cols int
	rows int
}

// NewTerminalRenderer creates a renderer for a cols x rows terminal.
func NewTerminalRenderer(scr Display, cols, rows int) *TerminalRenderer {
	return &TerminalRenderer{scr: scr, cols: max(cols, 0), rows: max(rows, 0)}
}

// FramebufferSize returns the framebuffer dimensions that exactly cover
// the terminal.
func (t *TerminalRenderer) FramebufferSize() (width, height int) {
	return t.cols, t.rows * 2
}

// Render copies fb onto the screen buffer.
func (t *TerminalRenderer) Render(fb *Framebuffer) {
	fb.Draw(t.scr, uv.Rect(0, 0, t.cols, t.rows))
}

// Flush pushes the screen buffer to the terminal.
func (t *TerminalRenderer) Flush() error {
	return t.scr.Display()
}
