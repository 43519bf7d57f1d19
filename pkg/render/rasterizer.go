package render

// CircleMode selects how vertex markers are drawn.
type CircleMode int

const (
	// CircleFilled draws a solid disc.
	CircleFilled CircleMode = iota
	// CircleOutline draws only the midpoint circle outline.
	CircleOutline
)

// String returns the lowercase mode name.
func (m CircleMode) String() string {
	switch m {
	case CircleFilled:
		return "filled"
	case CircleOutline:
		return "outline"
	default:
		return "unknown"
	}
}

// ParseCircleMode parses "filled" or "outline".
func ParseCircleMode(s string) (CircleMode, bool) {
	switch s {
	case "filled":
		return CircleFilled, true
	case "outline":
		return CircleOutline, true
	default:
		return CircleFilled, false
	}
}

// DrawLine draws a line from (x0, y0) to (x1, y1) with integer Bresenham.
// Both endpoints are plotted and the pixel set does not depend on which
// endpoint comes first.
func DrawLine(t Target, x0, y0, x1, y1 int, c Color) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	yStep := 1
	if y0 > y1 {
		yStep = -1
	}

	err := dx / 2
	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			t.SetPixel(y, x, c)
		} else {
			t.SetPixel(x, y, c)
		}
		err -= dy
		if err < 0 {
			y += yStep
			err += dx
		}
	}
}

// FillCircle draws a solid disc: every pixel with dx*dx+dy*dy <= r*r.
// A zero radius plots the center; a negative radius draws nothing.
func FillCircle(t Target, cx, cy, r int, c Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				t.SetPixel(cx+dx, cy+dy, c)
			}
		}
	}
}

// DrawCircle draws a circle outline with the midpoint algorithm.
// A zero radius plots the center; a negative radius draws nothing.
func DrawCircle(t Target, cx, cy, r int, c Color) {
	x, y, err := r, 0, 0
	for x >= y {
		t.SetPixel(cx+x, cy+y, c)
		t.SetPixel(cx+y, cy+x, c)
		t.SetPixel(cx-y, cy+x, c)
		t.SetPixel(cx-x, cy+y, c)
		t.SetPixel(cx-x, cy-y, c)
		t.SetPixel(cx-y, cy-x, c)
		t.SetPixel(cx+y, cy-x, c)
		t.SetPixel(cx+x, cy-y, c)

		if err <= 0 {
			y++
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

// DrawMarker draws a vertex marker in the given mode.
func DrawMarker(t Target, mode CircleMode, cx, cy, r int, c Color) {
	if mode == CircleOutline {
		DrawCircle(t, cx, cy, r, c)
		return
	}
	FillCircle(t, cx, cy, r, c)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
