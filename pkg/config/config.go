// Package config loads and saves the wireframe TOML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/taigrr/wireframe/pkg/render"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// MaxFPS bounds the view frame rate so the frame interval stays positive.
const MaxFPS = 1000

// Config holds every tunable of the render and view commands.
type Config struct {
	Width        int     `toml:"width" comment:"output width in pixels"`
	Height       int     `toml:"height" comment:"output height in pixels"`
	Frames       int     `toml:"frames" comment:"frames in one full revolution"`
	VertexRadius int     `toml:"vertex_radius" comment:"vertex marker radius in pixels"`
	EdgeColor    string  `toml:"edge_color" comment:"R,G,B"`
	VertexColor  string  `toml:"vertex_color" comment:"R,G,B"`
	Background   string  `toml:"background" comment:"R,G,B"`
	Projection   string  `toml:"projection" comment:"orthographic or perspective"`
	FocalLength  float64 `toml:"focal_length"`
	Distance     float64 `toml:"distance" comment:"object distance from the viewer in perspective mode"`
	CircleMode   string  `toml:"circle_mode" comment:"filled or outline"`
	Output       string  `toml:"output" comment:"frame file prefix"`
	Format       string  `toml:"format" comment:"ppm, png or bmp"`
	FPS          int     `toml:"fps" comment:"view command frame rate"`
	Tilt         float64 `toml:"tilt" comment:"initial X and Y rotation in radians"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:        800,
		Height:       600,
		Frames:       60,
		VertexRadius: 3,
		EdgeColor:    "255,255,255",
		VertexColor:  "255,255,255",
		Background:   "0,0,0",
		Projection:   "orthographic",
		FocalLength:  render.DefaultFocalLength,
		Distance:     3,
		CircleMode:   "filled",
		Output:       "frame",
		Format:       "ppm",
		FPS:          30,
		Tilt:         0.5,
	}
}

// Load reads path over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return c, fmt.Errorf("%s:%d:%d: %w", path, row, col, err)
		}
		return c, fmt.Errorf("%s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Write encodes c as TOML to w.
func (c Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Save writes c to path as TOML.
func (c Config) Save(path string) error {
	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate reports every out-of-range or unparsable value.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
		}
	}

	check(c.Width > 0, "width %d must be positive", c.Width)
	check(c.Height > 0, "height %d must be positive", c.Height)
	check(c.Frames > 0, "frames %d must be positive", c.Frames)
	check(c.VertexRadius >= 0, "vertex_radius %d must not be negative", c.VertexRadius)
	check(c.FPS > 0 && c.FPS <= MaxFPS, "fps %d must be in 1..%d", c.FPS, MaxFPS)
	check(c.FocalLength > 0, "focal_length %g must be positive", c.FocalLength)

	for _, field := range []struct{ name, value string }{
		{"edge_color", c.EdgeColor},
		{"vertex_color", c.VertexColor},
		{"background", c.Background},
	} {
		_, err := ParseColor(field.value)
		check(err == nil, "%s: %v", field.name, err)
	}

	_, ok := render.ParseProjection(c.Projection)
	check(ok, "unknown projection %q", c.Projection)
	_, ok = render.ParseCircleMode(c.CircleMode)
	check(ok, "unknown circle_mode %q", c.CircleMode)

	switch c.Format {
	case "ppm", "png", "bmp":
	default:
		check(false, "unknown format %q", c.Format)
	}

	return errors.Join(errs...)
}

// Colors returns the parsed edge, vertex and background colors. Call
// Validate first; unparsable colors come back as black.
func (c Config) Colors() (edge, vertex, background render.Color) {
	edge, _ = ParseColor(c.EdgeColor)
	vertex, _ = ParseColor(c.VertexColor)
	background, _ = ParseColor(c.Background)
	return edge, vertex, background
}

// ProjectionMode returns the parsed projection.
func (c Config) ProjectionMode() render.Projection {
	p, _ := render.ParseProjection(c.Projection)
	return p
}

// Marker returns the parsed circle mode.
func (c Config) Marker() render.CircleMode {
	m, _ := render.ParseCircleMode(c.CircleMode)
	return m
}

// ParseColor parses "R,G,B" with components in 0..255.
func ParseColor(s string) (render.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return render.ColorBlack, fmt.Errorf("color %q: want R,G,B", s)
	}
	var rgb [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return render.ColorBlack, fmt.Errorf("color %q: component %q out of range 0..255", s, p)
		}
		rgb[i] = uint8(n)
	}
	return render.RGB(rgb[0], rgb[1], rgb[2]), nil
}
