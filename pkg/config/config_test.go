package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/wireframe/pkg/render"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wireframe.toml")
	c := Default()
	c.Width = 320
	c.Projection = "perspective"
	c.EdgeColor = "10,20,30"
	require.NoError(t, c.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	edge, _, bg := got.Colors()
	assert.Equal(t, render.RGB(10, 20, 30), edge)
	assert.Equal(t, render.ColorBlack, bg)
	assert.Equal(t, render.Perspective, got.ProjectionMode())
	assert.Equal(t, render.CircleFilled, got.Marker())
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	require.NoError(t, os.WriteFile(path, []byte("frames = 12\ncircle_mode = \"outline\"\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, c.Frames)
	assert.Equal(t, render.CircleOutline, c.Marker())
	assert.Equal(t, Default().Width, c.Width)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"unknown key", "colour = \"1,2,3\"\n", false},
		{"bad syntax", "width = = 3\n", false},
		{"zero width", "width = 0\n", true},
		{"bad projection", "projection = \"fisheye\"\n", true},
		{"bad color", "background = \"300,0,0\"\n", true},
		{"bad format", "format = \"gif\"\n", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.toml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Equal(t, tc.invalid, errors.Is(err, ErrInvalid))
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    render.Color
		wantErr bool
	}{
		{"255,0,0", render.ColorRed, false},
		{" 1, 2 ,3 ", render.RGB(1, 2, 3), false},
		{"1,2", render.ColorBlack, true},
		{"1,2,256", render.ColorBlack, true},
		{"a,b,c", render.ColorBlack, true},
		{"-1,0,0", render.ColorBlack, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidateCollectsAll(t *testing.T) {
	c := Default()
	c.Width = -1
	c.FPS = 0
	err := c.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "width")
	assert.Contains(t, err.Error(), "fps")
}

func TestValidateFPSRange(t *testing.T) {
	for _, fps := range []int{0, -1, MaxFPS + 1, 2_000_000_000} {
		c := Default()
		c.FPS = fps
		assert.ErrorIs(t, c.Validate(), ErrInvalid, "fps %d", fps)
	}
	c := Default()
	c.FPS = MaxFPS
	assert.NoError(t, c.Validate())
}

func TestValidateColorOrder(t *testing.T) {
	c := Default()
	c.EdgeColor = "red"
	c.VertexColor = "1,2"
	c.Background = "x"
	want := c.Validate().Error()
	for range 20 {
		assert.Equal(t, want, c.Validate().Error())
	}

	e := strings.Index(want, "edge_color")
	v := strings.Index(want, "vertex_color")
	b := strings.Index(want, "background")
	assert.True(t, e >= 0 && e < v && v < b, want)
}
