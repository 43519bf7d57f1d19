package main

import (
	"fmt"
	"math"
	"path/filepath"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/taigrr/wireframe/pkg/config"
	"github.com/taigrr/wireframe/pkg/models"
	"github.com/taigrr/wireframe/pkg/render"
	"github.com/taigrr/wireframe/pkg/transform"
)

var doneStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))

func newRenderCmd(a *app) *cobra.Command {
	var (
		width, height, frames, radius int
		projection, circle            string
		output, format                string
	)

	cmd := &cobra.Command{
		Use:   "render [model]",
		Short: "Write one full revolution of a model as image frames",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			err := applyOverrides(cmd, &cfg, map[string]func(){
				"width":      func() { cfg.Width = width },
				"height":     func() { cfg.Height = height },
				"frames":     func() { cfg.Frames = frames },
				"radius":     func() { cfg.VertexRadius = radius },
				"projection": func() { cfg.Projection = projection },
				"circle":     func() { cfg.CircleMode = circle },
				"output":     func() { cfg.Output = output },
				"format":     func() { cfg.Format = format },
			})
			if err != nil {
				return err
			}

			base, err := a.loadModel(args)
			if err != nil {
				return err
			}

			start := time.Now()
			n, err := renderFrames(cfg, base, func(frame int, path string, stats render.DrawStats) {
				a.log.Debug("frame written", "frame", frame, "path", path,
					"edges", stats.Edges, "skipped", stats.SkippedEdges)
			})
			if err != nil {
				return err
			}

			a.log.Info("render complete", "frames", n, "elapsed", time.Since(start).Round(time.Millisecond))
			fmt.Fprintln(cmd.OutOrStdout(), doneStyle.Render(
				fmt.Sprintf("wrote %d frames to %s_*.%s", n, cfg.Output, cfg.Format)))
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&width, "width", 0, "output width in pixels")
	f.IntVar(&height, "height", 0, "output height in pixels")
	f.IntVarP(&frames, "frames", "n", 0, "frames per revolution")
	f.IntVarP(&radius, "radius", "r", 0, "vertex marker radius")
	f.StringVarP(&projection, "projection", "p", "", "orthographic or perspective")
	f.StringVar(&circle, "circle", "", "vertex marker: filled or outline")
	f.StringVarP(&output, "output", "o", "", "frame file prefix")
	f.StringVarP(&format, "format", "f", "", "ppm, png or bmp")
	return cmd
}

// framePath names frame i as <prefix>_<i>.<format>.
func framePath(prefix string, i int, format string) string {
	return filepath.Clean(fmt.Sprintf("%s_%d.%s", prefix, i, format))
}

// tiltPipeline returns the initial orientation applied once to the base
// object: RotateX(tilt) * RotateY(tilt).
func tiltPipeline(tilt float64) *transform.Pipeline {
	p := transform.NewPipeline()
	p.AddRotationY(tilt)
	p.AddRotationX(tilt)
	return p
}

// framePipeline returns the transform for frame i of n: a full turn about
// Y and half a turn about X over the revolution, pushed back by distance
// when the projection needs positive depth.
func framePipeline(i, n int, proj render.Projection, distance float64) *transform.Pipeline {
	angle := 2 * math.Pi * float64(i) / float64(n)

	p := transform.NewPipeline()
	p.AddRotationY(angle)
	p.AddRotationX(angle / 2)
	if proj == render.Perspective {
		p.AddTranslation(0, 0, distance)
	}
	return p
}

// renderFrames draws cfg.Frames frames of base rotating and saves each one.
// base is not modified. done is called after every saved frame.
func renderFrames(cfg config.Config, base *models.Object, done func(int, string, render.DrawStats)) (int, error) {
	edge, vertex, bg := cfg.Colors()
	proj := cfg.ProjectionMode()

	oriented := base.Clone()
	oriented.Transform(tiltPipeline(cfg.Tilt).Resolve())

	fb := render.NewFramebuffer(cfg.Width, cfg.Height)
	r := render.NewRenderer(fb)
	r.Viewport = render.Viewport{Projection: proj, FocalLength: cfg.FocalLength}
	r.Mode = cfg.Marker()

	for i := range cfg.Frames {
		obj := oriented.Clone()
		obj.Transform(framePipeline(i, cfg.Frames, proj, cfg.Distance).Resolve())

		r.Clear(bg)
		stats := r.DrawWireframe(obj, cfg.VertexRadius, edge, vertex)

		path := framePath(cfg.Output, i, cfg.Format)
		if err := fb.Save(path); err != nil {
			return i, fmt.Errorf("frame %d: %w", i, err)
		}
		if done != nil {
			done(i, path, stats)
		}
	}
	return cfg.Frames, nil
}
