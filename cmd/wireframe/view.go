package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"time"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/taigrr/wireframe/pkg/config"
	"github.com/taigrr/wireframe/pkg/models"
	"github.com/taigrr/wireframe/pkg/render"
	"github.com/taigrr/wireframe/pkg/transform"
)

const viewHelp = `Controls:
  Mouse drag  - Rotate model
  Scroll, +/- - Zoom in/out
  W/S/A/D     - Pitch and yaw
  Q/E         - Roll left/right
  Space       - Random spin
  P           - Toggle perspective
  O           - Toggle outline vertex markers
  R           - Reset view
  ?           - Toggle HUD
  Esc         - Quit`

func newViewCmd(a *app) *cobra.Command {
	var (
		fps        int
		projection string
		noWatch    bool
	)

	cmd := &cobra.Command{
		Use:   "view [model]",
		Short: "Spin a model in the terminal",
		Long:  "Show a model in the terminal using half-block pixels.\n\n" + viewHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			err := applyOverrides(cmd, &cfg, map[string]func(){
				"fps":        func() { cfg.FPS = fps },
				"projection": func() { cfg.Projection = projection },
			})
			if err != nil {
				return err
			}

			base, err := a.loadModel(args)
			if err != nil {
				return err
			}

			var reloads <-chan reload
			if len(args) > 0 && !noWatch {
				if reloads, err = watchModel(cmd.Context(), args[0], a.log); err != nil {
					a.log.Warn("hot reload disabled", "err", err)
				}
			}
			return runViewer(cmd.Context(), a.log, cfg, base, reloads)
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 0, "target frames per second")
	cmd.Flags().StringVarP(&projection, "projection", "p", "", "orthographic or perspective")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload the model when it changes")
	return cmd
}

// viewer is the live terminal display state. It is only touched by the
// frame loop goroutine.
type viewer struct {
	cfg      config.Config
	viewport render.Viewport
	marker   render.CircleMode
	base     *models.Object

	term *uv.Terminal
	tr   *render.TerminalRenderer
	fb   *render.Framebuffer
	q    *render.Queue
	hud  *HUD

	rotation *RotationState
	zoom     float64
	torque   struct{ pitch, yaw, roll float64 }

	mouseDown              bool
	lastMouseX, lastMouseY int
	width, height          int
	showHUD                bool

	// dirty is set when something other than spin changed the picture.
	dirty bool
}

func newViewer(cfg config.Config, base *models.Object) *viewer {
	v := &viewer{
		cfg:      cfg,
		viewport: render.Viewport{Projection: cfg.ProjectionMode(), FocalLength: cfg.FocalLength},
		marker:   cfg.Marker(),
		base:     base,
		rotation: NewRotationState(cfg.FPS, cfg.Tilt),
		zoom:     1,
		hud:      NewHUD(base.Name, base.EdgeCount()),
		dirty:    true,
	}
	return v
}

func runViewer(ctx context.Context, log *slog.Logger, cfg config.Config, base *models.Object, reloads <-chan reload) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	v := newViewer(cfg, base)
	v.term = uv.DefaultTerminal()

	width, height, err := v.term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := v.term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	v.term.EnterAltScreen()
	v.term.HideCursor()
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // SGR extended mouse mode
	defer func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		v.term.ExitAltScreen()
		v.term.ShowCursor()
		v.term.Shutdown(context.Background())
	}()

	v.fb = render.NewFramebuffer(0, 0)
	v.q = render.NewQueue(v.fb)
	v.resize(width, height)

	// Terminal events are forwarded so every state change happens on
	// this goroutine.
	events := make(chan any, 64)
	go func() {
		for ev := range v.term.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	frame := time.Second / time.Duration(cfg.FPS)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	lastFrame := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if v.handle(ev) {
				return nil
			}
			v.dirty = true
			continue
		case r := <-reloads:
			if r.err != nil {
				log.Warn("reload failed", "err", r.err)
				continue
			}
			log.Info("model reloaded", "name", r.obj.Name, "vertices", r.obj.VertexCount(), "edges", r.obj.EdgeCount())
			v.base = r.obj
			v.hud = NewHUD(r.obj.Name, r.obj.EdgeCount())
			v.dirty = true
			continue
		case now := <-ticker.C:
			dt := min(now.Sub(lastFrame).Seconds(), 0.1)
			lastFrame = now
			if v.idle() {
				continue
			}
			v.step(dt)
		}

		v.draw()
		v.dirty = false
		v.tr.Render(v.fb)
		if err := v.tr.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
		v.hud.Tick(time.Now())
		if v.showHUD {
			v.hud.Render(v.width, v.height, v.viewport.Projection, v.marker)
		}
	}
}

func (v *viewer) resize(width, height int) {
	v.width, v.height = width, height
	v.term.Erase()
	v.term.Resize(width, height)
	v.tr = render.NewTerminalRenderer(v.term, width, height)
	v.fb.Resize(v.tr.FramebufferSize())
}

// idle reports whether the next frame would match the one on screen.
func (v *viewer) idle() bool {
	if v.dirty || v.rotation.Spinning() {
		return false
	}
	t := v.torque
	return max(math.Abs(t.pitch), math.Abs(t.yaw), math.Abs(t.roll)) <= spinEpsilon
}

// step advances the rotation springs by one frame.
func (v *viewer) step(dt float64) {
	v.rotation.Push(v.torque.pitch*dt, v.torque.yaw*dt, v.torque.roll*dt)
	v.torque.pitch *= 0.9
	v.torque.yaw *= 0.9
	v.torque.roll *= 0.9
	v.rotation.Advance()
}

// pipeline builds the model transform for the current view state.
func (v *viewer) pipeline() *transform.Pipeline {
	p := transform.NewPipeline()
	p.AddScale(v.zoom, v.zoom, v.zoom)
	p.AddRotationZ(v.rotation.Roll.Angle)
	p.AddRotationY(v.rotation.Yaw.Angle)
	p.AddRotationX(v.rotation.Pitch.Angle)

	// Keep pixels square on non-square framebuffers.
	w, h := float64(v.fb.Width()), float64(v.fb.Height())
	if w > 0 && h > 0 {
		p.AddScale(math.Min(1, h/w), math.Min(1, w/h), 1)
	}
	if v.viewport.Projection == render.Perspective {
		p.AddTranslation(0, 0, v.cfg.Distance)
	}
	return p
}

func (v *viewer) draw() {
	edge, vertex, bg := v.cfg.Colors()

	obj := v.base.Clone()
	obj.Transform(v.pipeline().Resolve())

	v.fb.Clear(bg)
	v.q.Viewport = v.viewport
	if v.marker == render.CircleOutline {
		v.enqueueOutlined(obj, edge, vertex)
	} else {
		v.q.EnqueueWireframe(obj, v.markerRadius(), edge, vertex)
	}
	v.q.Flush()
}

// markerRadius scales the configured radius down to terminal resolution.
func (v *viewer) markerRadius() int {
	return max(v.cfg.VertexRadius/3, 0)
}

func (v *viewer) enqueueOutlined(obj *models.Object, edge, vertex render.Color) {
	n := len(obj.Vertices)
	for _, e := range obj.Edges {
		if e.Valid(n) {
			v.q.Enqueue(render.Line{Start: obj.Vertices[e.A].Position, End: obj.Vertices[e.B].Position, Color: edge})
		}
	}
	r := float64(max(v.markerRadius(), 1))
	for _, vert := range obj.Vertices {
		v.q.Enqueue(render.Circle{Center: vert.Position, Radius: r, Color: vertex})
	}
}

// handle applies one terminal event and reports whether to quit.
func (v *viewer) handle(ev any) bool {
	const torqueStrength = 3.0

	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		v.resize(ev.Width, ev.Height)

	case uv.KeyPressEvent:
		switch {
		case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
			return true
		case ev.MatchString("w", "up"):
			v.torque.pitch = -torqueStrength
		case ev.MatchString("s", "down"):
			v.torque.pitch = torqueStrength
		case ev.MatchString("a", "left"):
			v.torque.yaw = -torqueStrength
		case ev.MatchString("d", "right"):
			v.torque.yaw = torqueStrength
		case ev.MatchString("q"):
			v.torque.roll = -torqueStrength
		case ev.MatchString("e"):
			v.torque.roll = torqueStrength
		case ev.MatchString("space"):
			v.rotation.Push(
				(rand.Float64()-0.5)*1.5,
				(rand.Float64()-0.5)*1.5,
				(rand.Float64()-0.5)*1.5,
			)
		case ev.MatchString("+", "="):
			v.zoom = math.Min(4, v.zoom*1.1)
		case ev.MatchString("-", "_"):
			v.zoom = math.Max(0.1, v.zoom/1.1)
		case ev.MatchString("p"):
			if v.viewport.Projection == render.Perspective {
				v.viewport.Projection = render.Orthographic
			} else {
				v.viewport.Projection = render.Perspective
			}
		case ev.MatchString("o"):
			if v.marker == render.CircleOutline {
				v.marker = render.CircleFilled
			} else {
				v.marker = render.CircleOutline
			}
		case ev.MatchString("r"):
			v.rotation.Reset()
			v.zoom = 1
		case ev.MatchString("?"), ev.MatchString("shift+/"):
			v.showHUD = !v.showHUD
		}

	case uv.KeyReleaseEvent:
		switch {
		case ev.MatchString("w", "up", "s", "down"):
			v.torque.pitch = 0
		case ev.MatchString("a", "left", "d", "right"):
			v.torque.yaw = 0
		case ev.MatchString("q", "e"):
			v.torque.roll = 0
		}

	case uv.MouseClickEvent:
		v.mouseDown = true
		v.lastMouseX, v.lastMouseY = ev.X, ev.Y

	case uv.MouseReleaseEvent:
		v.mouseDown = false

	case uv.MouseMotionEvent:
		if v.mouseDown {
			dx := ev.X - v.lastMouseX
			dy := ev.Y - v.lastMouseY
			v.rotation.Push(float64(dy)*0.03, float64(dx)*0.03, 0)
			v.lastMouseX, v.lastMouseY = ev.X, ev.Y
		}

	case uv.MouseWheelEvent:
		switch ev.Button {
		case uv.MouseWheelUp:
			v.zoom = math.Min(4, v.zoom*1.1)
		case uv.MouseWheelDown:
			v.zoom = math.Max(0.1, v.zoom/1.1)
		}
	}
	return false
}

// HUD draws a one-line status overlay with model info and frame rate.
type HUD struct {
	name  string
	edges int

	// fps is recomputed from the frames drawn in each window of at
	// least one second.
	fps         float64
	frames      int
	windowStart time.Time
}

func NewHUD(name string, edges int) *HUD {
	return &HUD{name: name, edges: edges, windowStart: time.Now()}
}

// Tick records a drawn frame at now.
func (h *HUD) Tick(now time.Time) {
	h.frames++
	if window := now.Sub(h.windowStart); window >= time.Second {
		h.fps = float64(h.frames) / window.Seconds()
		h.frames, h.windowStart = 0, now
	}
}

var hudStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("#000000")).
	Foreground(lipgloss.Color("#FFFFFF")).
	Padding(0, 1)

// Status returns the overlay text.
func (h *HUD) Status(p render.Projection, m render.CircleMode) string {
	return fmt.Sprintf("%.0f FPS | %s | %d edges | %s | %s markers", h.fps, h.name, h.edges, p, m)
}

// Render writes the overlay on the top terminal row.
func (h *HUD) Render(width, _ int, p render.Projection, m render.CircleMode) {
	line := hudStyle.MaxWidth(width).Render(h.Status(p, m))
	fmt.Fprint(os.Stdout, "\x1b[1;1H"+line)
}
