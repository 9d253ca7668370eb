// Package session runs the scene without a window: script steps stand in
// for user input and every redraw lands in a software framebuffer.
package session

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"langit/internal/input"
	"langit/internal/raster"
	"langit/internal/render"
	"langit/internal/scene"
	"langit/internal/script"
	"langit/internal/texture"
)

// Frame is a named snapshot handed to a Sink.
type Frame struct {
	Index   int
	Name    string
	Image   *image.NRGBA
	State   scene.TransformState
	Profile scene.Profile
	// Width and Height are the requested output size; Image may be
	// larger by the supersample factor.
	Width, Height int
}

// Sink receives named frames in script order.
type Sink interface {
	WriteFrame(ctx context.Context, f Frame) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, f Frame) error

func (fn SinkFunc) WriteFrame(ctx context.Context, f Frame) error { return fn(ctx, f) }

// Options configures a Session.
type Options struct {
	Width, Height int
	Supersample   int
	Profile       scene.Profile
	Speeds        input.Speeds
	Textures      texture.Resolver
	Logger        *slog.Logger
}

// Stats summarizes a run.
type Stats struct {
	Steps   int
	Renders int
	Frames  int
}

// Session owns one controller, its input mapper and a renderer drawing
// into a raster.Device. It is single-threaded like the window loop.
type Session struct {
	Controller *scene.Controller
	Mapper     *input.Mapper
	Renderer   *render.Renderer

	device      *raster.Device
	log         *slog.Logger
	supersample int
	w, h        int

	dirty   bool
	renders int
}

// New builds a session in the default scene state.
func New(opts Options) *Session {
	if opts.Width <= 0 {
		opts.Width = 600
	}
	if opts.Height <= 0 {
		opts.Height = 600
	}
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}
	if opts.Speeds == (input.Speeds{}) {
		opts.Speeds = input.DefaultSpeeds()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Session{
		log:         opts.Logger,
		supersample: opts.Supersample,
		dirty:       true,
	}
	s.device = raster.NewDevice(opts.Width*opts.Supersample, opts.Height*opts.Supersample)
	s.Controller = scene.NewController(opts.Profile, nil)
	s.Controller.SetRedraw(func() { s.dirty = true })
	s.Mapper = input.NewMapper(s.Controller, opts.Speeds)
	s.Mapper.OnResize = s.resize
	s.Renderer = render.New(s.device, opts.Textures, opts.Profile)
	s.Renderer.Init()
	s.resize(opts.Width, opts.Height)
	s.Controller.SetAspect(scene.Aspect(opts.Width, opts.Height))
	return s
}

// Size returns the output size in pixels.
func (s *Session) Size() (w, h int) { return s.w, s.h }

// resize passes the raw size to the renderer, which applies the same
// zero-height aspect guard as the controller. Output sizes stay >= 1.
func (s *Session) resize(w, h int) {
	s.Renderer.Resize(w*s.supersample, h*s.supersample)
	s.w, s.h = max(w, 1), max(h, 1)
	s.dirty = true
}

// Render draws the current state if anything changed since the last
// render and returns a copy of the framebuffer.
func (s *Session) Render() *image.NRGBA {
	s.flush()
	return s.device.Image()
}

func (s *Session) flush() {
	if !s.dirty {
		return
	}
	s.Renderer.Frame(s.Controller.State())
	s.dirty = false
	s.renders++
}

// Step applies one script step. Redraw requests raised by the step are
// coalesced into a single render.
func (s *Session) Step(st script.Step) error {
	for _, a := range st.Actions {
		if err := s.Controller.Apply(a); err != nil {
			return fmt.Errorf("session: step %s: %w", st, err)
		}
	}
	for _, ev := range st.Events {
		s.Mapper.Handle(ev)
	}
	s.flush()
	return nil
}

// Run executes the script in order and sends every frame step to sink.
// The context is checked between steps.
func (s *Session) Run(ctx context.Context, sc script.Script, sink Sink) (stats Stats, err error) {
	start := s.renders
	defer func() { stats.Renders = s.renders - start }()

	for _, st := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("session: stopped before step %s: %w", st, err)
		}
		if err := s.Step(st); err != nil {
			return stats, err
		}
		stats.Steps++
		if st.Frame == "" {
			s.log.Debug("step", "step", st.String(), "state", describe(s.Controller.State()))
			continue
		}
		f := Frame{
			Index:   stats.Frames,
			Name:    st.Frame,
			Image:   s.Render(),
			State:   s.Controller.State(),
			Profile: s.Controller.Profile(),
			Width:   s.w,
			Height:  s.h,
		}
		if sink != nil {
			if err := sink.WriteFrame(ctx, f); err != nil {
				return stats, fmt.Errorf("session: frame %q: %w", f.Name, err)
			}
		}
		stats.Frames++
		s.log.Info("frame", "name", f.Name, "shape", f.State.Active.String())
	}
	return stats, nil
}

func describe(st scene.TransformState) string {
	return fmt.Sprintf("%s rot=%.1f/%.1f/%.1f pos=%.2f/%.2f/%.2f scale=%.2f",
		st.Active, st.Rotation[0], st.Rotation[1], st.Rotation[2],
		st.Translation[0], st.Translation[1], st.Translation[2], st.UniformScale)
}
