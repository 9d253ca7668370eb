//go:build !tinygo && cgo

package window

import (
	"context"
	"fmt"
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"

	"langit/internal/anim"
	"langit/internal/gldevice"
	"langit/internal/input"
	"langit/internal/render"
	"langit/internal/scene"
)

// Run opens the window and blocks until it is closed or ctx is done.
func Run(ctx context.Context, opts Options) error {
	opts.defaults()
	log := opts.Logger

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("window: init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("window: create: %w", err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	dev, err := gldevice.New()
	if err != nil {
		return fmt.Errorf("window: init gl: %w", err)
	}
	defer dev.Close()
	log.Info("window opened", "gl", dev.Version(), "profile", opts.Profile.String())

	clock := anim.New(opts.TickPeriod)
	defer clock.Stop()
	ctl := scene.NewController(opts.Profile, clock)
	mapper := input.NewMapper(ctl, opts.Speeds)
	rnd := render.New(dev, opts.Textures, opts.Profile)
	rnd.Init()
	mapper.OnResize = rnd.Resize

	dirty := true
	ctl.SetRedraw(func() { dirty = true })
	ctl.Subscribe(func(ch scene.Change) {
		win.SetTitle(Title(opts.Title, ch.State))
		log.Debug("state changed", "kind", ch.Kind.String(), "shape", ch.State.Active.String())
	})
	win.SetTitle(Title(opts.Title, ctl.State()))

	var cursor image.Point
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		cursor = image.Pt(int(x), int(y))
		mapper.Handle(input.MouseMove{Point: cursor})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		btn, ok := buttons[b]
		if !ok {
			return
		}
		switch action {
		case glfw.Press:
			mapper.Handle(input.MouseDown{Point: cursor, Button: btn})
		case glfw.Release:
			mapper.Handle(input.MouseUp{Point: cursor, Button: btn})
		}
	})
	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		mapper.Handle(input.Scroll{Notches: yoff})
	})
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		if k, ok := keys[key]; ok {
			mapper.Handle(input.KeyPress{Key: k})
		}
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		mapper.Handle(input.Resize{W: w, H: h})
		dirty = true
	})

	fw, fh := win.GetFramebufferSize()
	mapper.Handle(input.Resize{W: fw, H: fh})

	idle := 0.1
	tick := clock.Period().Seconds()
	for !win.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if clock.Running() {
			glfw.WaitEventsTimeout(tick)
		} else {
			glfw.WaitEventsTimeout(idle)
		}
		select {
		case <-clock.C():
			ctl.OnAnimationTick()
		default:
		}
		if dirty {
			rnd.Frame(ctl.State())
			win.SwapBuffers()
			dirty = false
		}
	}
	return nil
}

var buttons = map[glfw.MouseButton]input.Button{
	glfw.MouseButtonLeft:   input.ButtonLeft,
	glfw.MouseButtonRight:  input.ButtonRight,
	glfw.MouseButtonMiddle: input.ButtonMiddle,
}

var keys = map[glfw.Key]input.Key{
	glfw.KeyLeft:       input.KeyLeft,
	glfw.KeyRight:      input.KeyRight,
	glfw.KeyUp:         input.KeyUp,
	glfw.KeyDown:       input.KeyDown,
	glfw.KeyQ:          input.KeyQ,
	glfw.KeyE:          input.KeyE,
	glfw.KeyW:          input.KeyW,
	glfw.KeyA:          input.KeyA,
	glfw.KeyS:          input.KeyS,
	glfw.KeyD:          input.KeyD,
	glfw.KeyR:          input.KeyR,
	glfw.KeyEqual:      input.KeyPlus,
	glfw.KeyKPAdd:      input.KeyPlus,
	glfw.KeyMinus:      input.KeyMinus,
	glfw.KeyKPSubtract: input.KeyMinus,
	glfw.Key0:          input.Key0,
	glfw.Key1:          input.Key1,
	glfw.Key2:          input.Key2,
	glfw.Key3:          input.Key3,
	glfw.Key4:          input.Key4,
	glfw.Key5:          input.Key5,
	glfw.Key6:          input.Key6,
	glfw.Key7:          input.Key7,
	glfw.Key8:          input.Key8,
}
