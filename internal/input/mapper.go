package input

import (
	"log/slog"

	"langit/internal/mathutil"
	"langit/internal/scene"
)

// Speeds scales raw input into transform deltas.
type Speeds struct {
	// Rotation is degrees per pixel of primary-button drag.
	Rotation float64
	// Pan is scene units per pixel of secondary-button drag.
	Pan float64
	// Zoom is the multiplicative scale factor per wheel notch (orthographic).
	Zoom float64
	// Dolly is the z distance per wheel notch (perspective).
	Dolly float64
	// KeyRotation is degrees per arrow, Q or E press.
	KeyRotation float64
	// KeyTranslation is units per W, A, S or D press.
	KeyTranslation float64
	// KeyScale is the uniform scale step for + and - (orthographic).
	KeyScale float64
	// KeyDolly is the z step for + and - (perspective).
	KeyDolly float64
}

// DefaultSpeeds returns the stock input mapping.
func DefaultSpeeds() Speeds {
	return Speeds{
		Rotation:       1.0,
		Pan:            0.01,
		Zoom:           1.1,
		Dolly:          0.5,
		KeyRotation:    5,
		KeyTranslation: 0.1,
		KeyScale:       0.1,
		KeyDolly:       0.5,
	}
}

// Mapper turns events into controller calls. It owns the drag gesture
// state and must be used from the controller's goroutine.
type Mapper struct {
	ctl    *scene.Controller
	speeds Speeds

	rotating bool
	panning  bool
	last     struct{ X, Y int }

	// OnResize, when set, is called after the controller has seen a Resize.
	OnResize func(w, h int)
}

// NewMapper binds a mapper to ctl.
func NewMapper(ctl *scene.Controller, speeds Speeds) *Mapper {
	return &Mapper{ctl: ctl, speeds: speeds}
}

// Speeds returns the active speeds.
func (m *Mapper) Speeds() Speeds { return m.speeds }

// Dragging reports whether a rotate or pan gesture is in progress.
func (m *Mapper) Dragging() bool { return m.rotating || m.panning }

// Handle dispatches one event.
func (m *Mapper) Handle(ev Event) {
	switch e := ev.(type) {
	case MouseDown:
		switch e.Button {
		case ButtonLeft:
			m.rotating = true
		case ButtonRight:
			m.panning = true
		default:
			return
		}
		m.last.X, m.last.Y = e.X, e.Y
	case MouseUp:
		switch e.Button {
		case ButtonLeft:
			m.rotating = false
		case ButtonRight:
			m.panning = false
		}
	case MouseMove:
		m.move(e.X, e.Y)
	case Scroll:
		m.scroll(e.Notches)
	case KeyPress:
		m.key(e.Key)
	case Resize:
		m.ctl.SetAspect(scene.Aspect(e.W, e.H))
		if m.OnResize != nil {
			m.OnResize(e.W, e.H)
		}
	default:
		slog.Debug("input: ignoring event", "event", ev)
	}
}

func (m *Mapper) move(x, y int) {
	dx := float64(x - m.last.X)
	dy := float64(y - m.last.Y)
	m.last.X, m.last.Y = x, y
	if dx == 0 && dy == 0 {
		return
	}
	if m.rotating {
		// Vertical motion tilts around x, horizontal motion spins around y.
		s := m.speeds.Rotation
		m.ctl.RotateBy(mathutil.Vec3{dy * s, dx * s, 0})
	}
	if m.panning {
		s := m.speeds.Pan
		m.ctl.PanBy(dx*s, -dy*s)
	}
}

func (m *Mapper) scroll(notches float64) {
	if notches == 0 {
		return
	}
	if m.ctl.Profile() == scene.Perspective {
		m.ctl.ApplyTranslationDelta(scene.Z, notches*m.speeds.Dolly)
		return
	}
	// One factor per event regardless of magnitude, like a wheel click.
	if notches > 0 {
		m.ctl.ScaleBy(m.speeds.Zoom)
	} else {
		m.ctl.ScaleBy(1 / m.speeds.Zoom)
	}
}

func (m *Mapper) key(k Key) {
	s := m.speeds
	switch k {
	case KeyUp:
		m.ctl.ApplyRotationDelta(scene.X, -s.KeyRotation)
	case KeyDown:
		m.ctl.ApplyRotationDelta(scene.X, s.KeyRotation)
	case KeyLeft:
		m.ctl.ApplyRotationDelta(scene.Y, -s.KeyRotation)
	case KeyRight:
		m.ctl.ApplyRotationDelta(scene.Y, s.KeyRotation)
	case KeyQ:
		m.ctl.ApplyRotationDelta(scene.Z, -s.KeyRotation)
	case KeyE:
		m.ctl.ApplyRotationDelta(scene.Z, s.KeyRotation)
	case KeyW:
		m.ctl.ApplyTranslationDelta(scene.Y, s.KeyTranslation)
	case KeyS:
		m.ctl.ApplyTranslationDelta(scene.Y, -s.KeyTranslation)
	case KeyA:
		m.ctl.ApplyTranslationDelta(scene.X, -s.KeyTranslation)
	case KeyD:
		m.ctl.ApplyTranslationDelta(scene.X, s.KeyTranslation)
	case KeyPlus, KeyMinus:
		sign := 1.0
		if k == KeyMinus {
			sign = -1
		}
		if m.ctl.Profile() == scene.Perspective {
			m.ctl.ApplyTranslationDelta(scene.Z, sign*s.KeyDolly)
		} else {
			m.ctl.SetUniformScale(m.ctl.State().UniformScale + sign*s.KeyScale)
		}
	case KeyR:
		m.ctl.Reset()
	case Key0:
		m.ctl.SelectShape(scene.None)
	case Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8:
		m.ctl.SelectShape(scene.Shapes()[k-Key1])
	}
}
