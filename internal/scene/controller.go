// Package scene owns the interactive transform state and the rules for
// mutating it: angle wraparound, clamping and observer notification.
package scene

import (
	"log/slog"

	"langit/internal/mathutil"
)

// TickStep is the rotation added to every axis per animation tick, in degrees.
const TickStep = 1.0

// Clock is the animation timer the controller starts and stops.
type Clock interface {
	Start()
	Stop()
	Running() bool
}

type nopClock struct{ running bool }

func (c *nopClock) Start()        { c.running = true }
func (c *nopClock) Stop()         { c.running = false }
func (c *nopClock) Running() bool { return c.running }

// ChangeKind tells observers which operation produced a change.
type ChangeKind int

const (
	Selected ChangeKind = iota
	Rotated
	Translated
	Scaled
	Colored
	Reset
	Ticked
)

var changeNames = [...]string{"selected", "rotated", "translated", "scaled", "colored", "reset", "ticked"}

func (k ChangeKind) String() string {
	if k < 0 || int(k) >= len(changeNames) {
		return "unknown"
	}
	return changeNames[k]
}

// Change is delivered to observers after every mutation.
type Change struct {
	Kind  ChangeKind
	State TransformState
}

type observer struct {
	id int
	fn func(Change)
}

// Controller applies input to a TransformState. It is not safe for
// concurrent use; every caller runs on the host event loop.
type Controller struct {
	state   TransformState
	profile Profile
	aspect  float64
	limits  Limits
	clock   Clock
	redraw  func()

	observers []observer
	nextID    int
}

// NewController returns a controller in the default state. A nil clock
// is replaced with one that only tracks its running flag.
func NewController(p Profile, clock Clock) *Controller {
	if clock == nil {
		clock = &nopClock{}
	}
	return &Controller{
		state:   DefaultState(),
		profile: p,
		aspect:  1,
		limits:  p.Limits(1),
		clock:   clock,
	}
}

// Profile returns the session profile.
func (c *Controller) Profile() Profile { return c.profile }

// Limits returns the clamp ranges currently in force.
func (c *Controller) Limits() Limits { return c.limits }

// Clock returns the animation clock.
func (c *Controller) Clock() Clock { return c.clock }

// State returns a snapshot of the current state.
func (c *Controller) State() TransformState { return c.state.Clone() }

// Active returns the selected shape.
func (c *Controller) Active() ShapeID { return c.state.Active }

// ShapeColor returns the color override for id.
func (c *Controller) ShapeColor(id ShapeID) (RGB, bool) { return c.state.Color(id) }

// SetRedraw installs the hook invoked after every mutation.
func (c *Controller) SetRedraw(fn func()) { c.redraw = fn }

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (c *Controller) Subscribe(fn func(Change)) (unsubscribe func()) {
	c.nextID++
	id := c.nextID
	c.observers = append(c.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range c.observers {
			if o.id == id {
				c.observers = append(c.observers[:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) changed(kind ChangeKind) {
	if len(c.observers) > 0 {
		snap := c.State()
		for _, o := range c.observers {
			o.fn(Change{Kind: kind, State: snap})
		}
	}
	if c.redraw != nil {
		c.redraw()
	}
}

// SelectShape makes id the active shape. Animated shapes start the clock;
// anything else stops it and zeroes the rotation.
func (c *Controller) SelectShape(id ShapeID) {
	if id < None || id > Moon {
		slog.Warn("scene: ignoring invalid shape", "id", int(id))
		return
	}
	c.state.Active = id
	if id.Animated() {
		if !c.clock.Running() {
			c.clock.Start()
		}
	} else {
		c.clock.Stop()
		c.state.Rotation = mathutil.Vec3{}
	}
	c.changed(Selected)
}

// SetRotation stores degrees mod 360 into axis.
func (c *Controller) SetRotation(axis Axis, degrees float64) {
	if !axis.valid() {
		return
	}
	c.state.Rotation[axis] = mathutil.Wrap360(degrees)
	c.changed(Rotated)
}

// ApplyRotationDelta adds delta degrees to axis with wraparound.
func (c *Controller) ApplyRotationDelta(axis Axis, delta float64) {
	if !axis.valid() {
		return
	}
	c.SetRotation(axis, c.state.Rotation[axis]+delta)
}

// RotateBy adds a delta to several axes and notifies once.
func (c *Controller) RotateBy(delta mathutil.Vec3) {
	for i := range delta {
		c.state.Rotation[i] = mathutil.Wrap360(c.state.Rotation[i] + delta[i])
	}
	c.changed(Rotated)
}

// SetTranslation clamps value into the axis range and stores it.
func (c *Controller) SetTranslation(axis Axis, value float64) {
	if !axis.valid() {
		return
	}
	b := c.limits.Translate[axis]
	c.state.Translation[axis] = mathutil.Clamp(value, -b, b)
	c.changed(Translated)
}

// ApplyTranslationDelta moves axis by delta, clamped.
func (c *Controller) ApplyTranslationDelta(axis Axis, delta float64) {
	if !axis.valid() {
		return
	}
	c.SetTranslation(axis, c.state.Translation[axis]+delta)
}

// PanBy moves x and y at once, clamped, and notifies once.
func (c *Controller) PanBy(dx, dy float64) {
	bx, by := c.limits.Translate[X], c.limits.Translate[Y]
	c.state.Translation[X] = mathutil.Clamp(c.state.Translation[X]+dx, -bx, bx)
	c.state.Translation[Y] = mathutil.Clamp(c.state.Translation[Y]+dy, -by, by)
	c.changed(Translated)
}

// SetUniformScale clamps and stores the uniform scale.
func (c *Controller) SetUniformScale(value float64) {
	c.state.UniformScale = mathutil.Clamp(value, c.limits.ScaleMin, c.limits.ScaleMax)
	c.changed(Scaled)
}

// ScaleBy multiplies the uniform scale by factor, clamped.
func (c *Controller) ScaleBy(factor float64) {
	c.SetUniformScale(c.state.UniformScale * factor)
}

// SetAxisScale clamps and stores one per-axis scale component.
func (c *Controller) SetAxisScale(axis Axis, value float64) {
	if !axis.valid() {
		return
	}
	c.state.AxisScale[axis] = mathutil.Clamp(value, c.limits.AxisMin, c.limits.AxisMax)
	c.changed(Scaled)
}

// SetShapeColor records a color override for the active shape. It does
// nothing unless the active shape is colorable.
func (c *Controller) SetShapeColor(r, g, b float64) {
	id := c.state.Active
	if !id.Colorable() {
		return
	}
	c.state.Colors[id] = RGB{
		R: mathutil.Clamp(r, 0, 1),
		G: mathutil.Clamp(g, 0, 1),
		B: mathutil.Clamp(b, 0, 1),
	}
	c.changed(Colored)
}

// Reset restores rotation, translation and scale. The active shape and
// color overrides are kept.
func (c *Controller) Reset() {
	active, colors := c.state.Active, c.state.Colors
	c.state = DefaultState()
	c.state.Active, c.state.Colors = active, colors
	c.changed(Reset)
}

// OnAnimationTick advances all three rotation axes by TickStep while an
// animated shape is active.
func (c *Controller) OnAnimationTick() {
	if !c.state.Active.Animated() {
		return
	}
	for i := range c.state.Rotation {
		c.state.Rotation[i] = mathutil.Wrap360(c.state.Rotation[i] + TickStep)
	}
	c.changed(Ticked)
}

// SetAspect updates the viewport aspect ratio. The orthographic x bound
// follows it, so the stored x translation is re-clamped.
func (c *Controller) SetAspect(aspect float64) {
	if aspect <= 0 {
		aspect = 1
	}
	c.aspect = aspect
	c.limits = c.profile.Limits(aspect)
	b := c.limits.Translate[X]
	if x := mathutil.Clamp(c.state.Translation[X], -b, b); x != c.state.Translation[X] {
		c.state.Translation[X] = x
		c.changed(Translated)
	}
}

// Aspect returns the aspect ratio last passed to SetAspect.
func (c *Controller) Aspect() float64 { return c.aspect }
