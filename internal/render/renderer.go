// Package render turns a scene.TransformState into device calls once per frame.
package render

import (
	"image"

	"langit/internal/gfx"
	"langit/internal/scene"
	"langit/internal/shapes"
	"langit/internal/texture"
)

// Camera placement and projection parameters for both profiles.
const (
	OrthoHalfHeight = 2.0
	OrthoNear       = -10.0
	OrthoFar        = 10.0

	PerspectiveFovY = 45.0
	PerspectiveNear = 0.1
	PerspectiveFar  = 100.0
	EyeDistance     = 5.0
)

// Background is the clear color.
var Background = gfx.RGB(0.1, 0.1, 0.1)

// Renderer draws the active shape under the current transform.
// It keeps no scene state of its own.
type Renderer struct {
	Device   gfx.Device
	Catalog  shapes.Catalog
	Textures texture.Resolver
	Profile  scene.Profile

	aspect float64
}

// New returns a renderer for the default catalog.
func New(d gfx.Device, textures texture.Resolver, p scene.Profile) *Renderer {
	return &Renderer{Device: d, Catalog: shapes.Default(), Textures: textures, Profile: p, aspect: 1}
}

// Init sets the device state that holds for the whole session.
func (r *Renderer) Init() {
	r.Device.ClearColor(Background)
	r.Device.Enable(gfx.DepthTest)
	r.Device.Disable(gfx.Lighting)
	r.Device.Disable(gfx.Texture2D)
}

// Aspect returns the aspect ratio of the last Resize.
func (r *Renderer) Aspect() float64 {
	if r.aspect <= 0 {
		return 1
	}
	return r.aspect
}

// Resize sets the viewport and rebuilds the projection for a w×h surface.
// A zero height uses an aspect ratio of 1.
func (r *Renderer) Resize(w, h int) {
	r.aspect = scene.Aspect(w, h)
	d := r.Device
	d.Viewport(w, h)
	d.MatrixMode(gfx.Projection)
	d.LoadIdentity()
	switch r.Profile {
	case scene.Perspective:
		d.Perspective(PerspectiveFovY, r.aspect, PerspectiveNear, PerspectiveFar)
	default:
		d.Ortho(-OrthoHalfHeight*r.aspect, OrthoHalfHeight*r.aspect, -OrthoHalfHeight, OrthoHalfHeight, OrthoNear, OrthoFar)
	}
	d.MatrixMode(gfx.ModelView)
	d.LoadIdentity()
}

// Frame draws one frame for s.
func (r *Renderer) Frame(s scene.TransformState) {
	d := r.Device
	d.Clear()

	d.MatrixMode(gfx.ModelView)
	d.LoadIdentity()
	if r.Profile == scene.Perspective {
		d.LookAt(0, 0, EyeDistance, 0, 0, 0, 0, 1, 0)
	}

	// Translate, rotate x then y then z, scale. The order is part of the
	// scene contract.
	t := s.Translation
	d.Translate(float32(t[0]), float32(t[1]), float32(t[2]))
	d.Rotate(float32(s.Rotation[0]), 1, 0, 0)
	d.Rotate(float32(s.Rotation[1]), 0, 1, 0)
	d.Rotate(float32(s.Rotation[2]), 0, 0, 1)
	sc := s.EffectiveScale()
	d.Scale(float32(sc[0]), float32(sc[1]), float32(sc[2]))

	if sh, ok := r.Catalog.Lookup(s.Active); ok {
		if sh.Lit {
			d.Enable(gfx.Lighting)
			d.Enable(gfx.Texture2D)
		} else {
			d.Disable(gfx.Lighting)
			d.Disable(gfx.Texture2D)
		}
		sh.Draw(d, r.color(sh, s), r.texture(sh))
	}

	d.Disable(gfx.Lighting)
	d.Disable(gfx.Texture2D)
	d.BindTexture(nil)
}

func (r *Renderer) color(sh shapes.Shape, s scene.TransformState) scene.RGB {
	if sh.Colorable {
		if c, ok := s.Color(sh.ID); ok {
			return c
		}
	}
	return sh.Default
}

func (r *Renderer) texture(sh shapes.Shape) *image.NRGBA {
	if sh.Texture == "" || r.Textures == nil {
		return nil
	}
	return r.Textures.Resolve(sh.Texture)
}
