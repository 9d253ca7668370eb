// Package gfxtest provides a recording gfx.Device for tests.
package gfxtest

import (
	"fmt"
	"image"

	"langit/internal/gfx"
)

// Call is one recorded device call.
type Call struct {
	Name string
	Args []float64
}

func (c Call) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Vertex is a vertex captured between Begin and End with the attributes
// current at the time it was emitted.
type Vertex struct {
	X, Y, Z float32
	Color   gfx.Color
	U, V    float32
}

// Primitive is one Begin/End block.
type Primitive struct {
	Mode     gfx.Mode
	Vertices []Vertex
	// Lit and Textured capture the device state when Begin was called.
	Lit, Textured bool
	Texture       *image.NRGBA
}

// Recorder implements gfx.Device by remembering every call.
// Transform and state calls are kept in Calls; geometry goes to Primitives.
type Recorder struct {
	Calls      []Call
	Primitives []Primitive

	caps    map[gfx.Cap]bool
	color   gfx.Color
	u, v    float32
	tex     *image.NRGBA
	current *Primitive
}

var _ gfx.Device = (*Recorder)(nil)

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{caps: make(map[gfx.Cap]bool), color: gfx.RGB(1, 1, 1)}
}

// Reset forgets recorded calls and primitives but keeps device state.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Primitives = nil
}

// Names returns the names of the recorded calls in order.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Name
	}
	return out
}

// Find returns the recorded calls with the given name.
func (r *Recorder) Find(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// VertexCount returns the total number of vertices emitted.
func (r *Recorder) VertexCount() int {
	n := 0
	for _, p := range r.Primitives {
		n += len(p.Vertices)
	}
	return n
}

func (r *Recorder) record(name string, args ...float64) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) Viewport(w, h int) { r.record("Viewport", float64(w), float64(h)) }
func (r *Recorder) ClearColor(c gfx.Color) {
	r.record("ClearColor", float64(c.R), float64(c.G), float64(c.B), float64(c.A))
}
func (r *Recorder) Clear() { r.record("Clear") }
func (r *Recorder) MatrixMode(m gfx.MatrixMode) { r.record("MatrixMode", float64(m)) }
func (r *Recorder) LoadIdentity() { r.record("LoadIdentity") }
func (r *Recorder) PushMatrix() { r.record("PushMatrix") }
func (r *Recorder) PopMatrix() { r.record("PopMatrix") }

func (r *Recorder) Translate(x, y, z float32) {
	r.record("Translate", float64(x), float64(y), float64(z))
}

func (r *Recorder) Rotate(deg, x, y, z float32) {
	r.record("Rotate", float64(deg), float64(x), float64(y), float64(z))
}

func (r *Recorder) Scale(x, y, z float32) {
	r.record("Scale", float64(x), float64(y), float64(z))
}

func (r *Recorder) Ortho(left, right, bottom, top, near, far float64) {
	r.record("Ortho", left, right, bottom, top, near, far)
}

func (r *Recorder) Perspective(fovy, aspect, near, far float64) {
	r.record("Perspective", fovy, aspect, near, far)
}

func (r *Recorder) LookAt(eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float64) {
	r.record("LookAt", eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ)
}

func (r *Recorder) Enable(c gfx.Cap) {
	r.caps[c] = true
	r.record("Enable", float64(c))
}

func (r *Recorder) Disable(c gfx.Cap) {
	r.caps[c] = false
	r.record("Disable", float64(c))
}

func (r *Recorder) IsEnabled(c gfx.Cap) bool { return r.caps[c] }

func (r *Recorder) LineWidth(w float32) { r.record("LineWidth", float64(w)) }

func (r *Recorder) BindTexture(img *image.NRGBA) {
	r.tex = img
	if img == nil {
		r.record("BindTexture", 0)
		return
	}
	r.record("BindTexture", 1)
}

func (r *Recorder) Begin(m gfx.Mode) {
	r.record("Begin", float64(m))
	r.current = &Primitive{
		Mode:     m,
		Lit:      r.caps[gfx.Lighting],
		Textured: r.caps[gfx.Texture2D],
		Texture:  r.tex,
	}
}

func (r *Recorder) Color(c gfx.Color) { r.color = c }
func (r *Recorder) Normal(x, y, z float32) {}
func (r *Recorder) TexCoord(u, v float32) { r.u, r.v = u, v }

func (r *Recorder) Vertex(x, y, z float32) {
	if r.current == nil {
		return
	}
	r.current.Vertices = append(r.current.Vertices, Vertex{X: x, Y: y, Z: z, Color: r.color, U: r.u, V: r.v})
}

func (r *Recorder) End() {
	r.record("End")
	if r.current != nil {
		r.Primitives = append(r.Primitives, *r.current)
		r.current = nil
	}
}
