// Package raster is a software implementation of the fixed-function
// gfx.Device: matrix stacks, primitive assembly, depth-tested triangle
// fill with texture modulation and flat lighting.
package raster

import (
	"image"

	"langit/internal/gfx"
	"langit/internal/mathutil"
)

// vertex is an emitted vertex in eye space with its attributes.
type vertex struct {
	eye  mathutil.Vec3
	col  [4]float64
	u, v float64
}

// Device renders into a FrameBuffer. It is not safe for concurrent use.
type Device struct {
	fb    *FrameBuffer
	clear [4]uint8
	light LightConfig

	mode   gfx.MatrixMode
	stacks [2][]mathutil.Mat4

	caps      map[gfx.Cap]bool
	lineWidth float64
	tex       *image.NRGBA

	color   [4]float64
	u, v    float64
	inBegin bool
	prim    gfx.Mode
	verts   []vertex
}

var _ gfx.Device = (*Device)(nil)

// NewDevice returns a device drawing into a w×h framebuffer.
func NewDevice(w, h int) *Device {
	d := &Device{
		fb:        NewFrameBuffer(w, h),
		light:     DefaultLightConfig(),
		caps:      make(map[gfx.Cap]bool),
		lineWidth: 1,
		color:     [4]float64{1, 1, 1, 1},
	}
	d.stacks[gfx.ModelView] = []mathutil.Mat4{mathutil.Mat4Identity()}
	d.stacks[gfx.Projection] = []mathutil.Mat4{mathutil.Mat4Identity()}
	return d
}

// FrameBuffer returns the render target.
func (d *Device) FrameBuffer() *FrameBuffer { return d.fb }

// Image returns a copy of the current color buffer.
func (d *Device) Image() *image.NRGBA { return d.fb.Image() }

// SetLight replaces the lighting parameters.
func (d *Device) SetLight(lc LightConfig) { d.light = lc }

// Matrix returns the top of the given stack.
func (d *Device) Matrix(m gfx.MatrixMode) mathutil.Mat4 {
	s := d.stacks[m]
	return s[len(s)-1]
}

// Viewport resizes the framebuffer when the size changes.
func (d *Device) Viewport(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == d.fb.Width && h == d.fb.Height {
		return
	}
	d.fb = NewFrameBuffer(w, h)
}

func (d *Device) ClearColor(c gfx.Color) {
	d.clear = [4]uint8{
		clamp255(float64(c.R) * 255),
		clamp255(float64(c.G) * 255),
		clamp255(float64(c.B) * 255),
		clamp255(float64(c.A) * 255),
	}
}

func (d *Device) Clear() { d.fb.Clear(d.clear) }

func (d *Device) MatrixMode(m gfx.MatrixMode) {
	if m == gfx.ModelView || m == gfx.Projection {
		d.mode = m
	}
}

func (d *Device) top() *mathutil.Mat4 {
	s := d.stacks[d.mode]
	return &s[len(s)-1]
}

func (d *Device) mul(m mathutil.Mat4) {
	t := d.top()
	*t = mathutil.Mat4Mul(*t, m)
}

func (d *Device) LoadIdentity() { *d.top() = mathutil.Mat4Identity() }

func (d *Device) PushMatrix() {
	d.stacks[d.mode] = append(d.stacks[d.mode], *d.top())
}

// PopMatrix discards the top matrix. Popping the last entry is ignored.
func (d *Device) PopMatrix() {
	if s := d.stacks[d.mode]; len(s) > 1 {
		d.stacks[d.mode] = s[:len(s)-1]
	}
}

func (d *Device) Translate(x, y, z float32) {
	d.mul(mathutil.Translate(float64(x), float64(y), float64(z)))
}

func (d *Device) Rotate(deg, x, y, z float32) {
	d.mul(mathutil.AxisAngle(float64(deg), mathutil.Vec3{float64(x), float64(y), float64(z)}))
}

func (d *Device) Scale(x, y, z float32) {
	d.mul(mathutil.Scale(float64(x), float64(y), float64(z)))
}

func (d *Device) Ortho(left, right, bottom, top, near, far float64) {
	d.mul(mathutil.Ortho(left, right, bottom, top, near, far))
}

func (d *Device) Perspective(fovy, aspect, near, far float64) {
	d.mul(mathutil.Perspective(fovy, aspect, near, far))
}

func (d *Device) LookAt(eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float64) {
	d.mul(mathutil.LookAt(
		mathutil.Vec3{eyeX, eyeY, eyeZ},
		mathutil.Vec3{centerX, centerY, centerZ},
		mathutil.Vec3{upX, upY, upZ},
	))
}

func (d *Device) Enable(c gfx.Cap) { d.caps[c] = true }
func (d *Device) Disable(c gfx.Cap) { d.caps[c] = false }
func (d *Device) IsEnabled(c gfx.Cap) bool { return d.caps[c] }
func (d *Device) LineWidth(w float32) { d.lineWidth = float64(w) }
func (d *Device) BindTexture(t *image.NRGBA) { d.tex = t }

// Begin starts a primitive. A Begin inside Begin restarts the primitive.
func (d *Device) Begin(m gfx.Mode) {
	d.inBegin = true
	d.prim = m
	d.verts = d.verts[:0]
}

func (d *Device) Color(c gfx.Color) {
	d.color = [4]float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)}
}

// Normal is accepted for API parity; shading uses face normals.
func (d *Device) Normal(x, y, z float32) {}

func (d *Device) TexCoord(u, v float32) { d.u, d.v = float64(u), float64(v) }

// Vertex transforms the point into eye space and records it with the
// current color and texture coordinate. Vertices outside Begin/End are dropped.
func (d *Device) Vertex(x, y, z float32) {
	if !d.inBegin {
		return
	}
	mv := d.Matrix(gfx.ModelView)
	d.verts = append(d.verts, vertex{
		eye: mv.MulPoint(mathutil.Vec3{float64(x), float64(y), float64(z)}),
		col: d.color,
		u:   d.u,
		v:   d.v,
	})
}

// End assembles and rasterizes the primitive.
func (d *Device) End() {
	if !d.inBegin {
		return
	}
	d.inBegin = false
	if d.prim.IsLine() {
		d.drawLines()
		return
	}
	for _, t := range assembleTriangles(d.prim, len(d.verts)) {
		d.drawTriangle(d.verts[t[0]], d.verts[t[1]], d.verts[t[2]])
	}
}

func (d *Device) fragmentState() fragmentState {
	fs := fragmentState{shade: 1, depthTest: d.caps[gfx.DepthTest]}
	if d.caps[gfx.Texture2D] && d.tex != nil {
		fs.tex = d.tex
	}
	return fs
}

func (d *Device) drawTriangle(a, b, c vertex) {
	fs := d.fragmentState()
	if d.caps[gfx.Lighting] {
		n := b.eye.Sub(a.eye).Cross(c.eye.Sub(a.eye))
		if n.Len() < 1e-12 {
			return
		}
		fs.shade = d.light.ComputeShade(n.Normalize())
	}
	var sv [3]screenVertex
	for i, v := range [3]vertex{a, b, c} {
		s, ok := d.project(v)
		if !ok {
			// Near-plane clipping is not implemented; drop the face.
			return
		}
		sv[i] = s
	}
	rasterizeTriangle(d.fb, sv, &fs)
}

func (d *Device) drawLines() {
	fs := d.fragmentState()
	for _, seg := range assembleLines(d.prim, len(d.verts)) {
		a, ok := d.project(d.verts[seg[0]])
		if !ok {
			continue
		}
		b, ok := d.project(d.verts[seg[1]])
		if !ok {
			continue
		}
		rasterizeLine(d.fb, a, b, d.lineWidth, &fs)
	}
}

// project maps an eye-space vertex to the viewport. It fails for points
// on or behind the eye plane.
func (d *Device) project(v vertex) (screenVertex, bool) {
	clip := d.Matrix(gfx.Projection).MulVec4(mathutil.Vec4{v.eye[0], v.eye[1], v.eye[2], 1})
	w := clip[3]
	if w < 1e-9 {
		return screenVertex{}, false
	}
	invW := 1 / w
	nx, ny, nz := clip[0]*invW, clip[1]*invW, clip[2]*invW
	return screenVertex{
		x:    (nx + 1) * 0.5 * float64(d.fb.Width),
		y:    (1 - ny) * 0.5 * float64(d.fb.Height),
		z:    nz,
		invW: invW,
		col:  v.col,
		u:    v.u,
		v:    v.v,
	}, true
}
