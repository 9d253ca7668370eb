//go:build !tinygo && cgo

// Package gldevice forwards gfx.Device calls to the OpenGL 2.1
// fixed-function pipeline. Every method must run on the thread that owns
// the current GL context.
package gldevice

import (
	"image"

	"github.com/go-gl/gl/v2.1/gl"

	"langit/internal/gfx"
	"langit/internal/mathutil"
)

// Device is a gfx.Device backed by the current OpenGL context.
type Device struct {
	textures map[*image.NRGBA]uint32
}

var _ gfx.Device = (*Device)(nil)

// New initializes the GL function pointers and the fixed light.
// A GL context must be current.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	d := &Device{textures: make(map[*image.NRGBA]uint32)}

	// Directional light from the upper right front, matching the
	// software rasterizer.
	pos := [4]float32{0.4, 0.6, 1, 0}
	ambient := [4]float32{0.3, 0.3, 0.3, 1}
	diffuse := [4]float32{0.8, 0.8, 0.8, 1}
	gl.Lightfv(gl.LIGHT0, gl.POSITION, &pos[0])
	gl.Lightfv(gl.LIGHT0, gl.AMBIENT, &ambient[0])
	gl.Lightfv(gl.LIGHT0, gl.DIFFUSE, &diffuse[0])
	gl.ColorMaterial(gl.FRONT_AND_BACK, gl.AMBIENT_AND_DIFFUSE)
	gl.ShadeModel(gl.SMOOTH)
	gl.Enable(gl.NORMALIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	return d, nil
}

// Version returns the GL version string.
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Close deletes every uploaded texture.
func (d *Device) Close() {
	for img, id := range d.textures {
		gl.DeleteTextures(1, &id)
		delete(d.textures, img)
	}
}

func (d *Device) Viewport(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (d *Device) ClearColor(c gfx.Color) { gl.ClearColor(c.R, c.G, c.B, c.A) }
func (d *Device) Clear() { gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT) }

func (d *Device) MatrixMode(m gfx.MatrixMode) {
	switch m {
	case gfx.Projection:
		gl.MatrixMode(gl.PROJECTION)
	default:
		gl.MatrixMode(gl.MODELVIEW)
	}
}

func (d *Device) LoadIdentity() { gl.LoadIdentity() }
func (d *Device) PushMatrix() { gl.PushMatrix() }
func (d *Device) PopMatrix() { gl.PopMatrix() }
func (d *Device) Translate(x, y, z float32) { gl.Translatef(x, y, z) }
func (d *Device) Rotate(deg, x, y, z float32) { gl.Rotatef(deg, x, y, z) }
func (d *Device) Scale(x, y, z float32) { gl.Scalef(x, y, z) }

func (d *Device) Ortho(left, right, bottom, top, near, far float64) {
	gl.Ortho(left, right, bottom, top, near, far)
}

// Perspective and LookAt have no core GL 2.1 entry point; the matrices
// are built on the CPU and multiplied in. mathutil matrices are
// row-major, hence the transpose variant.
func (d *Device) Perspective(fovy, aspect, near, far float64) {
	d.mult(mathutil.Perspective(fovy, aspect, near, far))
}

func (d *Device) LookAt(eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float64) {
	d.mult(mathutil.LookAt(
		mathutil.Vec3{eyeX, eyeY, eyeZ},
		mathutil.Vec3{centerX, centerY, centerZ},
		mathutil.Vec3{upX, upY, upZ},
	))
}

func (d *Device) mult(m mathutil.Mat4) {
	gl.MultTransposeMatrixd(&m[0])
}

func glCap(c gfx.Cap) uint32 {
	switch c {
	case gfx.Lighting:
		return gl.LIGHTING
	case gfx.Texture2D:
		return gl.TEXTURE_2D
	}
	return gl.DEPTH_TEST
}

func (d *Device) Enable(c gfx.Cap) {
	gl.Enable(glCap(c))
	if c == gfx.Lighting {
		gl.Enable(gl.LIGHT0)
		gl.Enable(gl.COLOR_MATERIAL)
	}
}

func (d *Device) Disable(c gfx.Cap) {
	gl.Disable(glCap(c))
	if c == gfx.Lighting {
		gl.Disable(gl.LIGHT0)
		gl.Disable(gl.COLOR_MATERIAL)
	}
}

func (d *Device) IsEnabled(c gfx.Cap) bool { return gl.IsEnabled(glCap(c)) }
func (d *Device) LineWidth(w float32) { gl.LineWidth(w) }

// BindTexture uploads img on first use and binds it. Images are keyed by
// pointer, so an image must not be mutated after it was bound.
func (d *Device) BindTexture(img *image.NRGBA) {
	if img == nil || img.Bounds().Empty() {
		gl.BindTexture(gl.TEXTURE_2D, 0)
		return
	}
	if id, ok := d.textures[img]; ok {
		gl.BindTexture(gl.TEXTURE_2D, id)
		return
	}
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexEnvi(gl.TEXTURE_ENV, gl.TEXTURE_ENV_MODE, gl.MODULATE)

	pix := img
	if img.Stride != 4*img.Bounds().Dx() {
		pix = image.NewNRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
		for y := 0; y < pix.Bounds().Dy(); y++ {
			copy(pix.Pix[y*pix.Stride:(y+1)*pix.Stride], img.Pix[img.PixOffset(img.Bounds().Min.X, img.Bounds().Min.Y+y):])
		}
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(pix.Bounds().Dx()), int32(pix.Bounds().Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix.Pix))
	d.textures[img] = id
}

var glModes = [...]uint32{
	gfx.Lines:         gl.LINES,
	gfx.LineStrip:     gl.LINE_STRIP,
	gfx.LineLoop:      gl.LINE_LOOP,
	gfx.Triangles:     gl.TRIANGLES,
	gfx.TriangleStrip: gl.TRIANGLE_STRIP,
	gfx.TriangleFan:   gl.TRIANGLE_FAN,
	gfx.Quads:         gl.QUADS,
	gfx.QuadStrip:     gl.QUAD_STRIP,
	gfx.Polygon:       gl.POLYGON,
}

func (d *Device) Begin(m gfx.Mode) {
	if m < 0 || int(m) >= len(glModes) {
		m = gfx.Triangles
	}
	gl.Begin(glModes[m])
}

func (d *Device) Color(c gfx.Color) { gl.Color4f(c.R, c.G, c.B, c.A) }
func (d *Device) Normal(x, y, z float32) { gl.Normal3f(x, y, z) }
func (d *Device) TexCoord(u, v float32) { gl.TexCoord2f(u, v) }
func (d *Device) Vertex(x, y, z float32) { gl.Vertex3f(x, y, z) }
func (d *Device) End() { gl.End() }
