package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langit/internal/gfx"
)

func newOrthoDevice(size int) *Device {
	d := NewDevice(size, size)
	d.MatrixMode(gfx.Projection)
	d.LoadIdentity()
	d.Ortho(-1, 1, -1, 1, -10, 10)
	d.MatrixMode(gfx.ModelView)
	d.LoadIdentity()
	d.ClearColor(gfx.RGB(0, 0, 0))
	d.Clear()
	return d
}

func quad(d *Device, c gfx.Color, z float32) {
	d.Color(c)
	d.Begin(gfx.Quads)
	d.Vertex(-0.5, -0.5, z)
	d.Vertex(0.5, -0.5, z)
	d.Vertex(0.5, 0.5, z)
	d.Vertex(-0.5, 0.5, z)
	d.End()
}

func TestClearAndFill(t *testing.T) {
	d := newOrthoDevice(40)
	d.ClearColor(gfx.Color{R: 0.1, G: 0.1, B: 0.1, A: 1})
	d.Clear()
	quad(d, gfx.RGB(1, 0, 0), 0)

	fb := d.FrameBuffer()
	assert.Equal(t, [4]uint8{255, 0, 0, 255}, fb.At(20, 20))
	assert.Equal(t, [4]uint8{26, 26, 26, 255}, fb.At(2, 2))
	assert.Equal(t, [4]uint8{}, fb.At(-1, 0))

	img := d.Image()
	assert.Equal(t, image.Rect(0, 0, 40, 40), img.Bounds())
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, img.NRGBAAt(20, 20))
}

func TestYAxisPointsUp(t *testing.T) {
	d := newOrthoDevice(20)
	d.Color(gfx.RGB(0, 1, 0))
	d.Begin(gfx.Triangles)
	d.Vertex(-1, 0.5, 0)
	d.Vertex(1, 0.5, 0)
	d.Vertex(0, 1, 0)
	d.End()
	assert.Equal(t, uint8(255), d.FrameBuffer().At(10, 2)[1], "top rows are positive y")
	assert.Equal(t, uint8(0), d.FrameBuffer().At(10, 17)[1])
}

func TestDepthTest(t *testing.T) {
	d := newOrthoDevice(20)
	d.Enable(gfx.DepthTest)
	// Ortho maps eye z=+1 nearer than z=-1.
	quad(d, gfx.RGB(1, 0, 0), 1)
	quad(d, gfx.RGB(0, 0, 1), -1)
	assert.Equal(t, [4]uint8{255, 0, 0, 255}, d.FrameBuffer().At(10, 10))

	d.Disable(gfx.DepthTest)
	quad(d, gfx.RGB(0, 0, 1), -1)
	assert.Equal(t, [4]uint8{0, 0, 255, 255}, d.FrameBuffer().At(10, 10), "painter's order without depth test")
}

func TestFarPlaneClips(t *testing.T) {
	d := newOrthoDevice(20)
	quad(d, gfx.RGB(1, 1, 1), 20)
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, d.FrameBuffer().At(10, 10))
}

func TestMatrixStack(t *testing.T) {
	d := newOrthoDevice(40)
	d.PushMatrix()
	d.Translate(0.5, 0, 0)
	d.Scale(0.5, 0.5, 1)
	quad(d, gfx.RGB(1, 1, 1), 0)
	d.PopMatrix()
	d.PopMatrix()

	fb := d.FrameBuffer()
	assert.Equal(t, uint8(255), fb.At(30, 20)[0])
	assert.Equal(t, uint8(0), fb.At(20, 20)[0])
	assert.True(t, d.Matrix(gfx.ModelView).IsIdentity())
}

func TestRotate(t *testing.T) {
	d := newOrthoDevice(40)
	d.Rotate(90, 0, 0, 1)
	d.Color(gfx.RGB(1, 1, 1))
	d.Begin(gfx.Triangles)
	d.Vertex(0.2, -0.1, 0)
	d.Vertex(0.9, -0.1, 0)
	d.Vertex(0.9, 0.1, 0)
	d.End()
	fb := d.FrameBuffer()
	// +x rotated onto +y: the sliver now sits above the center.
	assert.Equal(t, uint8(255), fb.At(20, 5)[0])
	assert.Equal(t, uint8(0), fb.At(35, 20)[0])
}

func TestTextureModulates(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(tex.Pix); i += 4 {
		copy(tex.Pix[i:], []uint8{0, 128, 255, 255})
	}
	d := newOrthoDevice(20)
	d.BindTexture(tex)
	quad(d, gfx.RGB(1, 1, 1), 0)
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, d.FrameBuffer().At(10, 10), "texturing disabled")

	d.Enable(gfx.Texture2D)
	d.TexCoord(0.25, 0.25)
	quad(d, gfx.RGB(1, 0.5, 1), 0)
	assert.Equal(t, [4]uint8{0, 64, 255, 255}, d.FrameBuffer().At(10, 10))
}

func TestTransparentFragmentsSkipped(t *testing.T) {
	d := newOrthoDevice(20)
	quad(d, gfx.Color{R: 1, G: 1, B: 1, A: 0}, 0)
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, d.FrameBuffer().At(10, 10))
}

func TestLightingShadesFaces(t *testing.T) {
	d := newOrthoDevice(20)
	d.Enable(gfx.Lighting)
	quad(d, gfx.Color{R: 0.6, G: 0.6, B: 0.6, A: 1}, 0)
	lc := DefaultLightConfig()
	shade := lc.ComputeShade([3]float64{0, 0, 1})
	assert.InDelta(t, 0.6*shade*255, float64(d.FrameBuffer().At(10, 10)[0]), 1)
	assert.NotEqual(t, 1.0, shade)
}

func TestLineWidth(t *testing.T) {
	d := newOrthoDevice(40)
	d.LineWidth(6)
	d.Color(gfx.RGB(1, 1, 0))
	d.Begin(gfx.LineStrip)
	d.Vertex(-0.8, 0, 0)
	d.Vertex(0.8, 0, 0)
	d.End()
	fb := d.FrameBuffer()
	assert.Equal(t, [4]uint8{255, 255, 0, 255}, fb.At(20, 18))
	assert.Equal(t, [4]uint8{255, 255, 0, 255}, fb.At(20, 21))
	assert.Equal(t, uint8(0), fb.At(20, 10)[0])
}

func TestPerspectiveDropsBehindCamera(t *testing.T) {
	d := NewDevice(20, 20)
	d.MatrixMode(gfx.Projection)
	d.Perspective(45, 1, 0.1, 100)
	d.MatrixMode(gfx.ModelView)
	d.LookAt(0, 0, 5, 0, 0, 0, 0, 1, 0)
	d.Clear()
	quad(d, gfx.RGB(1, 1, 1), 10)
	assert.Equal(t, uint8(0), d.FrameBuffer().At(10, 10)[0])

	quad(d, gfx.RGB(1, 1, 1), 0)
	assert.Equal(t, uint8(255), d.FrameBuffer().At(10, 10)[0])
}

func TestViewportResizes(t *testing.T) {
	d := NewDevice(10, 10)
	fb := d.FrameBuffer()
	d.Viewport(10, 10)
	assert.Same(t, fb, d.FrameBuffer())
	d.Viewport(30, 0)
	require.Equal(t, 30, d.FrameBuffer().Width)
	assert.Equal(t, 1, d.FrameBuffer().Height)
}

func TestVerticesOutsideBeginIgnored(t *testing.T) {
	d := newOrthoDevice(10)
	d.Vertex(0, 0, 0)
	d.End()
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, d.FrameBuffer().At(5, 5))
}

func TestAssemble(t *testing.T) {
	cases := []struct {
		mode gfx.Mode
		n    int
		want int
	}{
		{gfx.Triangles, 7, 2},
		{gfx.TriangleStrip, 6, 4},
		{gfx.TriangleFan, 10, 8},
		{gfx.Polygon, 4, 2},
		{gfx.Quads, 9, 4},
		{gfx.QuadStrip, 8, 6},
		{gfx.QuadStrip, 3, 0},
		{gfx.LineStrip, 5, 0},
	}
	for _, c := range cases {
		assert.Len(t, assembleTriangles(c.mode, c.n), c.want, "%s/%d", c.mode, c.n)
	}
	assert.Len(t, assembleLines(gfx.Lines, 5), 2)
	assert.Len(t, assembleLines(gfx.LineStrip, 4), 3)
	assert.Len(t, assembleLines(gfx.LineLoop, 4), 4)
	assert.Equal(t, [][3]int{{0, 1, 3}, {0, 3, 2}}, assembleTriangles(gfx.QuadStrip, 4))
}

func TestSampleTextureWraps(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	copy(tex.Pix, []uint8{255, 0, 0, 255, 0, 0, 255, 255})
	r, _, b, _ := SampleTexture(tex, 0.25, 0.5)
	assert.InDelta(t, 1.0, r, 1e-9)
	assert.InDelta(t, 0.0, b, 1e-9)
	r2, _, b2, _ := SampleTexture(tex, 1.25, -0.5)
	assert.InDelta(t, r, r2, 1e-9)
	assert.InDelta(t, b, b2, 1e-9)
}
