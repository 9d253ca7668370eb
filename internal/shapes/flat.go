package shapes

import (
	"image"

	"github.com/chewxy/math32"

	"langit/internal/gfx"
	"langit/internal/scene"
)

// LightningWidth is the stroke width of the lightning bolt in pixels.
const LightningWidth = 6

var lightningPoints = [][2]float32{
	{0.0, 0.6},
	{-0.3, 0.1},
	{0.0, 0.1},
	{-0.6, -0.9},
}

// Lightning draws a zigzag bolt as a thick line strip.
func Lightning(d gfx.Device, c scene.RGB, _ *image.NRGBA) {
	d.LineWidth(LightningWidth)
	d.Color(rgb(c))
	d.Begin(gfx.LineStrip)
	for _, p := range lightningPoints {
		d.Vertex(p[0], p[1], 0)
	}
	d.End()
	d.LineWidth(1)
}

// cloudParts are ellipses as center x, center y, width, height.
var cloudParts = [][4]float32{
	{-0.6, 0, 0.5, 0.5},
	{-0.3, 0.1, 0.6, 0.6},
	{0.1, 0.4, 0.7, 0.7},
	{0.5, 0.2, 0.6, 0.6},
	{0.8, 0, 0.5, 0.5},
	{0.2, -0.1, 0.8, 0.7},
}

// Cloud draws overlapping filled ellipses.
func Cloud(d gfx.Device, c scene.RGB, _ *image.NRGBA) {
	d.Color(rgb(c))
	for _, p := range cloudParts {
		ellipse(d, p[0], p[1], p[2], p[3], 36)
	}
}

func ellipse(d gfx.Device, x, y, w, h float32, segments int) {
	d.Begin(gfx.TriangleFan)
	d.Vertex(x, y, 0)
	for i := 0; i <= segments; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(segments)
		d.Vertex(x+w/2*math32.Cos(theta), y+h/2*math32.Sin(theta), 0)
	}
	d.End()
}

func circle(d gfx.Device, x, y, r float32, segments int) {
	ellipse(d, x, y, 2*r, 2*r, segments)
}

var rainbowBands = []gfx.Color{
	gfx.RGB(1, 0, 0),
	gfx.RGB(1, 0.5, 0),
	gfx.RGB(1, 1, 0),
	gfx.RGB(0, 1, 0),
	gfx.RGB(0, 0, 1),
	gfx.RGB(0.5, 0, 1),
	gfx.RGB(0.7, 0, 1),
}

const (
	rainbowRadius    = 0.5
	rainbowThickness = 0.15
	rainbowSegments  = 50
)

// Rainbow draws seven concentric arc bands from red inside to violet outside.
func Rainbow(d gfx.Device, _ scene.RGB, _ *image.NRGBA) {
	start := math32.Pi / 8
	end := math32.Pi - start
	for i, col := range rainbowBands {
		r := rainbowRadius + float32(i)*rainbowThickness
		d.Color(col)
		d.Begin(gfx.QuadStrip)
		for j := 0; j <= rainbowSegments; j++ {
			theta := start + (end-start)*float32(j)/rainbowSegments
			cos, sin := math32.Cos(theta), math32.Sin(theta)
			d.Vertex(r*cos, r*sin, 0)
			d.Vertex((r+rainbowThickness)*cos, (r+rainbowThickness)*sin, 0)
		}
		d.End()
	}
}

// Rocket draws a body in color c with a red nose cone, fins, a round
// window and exhaust flames.
func Rocket(d gfx.Device, c scene.RGB, _ *image.NRGBA) {
	d.Color(rgb(c))
	d.Begin(gfx.Polygon)
	d.Vertex(-0.1, -0.5, 0)
	d.Vertex(0.1, -0.5, 0)
	d.Vertex(0.2, 0.3, 0)
	d.Vertex(-0.2, 0.3, 0)
	d.End()

	d.Color(gfx.RGB(1, 0, 0))
	d.Begin(gfx.Triangles)
	d.Vertex(-0.2, 0.3, 0)
	d.Vertex(0.2, 0.3, 0)
	d.Vertex(0, 0.7, 0)
	d.End()

	d.Color(gfx.RGB(0.6, 0.6, 0.6))
	d.Begin(gfx.Triangles)
	d.Vertex(-0.1, -0.3, 0)
	d.Vertex(-0.1, -0.5, 0)
	d.Vertex(-0.3, -0.5, 0)
	d.Vertex(0.1, -0.3, 0)
	d.Vertex(0.1, -0.5, 0)
	d.Vertex(0.3, -0.5, 0)
	d.End()

	d.Color(gfx.RGB(0.2, 0.6, 1))
	circle(d, 0, 0, 0.08, 32)

	d.Begin(gfx.Triangles)
	d.Color(gfx.RGB(1, 0, 0))
	d.Vertex(-0.1, -0.5, 0)
	d.Vertex(0.1, -0.5, 0)
	d.Vertex(0, -0.8, 0)
	d.Color(gfx.RGB(1, 1, 0))
	d.Vertex(-0.15, -0.5, 0)
	d.Vertex(-0.05, -0.5, 0)
	d.Vertex(-0.1, -0.7, 0)
	d.Vertex(0.05, -0.5, 0)
	d.Vertex(0.15, -0.5, 0)
	d.Vertex(0.1, -0.7, 0)
	d.End()
}
