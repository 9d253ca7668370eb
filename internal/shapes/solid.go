package shapes

import (
	"image"

	"github.com/chewxy/math32"

	"langit/internal/gfx"
	"langit/internal/scene"
)

const (
	starOuter = 1.0
	starInner = 0.4
	starDepth = 0.2
)

var (
	starCenter = gfx.RGB(1, 0.84, 0)
	starTip    = gfx.RGB(1, 0.7, 0)
	starNotch  = gfx.RGB(1, 0.9, 0.4)
)

// Star draws a five-pointed prism with a gold gradient.
func Star(d gfx.Device, _ scene.RGB, _ *image.NRGBA) {
	var outline [10][2]float32
	for i := range outline {
		angle := 2*math32.Pi*float32(i)/10 - math32.Pi/2
		r := float32(starOuter)
		if i%2 == 1 {
			r = starInner
		}
		outline[i] = [2]float32{r * math32.Cos(angle), r * math32.Sin(angle)}
	}

	for _, face := range []float32{1, -1} {
		z := face * starDepth / 2
		d.Begin(gfx.TriangleFan)
		d.Color(starCenter)
		d.Normal(0, 0, face)
		d.Vertex(0, 0, z)
		for i := 0; i <= len(outline); i++ {
			if i%2 == 0 {
				d.Color(starTip)
			} else {
				d.Color(starNotch)
			}
			p := outline[i%len(outline)]
			d.Vertex(p[0], p[1], z)
		}
		d.End()
	}

	d.Begin(gfx.Quads)
	for i := range outline {
		a, b := outline[i], outline[(i+1)%len(outline)]
		g := 0.7 + 0.03*float32(i)
		d.Normal(b[1]-a[1], a[0]-b[0], 0)
		d.Color(gfx.RGB(1, g, 0))
		d.Vertex(a[0], a[1], starDepth/2)
		d.Color(gfx.RGB(1, g, 0.2))
		d.Vertex(b[0], b[1], starDepth/2)
		d.Vertex(b[0], b[1], -starDepth/2)
		d.Color(gfx.RGB(1, g, 0))
		d.Vertex(a[0], a[1], -starDepth/2)
	}
	d.End()
}

const (
	sphereSlices = 30
	sphereStacks = 30
)

// Saturn draws a banded sphere wrapped in tex and an untextured ring.
func Saturn(d gfx.Device, _ scene.RGB, tex *image.NRGBA) {
	if tex == nil {
		return
	}
	d.BindTexture(tex)
	sphere(d, 0.9, sphereSlices, sphereStacks, func(t float32) gfx.Color {
		return gfx.RGB(0.8-0.3*t, 0.7-0.2*t, 0.5)
	})
	d.BindTexture(nil)
	d.Color(gfx.RGB(0.6, 0.6, 0.6))
	ring(d, 1.1, 1.6, 100)
}

// Earth draws a sphere wrapped in tex.
func Earth(d gfx.Device, _ scene.RGB, tex *image.NRGBA) {
	if tex == nil {
		return
	}
	d.BindTexture(tex)
	sphere(d, 0.9, sphereSlices, sphereStacks, nil)
}

// Moon draws a smaller sphere wrapped in tex.
func Moon(d gfx.Device, _ scene.RGB, tex *image.NRGBA) {
	if tex == nil {
		return
	}
	d.BindTexture(tex)
	sphere(d, 0.6, sphereSlices, sphereStacks, nil)
}

// sphere emits one quad strip per latitude band, south pole first.
// shade maps the band fraction in [0, 1] to a vertex color; nil means white.
// Texture v runs from 0 at the north pole to 1 at the south pole.
func sphere(d gfx.Device, radius float32, slices, stacks int, shade func(t float32) gfx.Color) {
	white := gfx.RGB(1, 1, 1)
	for i := 0; i < stacks; i++ {
		t0 := float32(i) / float32(stacks)
		t1 := float32(i+1) / float32(stacks)
		lat0 := math32.Pi * (t0 - 0.5)
		lat1 := math32.Pi * (t1 - 0.5)
		z0, r0 := math32.Sin(lat0), math32.Cos(lat0)
		z1, r1 := math32.Sin(lat1), math32.Cos(lat1)
		c0, c1 := white, white
		if shade != nil {
			c0, c1 = shade(t0), shade(t1)
		}

		d.Begin(gfx.QuadStrip)
		for j := 0; j <= slices; j++ {
			s := float32(j) / float32(slices)
			lng := 2 * math32.Pi * s
			x, y := math32.Cos(lng), math32.Sin(lng)

			d.Color(c0)
			d.Normal(x*r0, y*r0, z0)
			d.TexCoord(s, 1-t0)
			d.Vertex(radius*x*r0, radius*y*r0, radius*z0)

			d.Color(c1)
			d.Normal(x*r1, y*r1, z1)
			d.TexCoord(s, 1-t1)
			d.Vertex(radius*x*r1, radius*y*r1, radius*z1)
		}
		d.End()
	}
}

const ringThickness = 0.1

// ring emits a flattened elliptical band as a single quad strip.
func ring(d gfx.Device, inner, outer float32, segments int) {
	d.Normal(0, 0, 1)
	d.Begin(gfx.QuadStrip)
	for i := 0; i <= segments; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(segments)
		x := math32.Cos(theta) * 1.2
		y := math32.Sin(theta) * 0.7
		d.Vertex(x*inner, y*inner, -ringThickness/2)
		d.Vertex(x*outer, y*outer, -ringThickness/2)
		d.Vertex(x*inner, y*inner, ringThickness/2)
		d.Vertex(x*outer, y*outer, ringThickness/2)
	}
	d.End()
}
