package raster

import (
	"image"
	"math"
)

// screenVertex is a vertex after projection and viewport mapping.
type screenVertex struct {
	x, y float64 // pixel coordinates, y down
	z    float64 // NDC depth in [-1, 1], smaller is nearer
	invW float64 // 1/w for perspective-correct interpolation
	col  [4]float64
	u, v float64
}

// fragmentState is the per-primitive state read by the pixel loop.
type fragmentState struct {
	tex       *image.NRGBA // nil when texturing is off
	shade     float64      // 1 when lighting is off
	depthTest bool
}

// rasterizeTriangle fills one triangle with interpolated color and texture
// coordinates, depth test and flat shading.
//
// This is the HOT PATH; the pixel loop does not allocate.
func rasterizeTriangle(fb *FrameBuffer, sv [3]screenVertex, fs *fragmentState) {
	x0, y0 := sv[0].x, sv[0].y
	x1, y1 := sv[1].x, sv[1].y
	x2, y2 := sv[2].x, sv[2].y

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX > fb.Width-1 {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > fb.Height-1 {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-12 && det < 1e-12 {
		return
	}
	invDet := 1.0 / det

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	// Attributes pre-divided by w
	var pc [3][4]float64
	var pu, pv [3]float64
	for i := range sv {
		iw := sv[i].invW
		for k := 0; k < 4; k++ {
			pc[i][k] = sv[i].col[k] * iw
		}
		pu[i] = sv[i].u * iw
		pv[i] = sv[i].v * iw
	}

	const eps = -1e-9
	for py := minY; py <= maxY; py++ {
		dsy := float64(py) + 0.5 - y2
		rowOff := py * fb.Width
		for px := minX; px <= maxX; px++ {
			dsx := float64(px) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < eps || w1 < eps || w2 < eps {
				continue
			}

			z := w0*sv[0].z + w1*sv[1].z + w2*sv[2].z
			if z < -1 || z > 1 {
				continue
			}
			depth := -z
			zIdx := rowOff + px
			if fs.depthTest && depth <= fb.ZBuf[zIdx] {
				continue
			}

			iw := w0*sv[0].invW + w1*sv[1].invW + w2*sv[2].invW
			if iw <= 0 {
				continue
			}
			persp := 1 / iw

			r := (w0*pc[0][0] + w1*pc[1][0] + w2*pc[2][0]) * persp
			g := (w0*pc[0][1] + w1*pc[1][1] + w2*pc[2][1]) * persp
			b := (w0*pc[0][2] + w1*pc[1][2] + w2*pc[2][2]) * persp
			a := (w0*pc[0][3] + w1*pc[1][3] + w2*pc[2][3]) * persp

			if fs.tex != nil {
				u := (w0*pu[0] + w1*pu[1] + w2*pu[2]) * persp
				v := (w0*pv[0] + w1*pv[1] + w2*pv[2]) * persp
				tr, tg, tb, ta := SampleTexture(fs.tex, u, v)
				r, g, b, a = r*tr, g*tg, b*tb, a*ta
			}

			// Skip transparent fragments
			if a < 8.0/255 {
				continue
			}
			if fs.depthTest {
				fb.ZBuf[zIdx] = depth
			}

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(r * fs.shade * 255)
			fb.Color[pxIdx+1] = clamp255(g * fs.shade * 255)
			fb.Color[pxIdx+2] = clamp255(b * fs.shade * 255)
			fb.Color[pxIdx+3] = clamp255(a * 255)
		}
	}
}

// rasterizeLine draws a segment as a screen-space quad width pixels wide.
func rasterizeLine(fb *FrameBuffer, a, b screenVertex, width float64, fs *fragmentState) {
	dx, dy := b.x-a.x, b.y-a.y
	l := math.Hypot(dx, dy)
	if l < 1e-9 {
		return
	}
	if width < 1 {
		width = 1
	}
	// Perpendicular offset
	ox := -dy / l * width / 2
	oy := dx / l * width / 2

	a0, a1, b0, b1 := a, a, b, b
	a0.x, a0.y = a.x+ox, a.y+oy
	a1.x, a1.y = a.x-ox, a.y-oy
	b0.x, b0.y = b.x+ox, b.y+oy
	b1.x, b1.y = b.x-ox, b.y-oy

	rasterizeTriangle(fb, [3]screenVertex{a0, a1, b1}, fs)
	rasterizeTriangle(fb, [3]screenVertex{a0, b1, b0}, fs)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
