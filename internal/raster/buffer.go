package raster

import (
	"image"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // depth per pixel, larger is nearer, cleared to -inf
}

// NewFrameBuffer allocates a zeroed color buffer and -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   make([]float64, n),
	}
	fb.clearDepth()
	return fb
}

// Clear fills every pixel with c and resets depth.
func (fb *FrameBuffer) Clear(c [4]uint8) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = c[0]
		fb.Color[i+1] = c[1]
		fb.Color[i+2] = c[2]
		fb.Color[i+3] = c[3]
	}
	fb.clearDepth()
}

func (fb *FrameBuffer) clearDepth() {
	inf := math.Inf(-1)
	for i := range fb.ZBuf {
		fb.ZBuf[i] = inf
	}
}

// At returns the color at (x, y), y growing downwards.
func (fb *FrameBuffer) At(x, y int) [4]uint8 {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return [4]uint8{}
	}
	i := (y*fb.Width + x) * 4
	return [4]uint8{fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]}
}

// Image copies the color buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
