package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestDownsampleSolid(t *testing.T) {
	src := fill(40, 20, color.NRGBA{200, 100, 50, 255})
	got := Downsample(src, 20, 10)
	require.Equal(t, image.Rect(0, 0, 20, 10), got.Bounds())
	c := got.NRGBAAt(10, 5)
	assert.InDelta(t, 200, int(c.R), 1)
	assert.InDelta(t, 100, int(c.G), 1)
	assert.InDelta(t, 50, int(c.B), 1)
	assert.Equal(t, uint8(255), c.A)
}

func TestDownsampleKeepsTransparentEdgeColor(t *testing.T) {
	src := fill(8, 8, color.NRGBA{})
	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
		}
	}
	got := Downsample(src, 4, 4)
	for x := 0; x < 4; x++ {
		c := got.NRGBAAt(x, 2)
		if c.A > 8 {
			assert.Greater(t, c.R, uint8(200), "no dark halo at x=%d", x)
		}
	}
}

func TestDownsampleNoop(t *testing.T) {
	src := fill(10, 10, color.NRGBA{A: 255})
	assert.Same(t, src, Downsample(src, 10, 10))
	assert.Same(t, src, Downsample(src, 20, 20))
	assert.Same(t, src, Downsample(src, 0, 5))
}
