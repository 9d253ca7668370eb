package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HugoSmits86/nativewebp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoadPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "earth.png")
	writeFile(t, path, pngBytes(t, solid(4, 2, color.NRGBA{10, 20, 30, 255})))

	img, err := LoadTexture(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())
	assert.Equal(t, color.NRGBA{10, 20, 30, 255}, img.NRGBAAt(3, 1))
}

func TestDecodeSniffsContent(t *testing.T) {
	// PNG bytes behind a misleading extension.
	img, err := Decode(pngBytes(t, solid(1, 1, color.NRGBA{1, 2, 3, 255})), ".jpg")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{1, 2, 3, 255}, img.NRGBAAt(0, 0))
}

func TestDecodeJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, solid(8, 8, color.NRGBA{200, 200, 200, 255}), &jpeg.Options{Quality: 95}))
	img, err := Decode(buf.Bytes(), "")
	require.NoError(t, err)
	c := img.NRGBAAt(4, 4)
	assert.InDelta(t, 200, int(c.R), 3)
	assert.Equal(t, uint8(255), c.A)
}

func TestDecodeWebP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, nativewebp.Encode(&buf, solid(3, 3, color.NRGBA{0, 128, 255, 255}), nil))
	img, err := Decode(buf.Bytes(), "")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 128, 255, 255}, img.NRGBAAt(1, 1))
}

func TestDecodeTGA(t *testing.T) {
	// Uncompressed 24-bit true-color, 1×1, top-left origin, BGR pixel.
	raw := []byte{
		0, 0, 2,
		0, 0, 0, 0, 0,
		0, 0, 0, 0,
		1, 0, 1, 0,
		24, 0x20,
		30, 20, 10,
	}
	img, err := Decode(raw, ".TGA")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{10, 20, 30, 255}, img.NRGBAAt(0, 0))
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(nil, ".png")
	assert.Error(t, err)
	_, err = Decode([]byte("plain text, not an image"), ".txt")
	assert.ErrorContains(t, err, "unsupported")
	_, err = LoadTexture(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorContains(t, err, "texture: read")
}

func TestToNRGBAMovesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.Set(5, 5, color.RGBA{255, 0, 0, 255})
	got := toNRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 2, 1), got.Bounds())
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, got.NRGBAAt(0, 0))
}

func TestBuildIndex(t *testing.T) {
	dir := t.TempDir()
	p := pngBytes(t, solid(1, 1, color.NRGBA{A: 255}))
	writeFile(t, filepath.Join(dir, "Earth.jpg"), p)
	writeFile(t, filepath.Join(dir, "earth.png"), p)
	writeFile(t, filepath.Join(dir, "planets", "Moon.webp"), p)
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("x"))

	idx := BuildIndex(dir)
	assert.Equal(t, 2, idx.Len())

	path, ok := idx.ResolvePath("EARTH")
	require.True(t, ok)
	assert.Equal(t, "earth.png", filepath.Base(path), "png wins over jpg")

	path, ok = idx.ResolvePath(`assets\moon.bmp`)
	require.True(t, ok)
	assert.Equal(t, "Moon.webp", filepath.Base(path))

	_, ok = idx.ResolvePath("saturn")
	assert.False(t, ok)

	assert.Zero(t, BuildIndex(filepath.Join(dir, "nope")).Len())
	assert.Zero(t, BuildIndex("").Len())
}

func TestCacheResolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "moon.png"), pngBytes(t, solid(2, 2, color.NRGBA{9, 9, 9, 255})))
	writeFile(t, filepath.Join(dir, "saturn.png"), []byte("broken"))

	var logs bytes.Buffer
	c := NewCache(BuildIndex(dir), slog.New(slog.NewTextHandler(&logs, nil)))

	moon := c.Resolve("moon")
	require.NotNil(t, moon)
	assert.Same(t, moon, c.Resolve("moon"))

	assert.Nil(t, c.Resolve("earth"))
	assert.Nil(t, c.Resolve("earth"))
	assert.Nil(t, c.Resolve("saturn"))

	out := logs.String()
	assert.Equal(t, 1, strings.Count(out, "texture not found"), out)
	assert.Equal(t, 1, strings.Count(out, "texture unavailable"), out)
	assert.Contains(t, out, "name=earth")
}

func TestPreload(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "earth.png"), pngBytes(t, solid(1, 1, color.NRGBA{A: 255})))
	c := NewCache(BuildIndex(dir), slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	assert.Equal(t, 1, c.Preload([]string{"saturn", "earth", "moon"}))

	var r Resolver = NewCache(nil, nil)
	assert.Nil(t, r.Resolve("earth"))
}
