package frames

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"

	"langit/internal/config"
	"langit/internal/scene"
	"langit/internal/script"
	"langit/internal/session"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func runScript(t *testing.T, w *Writer, opts session.Options, src string) {
	t.Helper()
	sc, err := script.Parse([]byte(src))
	require.NoError(t, err)
	opts.Logger = quiet()
	_, err = session.New(opts).Run(context.Background(), sc, w)
	require.NoError(t, err)
}

const tour = `
- select: rocket
- color: [0, 0, 1]
- frame: blue-rocket
- select: star
- tick: 15
- frame: star
- select: cloud
- frame: cloud
- frame: cloud-again
`

func TestWriterPNG(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(Options{Dir: dir, Format: config.FormatPNG, Workers: 3, Logger: quiet()})
	require.NoError(t, err)
	runScript(t, w, session.Options{Width: 32, Height: 24}, tour)

	m, err := w.Close()
	require.NoError(t, err)
	require.Len(t, m.Frames, 4)
	assert.Equal(t, config.FormatPNG, m.Format)

	for i, e := range m.Frames {
		assert.Equal(t, i, e.Index)
		assert.Empty(t, e.Error)
		f, err := os.Open(filepath.Join(dir, e.Image))
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 32, 24), img.Bounds())
	}

	rocket := m.Frames[0]
	assert.Equal(t, "000-blue-rocket.png", rocket.Image)
	assert.Equal(t, "rocket", rocket.Shape)
	assert.Equal(t, "ortho", rocket.Profile)
	require.NotNil(t, rocket.Color)
	assert.Equal(t, [3]float64{0, 0, 1}, *rocket.Color)

	star := m.Frames[1]
	assert.Nil(t, star.Color)
	assert.Equal(t, [3]float64{15, 15, 15}, star.Rotation)

	onDisk, err := ReadManifest(filepath.Join(dir, ManifestName))
	require.NoError(t, err)
	assert.Equal(t, m, onDisk)

	st, err := onDisk.Frames[0].State()
	require.NoError(t, err)
	assert.Equal(t, scene.Rocket, st.Active)
	assert.Equal(t, scene.RGB{R: 0, G: 0, B: 1}, st.Colors[scene.Rocket])
}

func TestWriterWebPSupersampled(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(Options{Dir: dir, Format: config.FormatWebP, Workers: 1, Logger: quiet()})
	require.NoError(t, err)
	runScript(t, w, session.Options{Width: 20, Height: 20, Supersample: 2}, "- select: cloud\n- frame: c\n")

	m, err := w.Close()
	require.NoError(t, err)
	require.Len(t, m.Frames, 1)
	assert.Equal(t, 20, m.Frames[0].Width)

	data, err := os.ReadFile(filepath.Join(dir, "000-c.webp"))
	require.NoError(t, err)
	img, err := webp.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 20), img.Bounds())
}

func TestWriterReportsBadFrames(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(Options{Dir: dir, Format: config.FormatJPEG, Quality: 80, Logger: quiet()})
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, w.WriteFrame(ctx, session.Frame{Index: 0, Name: "blank", State: scene.DefaultState()}))
	require.NoError(t, w.WriteFrame(ctx, session.Frame{
		Index: 1, Name: "ok", State: scene.DefaultState(),
		Image: image.NewNRGBA(image.Rect(0, 0, 4, 4)), Width: 4, Height: 4,
	}))

	m, err := w.Close()
	assert.ErrorContains(t, err, `frame "blank"`)
	require.Len(t, m.Frames, 2)
	assert.Equal(t, "no image", m.Frames[0].Error)
	assert.Equal(t, "001-ok.jpg", m.Frames[1].Image)
	assert.FileExists(t, filepath.Join(dir, ManifestName))

	assert.Error(t, w.WriteFrame(ctx, session.Frame{Name: "late"}))
	_, err = w.Close()
	assert.Error(t, err)
}

type failingClose struct{ *os.File }

func (f failingClose) Close() error {
	f.File.Close()
	return errors.New("disk full")
}

func TestWriterReportsCloseFailure(t *testing.T) {
	orig := createFile
	t.Cleanup(func() { createFile = orig })
	createFile = func(path string) (io.WriteCloser, error) {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		return failingClose{f}, nil
	}

	dir := t.TempDir()
	w, err := NewWriter(Options{Dir: dir, Format: config.FormatPNG, Logger: quiet()})
	require.NoError(t, err)
	require.NoError(t, w.WriteFrame(context.Background(), session.Frame{
		Name: "flushed", State: scene.DefaultState(),
		Image: image.NewNRGBA(image.Rect(0, 0, 2, 2)), Width: 2, Height: 2,
	}))

	m, err := w.Close()
	assert.ErrorContains(t, err, `frame "flushed"`)
	require.Len(t, m.Frames, 1)
	assert.Equal(t, "disk full", m.Frames[0].Error)
	assert.Empty(t, m.Frames[0].Image)
	assert.NoFileExists(t, filepath.Join(dir, "000-flushed.png"))
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 1, 1)), "bmp", 0))
	assert.Equal(t, ".webp", Ext(config.FormatWebP))
	assert.Equal(t, ".png", Ext(config.FormatPNG))
	assert.Equal(t, ".jpg", Ext(config.FormatJPEG))
}
