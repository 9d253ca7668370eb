package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"github.com/h2non/filetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// LoadTexture reads an image file and returns it as NRGBA with its
// origin at (0, 0). The format is sniffed from the content; TGA, which
// has no magic number, is recognized by extension.
func LoadTexture(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	img, err := Decode(raw, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return img, nil
}

// Decode decodes raw image bytes. ext is consulted only when the content
// does not identify itself.
func Decode(raw []byte, ext string) (*image.NRGBA, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	kind, _ := filetype.Match(raw)
	format := kind.Extension
	if kind == filetype.Unknown {
		format = strings.TrimPrefix(strings.ToLower(ext), ".")
	}

	r := bytes.NewReader(raw)
	var (
		img image.Image
		err error
	)
	switch format {
	case "png":
		img, err = png.Decode(r)
	case "jpg", "jpeg":
		img, err = jpeg.Decode(r)
	case "gif":
		img, err = gif.Decode(r)
	case "webp":
		img, err = webp.Decode(r)
	case "tga":
		img, err = tga.Decode(r)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return toNRGBA(img), nil
}

// toNRGBA converts any image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
