package frames

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/HugoSmits86/nativewebp"

	"langit/internal/config"
)

// Ext returns the file extension for format.
func Ext(format string) string {
	switch format {
	case config.FormatPNG:
		return ".png"
	case config.FormatJPEG:
		return ".jpg"
	}
	return ".webp"
}

// Encode writes img in the given format. WebP output is lossless, so
// quality only affects JPEG.
func Encode(w io.Writer, img image.Image, format string, quality int) error {
	switch format {
	case config.FormatWebP, "":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("webp encode: %w", err)
		}
	case config.FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("png encode: %w", err)
		}
	case config.FormatJPEG:
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("jpeg encode: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
