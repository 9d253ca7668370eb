// Command inspect prints a frame manifest and checks that every listed
// image decodes at the recorded size.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"langit/internal/frames"
	"langit/internal/texture"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect <frames-dir | manifest.json>")
		os.Exit(2)
	}
	path := os.Args[1]
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, frames.ManifestName)
	}
	dir := filepath.Dir(path)

	m, err := frames.ReadManifest(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Format: %s, Frames: %d\n", m.Format, len(m.Frames))

	bad := 0
	for _, e := range m.Frames {
		fmt.Printf("  [%d] %s: shape=%s profile=%s\n", e.Index, e.Name, e.Shape, e.Profile)
		s, err := e.State()
		if err != nil {
			fmt.Printf("    state: %v\n", err)
			bad++
			continue
		}
		r, t, a := s.Rotation, s.Translation, s.AxisScale
		fmt.Printf("    rot (%.1f, %.1f, %.1f) pos (%.2f, %.2f, %.2f) scale %.2f × (%.2f, %.2f, %.2f)\n",
			r[0], r[1], r[2], t[0], t[1], t[2], s.UniformScale, a[0], a[1], a[2])
		if c, ok := s.Color(s.Active); ok {
			fmt.Printf("    color (%.2f, %.2f, %.2f)\n", c.R, c.G, c.B)
		}
		if e.Error != "" {
			fmt.Printf("    error: %s\n", e.Error)
			bad++
			continue
		}
		img, err := texture.LoadTexture(filepath.Join(dir, e.Image))
		if err != nil {
			fmt.Printf("    image: %v\n", err)
			bad++
			continue
		}
		if b := img.Bounds(); b.Dx() != e.Width || b.Dy() != e.Height {
			fmt.Printf("    image: %s is %dx%d, manifest says %dx%d\n", e.Image, b.Dx(), b.Dy(), e.Width, e.Height)
			bad++
		}
	}

	if bad > 0 {
		fmt.Printf("\n%d frame(s) with problems.\n", bad)
		os.Exit(1)
	}
}
