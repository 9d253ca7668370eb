// Command texinfo reports which planet textures resolve and how they decode.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"langit/internal/config"
	"langit/internal/shapes"
	"langit/internal/texture"
)

func main() {
	baseDir := flag.String("base", "", "Base directory (default: auto-detect)")
	textureDir := flag.String("textures", "", "Texture directory (default: <base>/textures)")
	flag.Parse()

	var cfg config.Config
	cfg.Resolve(config.Flags{BaseDir: *baseDir, TextureDir: *textureDir, LogLevel: "error"})

	// Build texture index
	idx := texture.BuildIndex(cfg.TextureDir)
	fmt.Printf("Textures: %d indexed in %s\n", idx.Len(), cfg.TextureDir)

	missing := 0
	for _, name := range shapes.Default().Textures() {
		path, ok := idx.ResolvePath(name)
		if !ok {
			fmt.Printf("MISS %s\n", name)
			missing++
			continue
		}
		tex, err := texture.LoadTexture(path)
		if err != nil {
			fmt.Printf("ERR  %s: %v\n", name, err)
			missing++
			continue
		}
		checkNRGBAAlpha(tex, name, path)
	}

	if missing > 0 {
		fmt.Printf("\n%d texture(s) unavailable; those shapes draw nothing.\n", missing)
		os.Exit(1)
	}
}

func checkNRGBAAlpha(tex *image.NRGBA, name, path string) {
	b := tex.Bounds()
	w, h := b.Dx(), b.Dy()
	var minA, maxA uint8 = 255, 0
	total := 0
	opaque := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := tex.Pix[y*tex.Stride+x*4+3]
			total++
			if a < minA {
				minA = a
			}
			if a > maxA {
				maxA = a
			}
			if a == 255 {
				opaque++
			}
		}
	}
	if total == 0 {
		fmt.Printf("OK   %s: %s empty\n", name, path)
		return
	}
	fmt.Printf("OK   %s: %s %dx%d, alpha: min=%d max=%d opaque=%d/%d (%.0f%%)\n",
		name, path, w, h, minA, maxA, opaque, total, 100*float64(opaque)/float64(total))
}
