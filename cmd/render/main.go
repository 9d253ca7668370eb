// Command render plays a scene script headlessly and writes the named
// frames to an output directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"langit/internal/config"
	"langit/internal/frames"
	"langit/internal/script"
	"langit/internal/session"
	"langit/internal/shapes"
	"langit/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json or .toml)")
	scriptFile := flag.String("script", "", "Path to the scene script (YAML)")
	baseDir := flag.String("base", "", "Base directory (default: auto-detect)")
	textureDir := flag.String("textures", "", "Texture directory (default: <base>/textures)")
	outputDir := flag.String("output", "", "Output directory (default: <base>/frames)")
	width := flag.Int("width", 0, "Frame width (default: 600)")
	height := flag.Int("height", 0, "Frame height (default: 600)")
	profile := flag.String("profile", "", "Camera profile: ortho or perspective")
	format := flag.String("format", "", "Image format: webp, png or jpeg")
	quality := flag.Int("quality", 0, "JPEG quality 1-100 (default: 90)")
	workers := flag.Int("workers", 0, "Number of encoder goroutines (default: NumCPU)")
	logLevel := flag.String("log", "", "Log level: debug, info, warn, error")

	flag.Parse()

	if *scriptFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -script is required.")
		flag.Usage()
		os.Exit(2)
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		BaseDir:    *baseDir,
		TextureDir: *textureDir,
		OutputDir:  *outputDir,
		Width:      *width,
		Height:     *height,
		Profile:    *profile,
		Format:     *format,
		Quality:    *quality,
		Workers:    *workers,
		LogLevel:   *logLevel,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log := cfg.Logger()

	sc, err := script.Load(*scriptFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading script: %v\n", err)
		os.Exit(1)
	}
	if len(sc.Frames()) == 0 {
		fmt.Println("Script names no frames.")
		os.Exit(0)
	}

	// Build texture index
	texIndex := texture.BuildIndex(cfg.TextureDir)
	texCache := texture.NewCache(texIndex, log)
	loaded := texCache.Preload(shapes.Default().Textures())
	fmt.Printf("Textures: %d indexed, %d loaded\n", texIndex.Len(), loaded)

	fmt.Printf("Scene script → %s (%s)\n", cfg.Format, cfg.Profile)
	fmt.Printf("Steps: %d, Frames: %d, Size: %dx%d, Workers: %d\n",
		len(sc.Steps), len(sc.Frames()), cfg.Width, cfg.Height, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()

	writer, err := frames.NewWriter(frames.Options{
		Dir:      cfg.OutputDir,
		Format:   cfg.Format,
		Quality:  cfg.Quality,
		Workers:  cfg.Workers,
		Logger:   log,
		Progress: 2 * time.Second,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sess := session.New(session.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Profile:     cfg.SceneProfile(),
		Speeds:      cfg.Speeds(),
		Textures:    texCache,
		Logger:      log,
	})
	stats, runErr := sess.Run(ctx, sc, writer)
	manifest, closeErr := writer.Close()

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())
	fmt.Printf("Steps: %d, Renders: %d\n", stats.Steps, stats.Renders)

	failed := 0
	for _, e := range manifest.Frames {
		if e.Error != "" {
			failed++
		}
	}
	fmt.Printf("Written: %d/%d\n", len(manifest.Frames)-failed, stats.Frames)

	if closeErr != nil {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, e := range manifest.Frames {
			if e.Error != "" {
				fmt.Printf("  %s: %s\n", e.Name, e.Error)
			}
		}
	}
	fmt.Printf("Manifest: %s\n", filepath.Join(cfg.OutputDir, frames.ManifestName))

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Interrupted.")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		}
		os.Exit(1)
	}
	if closeErr != nil {
		os.Exit(1)
	}
}
