// Command langit opens the interactive scene viewer.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"langit/internal/config"
	"langit/internal/shapes"
	"langit/internal/texture"
	"langit/internal/window"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configFile := flag.String("config", "", "Path to config file (.json or .toml)")
	baseDir := flag.String("base", "", "Base directory (default: auto-detect)")
	textureDir := flag.String("textures", "", "Texture directory (default: <base>/textures)")
	width := flag.Int("width", 0, "Window width (default: 600)")
	height := flag.Int("height", 0, "Window height (default: 600)")
	profile := flag.String("profile", "", "Camera profile: ortho or perspective")
	logLevel := flag.String("log", "", "Log level: debug, info, warn, error")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		BaseDir:    *baseDir,
		TextureDir: *textureDir,
		Width:      *width,
		Height:     *height,
		Profile:    *profile,
		LogLevel:   *logLevel,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log := cfg.Logger()

	texIndex := texture.BuildIndex(cfg.TextureDir)
	texCache := texture.NewCache(texIndex, log)
	loaded := texCache.Preload(shapes.Default().Textures())
	log.Info("textures ready", "dir", cfg.TextureDir, "indexed", texIndex.Len(), "loaded", loaded)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := window.Run(ctx, window.Options{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Profile:  cfg.SceneProfile(),
		Speeds:   cfg.Speeds(),
		Textures: texCache,
		Logger:   log,
	})
	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
