// Package config loads the settings shared by the window and the
// headless renderer.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"langit/internal/input"
	"langit/internal/scene"
)

// Output formats understood by the frame writer.
const (
	FormatWebP = "webp"
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir    string `json:"base_dir" toml:"base_dir"`
	TextureDir string `json:"texture_dir" toml:"texture_dir"`
	OutputDir  string `json:"output_dir" toml:"output_dir"`

	// Window and camera
	Width   int    `json:"width" toml:"width"`
	Height  int    `json:"height" toml:"height"`
	Profile string `json:"profile" toml:"profile"`

	// Input speeds; zero keeps the default.
	RotationSpeed float64 `json:"rotation_speed" toml:"rotation_speed"`
	PanSpeed      float64 `json:"pan_speed" toml:"pan_speed"`
	ZoomFactor    float64 `json:"zoom_factor" toml:"zoom_factor"`
	DollyStep     float64 `json:"dolly_step" toml:"dolly_step"`

	// Frame output
	Format      string `json:"format" toml:"format"`
	Quality     int    `json:"quality" toml:"quality"`
	Supersample int    `json:"supersample" toml:"supersample"`
	Workers     int    `json:"workers" toml:"workers"`

	LogLevel string `json:"log_level" toml:"log_level"`
}

// Load reads a JSON or TOML config file, chosen by extension.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	BaseDir    string
	TextureDir string
	OutputDir  string
	Width      int
	Height     int
	Profile    string
	Format     string
	Quality    int
	Workers    int
	LogLevel   string
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.BaseDir != "" {
		c.BaseDir = flags.BaseDir
	}
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Profile != "" {
		c.Profile = flags.Profile
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Quality > 0 {
		c.Quality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	if c.BaseDir == "" {
		c.BaseDir = detectBaseDir()
	}

	// Resolve relative paths against base dir
	c.TextureDir = c.resolvePath(c.TextureDir, "textures")
	c.OutputDir = c.resolvePath(c.OutputDir, "frames")

	if c.Width <= 0 {
		c.Width = 600
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Profile == "" {
		c.Profile = scene.Orthographic.String()
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = FormatWebP
	}
	if c.Format == "jpg" {
		c.Format = FormatJPEG
	}
	if c.Quality <= 0 {
		c.Quality = 90
	}
	if c.Quality > 100 {
		c.Quality = 100
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) resolvePath(p, def string) string {
	if p == "" {
		p = def
	}
	if c.BaseDir != "" && !filepath.IsAbs(p) {
		p = filepath.Join(c.BaseDir, p)
	}
	return p
}

// Validate reports settings Resolve cannot repair.
func (c Config) Validate() error {
	if _, err := scene.ParseProfile(c.Profile); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Format {
	case FormatWebP, FormatPNG, FormatJPEG:
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// SceneProfile returns the camera profile, falling back to orthographic.
func (c Config) SceneProfile() scene.Profile {
	p, _ := scene.ParseProfile(c.Profile)
	return p
}

// Speeds returns the input speeds with configured overrides applied.
func (c Config) Speeds() input.Speeds {
	s := input.DefaultSpeeds()
	if c.RotationSpeed > 0 {
		s.Rotation = c.RotationSpeed
	}
	if c.PanSpeed > 0 {
		s.Pan = c.PanSpeed
	}
	if c.ZoomFactor > 1 {
		s.Zoom = c.ZoomFactor
	}
	if c.DollyStep > 0 {
		s.Dolly = c.DollyStep
		s.KeyDolly = c.DollyStep
	}
	return s
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// Logger returns a text logger writing to stderr at the configured level.
func (c Config) Logger() *slog.Logger {
	l, _ := c.Level()
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// detectBaseDir looks for a textures directory next to the executable or
// in the working directory.
func detectBaseDir() string {
	exe, _ := os.Executable()
	if exe != "" {
		dir := filepath.Dir(exe)
		for _, base := range []string{dir, filepath.Dir(dir)} {
			if isDir(filepath.Join(base, "textures")) {
				return base
			}
		}
	}

	cwd, _ := os.Getwd()
	if isDir(filepath.Join(cwd, "textures")) {
		return cwd
	}
	return ""
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
