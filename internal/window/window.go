// Package window hosts the scene in a desktop window. Input devices,
// the animation clock and repaint all run on the calling goroutine,
// which must be the process main thread.
package window

import (
	"fmt"
	"log/slog"
	"time"

	"langit/internal/input"
	"langit/internal/scene"
	"langit/internal/texture"
)

// Options configures Run.
type Options struct {
	Title         string
	Width, Height int
	Profile       scene.Profile
	Speeds        input.Speeds
	Textures      texture.Resolver
	// TickPeriod is the animation clock interval; zero uses the default.
	TickPeriod time.Duration
	Logger     *slog.Logger
}

func (o *Options) defaults() {
	if o.Title == "" {
		o.Title = "langit"
	}
	if o.Width <= 0 {
		o.Width = 600
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if o.Speeds == (input.Speeds{}) {
		o.Speeds = input.DefaultSpeeds()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// Title renders the window caption for a state snapshot. It is the
// window's stand-in for the numeric display fields.
func Title(prefix string, s scene.TransformState) string {
	r, t, a := s.Rotation, s.Translation, s.AxisScale
	return fmt.Sprintf("%s | %s | rot %.0f %.0f %.0f | pos %.2f %.2f %.2f | scale %.2f (%.2f %.2f %.2f)",
		prefix, s.Active, r[0], r[1], r[2], t[0], t[1], t[2], s.UniformScale, a[0], a[1], a[2])
}
