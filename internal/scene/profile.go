package scene

import (
	"fmt"
	"strings"
)

// Profile selects the camera model for a session and with it the
// meaning of zoom gestures and the translation and scale limits.
type Profile int

const (
	Orthographic Profile = iota
	Perspective
)

func (p Profile) String() string {
	if p == Perspective {
		return "perspective"
	}
	return "ortho"
}

// ParseProfile accepts "ortho", "orthographic" or "perspective".
// An empty name selects Orthographic.
func ParseProfile(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ortho", "orthographic":
		return Orthographic, nil
	case "perspective", "persp":
		return Perspective, nil
	}
	return Orthographic, fmt.Errorf("scene: unknown profile %q", name)
}

// Limits are the clamp ranges applied by the controller.
type Limits struct {
	// Translate holds the symmetric bound for each translation axis.
	Translate [3]float64
	ScaleMin  float64
	ScaleMax  float64
	AxisMin   float64
	AxisMax   float64
}

const (
	orthoHalfHeight = 2.0
	perspBound      = 90.0
)

// Limits returns the clamp ranges for the given viewport aspect ratio.
// A non-positive aspect is treated as 1.
func (p Profile) Limits(aspect float64) Limits {
	if aspect <= 0 {
		aspect = 1
	}
	l := Limits{ScaleMin: 0.1, ScaleMax: 2.0, AxisMin: 0.1, AxisMax: 2.0}
	switch p {
	case Perspective:
		l.Translate = [3]float64{perspBound, perspBound, perspBound}
		l.AxisMax = 5.0
	default:
		// z is pinned: the orthographic camera cannot show depth motion.
		l.Translate = [3]float64{orthoHalfHeight * aspect, orthoHalfHeight, 0}
	}
	return l
}

// Aspect computes w/h, substituting 1 for a zero or negative height.
func Aspect(w, h int) float64 {
	if h <= 0 || w <= 0 {
		return 1
	}
	return float64(w) / float64(h)
}
