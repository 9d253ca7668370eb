package frames

import (
	"encoding/json"
	"fmt"
	"os"

	"langit/internal/scene"
	"langit/internal/session"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index        int        `json:"index"`
	Name         string     `json:"name"`
	Image        string     `json:"image,omitempty"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Shape        string     `json:"shape"`
	Profile      string     `json:"profile"`
	Rotation     [3]float64 `json:"rotation"`
	Translation  [3]float64 `json:"translation"`
	UniformScale float64    `json:"uniform_scale"`
	AxisScale    [3]float64 `json:"axis_scale"`
	// Color is the override of a colorable shape, if one is set.
	Color *[3]float64 `json:"color,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Manifest lists every frame of a run in script order.
type Manifest struct {
	Format string          `json:"format"`
	Frames []ManifestEntry `json:"frames"`
}

func newEntry(f session.Frame) ManifestEntry {
	s := f.State
	e := ManifestEntry{
		Index:        f.Index,
		Name:         f.Name,
		Width:        f.Width,
		Height:       f.Height,
		Shape:        s.Active.String(),
		Profile:      f.Profile.String(),
		Rotation:     s.Rotation,
		Translation:  s.Translation,
		UniformScale: s.UniformScale,
		AxisScale:    s.AxisScale,
	}
	if c, ok := s.Color(s.Active); ok && s.Active.Colorable() {
		e.Color = &[3]float64{c.R, c.G, c.B}
	}
	return e
}

// State rebuilds the transform recorded in the entry.
func (e ManifestEntry) State() (scene.TransformState, error) {
	id, err := scene.ParseShapeID(e.Shape)
	if err != nil {
		return scene.TransformState{}, fmt.Errorf("frames: entry %q: %w", e.Name, err)
	}
	s := scene.DefaultState()
	s.Active = id
	s.Rotation = e.Rotation
	s.Translation = e.Translation
	s.UniformScale = e.UniformScale
	s.AxisScale = e.AxisScale
	if e.Color != nil {
		s.Colors[id] = scene.RGB{R: e.Color[0], G: e.Color[1], B: e.Color[2]}
	}
	return s, nil
}

// WriteManifest writes m as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("frames: read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("frames: parse manifest: %w", err)
	}
	return m, nil
}
