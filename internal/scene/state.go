package scene

import "langit/internal/mathutil"

// RGB is a color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// TransformState is the authoritative scene transform.
type TransformState struct {
	// Rotation is in degrees, each component in [0, 360).
	Rotation     mathutil.Vec3
	Translation  mathutil.Vec3
	UniformScale float64
	AxisScale    mathutil.Vec3
	Active       ShapeID
	Colors       map[ShapeID]RGB
}

// DefaultState returns the startup state: no shape, identity transform.
func DefaultState() TransformState {
	return TransformState{
		UniformScale: 1,
		AxisScale:    mathutil.Vec3{1, 1, 1},
		Colors:       make(map[ShapeID]RGB),
	}
}

// Clone returns a deep copy.
func (s TransformState) Clone() TransformState {
	c := s
	c.Colors = make(map[ShapeID]RGB, len(s.Colors))
	for k, v := range s.Colors {
		c.Colors[k] = v
	}
	return c
}

// EffectiveScale returns uniform × per-axis scale.
func (s TransformState) EffectiveScale() mathutil.Vec3 {
	return s.AxisScale.Scale(s.UniformScale)
}

// Color returns the override for id, if one is set.
func (s TransformState) Color(id ShapeID) (RGB, bool) {
	c, ok := s.Colors[id]
	return c, ok
}
