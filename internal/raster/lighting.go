package raster

import (
	"math"

	"langit/internal/mathutil"
)

// LightConfig holds precomputed lighting parameters. Directions are in
// eye space, so the light stays fixed relative to the camera.
type LightConfig struct {
	LightDir mathutil.Vec3
	HalfMain mathutil.Vec3 // precomputed half-vector for Blinn-Phong
	Ambient  float64
	Hemi     float64
	Direct   float64
	SpecInt  float64
	SpecPow  float64
}

// DefaultLightConfig returns a single key light above and to the right of the viewer.
func DefaultLightConfig() LightConfig {
	lightDir := mathutil.Vec3{0.4, 0.6, 1}.Normalize()
	viewDir := mathutil.Vec3{0, 0, 1}

	return LightConfig{
		LightDir: lightDir,
		HalfMain: lightDir.Add(viewDir).Normalize(),
		Ambient:  0.30,
		Hemi:     0.15,
		Direct:   0.65,
		SpecInt:  0.20,
		SpecPow:  16.0,
	}
}

// ComputeShade returns the combined lighting scalar for a face normal.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	// Lambertian (abs for double-sided)
	ndl := math.Abs(normal.Dot(lc.LightDir))

	// Hemisphere fill: faces pointing up catch more sky.
	hemi := (normal[1]*0.5 + 0.5) * lc.Hemi

	// Blinn-Phong specular
	ndh := math.Abs(normal.Dot(lc.HalfMain))
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemi + ndl*lc.Direct + spec
}
