package mathutil

import "math"

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Wrap360 maps an angle in degrees into [0, 360). NaN and ±Inf map to 0.
func Wrap360(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// -1e-17 mod 360 rounds back up to 360 after the correction above.
	if d >= 360 {
		d = 0
	}
	return d
}

// Clamp saturates v into [lo, hi]. NaN yields lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
