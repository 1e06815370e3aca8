// Package utils contains angle and unit helpers shared by the kinematics
// and trajectory packages.
package utils

import (
	"math"
)

func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// AngleDiffDeg returns the closest difference from the two given
// angles. The arguments are commutative.
func AngleDiffDeg(a1, a2 float64) float64 {
	return float64(180) - math.Abs(math.Abs(a1-a2)-float64(180))
}

// NormalizeDeg wraps an angle into (-180, 180]. It is idempotent, so
// repeated seeded solves cannot accumulate drift.
func NormalizeDeg(ang float64) float64 {
	m := math.Mod(ang, 360)
	if m > 180 {
		m -= 360
	} else if m <= -180 {
		m += 360
	}
	return m
}
