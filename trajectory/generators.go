package trajectory

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"

	"github.com/Redamancy-wzh/6-3D/spatialmath"
)

// Sample counts and geometry of the built-in demonstration paths. Every
// generator holds orientation fixed at the start orientation, so Cartesian
// straightness of the played-back motion comes entirely from the sampling
// density here.
const (
	lineSamples   = 61
	sCurveSamples = 121
	spiralSamples = 181

	lineLengthMM    = 500.0
	sCurveSpanMM    = 480.0
	sCurveAmpMM     = 120.0
	sCurvePeriods   = 2.0
	spiralBaseMM    = 60.0
	spiralGrowthMM  = 140.0
	spiralTurns     = 3.0
	spiralClimbMM   = 160.0
)

// Line produces an evenly sampled straight path from the start position to
// a point 500 mm away along the start frame's local X axis.
func Line(start spatialmath.Pose) []spatialmath.Pose {
	m := start.ToTransform()
	dir := r3.Vector{X: m.At(0, 0), Y: m.At(1, 0), Z: m.At(2, 0)}
	return sampled(start, lineSamples, func(t float64) r3.Vector {
		return start.Point().Add(dir.Mul(lineLengthMM * t))
	})
}

// SCurve produces a sinusoidal sweep in the XY plane at the start height.
func SCurve(start spatialmath.Pose) []spatialmath.Pose {
	origin := start.Point()
	return sampled(start, sCurveSamples, func(t float64) r3.Vector {
		return r3.Vector{
			X: origin.X + sCurveSpanMM*t,
			Y: origin.Y + sCurveAmpMM*math.Sin(2*math.Pi*sCurvePeriods*t),
			Z: origin.Z,
		}
	})
}

// Spiral produces an expanding helix around the start position.
func Spiral(start spatialmath.Pose) []spatialmath.Pose {
	center := start.Point()
	return sampled(start, spiralSamples, func(t float64) r3.Vector {
		radius := spiralBaseMM + spiralGrowthMM*t
		theta := 2 * math.Pi * spiralTurns * t
		return r3.Vector{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
			Z: center.Z + spiralClimbMM*t,
		}
	})
}

// sampled evaluates a position curve at n evenly spaced parameter values in
// [0, 1], carrying the start orientation onto every waypoint.
func sampled(start spatialmath.Pose, n int, at func(t float64) r3.Vector) []spatialmath.Pose {
	ts := floats.Span(make([]float64, n), 0, 1)
	waypoints := make([]spatialmath.Pose, 0, n)
	for _, t := range ts {
		p := at(t)
		waypoints = append(waypoints, spatialmath.Pose{
			X: p.X, Y: p.Y, Z: p.Z,
			A: start.A, B: start.B, C: start.C,
		})
	}
	return waypoints
}
