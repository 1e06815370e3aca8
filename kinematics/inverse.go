package kinematics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"github.com/Redamancy-wzh/6-3D/spatialmath"
)

// Solver tolerances and gains. The orientation weight and step scale have
// no physical derivation; they are tuned values and changing them changes
// convergence behavior.
const (
	// MaxIterations bounds a single solve.
	MaxIterations = 200
	// PositionTolMM is the convergence threshold on position error.
	PositionTolMM = 0.1
	// OrientationTolRad is the convergence threshold on orientation error.
	OrientationTolRad = 0.001

	orientWeight = 100.0
	stepScale    = 0.5 * 0.00005
)

// xAxisJoint is the solved joint whose axis is its pivot frame's local X,
// mirroring the structural exception in Forward.
const xAxisJoint = 3

func localX(m mgl64.Mat4) r3.Vector {
	return r3.Vector{X: m.At(0, 0), Y: m.At(1, 0), Z: m.At(2, 0)}
}

func localZ(m mgl64.Mat4) r3.Vector {
	return r3.Vector{X: m.At(0, 2), Y: m.At(1, 2), Z: m.At(2, 2)}
}

// Solve refines seed toward joint angles whose flange transform matches
// target, using damped Jacobian-transpose descent. The result is
// deterministic for identical inputs. Solve never fails: if the target is
// not reached within MaxIterations the best estimate is returned, so
// callers needing a guarantee must check Residual themselves. Output
// angles are always normalized into (-180, 180].
func Solve(target mgl64.Mat4, seed JointAngles, cfg Config) JointAngles {
	targetPos := spatialmath.Translation(target)
	angles := seed

	for iter := 0; iter < MaxIterations; iter++ {
		chain := Forward(angles, cfg)
		cur := chain.Flange()
		curPos := spatialmath.Translation(cur)

		posErr := targetPos.Sub(curPos)
		orientErr := spatialmath.OrientationBetween(cur, target)
		if posErr.Norm() < PositionTolMM && orientErr.Norm() < OrientationTolRad {
			break
		}

		for j := 0; j < NumJoints; j++ {
			pivot := chain[j]
			axis := localZ(pivot)
			if j == xAxisJoint {
				axis = localX(pivot)
			}
			linear := axis.Cross(curPos.Sub(spatialmath.Translation(pivot)))
			contribution := linear.Dot(posErr) + orientWeight*axis.Dot(orientErr)
			angles[j] += contribution * stepScale
		}
	}
	return Normalize(angles)
}

// SolvePosition is the ad-hoc single-target entry point for the control
// surface: it solves for a target position only. When orientation is nil
// the flange orientation of the seed pose is held; otherwise the given
// rotation is targeted.
func SolvePosition(pos r3.Vector, orientation *spatialmath.Pose, seed JointAngles, cfg Config) JointAngles {
	var target mgl64.Mat4
	if orientation != nil {
		target = orientation.ToTransform()
	} else {
		target = Forward(seed, cfg).Flange()
	}
	target.SetCol(3, mgl64.Vec4{pos.X, pos.Y, pos.Z, 1})
	return Solve(target, seed, cfg)
}

// Residual reports how far the flange at the given angles is from target:
// position error in millimeters and orientation error in radians. Use it
// to enforce the convergence guarantee Solve itself does not make.
func Residual(target mgl64.Mat4, angles JointAngles, cfg Config) (float64, float64) {
	cur := Forward(angles, cfg).Flange()
	posErr := spatialmath.Translation(target).Sub(spatialmath.Translation(cur))
	orientErr := spatialmath.OrientationBetween(cur, target)
	return posErr.Norm(), orientErr.Norm()
}
