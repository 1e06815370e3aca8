package kinematics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Redamancy-wzh/6-3D/spatialmath"
	"github.com/Redamancy-wzh/6-3D/utils"
)

// FrameChainLen is the number of frames produced per forward evaluation:
// one per DH stage plus the trailing flange-offset frame.
const FrameChainLen = NumStages + 1

// FrameChain is the ordered set of absolute link transforms in the base
// frame. Frame i is computed strictly from frame i-1; the final frame is
// the flange.
type FrameChain [FrameChainLen]mgl64.Mat4

// Fixed geometric constants of this arm. Joint 4's physical axis and the
// corrective rotations below deviate from the uniform DH convention; they
// are properties of the mechanical layout, not tunable parameters, and are
// deliberately kept out of Config.
const (
	flangeOffsetZ = 36.0
	flangeOffsetX = -12.0
)

// xAxisStage is the chain stage whose joint rotates about local X rather
// than local Z.
const xAxisStage = 4

var (
	rotX90    = mgl64.HomogRotate3DX(utils.DegToRad(90))
	rotXNeg90 = mgl64.HomogRotate3DX(utils.DegToRad(-90))
	rotY90    = mgl64.HomogRotate3DY(utils.DegToRad(90))
	rotZNeg90 = mgl64.HomogRotate3DZ(utils.DegToRad(-90))
)

// Forward evaluates the kinematic chain for the given joint angles and DH
// table. Degenerate parameter values are not sanitized; NaN inputs poison
// the chain so misconfiguration stays visible.
func Forward(joints JointAngles, cfg Config) FrameChain {
	var chain FrameChain
	running := mgl64.Ident4()
	for i := 0; i < NumStages; i++ {
		commanded := 0.0
		if i > 0 {
			commanded = joints[i-1]
		}
		theta := utils.DegToRad(commanded + cfg.JointOffset[i])

		running = running.Mul4(mgl64.Translate3D(0, 0, cfg.D[i]))
		if i == xAxisStage {
			running = running.Mul4(mgl64.HomogRotate3DX(theta))
		} else {
			running = running.Mul4(mgl64.HomogRotate3DZ(theta))
		}
		running = running.Mul4(mgl64.Translate3D(cfg.A[i], 0, 0))
		running = running.Mul4(mgl64.HomogRotate3DX(utils.DegToRad(cfg.Alpha[i])))

		chain[i] = running

		// Corrective rotations realigning the generic DH axes with the
		// actual joint-axis directions of this arm.
		switch i {
		case 1:
			running = running.Mul4(rotX90)
		case 3:
			running = running.Mul4(rotY90).Mul4(rotZNeg90)
		case 4:
			running = running.Mul4(rotXNeg90)
		case 5:
			running = running.Mul4(rotXNeg90).Mul4(rotY90)
		}
	}
	chain[NumStages] = running.
		Mul4(mgl64.Translate3D(0, 0, flangeOffsetZ)).
		Mul4(mgl64.Translate3D(flangeOffsetX, 0, 0))
	return chain
}

// Flange returns the final frame of the chain.
func (c FrameChain) Flange() mgl64.Mat4 {
	return c[FrameChainLen-1]
}

// EndEffectorPose returns the position and ZYX Euler rotation of the
// flange for the given joint angles.
func EndEffectorPose(joints JointAngles, cfg Config) spatialmath.Pose {
	return spatialmath.TransformToPose(Forward(joints, cfg).Flange())
}
