// Package spatialmath defines the pose and rigid-transform operations used by
// the kinematic chain and the trajectory pipeline.
//
// A Pose is the 6-component representation used by industrial motion
// programs: a translation in millimeters plus three Euler angles in degrees
// applied in Z, then Y, then X order. All transforms are 4x4 homogeneous
// matrices in the robot base frame.
package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/Redamancy-wzh/6-3D/utils"
)

// Pose is a position in millimeters together with a ZYX Euler rotation in
// degrees. It is a value type; functions taking a Pose never retain it.
type Pose struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// Point returns the translation component as a vector.
func (p Pose) Point() r3.Vector {
	return r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
}

// ToTransform builds the homogeneous transform
//
//	T = Translate(x,y,z) * Rz(a) * Ry(b) * Rx(c)
//
// The rotation order is the motion-program convention and must not be
// reordered.
func (p Pose) ToTransform() mgl64.Mat4 {
	return mgl64.Translate3D(p.X, p.Y, p.Z).
		Mul4(mgl64.HomogRotate3DZ(utils.DegToRad(p.A))).
		Mul4(mgl64.HomogRotate3DY(utils.DegToRad(p.B))).
		Mul4(mgl64.HomogRotate3DX(utils.DegToRad(p.C)))
}

// TransformToPose decomposes a transform back into translation plus an
// equivalent ZYX Euler rotation. Used for display and for IK error
// computation only; chain angles are never re-derived from it.
func TransformToPose(m mgl64.Mat4) Pose {
	sb := -m.At(2, 0)
	if sb > 1 {
		sb = 1
	} else if sb < -1 {
		sb = -1
	}
	b := math.Asin(sb)
	var a, c float64
	if math.Abs(math.Cos(b)) > 1e-10 {
		a = math.Atan2(m.At(1, 0), m.At(0, 0))
		c = math.Atan2(m.At(2, 1), m.At(2, 2))
	} else {
		// Gimbal lock: fold the whole rotation into a.
		a = math.Atan2(-m.At(0, 1), m.At(1, 1))
		c = 0
	}
	return Pose{
		X: m.At(0, 3),
		Y: m.At(1, 3),
		Z: m.At(2, 3),
		A: utils.RadToDeg(a),
		B: utils.RadToDeg(b),
		C: utils.RadToDeg(c),
	}
}

// Translation returns the translation column of a transform.
func Translation(m mgl64.Mat4) r3.Vector {
	return r3.Vector{X: m.At(0, 3), Y: m.At(1, 3), Z: m.At(2, 3)}
}

// Quaternion returns the rotation part of a transform as a unit quaternion.
func Quaternion(m mgl64.Mat4) quat.Number {
	q := mgl64.Mat4ToQuat(m)
	return quat.Number{Real: q.W, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]}
}

// OrientationBetween returns the small-angle rotational error that carries
// the rotation of cur onto the rotation of target: the vector part of
// target*cur^-1 doubled, flipped onto the short arc when the product's
// scalar part is negative. Valid near convergence; units are radians.
func OrientationBetween(cur, target mgl64.Mat4) r3.Vector {
	d := quat.Mul(Quaternion(target), quat.Conj(Quaternion(cur)))
	if d.Real < 0 {
		d = quat.Scale(-1, d)
	}
	return r3.Vector{X: 2 * d.Imag, Y: 2 * d.Jmag, Z: 2 * d.Kmag}
}

// ComposeFlangeTarget translates a recorded Cartesian waypoint, expressed in
// the program's world/tool convention, into the flange transform the
// kinematic chain targets:
//
//	Flange = World * Waypoint * Tool^-1
//
// The tool inversion is a full matrix inverse; tool offsets may carry
// rotation, so negating the translation is not equivalent.
func ComposeFlangeTarget(waypoint, world, tool Pose) mgl64.Mat4 {
	return world.ToTransform().
		Mul4(waypoint.ToTransform()).
		Mul4(tool.ToTransform().Inv())
}
