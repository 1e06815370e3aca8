package spatialmath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"go.viam.com/test"
)

func TestPoseTransformRoundTrip(t *testing.T) {
	for _, p := range []Pose{
		{},
		{X: 100, Y: -50, Z: 300},
		{A: 45, B: 30, C: -60},
		{X: 12.5, Y: 0.25, Z: -7, A: -170, B: 80, C: 15},
	} {
		got := TransformToPose(p.ToTransform())
		test.That(t, got.X, test.ShouldAlmostEqual, p.X, 1e-9)
		test.That(t, got.Y, test.ShouldAlmostEqual, p.Y, 1e-9)
		test.That(t, got.Z, test.ShouldAlmostEqual, p.Z, 1e-9)
		test.That(t, got.A, test.ShouldAlmostEqual, p.A, 1e-9)
		test.That(t, got.B, test.ShouldAlmostEqual, p.B, 1e-9)
		test.That(t, got.C, test.ShouldAlmostEqual, p.C, 1e-9)
	}
}

func TestRotationOrderIsZYX(t *testing.T) {
	// Rz(90) alone carries the X axis onto Y.
	m := Pose{A: 90}.ToTransform()
	v := m.Mul4x1(mgl64.Vec4{1, 0, 0, 1})
	test.That(t, v[0], test.ShouldAlmostEqual, 0, 1e-12)
	test.That(t, v[1], test.ShouldAlmostEqual, 1, 1e-12)
	test.That(t, v[2], test.ShouldAlmostEqual, 0, 1e-12)

	// With a=90, c=90 the Z rotation must be applied first: the point
	// (0,0,1) goes to (1,0,0) under Rz(90)*Rx(90), but to (0,-1,0) under
	// Rx(90)*Rz(90).
	m = Pose{A: 90, C: 90}.ToTransform()
	v = m.Mul4x1(mgl64.Vec4{0, 0, 1, 1})
	test.That(t, v[0], test.ShouldAlmostEqual, 1, 1e-12)
	test.That(t, v[1], test.ShouldAlmostEqual, 0, 1e-12)
	test.That(t, v[2], test.ShouldAlmostEqual, 0, 1e-12)
}

func TestOrientationBetween(t *testing.T) {
	base := Pose{A: 30, B: -10, C: 5}.ToTransform()
	test.That(t, OrientationBetween(base, base).Norm(), test.ShouldAlmostEqual, 0, 1e-12)

	// A small rotation about Z reads back as an error vector along Z with
	// magnitude close to the rotation angle in radians.
	small := Pose{A: 30.5, B: -10, C: 5}.ToTransform()
	err := OrientationBetween(base, small)
	test.That(t, err.Z, test.ShouldBeGreaterThan, 0)
	test.That(t, err.Norm(), test.ShouldAlmostEqual, 0.5*3.141592653589793/180, 1e-4)
}

func TestComposeFlangeTarget(t *testing.T) {
	waypoint := Pose{X: 200, Y: 50, Z: 400, A: 15}
	world := Pose{X: -30, Z: 10, A: 90}
	tool := Pose{X: 5, Z: 80, B: 45}

	// Identity world and tool leave the waypoint transform untouched.
	ident := ComposeFlangeTarget(waypoint, Pose{}, Pose{})
	want := waypoint.ToTransform()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			test.That(t, ident.At(i, j), test.ShouldAlmostEqual, want.At(i, j), 1e-12)
		}
	}

	// Flange * Tool must reproduce World * Waypoint; this only holds when
	// the tool offset is inverted as a full matrix.
	flange := ComposeFlangeTarget(waypoint, world, tool)
	lhs := flange.Mul4(tool.ToTransform())
	rhs := world.ToTransform().Mul4(waypoint.ToTransform())
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			test.That(t, lhs.At(i, j), test.ShouldAlmostEqual, rhs.At(i, j), 1e-9)
		}
	}
}
