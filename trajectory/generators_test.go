package trajectory

import (
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"

	"github.com/Redamancy-wzh/6-3D/kinematics"
	"github.com/Redamancy-wzh/6-3D/spatialmath"
)

func TestLinePath(t *testing.T) {
	start := spatialmath.Pose{X: 300, Y: -40, Z: 250, C: 10}
	wps := Line(start)
	test.That(t, wps, test.ShouldHaveLength, 61)

	// With no Z/Y rotation the local X axis is the world X axis.
	test.That(t, wps[0], test.ShouldResemble, start)
	last := wps[len(wps)-1]
	test.That(t, last.X, test.ShouldAlmostEqual, start.X+500, 1e-9)
	test.That(t, last.Y, test.ShouldAlmostEqual, start.Y, 1e-9)
	test.That(t, last.Z, test.ShouldAlmostEqual, start.Z, 1e-9)

	for _, wp := range wps {
		test.That(t, wp.A, test.ShouldEqual, start.A)
		test.That(t, wp.B, test.ShouldEqual, start.B)
		test.That(t, wp.C, test.ShouldEqual, start.C)
	}
}

func TestLinePathFollowsLocalFrame(t *testing.T) {
	// Rotated 90 about Z, the local X axis points along world Y.
	start := spatialmath.Pose{X: 100, A: 90}
	wps := Line(start)
	last := wps[len(wps)-1]
	test.That(t, last.X, test.ShouldAlmostEqual, 100, 1e-9)
	test.That(t, last.Y, test.ShouldAlmostEqual, 500, 1e-9)
}

func TestSCurvePath(t *testing.T) {
	start := spatialmath.Pose{Z: 400}
	wps := SCurve(start)
	test.That(t, wps, test.ShouldHaveLength, 121)
	for _, wp := range wps {
		test.That(t, wp.Z, test.ShouldEqual, 400.0)
		test.That(t, wp.A, test.ShouldEqual, 0.0)
	}
}

func TestSpiralPath(t *testing.T) {
	start := spatialmath.Pose{X: 50, Y: 50, Z: 200}
	wps := Spiral(start)
	test.That(t, wps, test.ShouldHaveLength, 181)
	test.That(t, wps[len(wps)-1].Z, test.ShouldAlmostEqual, 200+spiralClimbMM, 1e-9)
}

func TestSeedChainingIsDeterministic(t *testing.T) {
	logger := golog.NewTestLogger(t)
	cfg := kinematics.DefaultConfig()
	seed := kinematics.JointAngles{}
	start := kinematics.EndEffectorPose(seed, cfg)
	wps := Line(start)

	first, _ := SolveWaypoints(cfg, GlobalConfig{}, wps, seed, logger)
	second, _ := SolveWaypoints(cfg, GlobalConfig{}, wps, seed, logger)
	test.That(t, first, test.ShouldHaveLength, len(wps))
	test.That(t, first, test.ShouldResemble, second)
}

func TestSolveWaypointsReportsResiduals(t *testing.T) {
	logger := golog.NewTestLogger(t)
	cfg := kinematics.DefaultConfig()

	// An unreachable waypoint still yields a best-estimate target; the
	// aggregated error flags it.
	wps := []spatialmath.Pose{{X: 1e5, Y: 1e5, Z: 1e5}}
	targets, err := SolveWaypoints(cfg, GlobalConfig{}, wps, kinematics.JointAngles{}, logger)
	test.That(t, targets, test.ShouldHaveLength, 1)
	test.That(t, err, test.ShouldNotBeNil)
}
