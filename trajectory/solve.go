package trajectory

import (
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/Redamancy-wzh/6-3D/kinematics"
	"github.com/Redamancy-wzh/6-3D/spatialmath"
)

// SolveWaypoints converts an ordered waypoint sequence into joint-angle
// targets. Each waypoint is composed with the program's world and tool
// frames into a flange target and solved with the previous solution as
// seed, so the IK branch selected stays continuous across the path.
//
// The returned sequence always covers every waypoint; like the solver
// itself it never withholds a best estimate. The error, when non-nil,
// aggregates the waypoints whose residual exceeded the solver tolerances
// and is advisory.
func SolveWaypoints(
	cfg kinematics.Config,
	global GlobalConfig,
	waypoints []spatialmath.Pose,
	seed kinematics.JointAngles,
	logger golog.Logger,
) ([]kinematics.JointAngles, error) {
	var solveErr error
	targets := make([]kinematics.JointAngles, 0, len(waypoints))
	for i, wp := range waypoints {
		flange := spatialmath.ComposeFlangeTarget(wp, global.World, global.Tool)
		seed = kinematics.Solve(flange, seed, cfg)
		targets = append(targets, seed)

		posErr, orientErr := kinematics.Residual(flange, seed, cfg)
		if posErr >= kinematics.PositionTolMM || orientErr >= kinematics.OrientationTolRad {
			solveErr = multierr.Append(solveErr, errors.Errorf(
				"waypoint %d did not converge: position error %.3fmm, orientation error %.5frad",
				i, posErr, orientErr))
		}
		logger.Debugw("solved waypoint", "index", i, "posErrMM", posErr, "orientErrRad", orientErr)
	}
	return targets, solveErr
}
