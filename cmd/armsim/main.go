// Command armsim runs the arm simulator headlessly: it loads a recorded
// motion program (or one of the built-in demonstration paths), solves every
// waypoint, and plays the resulting joint targets to completion at a fixed
// tick rate.
package main

import (
	"flag"
	"os"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/Redamancy-wzh/6-3D/kinematics"
	"github.com/Redamancy-wzh/6-3D/playback"
	"github.com/Redamancy-wzh/6-3D/spatialmath"
	"github.com/Redamancy-wzh/6-3D/trajectory"
)

func main() {
	logger := golog.NewDevelopmentLogger("armsim")
	if err := realMain(logger); err != nil {
		logger.Fatal(err)
	}
}

func realMain(logger golog.Logger) error {
	var (
		globalVarsPath = flag.String("globalvars", "", "path to a *_globalvars.txt file")
		trajectoryPath = flag.String("trajectory", "", "path to a *commontest.txt trajectory file")
		configPath     = flag.String("config", "", "path to a DH config JSON file (default: built-in geometry)")
		pathName       = flag.String("path", "", "built-in path to play instead of a trajectory file: line, scurve or spiral")
		tickRate       = flag.Float64("tickrate", 60, "playback ticks per second")
	)
	flag.Parse()

	cfg := kinematics.DefaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return errors.Wrap(err, "reading DH config")
		}
		if cfg, err = kinematics.UnmarshalConfigJSON(data); err != nil {
			return err
		}
	}

	var global trajectory.GlobalConfig
	if *globalVarsPath != "" {
		data, err := os.ReadFile(*globalVarsPath)
		if err != nil {
			return errors.Wrap(err, "reading global vars")
		}
		global = trajectory.ParseGlobalVars(string(data))
	}

	var home kinematics.JointAngles
	start := kinematics.EndEffectorPose(home, cfg)

	var waypoints []spatialmath.Pose
	switch {
	case *trajectoryPath != "":
		data, err := os.ReadFile(*trajectoryPath)
		if err != nil {
			return errors.Wrap(err, "reading trajectory")
		}
		waypoints = trajectory.ParseWaypoints(string(data))
	case *pathName == "line":
		waypoints = trajectory.Line(start)
	case *pathName == "scurve":
		waypoints = trajectory.SCurve(start)
	case *pathName == "spiral":
		waypoints = trajectory.Spiral(start)
	default:
		return errors.New("need -trajectory or -path")
	}
	logger.Infow("loaded waypoints", "count", len(waypoints))

	targets, err := trajectory.SolveWaypoints(cfg, global, waypoints, home, logger)
	if err != nil {
		// Best-estimate targets are still playable; report and continue.
		logger.Warnw("some waypoints did not converge", "error", err)
	}

	limits := kinematics.DefaultLimits()
	player := playback.NewPlayer(home)
	for _, target := range targets {
		player.Enqueue(kinematics.ClampToLimits(target, limits))
	}

	dt := 1 / *tickRate
	ticks := 0
	for {
		current, finished := player.Tick(dt)
		ticks++
		if finished {
			logger.Infow("playback finished",
				"ticks", ticks,
				"simSeconds", float64(ticks)*dt,
				"finalPose", kinematics.EndEffectorPose(current, cfg))
			return nil
		}
	}
}
