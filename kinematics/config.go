// Package kinematics implements the forward kinematic chain and the
// iterative inverse-kinematics solver for a 6-axis articulated arm.
//
// The chain is described by a Denavit-Hartenberg style table of 7 stages:
// stage 0 is the fixed base stage, stages 1-6 carry the six driven joints.
// Everything here is a pure function of its inputs; no parameter state is
// retained between calls.
package kinematics

import (
	"github.com/Redamancy-wzh/6-3D/utils"
)

// NumJoints is the number of driven joints on the arm.
const NumJoints = 6

// NumStages is the number of DH stages, the base stage plus one per joint.
const NumStages = 7

// JointAngles holds the six driven joint angles in degrees, index 0
// corresponding to joint 1.
type JointAngles [NumJoints]float64

// Config is the editable DH parameter table. The four sequences are
// parallel: entry i describes stage i of the chain. Distances are in
// millimeters, angles in degrees. Config is a value type; the kinematics
// functions copy it per call and never alias caller state.
type Config struct {
	// D is the link offset along the local Z axis.
	D [NumStages]float64
	// A is the link length along the local X axis.
	A [NumStages]float64
	// Alpha is the link twist about the local X axis.
	Alpha [NumStages]float64
	// JointOffset is added to the commanded joint angle before the
	// rotation step.
	JointOffset [NumStages]float64
}

// DefaultConfig returns the DH table of the simulated arm's nominal
// geometry.
func DefaultConfig() Config {
	return Config{
		D:           [NumStages]float64{169.77, 0, 0, 0, 222.63, 0, 36.25},
		A:           [NumStages]float64{0, 64.2, 305, 0, 0, 0, 0},
		Alpha:       [NumStages]float64{0, 0, 0, 0, 0, 0, 0},
		JointOffset: [NumStages]float64{0, 0, -90, 0, 0, 0, 0},
	}
}

// Store holds the live DH configuration shared with the parameter-editing
// surface. Reads and writes copy the whole table, so an edit takes effect
// on the next forward or inverse evaluation and never mid-evaluation.
type Store struct {
	cfg Config
}

// NewStore returns a Store seeded with the given configuration.
func NewStore(cfg Config) *Store {
	return &Store{cfg: cfg}
}

// Config returns a copy of the current configuration.
func (s *Store) Config() Config {
	return s.cfg
}

// SetConfig replaces the current configuration.
func (s *Store) SetConfig(cfg Config) {
	s.cfg = cfg
}

// Limit is an inclusive joint travel range in degrees.
type Limit struct {
	Min, Max float64
}

// DefaultLimits returns the travel ranges of the simulated arm.
func DefaultLimits() [NumJoints]Limit {
	return [NumJoints]Limit{
		{-170, 170},
		{-130, 130},
		{-145, 145},
		{-180, 180},
		{-120, 120},
		{-180, 180},
	}
}

// ClampToLimits returns the angles with each joint clamped into its travel
// range.
func ClampToLimits(j JointAngles, limits [NumJoints]Limit) JointAngles {
	for i := range j {
		if j[i] < limits[i].Min {
			j[i] = limits[i].Min
		} else if j[i] > limits[i].Max {
			j[i] = limits[i].Max
		}
	}
	return j
}

// Normalize wraps every joint angle into (-180, 180]. It is applied
// unconditionally to solver output and is idempotent.
func Normalize(j JointAngles) JointAngles {
	for i := range j {
		j[i] = utils.NormalizeDeg(j[i])
	}
	return j
}
